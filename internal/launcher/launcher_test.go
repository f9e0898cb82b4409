package launcher

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures not applicable on Windows")
	}
	path := filepath.Join(t.TempDir(), "llama-cli")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLaunchForeground(t *testing.T) {
	exe := writeScript(t, "echo ran $1\n")

	var out bytes.Buffer
	e := &Exec{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &out}
	code, err := e.Launch(&Plan{Exe: exe, Args: []string{"--threads"}})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "ran --threads") {
		t.Errorf("child output not captured: %q", out.String())
	}
}

func TestLaunchPropagatesExitCode(t *testing.T) {
	exe := writeScript(t, "exit 3\n")

	e := &Exec{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	code, err := e.Launch(&Plan{Exe: exe})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestLaunchMissingBinary(t *testing.T) {
	e := NewExec()
	_, err := e.Launch(&Plan{Exe: filepath.Join(t.TempDir(), "no-such-llama-cli")})

	var serr *SpawnError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
}

func TestShellJoin(t *testing.T) {
	tests := []struct {
		argv []string
		want string
	}{
		{[]string{"/usr/bin/llama-cli", "-m", "/m/a.gguf"}, "/usr/bin/llama-cli -m /m/a.gguf"},
		{[]string{"/opt/my models/cli", "-p", "be brief"}, "'/opt/my models/cli' -p 'be brief'"},
		{[]string{"x", "it's"}, `x 'it'\''s'`},
	}
	for _, tt := range tests {
		if got := shellJoin(tt.argv); got != tt.want {
			t.Errorf("shellJoin(%q) = %q, want %q", tt.argv, got, tt.want)
		}
	}
}

func TestTerminalCommandLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux terminal resolution")
	}

	plan := &Plan{Exe: "/usr/bin/llama-cli", Args: []string{"-m", "/m/a.gguf"}, Terminal: true}
	cmd, err := terminalCommand(plan)
	if err != nil {
		// No terminal emulator on this host; the error must still be a
		// SpawnError so the caller maps it to a launch failure.
		var serr *SpawnError
		if !errors.As(err, &serr) {
			t.Fatalf("expected SpawnError, got %v", err)
		}
		return
	}

	joined := strings.Join(cmd.Args, " ")
	if !strings.Contains(joined, "llama-cli") {
		t.Errorf("wrapped command lost the invocation: %q", joined)
	}
}

func TestRecordLaunch(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "chatlogs")
	plan := &Plan{Exe: "/usr/bin/llama-cli", Args: []string{"-m", "/m/a.gguf"}}

	if err := RecordLaunch(logDir, "fast", plan); err != nil {
		t.Fatalf("RecordLaunch: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(logDir, "launches.log"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "mode=fast") || !strings.Contains(line, "llama-cli") {
		t.Errorf("unexpected record: %q", line)
	}

	// Appending keeps prior records.
	if err := RecordLaunch(logDir, "big", plan); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(filepath.Join(logDir, "launches.log"))
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("record count = %d, want 2", got)
	}
}
