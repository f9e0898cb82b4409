package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// linuxTerminals is tried in order; the first one on PATH wins.
var linuxTerminals = []string{"gnome-terminal", "konsole", "xfce4-terminal", "xterm"}

// terminalCommand wraps a plan in a new-terminal-window invocation for
// the host platform. The wrapped shell keeps the window open after the
// session ends so the user can read the tail of the output.
func terminalCommand(plan *Plan) (*exec.Cmd, error) {
	shellCmd := shellJoin(append([]string{plan.Exe}, plan.Args...))

	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/C", "start", "cmd", "/K", shellCmd), nil
	case "darwin":
		script := fmt.Sprintf("tell application \"Terminal\" to do script %q", shellCmd)
		return exec.Command("osascript", "-e", script), nil
	default:
		holdCmd := shellCmd + "; read -p 'Press Enter to close...'"
		for _, term := range linuxTerminals {
			if _, err := exec.LookPath(term); err != nil {
				continue
			}
			if term == "gnome-terminal" {
				return exec.Command(term, "--", "bash", "-c", holdCmd), nil
			}
			return exec.Command(term, "-e", "bash -c "+shellQuote(holdCmd)), nil
		}
		return nil, &SpawnError{Exe: "terminal", Err: fmt.Errorf("no terminal emulator found (tried %s)", strings.Join(linuxTerminals, ", "))}
	}
}

// shellJoin quotes and joins argv into a single sh command string.
func shellJoin(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$&|;<>()*?[]#~=%") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
