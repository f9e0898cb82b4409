package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// SpawnError reports a failure to start the child process. It is the
// only error that can occur after argument construction succeeds.
type SpawnError struct {
	Exe string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Exe, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Launcher spawns a built plan and reports the child's exit code.
// Detached (terminal) launches return 0 as soon as the terminal process
// has been started.
type Launcher interface {
	Launch(plan *Plan) (int, error)
}

// Exec launches plans with os/exec. Foreground launches inherit the
// given streams and block until the child exits.
type Exec struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// NewExec returns an Exec bound to the process's own streams.
func NewExec() *Exec {
	return &Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Launch spawns the plan. This is the single irreversible step of an
// invocation; everything before it is side-effect free.
func (e *Exec) Launch(plan *Plan) (int, error) {
	if _, err := os.Stat(plan.Exe); err != nil {
		// Bare names (e.g. an editor from $EDITOR) resolve via PATH.
		resolved, lerr := exec.LookPath(plan.Exe)
		if lerr != nil {
			return 0, &SpawnError{Exe: plan.Exe, Err: err}
		}
		p := *plan
		p.Exe = resolved
		plan = &p
	}

	if plan.Terminal {
		return e.launchDetached(plan)
	}
	return e.launchForeground(plan)
}

func (e *Exec) launchForeground(plan *Plan) (int, error) {
	cmd := exec.Command(plan.Exe, plan.Args...)
	cmd.Dir = plan.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	log.Debug().Str("exe", plan.Exe).Strs("args", plan.Args).Msg("launching foreground")

	if err := cmd.Start(); err != nil {
		return 0, &SpawnError{Exe: plan.Exe, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, &SpawnError{Exe: plan.Exe, Err: err}
	}
	return 0, nil
}

// launchDetached wraps the plan in a new terminal window process and
// returns without waiting; the child's lifetime is independent of ours
// from here on.
func (e *Exec) launchDetached(plan *Plan) (int, error) {
	cmd, err := terminalCommand(plan)
	if err != nil {
		return 0, err
	}
	cmd.Dir = plan.Dir

	log.Debug().Str("terminal", cmd.Path).Strs("args", cmd.Args[1:]).Msg("launching detached")

	if err := cmd.Start(); err != nil {
		return 0, &SpawnError{Exe: cmd.Path, Err: err}
	}
	if cmd.Process != nil {
		cmd.Process.Release()
	}
	return 0, nil
}
