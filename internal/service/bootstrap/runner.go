package bootstrap

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"
)

const defaultWaitDelay = 10 * time.Second

// Command describes a child process. Dir is the child's working directory;
// empty means the current one.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// Runner spawns child processes. Bootstrapper only talks to this interface,
// so tests can observe which processes would have been started.
type Runner interface {
	// Output runs the command and returns stdout and stderr combined.
	Output(ctx context.Context, c Command) ([]byte, error)
	// Run runs the command attached to the terminal and waits for it.
	Run(ctx context.Context, c Command) error
}

type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// WaitDelay bounds how long a cancelled child may take to exit after
	// it was interrupted before it is killed.
	WaitDelay time.Duration
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: defaultWaitDelay,
	}
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Output(ctx context.Context, c Command) ([]byte, error) {
	cmd := r.command(ctx, c)
	out, err := cmd.CombinedOutput()
	return out, wrapExit(err)
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := r.command(ctx, c)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return wrapExit(cmd.Run())
}

// command builds an exec.Cmd whose cancellation interrupts the child instead
// of killing it, giving it WaitDelay to shut down cleanly.
func (r *ExecRunner) command(ctx context.Context, c Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Cancel = func() error {
		return interruptProcess(cmd.Process)
	}
	cmd.WaitDelay = r.WaitDelay
	return cmd
}

// interruptProcess sends os.Interrupt, falling back to Kill on platforms
// that cannot deliver it. A process that already exited is not an error.
func interruptProcess(proc *os.Process) error {
	err := proc.Signal(os.Interrupt)
	if err == nil || errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	if err := proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func wrapExit(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode(), Err: err}
	}
	return err
}
