package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/PolarWolf314/envseal/internal/audit"
	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/load"
)

// RunOptions configures the run workflow.
type RunOptions struct {
	// ProjectPath is the project root. If empty, uses the working directory.
	ProjectPath string

	// Command is the program and its arguments.
	Command []string

	// Env is the environment the secrets are merged into. Nil means os.Environ().
	Env []string

	// Stdin, Stdout and Stderr default to the process's own streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunResult contains the outcome of a run operation.
type RunResult struct {
	// ExitCode is the child's exit status.
	ExitCode int

	// StoreExists is false when the project has no store file.
	StoreExists bool

	// Injected are the names added to the child's environment, sorted.
	Injected []string

	// Shadowed are stored names left alone because the environment already
	// had them, sorted.
	Shadowed []string
}

// Run decrypts the project's secrets and runs a command with them in its
// environment. Variables already present in the environment are not
// overridden. A non-zero exit status of the child is reported in the result,
// not as an error.
//
// Returns ErrNoCommand if Command is empty.
// Returns a DecryptionError or ErrCorruptStore if the store cannot be read;
// the command is not started in that case.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if len(opts.Command) == 0 {
		return nil, kerrors.ErrNoCommand
	}

	userConfig, err := bindProject(opts.ProjectPath)
	if err != nil {
		return nil, err
	}

	store := projectStore()
	values, err := store.LoadAll()
	if err != nil {
		return nil, err
	}

	base := opts.Env
	if base == nil {
		base = os.Environ()
	}
	present := load.Keys(base)

	result := &RunResult{StoreExists: store.Exists()}
	for name := range values {
		if present[name] {
			result.Shadowed = append(result.Shadowed, name)
		} else {
			result.Injected = append(result.Injected, name)
		}
	}
	sort.Strings(result.Injected)
	sort.Strings(result.Shadowed)

	cmd := exec.CommandContext(ctx, opts.Command[0], opts.Command[1:]...)
	cmd.Env = load.Environ(base, values)
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	auditEntry := audit.NewEntry("run")
	auditEntry.Names = result.Injected
	recordAudit(userConfig, auditEntry)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("running %s: %w", opts.Command[0], err)
		}
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Killed by a signal.
			result.ExitCode = 1
		}
	}

	return result, nil
}
