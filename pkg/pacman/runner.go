package pacman

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pacls/pkg/errors"
	"github.com/arthur-debert/pacls/pkg/logging"
)

// DefaultBin is the pacman executable looked up on PATH.
const DefaultBin = "pacman"

// Delegate lists sync databases through the system package manager.
type Delegate interface {
	SyncList(ctx context.Context, dbs []string) error
}

// ExitError reports a pacman run that finished with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("pacman exited with status %d", e.Code)
}

// ExitCode returns the pacman exit status carried by err, if any.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// Bin is the pacman executable. Defaults to DefaultBin.
	Bin string
	// Config is passed as --config when set.
	Config string
	// DBPath is passed as --dbpath when set.
	DBPath string
	// Args are forwarded to pacman untouched, ahead of the operation.
	Args []string
	// Quiet asks pacman for bare package names (-q).
	Quiet bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes pacman for local listings. pacman writes straight to
// the configured streams; nothing is captured or parsed.
type Runner struct {
	opts   RunnerOptions
	logger zerolog.Logger
}

var _ Delegate = (*Runner)(nil)

// NewRunner creates a Runner. Unset streams default to the process's own.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Bin == "" {
		opts.Bin = DefaultBin
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Runner{
		opts:   opts,
		logger: logging.GetLogger("pacman.runner"),
	}
}

// Args returns the argument list used to list dbs.
func (r *Runner) Args(dbs []string) []string {
	args := make([]string, 0, len(r.opts.Args)+len(dbs)+6)
	if r.opts.Config != "" {
		args = append(args, "--config", r.opts.Config)
	}
	if r.opts.DBPath != "" {
		args = append(args, "--dbpath", r.opts.DBPath)
	}
	args = append(args, r.opts.Args...)
	if r.opts.Quiet && !slices.Contains(r.opts.Args, "-q") && !slices.Contains(r.opts.Args, "--quiet") {
		args = append(args, "-q")
	}
	args = append(args, "-Sl")
	return append(args, dbs...)
}

// SyncList runs `pacman -Sl dbs...`. A non-zero exit is reported as an
// ExitError inside a DELEGATE error so callers can reuse the status.
func (r *Runner) SyncList(ctx context.Context, dbs []string) error {
	args := r.Args(dbs)
	logging.LogCommand(r.opts.Bin, args)

	cmd := exec.CommandContext(ctx, r.opts.Bin, args...)
	cmd.Stdin = r.opts.Stdin
	cmd.Stdout = r.opts.Stdout
	cmd.Stderr = r.opts.Stderr

	err := cmd.Run()
	if err == nil {
		r.logger.Debug().Strs("dbs", dbs).Msg("pacman listing finished")
		return nil
	}

	line := r.opts.Bin + " " + strings.Join(args, " ")
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.logger.Debug().Int("exit_code", code).Str("command", line).Msg("pacman exited with failure")
		return errors.Wrap(&ExitError{Code: code}, errors.ErrDelegate, line).
			WithDetail("exit_code", code).
			WithDetail("dbs", dbs)
	}

	return errors.Wrap(err, errors.ErrDelegate, line).
		WithDetail("dbs", dbs)
}
