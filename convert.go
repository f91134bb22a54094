package reddit2ebook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/mattn/go-shellwords"

	"github.com/alnah/go-reddit2ebook/internal/process"
)

// Converter defaults, matching a stock calibre installation.
const (
	DefaultEbookConvert  = "/usr/bin/ebook-convert"
	DefaultConverterArgs = `--chapter "//h:h1" --smarten-punctuation --markdown-extensions meta`
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
// The command runs in its own process group, killed as a whole when ctx is done.
type ExecRunner struct{}

// Run starts name with args and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- converter path and args are user configuration
	process.Isolate(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	err := cmd.Wait()
	return stdout.String(), stderr.String(), err
}

// ParseConverterArgs splits s into arguments using shell quoting rules.
// Unbalanced quotes and shell operators (;, &, |, <, >) are rejected.
func ParseConverterArgs(s string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrConverterArgs, s, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("%w: %q: unexpected shell operator at offset %d", ErrConverterArgs, s, p.Position)
	}
	return args, nil
}

// EbookConverter converts documents by invoking an external converter,
// calibre's ebook-convert by default, as:
//
//	<Path> <input.md> <output> <args...>
type EbookConverter struct {
	Path   string
	Runner CommandRunner
	// Verbose, when set, receives the converter's exit status, stdout and
	// stderr after every run, whether it succeeded or not.
	Verbose io.Writer
}

// NewEbookConverter creates an EbookConverter with a real command runner.
// An empty path selects DefaultEbookConvert.
func NewEbookConverter(path string) *EbookConverter {
	if path == "" {
		path = DefaultEbookConvert
	}
	return &EbookConverter{Path: path, Runner: &ExecRunner{}}
}

// Convert runs the converter. Failing to start it and a non-zero exit
// status are both reported as ErrConversion.
func (c *EbookConverter) Convert(ctx context.Context, req ConversionRequest) error {
	args := make([]string, 0, len(req.Args)+2)
	args = append(args, req.InputPath, req.OutputPath)
	args = append(args, req.Args...)

	stdout, stderr, err := c.Runner.Run(ctx, c.Path, args...)

	if c.Verbose != nil {
		fmt.Fprintf(c.Verbose, "%s status: %s\n", filepath.Base(c.Path), exitStatus(err))
		fmt.Fprintln(c.Verbose, stdout)
		fmt.Fprintln(c.Verbose, stderr)
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrConversion, c.Path, ctxErr)
		}
		return fmt.Errorf("%w: %s: %w", ErrConversion, c.Path, err)
	}
	return nil
}

// exitStatus describes the outcome of a command run.
func exitStatus(err error) string {
	if err == nil {
		return "exit status 0"
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ProcessState.String()
	}
	return "not started"
}
