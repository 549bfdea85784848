package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/imqdee/wtree/internal/log"
)

// ExitError reports a command that started but exited non-zero.
// Its message is the trimmed stderr of the command when there was any.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// LaunchError reports a command that could not be started at all.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Run executes a prepared command, capturing stderr into the returned error.
// Stdout is left as configured by the caller.
func Run(c *exec.Cmd) error {
	var stderr bytes.Buffer
	c.Stderr = &stderr
	return classify(c, c.Run(), stderr.String())
}

// Output executes a prepared command and returns its stdout.
func Output(c *exec.Cmd) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := classify(c, c.Run(), stderr.String()); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// RunContext runs name with args in dir (empty dir means the current one),
// tracing the invocation through the context logger.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	err := Run(c)
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// OutputContext is like RunContext but returns the command's stdout.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()
	out, err := Output(c)
	done(time.Since(start))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return out, err
}

func classify(c *exec.Cmd, err error, stderr string) error {
	if err == nil {
		return nil
	}

	name := c.Path
	if len(c.Args) > 0 {
		name = c.Args[0]
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		var args []string
		if len(c.Args) > 1 {
			args = c.Args[1:]
		}
		return &ExitError{
			Name:   name,
			Args:   args,
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(stderr),
		}
	}
	return &LaunchError{Name: name, Err: err}
}
