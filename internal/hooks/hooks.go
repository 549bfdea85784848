package hooks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/imqdee/wtree/internal/cmd"
	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/log"
)

// Phase says whether a hook runs before or after the git operation.
type Phase int

const (
	Pre Phase = iota
	Post
)

func (p Phase) String() string {
	if p == Post {
		return "Post-hook"
	}
	return "Pre-hook"
}

// Error reports a hook that could not be started or exited non-zero.
type Error struct {
	Phase   Phase
	Command string // hook command string as configured
	Stderr  string // trimmed stderr of the hook
	Err     error  // underlying failure
}

func (e *Error) Error() string {
	var launchErr *cmd.LaunchError
	if errors.As(e.Err, &launchErr) {
		return fmt.Sprintf("Failed to execute hook '%s': %v", e.Command, launchErr.Err)
	}
	if e.Stderr == "" && e.Err != nil {
		return fmt.Sprintf("%s '%s' failed: %v", e.Phase, e.Command, e.Err)
	}
	return fmt.Sprintf("%s '%s' failed: %s", e.Phase, e.Command, e.Stderr)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RunPre runs the pre-hooks configured for hc's command in the hub root.
// It stops at and returns the first failure. A nil cfg runs nothing.
func RunPre(ctx context.Context, cfg *config.HooksConfig, hc Context) error {
	return runAll(ctx, cfg.For(hc.Command()).Pre, hc, Pre)
}

// RunPost runs the post-hooks configured for hc's command. The first
// failure stops the list and is logged as a warning; it is never returned.
func RunPost(ctx context.Context, cfg *config.HooksConfig, hc Context) {
	if err := runAll(ctx, cfg.For(hc.Command()).Post, hc, Post); err != nil {
		log.FromContext(ctx).Warnf("post-hook failed: %v", err)
	}
}

func runAll(ctx context.Context, hooks []string, hc Context, phase Phase) error {
	for _, hook := range hooks {
		if err := runHook(ctx, hook, hc, phase); err != nil {
			return err
		}
	}
	return nil
}

func runHook(ctx context.Context, hook string, hc Context, phase Phase) error {
	l := log.FromContext(ctx)
	dir := workDir(hc, phase)

	c := exec.CommandContext(ctx, "sh", "-c", hook)
	c.Dir = dir
	c.Env = append(os.Environ(), hc.Env()...)
	c.Stdout = l.Stream()

	done := l.Command(dir, "sh", "-c", hook)
	start := time.Now()
	err := cmd.Run(c)
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &Error{Phase: phase, Command: hook, Err: ctxErr}
	}

	hookErr := &Error{Phase: phase, Command: hook, Err: err}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		hookErr.Stderr = exitErr.Stderr
	}
	return hookErr
}

// workDir is the hub root for pre-hooks. Post-hooks use the worktree when
// it exists on disk.
func workDir(hc Context, phase Phase) string {
	if phase == Post {
		if info, err := os.Stat(hc.WorktreePath()); err == nil && info.IsDir() {
			return hc.WorktreePath()
		}
	}
	return hc.HubRoot()
}
