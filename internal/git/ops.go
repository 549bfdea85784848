package git

import (
	"context"
	"strings"
)

// FetchRefspec makes `git fetch` in a bare clone track every remote branch.
const FetchRefspec = "+refs/heads/*:refs/remotes/origin/*"

// CloneBare clones url as a bare repository into dest, running from dir.
func CloneBare(ctx context.Context, r Runner, dir, url, dest string) error {
	_, err := r.Run(ctx, dir, "clone", "--bare", url, dest)
	return err
}

// ConfigureFetch sets the origin fetch refspec, which bare clones lack.
func ConfigureFetch(ctx context.Context, r Runner, hubRoot string) error {
	_, err := r.Run(ctx, hubRoot, "config", "remote.origin.fetch", FetchRefspec)
	return err
}

// DefaultBranch returns the branch HEAD points to in a bare repository,
// e.g. "main" for "refs/heads/main". ok is false when HEAD is not a
// branch ref or git fails.
func DefaultBranch(ctx context.Context, r Runner, hubRoot string) (branch string, ok bool) {
	out, err := r.Run(ctx, hubRoot, "symbolic-ref", "HEAD")
	if err != nil {
		return "", false
	}
	branch, ok = strings.CutPrefix(strings.TrimSpace(out), "refs/heads/")
	return branch, ok && branch != ""
}

// AddWorktreeOptions selects what a new worktree checks out.
type AddWorktreeOptions struct {
	// Branch checks out an existing branch.
	Branch string

	// NewBranch creates a branch with this name at StartPoint.
	NewBranch  string
	StartPoint string
}

// AddWorktree creates the worktree directory name below hubRoot.
// Without options git checks out HEAD, creating a branch named after the
// directory.
func AddWorktree(ctx context.Context, r Runner, hubRoot, name string, opts AddWorktreeOptions) error {
	args := []string{"worktree", "add"}
	switch {
	case opts.NewBranch != "":
		args = append(args, "-b", opts.NewBranch, name)
		if opts.StartPoint != "" {
			args = append(args, opts.StartPoint)
		}
	case opts.Branch != "":
		args = append(args, name, opts.Branch)
	default:
		args = append(args, name)
	}
	_, err := r.Run(ctx, hubRoot, args...)
	return err
}

// RemoveWorktree removes the worktree at target (a path or a name relative
// to hubRoot).
func RemoveWorktree(ctx context.Context, r Runner, hubRoot, target string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, target)
	_, err := r.Run(ctx, hubRoot, args...)
	return err
}

// ConfigValue returns a git config value. ok is false when the key is unset.
func ConfigValue(ctx context.Context, r Runner, hubRoot, key string) (value string, ok bool) {
	out, err := r.Run(ctx, hubRoot, "config", "--get", key)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(out), true
}

// PruneWorktrees drops registry entries whose directories are gone.
func PruneWorktrees(ctx context.Context, r Runner, hubRoot string) error {
	_, err := r.Run(ctx, hubRoot, "worktree", "prune")
	return err
}

// RepairWorktree rewrites the links between a worktree and the bare store.
func RepairWorktree(ctx context.Context, r Runner, hubRoot, path string) error {
	_, err := r.Run(ctx, hubRoot, "worktree", "repair", path)
	return err
}
