// Package hooks runs the user's pre and post hooks around worktree
// lifecycle commands.
//
// Hooks come from .wtree/hooks.toml (see the config package). Every hook is
// a shell command executed with "sh -c", so pipes, quoting and conditionals
// work as in a terminal. Hooks run one at a time, in file order.
//
// # Environment
//
// Each hook process inherits wt's environment plus:
//
//   - WT_COMMAND: create, switch or remove
//   - WT_WORKTREE_NAME: target worktree name
//   - WT_WORKTREE_PATH: absolute target worktree path
//   - WT_HUB_ROOT: absolute hub root
//   - WT_BRANCH: branch name, only set when known
//
// # Failure Policy
//
// Pre-hooks run in the hub root. The first failing pre-hook stops the list
// and [RunPre] returns an [*Error]; callers abort the command before git is
// touched.
//
// Post-hooks run in the worktree, or in the hub root when the worktree no
// longer exists (after remove). The first failing post-hook stops the list
// and is reported as a warning by [RunPost]; the command still succeeds.
//
// Hook stdout is copied to the diagnostic stream (stderr), keeping stdout
// clean for the shell wrapper. Hook stderr is captured into the error.
package hooks
