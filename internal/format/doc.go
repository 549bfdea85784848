// Package format renders worktrees for `wt list` and sanitizes names.
//
// A list line is the worktree name padded to the longest name, a space and
// the branch info in brackets:
//
//	feature-login [feature/login]
//	main          [main]
//	review        [abc1234]
//
// Branch info is the branch without refs/heads/, or the first seven
// characters of HEAD for a detached worktree.
package format
