// Package config locates the per-hub metadata directory and loads the hook
// configuration stored in it.
//
// Everything wt keeps for a hub lives below <hub>/.wtree:
//
//	.wtree/
//	  hooks.toml   optional hook configuration
//	  state        previous-worktree pointer
//
// # Hooks Configuration
//
// hooks.toml has one table per lifecycle command, each with optional pre
// and post lists of shell commands:
//
//	[create]
//	pre = ["echo creating $WT_WORKTREE_NAME"]
//	post = ["npm install"]
//
//	[switch]
//	post = ["echo now in $WT_WORKTREE_PATH"]
//
//	[remove]
//	pre = ["./scripts/backup.sh"]
//
// Missing tables and lists are empty and unknown keys are ignored. Hooks are
// opt-in: [LoadHooks] treats a missing or malformed file as "no hooks" and
// only mentions parse failures in verbose output. [ReadHooks] returns the
// parse error for callers that want to surface it.
//
// # Context
//
// The working directory the CLI was started from travels on the context
// ([WithWorkDir], [WorkDirFromContext]) so that commands never read the
// process working directory themselves.
package config
