// Package git locates the hub of a bare-repository layout and talks to git
// about its worktrees.
//
// A hub looks like this:
//
//	project/
//	  .bare/        bare repository
//	  .git          "gitdir: ./.bare"
//	  .wtree/       hooks.toml, state
//	  main/         worktree
//	  feature-x/    worktree
//
// All git access goes through the [Runner] interface. [CLI] shells out to
// the git binary; tests substitute a recording fake. Nothing in this
// package reads the process working directory: callers pass the directory
// to start from.
//
// # Hub Discovery
//
//   - [FindHubRoot]: walk up from a directory to the hub root
//
// # Worktree Registry
//
//   - [ListWorktrees], [ParseWorktreeList]: porcelain listing, bare entry included
//   - [FindWorktree], [Names], [SuggestNames]: name lookups, bare entry excluded
//   - [CurrentWorktreeName]: which worktree a directory belongs to
//
// # Lifecycle Operations
//
//   - [CloneBare], [ConfigureFetch], [DefaultBranch]: hub setup
//   - [AddWorktree], [RemoveWorktree]: worktree creation and removal
//
// # Maintenance
//
//   - [ReadGitdir], [ConfigValue]: inspect links and configuration
//   - [PruneWorktrees], [RepairWorktree]: registry and link repair
package git
