// Package doctor diagnoses and repairs a hub.
//
// Issues fall into three categories:
//
//   - [CategoryHub]: the root .git link and .wtree/hooks.toml
//   - [CategoryGit]: the fetch refspec and registered worktrees that are
//     missing on disk or whose links are broken
//   - [CategoryState]: a previous-worktree pointer naming a worktree that
//     is gone
//
// Each [Issue] carries the [FixAction] that [Run] applies with fix set.
// Issues without an action need manual attention.
//
// # Usage
//
//	err := doctor.Run(ctx, r, hub, false) // report only
//	err := doctor.Run(ctx, r, hub, true)  // report and repair
package doctor
