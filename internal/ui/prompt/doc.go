// Package prompt provides interactive prompts.
//
//   - [Select]: single selection from a filterable list
//   - [SelectWorktree]: [Select] over worktree names, current one marked
package prompt
