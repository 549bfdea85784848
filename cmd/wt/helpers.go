package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/state"
)

// reservedNames are hub entries that can never be worktrees.
var reservedNames = []string{git.BareDir, git.GitFile, config.MetaDirName}

// rememberCurrent records the worktree the user is leaving as previous,
// unless it is the target itself or the user is not inside a worktree.
func rememberCurrent(ctx context.Context, hub, target string) error {
	current, err := git.CurrentWorktreeName(ctx, git.RunnerFromContext(ctx), hub, config.WorkDirFromContext(ctx))
	if err != nil {
		return err
	}
	if current == "" || current == target {
		return nil
	}
	log.FromContext(ctx).Debug("saving previous worktree", "name", current)
	return state.SavePrevious(hub, current)
}

// notFoundError reports an unknown worktree name with fuzzy suggestions.
func notFoundError(worktrees []git.Worktree, name string) error {
	msg := fmt.Sprintf("Worktree '%s' not found. Use 'wt list' to see available worktrees.", name)
	if suggestions := git.SuggestNames(worktrees, name); len(suggestions) > 0 {
		msg += "\nDid you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	return fmt.Errorf("%s", msg)
}
