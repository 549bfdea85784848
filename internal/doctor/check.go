package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/state"
)

// Check runs every diagnostic against hub and returns the issues found,
// grouped by category in a stable order.
func Check(ctx context.Context, r git.Runner, hub string, worktrees []git.Worktree) []Issue {
	var issues []Issue
	issues = append(issues, tag(checkHubIssues(hub), CategoryHub)...)
	issues = append(issues, tag(checkGitIssues(ctx, r, hub, worktrees), CategoryGit)...)
	issues = append(issues, tag(checkStateIssues(hub, worktrees), CategoryState)...)
	return issues
}

func tag(issues []Issue, category IssueCategory) []Issue {
	for i := range issues {
		issues[i].Category = category
	}
	return issues
}

// checkHubIssues verifies the root .git link and the hooks file.
func checkHubIssues(hub string) []Issue {
	var issues []Issue

	gitdir, ok := git.ReadGitdir(hub)
	switch {
	case !ok:
		issues = append(issues, Issue{
			Key:         git.GitFile,
			Description: "missing or not a gitdir file",
			FixAction:   FixGitFile,
		})
	case gitdir != filepath.Join(hub, git.BareDir):
		issues = append(issues, Issue{
			Key:         git.GitFile,
			Description: fmt.Sprintf("points at %s instead of ./%s", gitdir, git.BareDir),
			FixAction:   FixGitFile,
		})
	}

	// unlike the lifecycle commands, a malformed file is reported here
	if _, err := config.ReadHooks(hub); err != nil {
		issues = append(issues, Issue{
			Key:         config.HooksFileName,
			Description: err.Error(),
		})
	}

	return issues
}

// checkGitIssues finds a missing fetch refspec and registered worktrees
// that are gone or no longer linked to the bare store.
func checkGitIssues(ctx context.Context, r git.Runner, hub string, worktrees []git.Worktree) []Issue {
	var issues []Issue

	if _, hasOrigin := git.ConfigValue(ctx, r, hub, "remote.origin.url"); hasOrigin {
		if _, ok := git.ConfigValue(ctx, r, hub, "remote.origin.fetch"); !ok {
			issues = append(issues, Issue{
				Key:         "remote.origin.fetch",
				Description: "fetch refspec not configured, remote branches are not fetched",
				FixAction:   FixRefspec,
			})
		}
	}

	for _, wt := range worktrees {
		if wt.IsBare() {
			continue
		}

		if _, err := os.Stat(wt.Path); os.IsNotExist(err) {
			issues = append(issues, Issue{
				Key:         wt.Name(),
				Description: fmt.Sprintf("directory no longer exists: %s", wt.Path),
				FixAction:   FixPrune,
				Path:        wt.Path,
			})
			continue
		}

		gitdir, ok := git.ReadGitdir(wt.Path)
		if !ok {
			issues = append(issues, Issue{
				Key:         wt.Name(),
				Description: "missing .git file",
				FixAction:   FixRepair,
				Path:        wt.Path,
			})
			continue
		}
		if _, err := os.Stat(gitdir); os.IsNotExist(err) {
			issues = append(issues, Issue{
				Key:         wt.Name(),
				Description: fmt.Sprintf("broken link to %s", gitdir),
				FixAction:   FixRepair,
				Path:        wt.Path,
			})
		}
	}

	return issues
}

// checkStateIssues verifies that the previous pointer names a worktree.
func checkStateIssues(hub string, worktrees []git.Worktree) []Issue {
	previous, err := state.ReadPrevious(hub)
	if err != nil {
		return []Issue{{
			Key:         config.StateFileName,
			Description: err.Error(),
			FixAction:   FixClearState,
		}}
	}
	if previous == "" {
		return nil
	}
	if _, ok := git.FindWorktree(worktrees, previous); ok {
		return nil
	}
	return []Issue{{
		Key:         config.StateFileName,
		Description: fmt.Sprintf("previous worktree '%s' no longer exists", previous),
		FixAction:   FixClearState,
	}}
}
