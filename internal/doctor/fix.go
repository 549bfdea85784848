package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/output"
	"github.com/imqdee/wtree/internal/state"
	"github.com/imqdee/wtree/internal/ui/styles"
)

// fixAllIssues applies the fix of every issue that has one.
// One prune covers every missing worktree.
func fixAllIssues(ctx context.Context, r git.Runner, hub string, issues []Issue) error {
	out := output.FromContext(ctx)

	var fixed, failed int
	pruned := false

	for _, issue := range issues {
		var (
			err  error
			done string
		)

		switch issue.FixAction {
		case FixGitFile:
			err = os.WriteFile(filepath.Join(hub, git.GitFile), []byte("gitdir: ./"+git.BareDir+"\n"), 0o644)
			done = "Rewrote " + git.GitFile

		case FixRefspec:
			err = git.ConfigureFetch(ctx, r, hub)
			done = "Configured fetch refspec"

		case FixPrune:
			if pruned {
				fixed++
				continue
			}
			err = git.PruneWorktrees(ctx, r, hub)
			pruned = err == nil
			done = "Pruned stale worktree entries"

		case FixRepair:
			err = git.RepairWorktree(ctx, r, hub, issue.Path)
			done = fmt.Sprintf("Repaired git links for %q", issue.Key)

		case FixClearState:
			err = state.ClearPrevious(hub)
			done = "Cleared previous worktree"

		default:
			continue
		}

		if err != nil {
			out.Styledf(styles.ErrorStyle, "  ✗ Failed to fix %q: %v", issue.Key, err)
			failed++
			continue
		}
		out.Successf("  ✓ %s", done)
		fixed++
	}

	out.Printf("\nFixed %d of %d issues\n", fixed, len(issues))
	if failed > 0 {
		return fmt.Errorf("%d fixes failed", failed)
	}
	return nil
}
