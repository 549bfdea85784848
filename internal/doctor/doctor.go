package doctor

import (
	"context"

	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/output"
	"github.com/imqdee/wtree/internal/ui/styles"
)

// Run performs diagnostic checks on hub and optionally fixes issues.
func Run(ctx context.Context, r git.Runner, hub string, fix bool) error {
	out := output.FromContext(ctx)

	worktrees, err := git.ListWorktrees(ctx, r, hub)
	if err != nil {
		return err
	}

	issues := Check(ctx, r, hub, worktrees)
	printSummary(out, len(git.Names(worktrees)), issues)

	if len(issues) == 0 {
		out.Println()
		out.Successf("✓ No issues found")
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(issues))
	printIssuesByCategory(out, issues)

	if fix {
		out.Println()
		return fixAllIssues(ctx, r, hub, issues)
	}

	for _, issue := range issues {
		if issue.FixAction != FixNone {
			out.Println("\nRun 'wt doctor --fix' to repair.")
			break
		}
	}
	return nil
}

// printSummary prints a one-line count per category.
func printSummary(out *output.Printer, worktrees int, issues []Issue) {
	broken := make(map[string]bool)
	counts := make(map[IssueCategory]int)
	for _, issue := range issues {
		counts[issue.Category]++
		if issue.Category == CategoryGit && issue.Path != "" {
			broken[issue.Key] = true
		}
	}

	if healthy := worktrees - len(broken); healthy > 0 {
		out.Successf("  ✓ %d worktrees healthy", healthy)
	}
	if n := counts[CategoryHub]; n > 0 {
		out.Styledf(styles.WarningStyle, "  ⚠ %d hub issues", n)
	}
	if n := counts[CategoryGit]; n > 0 {
		out.Styledf(styles.WarningStyle, "  ⚠ %d git issues", n)
	}
	if n := counts[CategoryState]; n > 0 {
		out.Styledf(styles.WarningStyle, "  ⚠ stale previous worktree")
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryHub:   "Hub issues",
		CategoryGit:   "Git issues",
		CategoryState: "State issues",
	}

	for _, cat := range []IssueCategory{CategoryHub, CategoryGit, CategoryState} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
