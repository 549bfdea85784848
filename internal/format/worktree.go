package format

import (
	"fmt"
	"strings"

	"github.com/imqdee/wtree/internal/git"
)

const shortSHALength = 7

// BranchInfo returns the short branch name, or the abbreviated HEAD when
// branch is empty (detached).
func BranchInfo(branch, head string) string {
	if branch != "" {
		return strings.TrimPrefix(branch, "refs/heads/")
	}
	if len(head) > shortSHALength {
		return head[:shortSHALength]
	}
	return head
}

// ListLines formats every non-bare worktree as a list line.
func ListLines(worktrees []git.Worktree) []string {
	width := 0
	for _, wt := range worktrees {
		if !wt.IsBare() {
			width = max(width, len(wt.Name()))
		}
	}

	var lines []string
	for _, wt := range worktrees {
		if wt.IsBare() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*s [%s]", width, wt.Name(), BranchInfo(wt.Branch, wt.Head)))
	}
	return lines
}

// SanitizeForPath replaces characters that are problematic in file paths
// Replaces: / \ : * ? " < > | with -
func SanitizeForPath(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
