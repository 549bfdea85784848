package format

import (
	"testing"

	"github.com/imqdee/wtree/internal/git"
)

func TestBranchInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		branch string
		head   string
		want   string
	}{
		{"refs/heads prefix stripped", "refs/heads/main", "abc1234", "main"},
		{"no prefix", "feature-branch", "abc1234", "feature-branch"},
		{"nested branch", "refs/heads/feature/my-feature", "abc1234", "feature/my-feature"},
		{"detached uses short sha", "", "abc1234567890def", "abc1234"},
		{"short head kept", "", "abc", "abc"},
		{"empty head", "", "", ""},
		{"bare head", "", git.BareHead, git.BareHead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BranchInfo(tt.branch, tt.head); got != tt.want {
				t.Errorf("BranchInfo(%q, %q) = %q, want %q", tt.branch, tt.head, got, tt.want)
			}
		})
	}
}

func TestListLines(t *testing.T) {
	t.Parallel()

	parsed := git.ParseWorktreeList("worktree /r/.bare\nbare\n\nworktree /r/main\nHEAD abc123\nbranch refs/heads/main\n")
	if len(parsed) != 2 {
		t.Fatalf("expected 2 records, got %d", len(parsed))
	}

	lines := ListLines(parsed)
	if len(lines) != 1 || lines[0] != "main [main]" {
		t.Errorf("ListLines() = %q, want [\"main [main]\"]", lines)
	}
}

func TestListLines_Alignment(t *testing.T) {
	t.Parallel()

	lines := ListLines([]git.Worktree{
		{Path: "/r/.bare", Head: git.BareHead},
		{Path: "/r/main", Head: "1111111111", Branch: "refs/heads/main"},
		{Path: "/r/feature-login", Head: "2222222222", Branch: "refs/heads/feature/login"},
		{Path: "/r/review", Head: "3333333333"},
	})

	want := []string{
		"main          [main]",
		"feature-login [feature/login]",
		"review        [3333333]",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestListLines_OnlyBare(t *testing.T) {
	t.Parallel()

	if lines := ListLines([]git.Worktree{{Path: "/r/.bare", Head: git.BareHead}}); len(lines) != 0 {
		t.Errorf("expected no lines, got %q", lines)
	}
}

func TestSanitizeForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"feature/my-branch": "feature-my-branch",
		"fix:bug":           "fix-bug",
		`a\b*c?d"e<f>g|h`:   "a-b-c-d-e-f-g-h",
		"plain":             "plain",
	}
	for in, want := range tests {
		if got := SanitizeForPath(in); got != want {
			t.Errorf("SanitizeForPath(%q) = %q, want %q", in, got, want)
		}
	}
}
