package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imqdee/wtree/internal/cmd"
	"github.com/imqdee/wtree/internal/git/gittest"
)

func TestParseWorktreeList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		want   []Worktree
	}{
		{
			name:   "empty",
			output: "",
			want:   nil,
		},
		{
			name:   "bare only",
			output: "worktree /home/user/project/.bare\nbare\n",
			want: []Worktree{
				{Path: "/home/user/project/.bare", Head: BareHead},
			},
		},
		{
			name:   "single worktree",
			output: "worktree /home/user/project/main\nHEAD abc1234567890def\nbranch refs/heads/main\n",
			want: []Worktree{
				{Path: "/home/user/project/main", Head: "abc1234567890def", Branch: "refs/heads/main"},
			},
		},
		{
			name: "bare plus worktrees separated by blank lines",
			output: "worktree /home/user/project/.bare\nbare\n\n" +
				"worktree /home/user/project/main\nHEAD abc1234567890def\nbranch refs/heads/main\n\n" +
				"worktree /home/user/project/feature\nHEAD def4567890abc123\nbranch refs/heads/feature-branch\n",
			want: []Worktree{
				{Path: "/home/user/project/.bare", Head: BareHead},
				{Path: "/home/user/project/main", Head: "abc1234567890def", Branch: "refs/heads/main"},
				{Path: "/home/user/project/feature", Head: "def4567890abc123", Branch: "refs/heads/feature-branch"},
			},
		},
		{
			name:   "detached head has no branch",
			output: "worktree /home/user/project/detached\nHEAD abc1234567890def\ndetached\n",
			want: []Worktree{
				{Path: "/home/user/project/detached", Head: "abc1234567890def"},
			},
		},
		{
			name:   "record without head is dropped",
			output: "worktree /p/broken\nbranch refs/heads/x\n\nworktree /p/ok\nHEAD 123\n",
			want: []Worktree{
				{Path: "/p/ok", Head: "123"},
			},
		},
		{
			name:   "branch does not leak into next record",
			output: "worktree /p/a\nHEAD 1\nbranch refs/heads/a\nworktree /p/b\nHEAD 2\n",
			want: []Worktree{
				{Path: "/p/a", Head: "1", Branch: "refs/heads/a"},
				{Path: "/p/b", Head: "2"},
			},
		},
		{
			name:   "path with spaces",
			output: "worktree /home/user/my project/main\nHEAD 42\n",
			want: []Worktree{
				{Path: "/home/user/my project/main", Head: "42"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseWorktreeList(tt.output))
		})
	}
}

func TestParseWorktreeList_BareExcludedFromLookups(t *testing.T) {
	t.Parallel()

	out := "worktree /r/.bare\nbare\n\n" +
		"worktree /r/main\nHEAD a\nbranch refs/heads/main\n\n" +
		"worktree /r/feat\nHEAD b\nbranch refs/heads/feat\n"

	worktrees := ParseWorktreeList(out)
	require.Len(t, worktrees, 3)

	assert.Equal(t, []string{"main", "feat"}, Names(worktrees))

	_, ok := FindWorktree(worktrees, ".bare")
	assert.False(t, ok, "bare entry must not be addressable by name")

	wt, ok := FindWorktree(worktrees, "feat")
	require.True(t, ok)
	assert.Equal(t, "/r/feat", wt.Path)
	assert.Equal(t, "feat", wt.ShortBranch())
}

func TestWorktree_Accessors(t *testing.T) {
	t.Parallel()

	wt := Worktree{Path: "/hub/feature-x", Head: "abc", Branch: "refs/heads/feature/x"}
	assert.Equal(t, "feature-x", wt.Name())
	assert.Equal(t, "feature/x", wt.ShortBranch())
	assert.False(t, wt.IsBare())
	assert.True(t, Worktree{Path: "/hub/.bare", Head: BareHead}.IsBare())
}

func TestListWorktrees(t *testing.T) {
	t.Parallel()

	fake := gittest.New().On("worktree list --porcelain",
		"worktree /r/.bare\nbare\n\nworktree /r/main\nHEAD abc123\nbranch refs/heads/main", nil)

	worktrees, err := ListWorktrees(context.Background(), fake, "/r")
	require.NoError(t, err)
	require.Len(t, worktrees, 2)
	assert.True(t, worktrees[0].IsBare())
	assert.Equal(t, "main", worktrees[1].Name())

	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "/r", fake.Calls[0].Dir)
}

func TestListWorktrees_GatewayFailure(t *testing.T) {
	t.Parallel()

	failure := &cmd.ExitError{Name: "git", Code: 128, Stderr: "fatal: not a git repository"}
	fake := gittest.New().On("worktree list", "", failure)

	_, err := ListWorktrees(context.Background(), fake, "/r")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal: not a git repository")

	var exitErr *cmd.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestCurrentWorktreeName(t *testing.T) {
	t.Parallel()

	hub := resolveTempDir(t)
	for _, dir := range []string{"main/src/pkg", "main-2", "feature"} {
		require.NoError(t, os.MkdirAll(filepath.Join(hub, dir), 0o755))
	}

	listing := "worktree " + filepath.Join(hub, ".bare") + "\nbare\n\n" +
		"worktree " + filepath.Join(hub, "main") + "\nHEAD 1\nbranch refs/heads/main\n\n" +
		"worktree " + filepath.Join(hub, "main-2") + "\nHEAD 2\nbranch refs/heads/main-2\n\n" +
		"worktree " + filepath.Join(hub, "feature") + "\nHEAD 3\n"
	fake := gittest.New().On("worktree list --porcelain", listing, nil)

	tests := []struct {
		name string
		cwd  string
		want string
	}{
		{"worktree root", filepath.Join(hub, "main"), "main"},
		{"nested directory", filepath.Join(hub, "main", "src", "pkg"), "main"},
		{"sibling with shared prefix", filepath.Join(hub, "main-2"), "main-2"},
		{"detached worktree", filepath.Join(hub, "feature"), "feature"},
		{"hub root", hub, ""},
		{"outside hub", t.TempDir(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentWorktreeName(context.Background(), fake, hub, tt.cwd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestNames(t *testing.T) {
	t.Parallel()

	worktrees := []Worktree{
		{Path: "/r/.bare", Head: BareHead},
		{Path: "/r/main", Head: "1"},
		{Path: "/r/feature-login", Head: "2"},
		{Path: "/r/feature-logout", Head: "3"},
	}

	got := SuggestNames(worktrees, "login")
	require.NotEmpty(t, got)
	assert.Equal(t, "feature-login", got[0])
	assert.NotContains(t, SuggestNames(worktrees, "bare"), ".bare")
}

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return resolved
}
