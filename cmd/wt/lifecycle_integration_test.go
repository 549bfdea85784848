//go:build integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLifecycle_CloneCreateSwitchRemove walks through a whole session.
//
// Scenario: User clones, creates a worktree, switches there and back, removes it
// Expected: Each step prints what the shell wrapper and the user expect
func TestLifecycle_CloneCreateSwitchRemove(t *testing.T) {
	// Don't run in parallel - changes HOME and the working directory

	hub := setupHub(t)
	testcli.Chdir(t, hub)

	exitCode, stdout, stderr := wt(t, "list")
	require.Equal(t, 0, exitCode, stderr)
	assert.Equal(t, "main [main]\n", stdout)

	exitCode, _, stderr = wt(t, "create", "feature")
	require.Equal(t, 0, exitCode, stderr)
	assert.FileExists(t, filepath.Join(hub, "feature", "README"))

	testcli.Chdir(t, filepath.Join(hub, "main"))
	exitCode, stdout, stderr = wt(t, "switch", "feature")
	require.Equal(t, 0, exitCode, stderr)
	assert.Equal(t, filepath.Join(hub, "feature")+"\n", stdout)

	testcli.Chdir(t, filepath.Join(hub, "feature"))
	exitCode, stdout, stderr = wt(t, "switch", "-")
	require.Equal(t, 0, exitCode, stderr)
	assert.Equal(t, filepath.Join(hub, "main")+"\n", stdout)

	testcli.Chdir(t, hub)
	exitCode, stdout, stderr = wt(t, "remove", "feature")
	require.Equal(t, 0, exitCode, stderr)
	assert.Equal(t, "Removed worktree 'feature'\n", stdout)
	assert.NoDirExists(t, filepath.Join(hub, "feature"))
}

// TestLifecycle_Hooks tests hooks against real worktrees.
//
// Scenario: hooks.toml has a create post-hook and a remove pre-hook guarding main
// Expected: The post-hook runs inside the new worktree; main survives `wt rm main hotfix`
func TestLifecycle_Hooks(t *testing.T) {
	// Don't run in parallel - changes HOME and the working directory

	hub := setupHub(t)
	testcli.Chdir(t, hub)

	require.NoError(t, os.MkdirAll(filepath.Join(hub, ".wtree"), 0o755))
	testcli.WriteFile(t, ".wtree/hooks.toml", []byte(`[create]
post = ["echo \"$WT_COMMAND $WT_WORKTREE_NAME $WT_BRANCH\" > hook.out"]

[remove]
pre = ["test \"$WT_WORKTREE_NAME\" != main"]
`))

	// main is already checked out in the main worktree
	exitCode, _, stderr := wt(t, "create", "review", "-b", "main")
	require.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "main")

	exitCode, _, stderr = wt(t, "create", "hotfix", "--base", "main")
	require.Equal(t, 0, exitCode, stderr)

	out, err := os.ReadFile(filepath.Join(hub, "hotfix", "hook.out"))
	require.NoError(t, err)
	assert.Equal(t, "create hotfix hotfix\n", string(out))

	exitCode, stdout, stderr := wt(t, "remove", "main", "hotfix", "-f")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Removed worktree 'hotfix'\n", stdout)
	assert.Contains(t, stderr, "failed to remove 1 worktree(s):\n  main: Pre-hook")
	assert.DirExists(t, filepath.Join(hub, "main"))
}

// TestLifecycle_RemoveDirtyNeedsForce tests git's safety check on remove.
//
// Scenario: User runs `wt rm scratch` with an untracked file in scratch
// Expected: Removal fails until --force is given
func TestLifecycle_RemoveDirtyNeedsForce(t *testing.T) {
	// Don't run in parallel - changes HOME and the working directory

	hub := setupHub(t)
	testcli.Chdir(t, hub)

	exitCode, _, stderr := wt(t, "create", "scratch")
	require.Equal(t, 0, exitCode, stderr)
	require.NoError(t, os.WriteFile(filepath.Join(hub, "scratch", "untracked"), []byte("x"), 0o644))

	exitCode, _, stderr = wt(t, "remove", "scratch")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "scratch:")
	assert.DirExists(t, filepath.Join(hub, "scratch"))

	exitCode, _, stderr = wt(t, "rm", "scratch", "--force")
	require.Equal(t, 0, exitCode, stderr)
	assert.NoDirExists(t, filepath.Join(hub, "scratch"))
}

// TestLifecycle_OutsideHub tests commands run outside any hub.
//
// Scenario: User runs `wt list` in a plain directory
// Expected: A discovery error and exit code 1
func TestLifecycle_OutsideHub(t *testing.T) {
	// Don't run in parallel - changes HOME and the working directory

	setupGit(t)
	testcli.Chdir(t, resolvedTemp(t))

	exitCode, stdout, stderr := wt(t, "list")
	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not inside a wtree repository")
}
