//go:build integration

package main

import (
	"path/filepath"
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/require"
)

// setupGit points HOME at an empty directory with a minimal git identity.
func setupGit(t *testing.T) {
	dir := testcli.MkdirTemp(t)
	t.Setenv("HOME", dir)
	testcli.Exec(t, "git config --global user.email 'tests@example.com'")
	testcli.Exec(t, "git config --global user.name 'Tests'")
	testcli.Exec(t, "git config --global init.defaultBranch main")
	testcli.Exec(t, "git config --global commit.gpgsign false")
}

// resolvedTemp creates a temp directory with symlinks resolved.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvedTemp(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(testcli.MkdirTemp(t))
	require.NoError(t, err)
	return dir
}

// setupHub clones a one-commit repository with wt clone and returns the
// hub root. The working directory is left in the hub's parent.
func setupHub(t *testing.T) string {
	setupGit(t)

	src := resolvedTemp(t)
	testcli.Chdir(t, src)
	testcli.Exec(t, "git init project")
	testcli.WriteFile(t, "project/README", []byte("hello\n"))
	testcli.Exec(t, "git -C project add README")
	testcli.Exec(t, "git -C project commit -m 'Initial commit'")

	dir := resolvedTemp(t)
	testcli.Chdir(t, dir)

	exitCode, stdout, stderr := wt(t, "clone", filepath.Join(src, "project"), "-s")
	require.Equal(t, 0, exitCode, stderr)

	hub := filepath.Join(dir, "project")
	require.Equal(t, filepath.Join(hub, "main")+"\n", stdout)
	require.DirExists(t, filepath.Join(hub, ".bare"))
	return hub
}

// wt runs the binary's entry point in the current working directory.
func wt(t *testing.T, args ...string) (int, string, string) {
	return testcli.Main(t, append([]string{"wt"}, args...), nil, run)
}
