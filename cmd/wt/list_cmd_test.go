package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imqdee/wtree/internal/cmd"
)

func TestList(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees("main")

	res := h.run(h.hub, "list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "main [main]\n", res.stdout)
}

func TestList_AlignsBranches(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees("main", "feature-login")

	res := h.run(h.path("main"), "ls")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "main          [main]\nfeature-login [feature-login]\n", res.stdout)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees()

	res := h.run(h.hub, "list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No worktrees found.\n", res.stdout)
}

func TestList_JSON(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees("main", "feature")

	res := h.run(h.hub, "list", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "main", entries[0].Name)
	assert.Equal(t, h.path("main"), entries[0].Path)
	assert.Equal(t, "feature", entries[1].Branch)
}

func TestList_YAML(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees("main")

	res := h.run(h.hub, "list", "--yaml")
	require.Equal(t, 0, res.code, res.stderr)

	var entries []listEntry
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "main", entries[0].Branch)
}

func TestList_JSONAndYAMLConflict(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.worktrees("main")

	res := h.run(h.hub, "list", "--json", "--yaml")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "none of the others can be")
}

func TestList_OutsideHub(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	res := h.run(t.TempDir(), "list")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: not inside a wtree repository")
	assert.Zero(t, h.git.Count(""))
}

func TestList_GitFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.git.On("worktree list", "", &cmd.ExitError{Name: "git", Code: 128, Stderr: "fatal: bad object"})

	res := h.run(h.hub, "list")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "fatal: bad object")
	assert.Empty(t, res.stdout)
}
