package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/git/gittest"
)

// harness is a hub on disk whose git is a recording fake.
type harness struct {
	t   *testing.T
	hub string
	git *gittest.Fake
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	hub := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(hub, git.BareDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hub, git.GitFile), []byte("gitdir: ./.bare\n"), 0o644))

	return &harness{t: t, hub: hub, git: gittest.New()}
}

// worktrees creates the named worktree directories and makes the fake
// list them, each on a branch of the same name.
func (h *harness) worktrees(names ...string) {
	h.t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "worktree %s\nbare\n", filepath.Join(h.hub, git.BareDir))
	for i, name := range names {
		path := filepath.Join(h.hub, name)
		require.NoError(h.t, os.MkdirAll(path, 0o755))
		fmt.Fprintf(&b, "\nworktree %s\nHEAD %040d\nbranch refs/heads/%s\n", path, i+1, name)
	}
	h.git.On("worktree list --porcelain", b.String(), nil)
}

func (h *harness) hooks(content string) {
	h.t.Helper()
	require.NoError(h.t, os.MkdirAll(config.MetaDir(h.hub), 0o755))
	require.NoError(h.t, os.WriteFile(config.HooksPath(h.hub), []byte(content), 0o644))
}

func (h *harness) path(name string) string {
	return filepath.Join(h.hub, name)
}

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes wt with args as if started in dir.
func (h *harness) run(dir string, args ...string) result {
	h.t.Helper()

	ctx := git.WithRunner(context.Background(), h.git)
	ctx = config.WithWorkDir(ctx, dir)

	var stdout, stderr bytes.Buffer
	code := execute(ctx, args, strings.NewReader(""), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}
