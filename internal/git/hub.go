package git

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	// BareDir is the directory holding the bare repository at the hub root.
	BareDir = ".bare"

	// GitFile is the marker file linking a directory to its git store.
	GitFile = ".git"
)

// ErrNotAWorktreeRepo is returned when no hub root is found above a directory.
var ErrNotAWorktreeRepo = errors.New("not inside a wtree repository (cannot find .bare directory)")

// FindHubRoot walks from start up to the file-system root and returns the
// first directory that anchors a hub:
//
//   - a directory containing a .bare directory, or
//   - a directory whose .git file reads "gitdir: <path>" where the parent
//     of <path> contains a .bare directory.
//
// The first rule makes the hub root itself match; the walk makes any
// directory inside a worktree match too.
func FindHubRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if isDir(filepath.Join(dir, BareDir)) {
			return dir, nil
		}

		if hub, ok := hubFromGitFile(dir); ok {
			return hub, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotAWorktreeRepo
		}
		dir = parent
	}
}

// hubFromGitFile follows dir/.git when it is a regular file pointing at a
// .bare store and returns the store's parent.
func hubFromGitFile(dir string) (string, bool) {
	info, err := os.Stat(filepath.Join(dir, GitFile))
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	gitdir, ok := ReadGitdir(dir)
	if !ok {
		return "", false
	}

	hub := canonical(filepath.Dir(gitdir))
	if !isDir(filepath.Join(hub, BareDir)) {
		return "", false
	}
	return hub, true
}

// ReadGitdir returns the absolute store path that dir/.git points to.
// ok is false when dir/.git is not a readable "gitdir:" file.
func ReadGitdir(dir string) (gitdir string, ok bool) {
	content, err := os.ReadFile(filepath.Join(dir, GitFile))
	if err != nil {
		return "", false
	}
	gitdir, ok = parseGitdir(string(content))
	if !ok {
		return "", false
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(dir, gitdir)
	}
	return filepath.Clean(gitdir), true
}

// parseGitdir extracts <path> from a "gitdir: <path>" line.
// Only the first line is considered.
func parseGitdir(content string) (string, bool) {
	line, _, _ := strings.Cut(content, "\n")
	gitdir, ok := strings.CutPrefix(line, "gitdir: ")
	if !ok {
		return "", false
	}
	gitdir = strings.TrimSpace(gitdir)
	return gitdir, gitdir != ""
}

// canonical resolves symlinks in path, falling back to the cleaned path
// when it cannot be resolved.
func canonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
