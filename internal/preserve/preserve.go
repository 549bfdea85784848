// Package preserve copies untracked environment files between worktrees.
//
// `wt switch --envs` uses it to carry .env files from the worktree the user
// is leaving into the one they switch to. Files are only ever created,
// never overwritten.
package preserve

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/log"
)

var (
	// EnvPatterns select the files copied by CopyEnvFiles.
	EnvPatterns = []string{".env*"}

	// EnvExclude lists names never copied, even when a pattern matches.
	EnvExclude = []string{".env.example"}
)

// FindSourceWorktree picks the worktree to copy files from when the user
// is not inside one. It prefers the worktree on defaultBranch, falling back
// to the first worktree that isn't the target.
func FindSourceWorktree(worktrees []git.Worktree, defaultBranch, targetPath string) (string, error) {
	for _, wt := range worktrees {
		if !wt.IsBare() && defaultBranch != "" && wt.ShortBranch() == defaultBranch && wt.Path != targetPath {
			return wt.Path, nil
		}
	}

	for _, wt := range worktrees {
		if !wt.IsBare() && wt.Path != targetPath {
			return wt.Path, nil
		}
	}

	return "", errors.New("no source worktree found")
}

// matchesPattern returns true if the file at relPath should be preserved
// based on the given patterns and exclusions.
// Patterns are matched against the file's basename.
// If any path segment matches an exclude entry, the file is skipped.
func matchesPattern(relPath string, patterns, exclude []string) bool {
	for seg := range strings.SplitSeq(filepath.ToSlash(relPath), "/") {
		if slices.Contains(exclude, seg) {
			return false
		}
	}

	base := filepath.Base(relPath)
	for _, pat := range patterns {
		if matched, _ := filepath.Match(pat, base); matched {
			return true
		}
	}

	return false
}

// CopyFile copies src to dst, creating parent directories as needed.
// Uses O_CREATE|O_EXCL to skip files that already exist (never overwrite).
// Preserves the source file's permission bits.
// Returns true if the file was copied, false if it was skipped (already exists).
func CopyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer dstFile.Close()

	srcFile, err := os.Open(src)
	if err != nil {
		os.Remove(dst)
		return false, err
	}
	defer srcFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst)
		return false, err
	}

	return true, nil
}

// CopyEnvFiles copies the .env files at the top level of sourceDir into
// targetDir. Subdirectories are not searched. Returns the names that were
// copied; files already present in targetDir are skipped.
func CopyEnvFiles(ctx context.Context, sourceDir, targetDir string) ([]string, error) {
	l := log.FromContext(ctx)

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, err
	}

	var copied []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !matchesPattern(entry.Name(), EnvPatterns, EnvExclude) {
			continue
		}

		ok, err := CopyFile(filepath.Join(sourceDir, entry.Name()), filepath.Join(targetDir, entry.Name()))
		if err != nil {
			l.Debug("preserve: failed to copy file", "file", entry.Name(), "error", err)
			continue
		}
		if ok {
			copied = append(copied, entry.Name())
		} else {
			l.Debug("preserve: skipped existing file", "file", entry.Name())
		}
	}

	return copied, nil
}
