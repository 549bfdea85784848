// Package state tracks the previously active worktree of a hub.
// This enables `wt switch -` to toggle between the last two worktrees.
//
// The pointer lives in <hub>/.wtree/state as a single "previous=<name>"
// line. Every save overwrites the whole file; there is no history and no
// locking, so concurrent switches in the same hub are last-writer-wins.
package state

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/imqdee/wtree/internal/config"
)

const previousKey = "previous="

var (
	// ErrRead wraps failures reading an existing state file.
	ErrRead = errors.New("failed to read state file")

	// ErrWrite wraps failures creating or writing the state file.
	ErrWrite = errors.New("failed to write state file")
)

// ReadPrevious returns the name of the previously active worktree.
// Returns "" (no error) if the file is missing or holds no non-empty
// previous value.
func ReadPrevious(hubRoot string) (string, error) {
	f, err := os.Open(config.StatePath(hubRoot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		value, ok := strings.CutPrefix(scanner.Text(), previousKey)
		if !ok {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			return value, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return "", nil
}

// SavePrevious records name as the previously active worktree,
// creating the metadata directory if needed. The file is written to a
// temp file and renamed, so readers never see a partial line.
func SavePrevious(hubRoot, name string) error {
	dir := config.MetaDir(hubRoot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	f, err := os.CreateTemp(dir, config.StateFileName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tempPath := f.Name()

	_, err = f.WriteString(previousKey + name + "\n")
	if err == nil {
		err = f.Chmod(0o644)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tempPath, config.StatePath(hubRoot))
	}
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// ClearPrevious forgets the previously active worktree.
// A missing state file is not an error.
func ClearPrevious(hubRoot string) error {
	if err := os.Remove(config.StatePath(hubRoot)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
