package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// BareHead is the Head value of the registry entry for the hub's bare store.
const BareHead = "(bare)"

// Worktree is one entry of `git worktree list --porcelain`.
type Worktree struct {
	Path   string // absolute path
	Head   string // commit SHA, or BareHead
	Branch string // full ref (refs/heads/...), empty when detached
}

// Name is the worktree's user-facing identity: the last path segment.
func (w Worktree) Name() string {
	return filepath.Base(w.Path)
}

// IsBare reports whether w is the hub's bare store.
func (w Worktree) IsBare() bool {
	return w.Head == BareHead
}

// ShortBranch returns the branch without its refs/heads/ prefix.
func (w Worktree) ShortBranch() string {
	return strings.TrimPrefix(w.Branch, "refs/heads/")
}

// ParseWorktreeList parses porcelain worktree listing output.
//
// A "worktree <path>" line starts a record, "HEAD <sha>" and "branch <ref>"
// fill it in and a bare "bare" line sets Head to BareHead. Records are
// emitted in input order once they have both a path and a head; records
// missing a head are dropped.
func ParseWorktreeList(output string) []Worktree {
	var (
		worktrees []Worktree
		current   Worktree
	)

	flush := func() {
		if current.Path != "" && current.Head != "" {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(line, "branch ")
		case line == "bare":
			current.Head = BareHead
		}
	}
	flush()

	return worktrees
}

// ListWorktrees returns every worktree registered with the hub, bare entry
// included. Nothing is cached; each call asks git again.
func ListWorktrees(ctx context.Context, r Runner, hubRoot string) ([]Worktree, error) {
	out, err := r.Run(ctx, hubRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("list worktrees: %w", err)
	}
	return ParseWorktreeList(out), nil
}

// FindWorktree returns the non-bare worktree called name.
func FindWorktree(worktrees []Worktree, name string) (Worktree, bool) {
	for _, wt := range worktrees {
		if !wt.IsBare() && wt.Name() == name {
			return wt, true
		}
	}
	return Worktree{}, false
}

// Names returns the names of all non-bare worktrees in order.
func Names(worktrees []Worktree) []string {
	var names []string
	for _, wt := range worktrees {
		if !wt.IsBare() {
			names = append(names, wt.Name())
		}
	}
	return names
}

// CurrentWorktreeName returns the name of the worktree containing cwd, or
// "" when cwd is outside every worktree (the hub root, for instance).
func CurrentWorktreeName(ctx context.Context, r Runner, hubRoot, cwd string) (string, error) {
	worktrees, err := ListWorktrees(ctx, r, hubRoot)
	if err != nil {
		return "", err
	}
	return containingWorktree(worktrees, cwd), nil
}

func containingWorktree(worktrees []Worktree, cwd string) string {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return ""
	}
	dir = canonical(dir)

	for _, wt := range worktrees {
		if wt.IsBare() {
			continue
		}
		if within(dir, canonical(wt.Path)) {
			return wt.Name()
		}
	}
	return ""
}

// within reports whether path equals root or lies below it, comparing
// whole path segments.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// SuggestNames returns worktree names that fuzzily match name, best first.
func SuggestNames(worktrees []Worktree, name string) []string {
	names := Names(worktrees)
	var suggestions []string
	for _, m := range fuzzy.Find(name, names) {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == 3 {
			break
		}
	}
	return suggestions
}
