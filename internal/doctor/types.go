package doctor

// IssueCategory groups issues by what they concern.
type IssueCategory string

const (
	// CategoryHub represents problems with the hub layout or its config.
	CategoryHub IssueCategory = "hub"
	// CategoryGit represents problems git itself can repair.
	CategoryGit IssueCategory = "git"
	// CategoryState represents a stale previous-worktree pointer.
	CategoryState IssueCategory = "state"
)

// FixAction names the repair --fix applies.
type FixAction string

const (
	FixNone       FixAction = ""
	FixGitFile    FixAction = "write_gitfile"
	FixRefspec    FixAction = "set_refspec"
	FixPrune      FixAction = "prune"
	FixRepair     FixAction = "repair"
	FixClearState FixAction = "clear_state"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // worktree name or hub entry
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
	Path        string        // worktree path for repair
}
