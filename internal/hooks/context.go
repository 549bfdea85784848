package hooks

// Environment variable names exported to hook processes.
const (
	EnvCommand      = "WT_COMMAND"
	EnvWorktreeName = "WT_WORKTREE_NAME"
	EnvWorktreePath = "WT_WORKTREE_PATH"
	EnvHubRoot      = "WT_HUB_ROOT"
	EnvBranch       = "WT_BRANCH"
)

// Context describes the lifecycle operation hooks run for.
// It is built once with NewContext and never changes afterwards.
type Context struct {
	command      string
	worktreeName string
	worktreePath string
	hubRoot      string
	branch       string
}

// NewContext returns the hook context for command acting on the worktree
// name at path. An empty branch means the branch is unknown.
func NewContext(command, name, path, hubRoot, branch string) Context {
	return Context{
		command:      command,
		worktreeName: name,
		worktreePath: path,
		hubRoot:      hubRoot,
		branch:       branch,
	}
}

func (c Context) Command() string      { return c.command }
func (c Context) WorktreeName() string { return c.worktreeName }
func (c Context) WorktreePath() string { return c.worktreePath }
func (c Context) HubRoot() string      { return c.hubRoot }

// Branch returns the branch and whether one is set.
func (c Context) Branch() (string, bool) {
	return c.branch, c.branch != ""
}

// Env returns the WT_* variables as KEY=VALUE pairs.
// WT_BRANCH is only included when a branch is set.
func (c Context) Env() []string {
	env := []string{
		EnvCommand + "=" + c.command,
		EnvWorktreeName + "=" + c.worktreeName,
		EnvWorktreePath + "=" + c.worktreePath,
		EnvHubRoot + "=" + c.hubRoot,
	}
	if branch, ok := c.Branch(); ok {
		env = append(env, EnvBranch+"="+branch)
	}
	return env
}
