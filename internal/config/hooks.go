package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/imqdee/wtree/internal/log"
)

// Lifecycle commands that have a hooks section.
const (
	CommandCreate = "create"
	CommandSwitch = "switch"
	CommandRemove = "remove"
)

// CommandHooks holds the shell commands run around one lifecycle command.
type CommandHooks struct {
	Pre  []string `toml:"pre" json:"pre,omitempty" yaml:"pre,omitempty"`
	Post []string `toml:"post" json:"post,omitempty" yaml:"post,omitempty"`
}

// IsEmpty reports whether no hooks are configured.
func (h CommandHooks) IsEmpty() bool {
	return len(h.Pre) == 0 && len(h.Post) == 0
}

// HooksConfig is the content of .wtree/hooks.toml.
type HooksConfig struct {
	Create CommandHooks `toml:"create" json:"create" yaml:"create"`
	Switch CommandHooks `toml:"switch" json:"switch" yaml:"switch"`
	Remove CommandHooks `toml:"remove" json:"remove" yaml:"remove"`
}

// For returns the section for command. Only create, switch and remove
// build hook contexts, so the create fallback is never reached in practice.
func (c *HooksConfig) For(command string) CommandHooks {
	if c == nil {
		return CommandHooks{}
	}
	switch command {
	case CommandSwitch:
		return c.Switch
	case CommandRemove:
		return c.Remove
	default:
		return c.Create
	}
}

// IsEmpty reports whether no section has any hook.
func (c *HooksConfig) IsEmpty() bool {
	return c == nil || (c.Create.IsEmpty() && c.Switch.IsEmpty() && c.Remove.IsEmpty())
}

// ReadHooks reads <hubRoot>/.wtree/hooks.toml.
// Returns nil (no error) if the file doesn't exist.
// Returns an error on read or parse failure.
func ReadHooks(hubRoot string) (*HooksConfig, error) {
	path := HooksPath(hubRoot)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config %s: %w", path, err)
	}

	var cfg HooksConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadHooks is ReadHooks with failures turned into "no hooks".
// Errors only show up as debug output.
func LoadHooks(ctx context.Context, hubRoot string) *HooksConfig {
	cfg, err := ReadHooks(hubRoot)
	if err != nil {
		log.FromContext(ctx).Debug("ignoring hooks config", "error", err)
		return nil
	}
	return cfg
}

const hooksTemplate = `# wt hooks
# Shell commands run around worktree lifecycle commands. Each command runs
# through "sh -c" with these variables set:
#
#   WT_COMMAND        create, switch or remove
#   WT_WORKTREE_NAME  target worktree name
#   WT_WORKTREE_PATH  target worktree path
#   WT_HUB_ROOT       directory containing .bare
#   WT_BRANCH         branch name, when known
#
# Pre-hooks run in the hub root; a failing pre-hook aborts the command.
# Post-hooks run in the worktree (or the hub root when it is gone); a
# failing post-hook only prints a warning.

[create]
# pre = []
# post = ["npm install"]

[switch]
# pre = []
# post = []

[remove]
# pre = []
# post = []
`

// HooksTemplate returns the template written by "wt hooks init".
func HooksTemplate() string {
	return hooksTemplate
}

// WriteHooksTemplate creates hooks.toml from the template.
// Returns false without touching anything if the file already exists.
func WriteHooksTemplate(hubRoot string) (bool, error) {
	path := HooksPath(hubRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create %s: %w", MetaDirName, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create hooks config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(hooksTemplate); err != nil {
		return false, fmt.Errorf("write hooks config: %w", err)
	}
	return true, nil
}
