package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/format"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/hooks"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/output"
)

func newCreateCmd() *cobra.Command {
	var (
		branch string
		base   string
		doSw   bool
	)

	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a new worktree",
		Aliases: []string{"c"},
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree directory <name> in the hub.

Without flags git checks out HEAD on a new branch named after the worktree.
--branch checks out an existing branch instead. --base starts a new branch
<name> at the commit another worktree is on.

Pre-hooks from .wtree/hooks.toml run first; if one fails nothing is created.`,
		Example: `  wt create feature-x                 # new branch feature-x from HEAD
  wt create review -b feature/login   # check out an existing branch
  wt create hotfix --base main        # branch off the main worktree
  wt create feature-x -s              # create and cd into it (needs wt init)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			r := git.RunnerFromContext(ctx)

			name := args[0]
			if err := validateWorktreeName(name); err != nil {
				return err
			}

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, r, hub)
			if err != nil {
				return err
			}
			if _, exists := git.FindWorktree(worktrees, name); exists {
				return fmt.Errorf("Worktree '%s' already exists", name)
			}

			var (
				opts       git.AddWorktreeOptions
				hookBranch string
			)
			switch {
			case base != "":
				source, ok := git.FindWorktree(worktrees, base)
				if !ok {
					return fmt.Errorf("Worktree '%s' not found", base)
				}
				opts = git.AddWorktreeOptions{NewBranch: name, StartPoint: source.Head}
				hookBranch = name
			case branch != "":
				opts = git.AddWorktreeOptions{Branch: branch}
				hookBranch = branch
			}

			path := filepath.Join(hub, name)
			cfg := config.LoadHooks(ctx, hub)
			hc := hooks.NewContext(config.CommandCreate, name, path, hub, hookBranch)

			if err := hooks.RunPre(ctx, cfg, hc); err != nil {
				return err
			}

			l.Debug("creating worktree", "name", name, "branch", branch, "base", base)
			if err := git.AddWorktree(ctx, r, hub, name, opts); err != nil {
				return err
			}

			hooks.RunPost(ctx, cfg, hc)

			if doSw {
				if err := rememberCurrent(ctx, hub, name); err != nil {
					return err
				}
				out.Println(path)
				return nil
			}

			out.Successf("Created worktree '%s' at %s", name, path)
			switch {
			case base != "":
				out.Printf("Branched from worktree: %s\n", base)
			case branch != "":
				out.Printf("Checked out branch: %s\n", branch)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Check out an existing branch")
	cmd.Flags().StringVar(&base, "base", "", "Start a new branch at another worktree's commit")
	cmd.Flags().BoolVarP(&doSw, "switch", "s", false, "Print only the path so the shell wrapper can cd into it")
	cmd.MarkFlagsMutuallyExclusive("branch", "base")

	cmd.RegisterFlagCompletionFunc("base", completeWorktreeNames)

	return cmd
}

// validateWorktreeName rejects names that would not be a direct child
// directory of the hub.
func validateWorktreeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("worktree name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid worktree name %q: must not contain a path separator (try %q)", name, format.SanitizeForPath(name))
	}
	if name == "." || name == ".." || slices.Contains(reservedNames, name) {
		return fmt.Errorf("invalid worktree name %q: reserved", name)
	}
	return nil
}
