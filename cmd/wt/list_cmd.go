package main

import (
	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/format"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/output"
)

// listEntry is the machine-readable form of a worktree.
type listEntry struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Head   string `json:"head" yaml:"head"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

func newListCmd() *cobra.Command {
	var (
		asJSON bool
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the worktrees of the current hub with their branch.

Detached worktrees show the abbreviated commit instead of a branch.`,
		Example: `  wt list          # name [branch] per line
  wt ls --json     # for scripts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, git.RunnerFromContext(ctx), hub)
			if err != nil {
				return err
			}

			if asJSON || asYAML {
				entries := []listEntry{}
				for _, wt := range worktrees {
					if wt.IsBare() {
						continue
					}
					entries = append(entries, listEntry{
						Name:   wt.Name(),
						Path:   wt.Path,
						Head:   wt.Head,
						Branch: wt.ShortBranch(),
					})
				}
				if asJSON {
					return out.JSON(entries)
				}
				return out.YAML(entries)
			}

			lines := format.ListLines(worktrees)
			if len(lines) == 0 {
				out.Println("No worktrees found.")
				return nil
			}
			for _, line := range lines {
				out.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
