package main

import (
	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/doctor"
	"github.com/imqdee/wtree/internal/git"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair hub issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose and repair issues in the current hub.

Checks:
- .git at the hub root points at ./.bare
- .wtree/hooks.toml parses
- the origin fetch refspec is configured
- every registered worktree exists and is linked to the bare repository
- the previous worktree for 'wt switch -' still exists`,
		Example: `  wt doctor          # check for issues
  wt doctor --fix    # repair what can be repaired`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}
			return doctor.Run(ctx, git.RunnerFromContext(ctx), hub, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair the issues found")

	return cmd
}
