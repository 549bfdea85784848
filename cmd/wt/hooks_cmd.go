package main

import (
	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/output"
	"github.com/imqdee/wtree/internal/ui/static"
)

func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hooks",
		Short:   "Show configured hooks",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Show the hooks configured in .wtree/hooks.toml.

Unlike the lifecycle commands, which silently ignore a malformed file,
this command reports parse errors.`,
		Example: `  wt hooks          # show configured hooks
  wt hooks init     # write a commented template`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			cfg, err := config.ReadHooks(hub)
			if err != nil {
				return err
			}
			if cfg.IsEmpty() {
				out.Printf("No hooks configured (%s)\n", config.HooksPath(hub))
				return nil
			}

			out.Print(static.RenderTable([]string{"COMMAND", "PHASE", "HOOK"}, hookRows(cfg)))
			return nil
		},
	}

	cmd.AddCommand(newHooksInitCmd())

	return cmd
}

func newHooksInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a hooks.toml template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hub, err := hubRoot(ctx)
			if err != nil {
				return err
			}

			created, err := config.WriteHooksTemplate(hub)
			if err != nil {
				return err
			}
			if !created {
				out.Printf("%s already exists\n", config.HooksPath(hub))
				return nil
			}
			out.Successf("Created %s", config.HooksPath(hub))
			return nil
		},
	}
}

// hookRows flattens the configuration in execution order.
func hookRows(cfg *config.HooksConfig) [][]string {
	var rows [][]string
	for _, command := range []string{config.CommandCreate, config.CommandSwitch, config.CommandRemove} {
		section := cfg.For(command)
		for _, hook := range section.Pre {
			rows = append(rows, []string{command, "pre", hook})
		}
		for _, hook := range section.Post {
			rows = append(rows, []string{command, "post", hook})
		}
	}
	return rows
}
