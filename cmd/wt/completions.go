package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/git"
)

// completeWorktreeNames completes non-bare worktree names of the current
// hub. Names already given on the command line are left out.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()

	hub, err := hubRoot(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	worktrees, err := git.ListWorktrees(ctx, git.RunnerFromContext(ctx), hub)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range git.Names(worktrees) {
		if strings.HasPrefix(name, toComplete) && !slices.Contains(args, name) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
