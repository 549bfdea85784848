package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/format"
	"github.com/imqdee/wtree/internal/git"
	"github.com/imqdee/wtree/internal/log"
	"github.com/imqdee/wtree/internal/output"
)

var errRepoName = errors.New("Cannot extract repository name from URL")

func newCloneCmd() *cobra.Command {
	var doSw bool

	cmd := &cobra.Command{
		Use:     "clone <url>",
		Short:   "Clone a repository as a bare hub",
		GroupID: GroupSetup,
		Args:    cobra.ExactArgs(1),
		Long: `Clone a repository into <name>/.bare and set it up for worktrees.

The directory name is taken from the URL. After cloning, the fetch refspec
is configured so 'git fetch' updates every remote branch, and a worktree is
created for the default branch.`,
		Example: `  wt clone git@github.com:user/project.git
  wt clone https://github.com/user/project -s   # and cd into the default branch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			r := git.RunnerFromContext(ctx)

			url := args[0]
			name, err := extractRepoName(url)
			if err != nil {
				return err
			}

			workDir := config.WorkDirFromContext(ctx)
			hub := filepath.Join(workDir, name)
			if _, err := os.Stat(hub); err == nil {
				return fmt.Errorf("Directory '%s' already exists", name)
			}

			if !doSw {
				out.Printf("Cloning %s into %s/\n", url, name)
			}

			if err := os.Mkdir(hub, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", name, err)
			}

			if err := git.CloneBare(ctx, r, workDir, url, filepath.Join(hub, git.BareDir)); err != nil {
				os.RemoveAll(hub)
				return fmt.Errorf("Failed to clone repository: %w", err)
			}

			if err := os.WriteFile(filepath.Join(hub, git.GitFile), []byte("gitdir: ./"+git.BareDir+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", git.GitFile, err)
			}

			if err := git.ConfigureFetch(ctx, r, hub); err != nil {
				l.Warnf("Failed to configure fetch refspec: %v", err)
			}

			branch, ok := git.DefaultBranch(ctx, r, hub)
			if !ok {
				if doSw {
					out.Println(hub)
					return nil
				}
				out.Successf("Created bare repository at %s/", name)
				out.Printf("Use 'cd %s' then 'wt create <name>' to create a worktree\n", name)
				return nil
			}

			// release/v2 becomes release-v2, directly below the hub
			wtName := format.SanitizeForPath(branch)
			if err := git.AddWorktree(ctx, r, hub, wtName, git.AddWorktreeOptions{Branch: branch}); err != nil {
				l.Warnf("Failed to create default branch worktree: %v", err)
				if doSw {
					out.Println(hub)
					return nil
				}
				out.Successf("Created bare repository at %s/", name)
				out.Printf("Use 'cd %s' then 'wt create <name>' to create a worktree\n", name)
				return nil
			}

			if doSw {
				out.Println(filepath.Join(hub, wtName))
				return nil
			}
			out.Successf("Created bare repository at %s/", name)
			out.Successf("Created worktree '%s' at %s/%s/", wtName, name, wtName)
			out.Printf("Use 'cd %s/%s' to start working\n", name, wtName)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&doSw, "switch", "s", false, "Print only the worktree path so the shell wrapper can cd into it")

	return cmd
}

// extractRepoName derives the hub directory name from a clone URL:
// https://github.com/user/my-repo.git and git@github.com:user/my-repo.git
// both give my-repo.
func extractRepoName(url string) (string, error) {
	url = strings.TrimRight(url, "/")
	name := url[strings.LastIndexAny(url, "/:")+1:]
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "", errRepoName
	}
	return name, nil
}
