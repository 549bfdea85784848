// Package cmd runs external programs and turns their failures into errors
// that carry the program's stderr.
//
// Two failure shapes are distinguished:
//
//   - [*ExitError]: the program ran and exited non-zero. Its message is the
//     trimmed stderr, which is usually what git printed for the user.
//   - [*LaunchError]: the program could not be started (missing binary,
//     bad working directory).
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, hubRoot, "git", "worktree", "list", "--porcelain")
//	if err != nil {
//	    var exitErr *cmd.ExitError
//	    if errors.As(err, &exitErr) {
//	        // exitErr.Stderr holds git's message
//	    }
//	}
//
// Every call made through the context variants is traced by the context
// logger when --verbose is set.
package cmd
