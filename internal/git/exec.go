package git

import (
	"context"
	"strings"

	"github.com/imqdee/wtree/internal/cmd"
)

// Runner executes git with the given arguments in dir and returns its
// trimmed stdout. A non-zero exit is reported as [*cmd.ExitError], a
// failure to start git at all as [*cmd.LaunchError].
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// CLI is the Runner backed by the git binary on PATH.
type CLI struct {
	// Binary overrides the executable name. Empty means "git".
	Binary string
}

// Run implements Runner.
func (c CLI) Run(ctx context.Context, dir string, args ...string) (string, error) {
	bin := c.Binary
	if bin == "" {
		bin = "git"
	}
	out, err := cmd.OutputContext(ctx, "", bin, gitArgs(dir, args)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

type runnerKey struct{}

// WithRunner attaches a Runner to the context.
func WithRunner(ctx context.Context, r Runner) context.Context {
	return context.WithValue(ctx, runnerKey{}, r)
}

// RunnerFromContext returns the Runner attached to ctx, or CLI{} if none is.
func RunnerFromContext(ctx context.Context) Runner {
	if r, ok := ctx.Value(runnerKey{}).(Runner); ok {
		return r
	}
	return CLI{}
}
