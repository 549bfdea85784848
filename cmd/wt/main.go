package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/imqdee/wtree/internal/config"
	"github.com/imqdee/wtree/internal/git"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program: it wires the real git binary and the process
// working directory into the context and executes the command line.
// args[0] is the program name.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "wt: failed to get working directory: %v\n", err)
		return 1
	}

	ctx = config.WithWorkDir(ctx, workDir)
	ctx = git.WithRunner(ctx, git.CLI{})
	return execute(ctx, args[1:], stdin, stdout, stderr)
}

// execute runs one command line against whatever runner and working
// directory ctx carries and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("wt %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
