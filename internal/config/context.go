package config

import (
	"context"
	"os"
)

type workDirKey struct{}

// WithWorkDir returns a new context carrying the directory wt was started from.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the directory stored by WithWorkDir.
// Falls back to the process working directory if none is stored.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	dir, _ := os.Getwd()
	return dir
}
