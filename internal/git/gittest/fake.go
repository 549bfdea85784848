// Package gittest provides a recording git.Runner for tests.
package gittest

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Args []string
}

// Line returns the arguments joined by spaces, e.g. "worktree add main".
func (c Call) Line() string {
	return strings.Join(c.Args, " ")
}

// Response is what the fake returns for a matching invocation.
type Response struct {
	Out string
	Err error
}

// Fake records every call and answers from Responses, keyed by the
// space-joined argument list. Prefix matches are tried when there is no
// exact key, longest prefix first. Unmatched calls succeed with no output.
type Fake struct {
	mu        sync.Mutex
	Responses map[string]Response
	Calls     []Call
}

// New returns a Fake with no canned responses.
func New() *Fake {
	return &Fake{Responses: make(map[string]Response)}
}

// On registers a response for an argument line or prefix.
func (f *Fake) On(args string, out string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[args] = Response{Out: out, Err: err}
	return f
}

// Run implements git.Runner.
func (f *Fake) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Dir: dir, Args: append([]string(nil), args...)}
	f.Calls = append(f.Calls, call)

	line := call.Line()
	if resp, ok := f.Responses[line]; ok {
		return resp.Out, resp.Err
	}

	best := -1
	var resp Response
	for key, r := range f.Responses {
		if strings.HasPrefix(line, key) && len(key) > best {
			best = len(key)
			resp = r
		}
	}
	return resp.Out, resp.Err
}

// Count returns how many recorded calls start with prefix.
func (f *Fake) Count(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c.Line(), prefix) {
			n++
		}
	}
	return n
}
