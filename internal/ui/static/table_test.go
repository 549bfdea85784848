package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderTable([]string{"COMMAND"}, nil))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	t.Parallel()

	got := ansi.Strip(RenderTable(
		[]string{"COMMAND", "PHASE", "HOOK"},
		[][]string{
			{"create", "pre", "echo hi"},
			{"remove", "post", "./cleanup.sh"},
		},
	))
	require.True(t, strings.HasSuffix(got, "\n"))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3, got)

	for i, want := range []string{"COMMAND", "create", "remove"} {
		assert.True(t, strings.HasPrefix(lines[i], want), "line %d = %q", i, lines[i])
	}
	assert.Equal(t, strings.Index(lines[0], "HOOK"), strings.Index(lines[1], "echo hi"))
	assert.Equal(t, strings.Index(lines[1], "echo hi"), strings.Index(lines[2], "./cleanup.sh"))
}
