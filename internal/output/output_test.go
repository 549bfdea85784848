package output

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imqdee/wtree/internal/ui/styles"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))
	require.NotNil(t, p)
	assert.Same(t, &buf, p.Writer())

	def := FromContext(context.Background())
	assert.Equal(t, os.Stdout, def.Writer())
}

func TestPrinter_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Print("a", "b")
	p.Printf(" %d", 1)
	p.Println()
	p.Println("/hub/main")
	assert.Equal(t, "ab 1\n/hub/main\n", buf.String())
}

func TestPrinter_StyledIsPlainWhenNotATerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)
	p.Successf("Created worktree '%s'", "feat")
	p.Styledf(styles.AccentStyle, "%s", "accent")

	assert.Equal(t, "Created worktree 'feat'\naccent\n", buf.String())
	assert.False(t, p.IsTerminal())
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).JSON([]map[string]string{{"name": "main"}}))
	assert.Equal(t, "[\n  {\n    \"name\": \"main\"\n  }\n]\n", buf.String())
}

func TestPrinter_YAML(t *testing.T) {
	t.Parallel()

	type entry struct {
		Name   string `yaml:"name"`
		Branch string `yaml:"branch,omitempty"`
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf).YAML([]entry{{Name: "main", Branch: "main"}, {Name: "detached"}}))
	assert.Equal(t, "- name: main\n  branch: main\n- name: detached\n", buf.String())
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}
