package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("my-project", nil))
}

func TestRenderFileTree_Structure(t *testing.T) {
	out := stripAnsi(RenderFileTree("my-project", map[string]string{
		"Makefile":                    "Build targets",
		".github/workflows/main.yml":  "CI workflow",
		".github/workflows/other.yml": "",
		"README.md":                   "",
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "my-project/", lines[0])
	// directories sort before files
	assert.Equal(t, "├── .github/", lines[1])
	assert.Equal(t, "│   └── workflows/", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "│       ├── main.yml"))
	assert.Contains(t, lines[3], "CI workflow")
	assert.Equal(t, "│       └── other.yml", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "├── Makefile"))
	assert.Equal(t, "└── README.md", lines[6])
}

func TestRenderFileTree_DescriptionAlignment(t *testing.T) {
	out := stripAnsi(RenderFileTree("p", map[string]string{
		"a":     "first",
		"bbbbb": "second",
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, strings.Index(lines[1], "first"), strings.Index(lines[2], "second"))
}

func TestRenderSimpleTree(t *testing.T) {
	out := stripAnsi(RenderSimpleTree("p", []string{"docs/index.md", "mkdocs.yml"}))
	assert.Contains(t, out, "docs/")
	assert.Contains(t, out, "index.md")
	assert.Contains(t, out, "mkdocs.yml")
}
