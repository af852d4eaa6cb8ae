package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("poetry", "Python project managed with Poetry").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "poetry")
	assert.Contains(t, out, "Python project managed with Poetry")
}
