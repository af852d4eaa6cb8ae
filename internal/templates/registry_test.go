package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/skel/internal/errors"
)

func TestGet(t *testing.T) {
	tmpl, err := Get("poetry")
	require.NoError(t, err)
	assert.Equal(t, "poetry", tmpl.Name)
	assert.True(t, tmpl.Default)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("Poetry")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestIsValidTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     bool
	}{
		{"poetry is valid", "poetry", true},
		{"unknown is invalid", "unknown", false},
		{"empty is invalid", "", false},
		{"case-sensitive", "POETRY", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTemplate(tt.template))
		})
	}
}

func TestListAndNames(t *testing.T) {
	assert.Equal(t, []string{"poetry"}, Names())

	list := List()
	require.Len(t, list, 1)
	assert.Equal(t, GetDefault(), list[0])
	assert.Equal(t, DefaultTemplateName, GetDefault().Name)
}

func TestRegisteredTemplatesAreEmbedded(t *testing.T) {
	for _, name := range Names() {
		files, err := ListTemplateFiles(name)
		require.NoError(t, err)
		assert.NotEmpty(t, files, name)
	}
}
