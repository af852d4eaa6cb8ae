package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "project", false},
		{"hyphenated", "my-project", false},
		{"underscored", "my_project2", false},
		{"empty", "", true},
		{"leading digit", "2project", true},
		{"space", "my project", true},
		{"slash", "a/b", true},
		{"leading hyphen", "-project", true},
		{"leading non-ascii digit", "٣abc", true},
		{"non-ascii letter", "café-proj", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("my_project"))
	assert.NoError(t, ValidateSlug("_private"))
	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("my-project"))
	assert.Error(t, ValidateSlug("9lives"))
	assert.Error(t, ValidateSlug("lambda"))
}

func TestDeriveSlug(t *testing.T) {
	assert.Equal(t, "my_project", DeriveSlug("my-project"))
	assert.Equal(t, "my_cool_project", DeriveSlug("My Cool Project"))
	assert.Equal(t, "pkg_v2", DeriveSlug(" pkg.v2 "))
}
