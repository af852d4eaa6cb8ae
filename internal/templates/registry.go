package templates

import (
	"sort"

	oerrors "github.com/opmodel/skel/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "poetry"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"poetry": {
		Name:        "poetry",
		Description: "Python package managed with Poetry",
		UseCase:     "Libraries and applications with CI, docs, publishing, and container tooling",
		Default:     true,
	},
}

// Get returns a template by name.
// Returns a validation error if the template is not found.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, oerrors.NewValidationError(
			"unknown template "+name, "", "template",
			"Run 'skel template list' to see available templates.")
	}
	return t, nil
}

// IsValidTemplate checks if a template name is registered.
func IsValidTemplate(name string) bool {
	_, ok := templates[name]
	return ok
}

// List returns all available templates sorted by name.
func List() []Template {
	names := Names()
	list := make([]Template, 0, len(names))
	for _, n := range names {
		list = append(list, templates[n])
	}
	return list
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
