package answers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// identifierRegex matches Python identifiers (ASCII subset).
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateProjectName checks a project name. Names become directory names
// and derive the package slug, so they are limited to ASCII letters, digits,
// hyphens, and underscores, starting with a letter.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !isASCIILetter(r) && !(r >= '0' && r <= '9') && r != '-' && r != '_' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if first, _ := utf8.DecodeRuneInString(name); !isASCIILetter(first) {
		return fmt.Errorf("invalid project name %q: must start with a letter", name)
	}

	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ValidateSlug checks that slug is an importable Python package name.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("project slug cannot be empty")
	}
	if !identifierRegex.MatchString(slug) {
		return fmt.Errorf("invalid project slug %q: must start with a letter or underscore and contain only letters, digits, and underscores", slug)
	}
	if pythonKeywords[slug] {
		return fmt.Errorf("invalid project slug %q: cannot use a Python keyword", slug)
	}
	return nil
}

// DeriveSlug converts a project name into a package name: lowercase, with
// hyphens, dots, and spaces replaced by underscores.
func DeriveSlug(name string) string {
	r := strings.NewReplacer("-", "_", " ", "_", ".", "_")
	return r.Replace(strings.ToLower(strings.TrimSpace(name)))
}

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}
