package answers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/skel/internal/errors"
)

// LoadFile reads a flat YAML mapping of answers. Keys are not validated here;
// resolution rejects unknown keys.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a flat YAML mapping of answers.
func ParseYAML(data []byte) (map[string]string, error) {
	values := map[string]string{}
	if len(bytes.TrimSpace(data)) == 0 {
		return values, nil
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing answers: %w: %w", oerrors.ErrValidation, err)
	}
	return values, nil
}

// SaveFile writes the canonical answers of s as YAML, creating parent
// directories as needed.
func SaveFile(path string, s Set) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.Map()); err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ParseAssignments parses key=value pairs as given to --set.
func ParseAssignments(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &OptionError{Option: key, Value: pair, Reason: fmt.Sprintf("invalid assignment %q: expected key=value", pair)}
		}
		values[key] = value
	}
	return values, nil
}
