package verify

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	errMissing    = errors.New("does not exist")
	errUnexpected = errors.New("exists but should have been removed")
)

func abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// FileCheck expects a regular file at path.
func FileCheck(path string) Check {
	return Check{Name: "file exists", Path: path, Run: func(root string) error {
		if !FileExists(abs(root, path)) {
			return errMissing
		}
		return nil
	}}
}

// NoFileCheck expects no regular file at path.
func NoFileCheck(path string) Check {
	return Check{Name: "file absent", Path: path, Run: func(root string) error {
		if FileExists(abs(root, path)) {
			return errUnexpected
		}
		return nil
	}}
}

// DirCheck expects a directory at path.
func DirCheck(path string) Check {
	return Check{Name: "directory exists", Path: path, Run: func(root string) error {
		if !DirExists(abs(root, path)) {
			return errMissing
		}
		return nil
	}}
}

// NoDirCheck expects no directory at path.
func NoDirCheck(path string) Check {
	return Check{Name: "directory absent", Path: path, Run: func(root string) error {
		if DirExists(abs(root, path)) {
			return errUnexpected
		}
		return nil
	}}
}

// ContainsCheck expects the file at path to contain text.
func ContainsCheck(path, text string) Check {
	return Check{Name: fmt.Sprintf("contains %q", text), Path: path, Run: func(root string) error {
		ok, err := FileContainsText(abs(root, path), text)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("text %q not found", text)
		}
		return nil
	}}
}

// NotContainsCheck expects the file at path not to contain text.
func NotContainsCheck(path, text string) Check {
	return Check{Name: fmt.Sprintf("does not contain %q", text), Path: path, Run: func(root string) error {
		ok, err := FileContainsText(abs(root, path), text)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("unexpected text %q", text)
		}
		return nil
	}}
}

// YAMLCheck expects a well-formed YAML file at path.
func YAMLCheck(path string) Check {
	return Check{Name: "valid YAML", Path: path, Run: func(root string) error {
		return IsValidYAML(abs(root, path))
	}}
}
