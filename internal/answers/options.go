// Package answers defines the answer set that drives project generation:
// a closed vocabulary of options, validated construction, and resolution
// from flags, files, configuration defaults, and interactive prompts.
package answers

import (
	"sort"
	"strings"
)

// Key names an answer.
type Key string

// Project metadata keys. These feed template rendering only.
const (
	KeyProjectName        Key = "project_name"
	KeyProjectSlug        Key = "project_slug"
	KeyProjectDescription Key = "project_description"
	KeyAuthor             Key = "author"
	KeyEmail              Key = "email"
	KeyGitHubHandle       Key = "author_github_handle"
)

// Feature option keys. These select which template paths survive pruning.
const (
	KeyGitHubActions Key = "include_github_actions"
	KeyMkDocs        Key = "mkdocs"
	KeyPublishTo     Key = "publish_to"
	KeyCodecov       Key = "codecov"
	KeyDockerfile    Key = "dockerfile"
	KeyDevcontainer  Key = "devcontainer"
)

// YesNo is a two-valued feature toggle.
type YesNo string

const (
	Yes YesNo = "y"
	No  YesNo = "n"
)

// Enabled reports whether the toggle is on.
func (v YesNo) Enabled() bool { return v == Yes }

// Valid reports whether v is one of the canonical values.
func (v YesNo) Valid() bool { return v == Yes || v == No }

// ParseYesNo parses a toggle value. Besides the canonical "y" and "n" it
// accepts yes/no/true/false in any case.
func ParseYesNo(s string) (YesNo, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return Yes, true
	case "n", "no", "false":
		return No, true
	default:
		return "", false
	}
}

// PublishTarget selects where release builds are published.
type PublishTarget string

const (
	PublishNone        PublishTarget = "none"
	PublishArtifactory PublishTarget = "artifactory"
	PublishPyPI        PublishTarget = "pypi"
)

// Valid reports whether t is a known target.
func (t PublishTarget) Valid() bool {
	switch t {
	case PublishNone, PublishArtifactory, PublishPyPI:
		return true
	default:
		return false
	}
}

// Publishes reports whether a release artifact is published at all.
func (t PublishTarget) Publishes() bool { return t == PublishArtifactory || t == PublishPyPI }

// ParsePublishTarget parses a publish target, case-insensitively.
func ParsePublishTarget(s string) (PublishTarget, bool) {
	t := PublishTarget(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

var (
	yesNoChoices   = []string{string(Yes), string(No)}
	publishChoices = []string{string(PublishPyPI), string(PublishArtifactory), string(PublishNone)}
)

// Definition describes one answer: how it is prompted for, which values it
// accepts, and how its default is derived from earlier answers.
type Definition struct {
	Key    Key
	Prompt string

	// Choices is the closed vocabulary; nil for free text.
	Choices []string

	// Default returns the built-in default given the answers resolved so far.
	Default func(resolved map[Key]string) string
}

// definitions is ordered: defaults may depend on earlier entries.
var definitions = []Definition{
	{Key: KeyProjectName, Prompt: "Project name", Default: constant("example-project")},
	{Key: KeyProjectSlug, Prompt: "Project slug", Default: func(r map[Key]string) string {
		return DeriveSlug(r[KeyProjectName])
	}},
	{Key: KeyProjectDescription, Prompt: "Project description", Default: constant("This is a template repository for Python projects that use Poetry for their dependency management.")},
	{Key: KeyAuthor, Prompt: "Author", Default: constant("Jane Doe")},
	{Key: KeyEmail, Prompt: "Email", Default: constant("jane.doe@example.com")},
	{Key: KeyGitHubHandle, Prompt: "GitHub handle", Default: constant("janedoe")},
	{Key: KeyGitHubActions, Prompt: "Include GitHub Actions?", Choices: yesNoChoices, Default: constant(string(Yes))},
	{Key: KeyPublishTo, Prompt: "Publish releases to", Choices: publishChoices, Default: constant(string(PublishPyPI))},
	{Key: KeyMkDocs, Prompt: "Include MkDocs documentation site?", Choices: yesNoChoices, Default: constant(string(Yes))},
	{Key: KeyCodecov, Prompt: "Include Codecov?", Choices: yesNoChoices, Default: constant(string(Yes))},
	{Key: KeyDockerfile, Prompt: "Include a Dockerfile?", Choices: yesNoChoices, Default: constant(string(Yes))},
	{Key: KeyDevcontainer, Prompt: "Include a devcontainer?", Choices: yesNoChoices, Default: constant(string(Yes))},
}

func constant(v string) func(map[Key]string) string {
	return func(map[Key]string) string { return v }
}

// Definitions returns all answer definitions in prompt order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for key.
func Lookup(key string) (Definition, bool) {
	for _, d := range definitions {
		if string(d.Key) == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Keys returns all recognized keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(definitions))
	for _, d := range definitions {
		keys = append(keys, string(d.Key))
	}
	sort.Strings(keys)
	return keys
}
