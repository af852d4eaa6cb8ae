package answers

import "fmt"

// Project holds the free-text answers used for rendering.
type Project struct {
	Name         string
	Slug         string
	Description  string
	Author       string
	Email        string
	GitHubHandle string
}

// Set is a fully resolved answer set. It is a value: copies are independent
// and nothing mutates a Set after construction.
type Set struct {
	Project Project

	GitHubActions YesNo
	MkDocs        YesNo
	PublishTo     PublishTarget
	Codecov       YesNo
	Dockerfile    YesNo
	Devcontainer  YesNo
}

// FromMap builds a Set from string values. Every recognized key must be
// present; unknown keys and out-of-vocabulary values are rejected.
func FromMap(values map[string]string) (Set, error) {
	if err := checkKeys(values); err != nil {
		return Set{}, err
	}

	normalized := make(map[Key]string, len(definitions))
	for _, d := range definitions {
		raw, ok := values[string(d.Key)]
		if !ok {
			return Set{}, &OptionError{Option: string(d.Key), Reason: "not set", Allowed: d.Choices}
		}
		v, err := normalize(d, raw)
		if err != nil {
			return Set{}, err
		}
		normalized[d.Key] = v
	}

	s := Set{
		Project: Project{
			Name:         normalized[KeyProjectName],
			Slug:         normalized[KeyProjectSlug],
			Description:  normalized[KeyProjectDescription],
			Author:       normalized[KeyAuthor],
			Email:        normalized[KeyEmail],
			GitHubHandle: normalized[KeyGitHubHandle],
		},
		GitHubActions: YesNo(normalized[KeyGitHubActions]),
		MkDocs:        YesNo(normalized[KeyMkDocs]),
		PublishTo:     PublishTarget(normalized[KeyPublishTo]),
		Codecov:       YesNo(normalized[KeyCodecov]),
		Dockerfile:    YesNo(normalized[KeyDockerfile]),
		Devcontainer:  YesNo(normalized[KeyDevcontainer]),
	}

	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Validate reports the first unset or invalid answer, including the
// project name and slug.
func (s Set) Validate() error {
	if err := s.ValidateOptions(); err != nil {
		return err
	}
	if err := ValidateProjectName(s.Project.Name); err != nil {
		return &OptionError{Option: string(KeyProjectName), Value: s.Project.Name, Reason: err.Error()}
	}
	if err := ValidateSlug(s.Project.Slug); err != nil {
		return &OptionError{Option: string(KeyProjectSlug), Value: s.Project.Slug, Reason: err.Error()}
	}
	return nil
}

// ValidateOptions reports the first unset or invalid feature option.
// Project metadata is not checked.
func (s Set) ValidateOptions() error {
	toggles := []struct {
		key Key
		v   YesNo
	}{
		{KeyGitHubActions, s.GitHubActions},
		{KeyMkDocs, s.MkDocs},
		{KeyCodecov, s.Codecov},
		{KeyDockerfile, s.Dockerfile},
		{KeyDevcontainer, s.Devcontainer},
	}
	for _, tg := range toggles {
		if !tg.v.Valid() {
			d, _ := Lookup(string(tg.key))
			return invalidValue(d, string(tg.v))
		}
	}
	if !s.PublishTo.Valid() {
		d, _ := Lookup(string(KeyPublishTo))
		return invalidValue(d, string(s.PublishTo))
	}
	return nil
}

// Map returns the canonical string form of every answer.
func (s Set) Map() map[string]string {
	return map[string]string{
		string(KeyProjectName):        s.Project.Name,
		string(KeyProjectSlug):        s.Project.Slug,
		string(KeyProjectDescription): s.Project.Description,
		string(KeyAuthor):             s.Project.Author,
		string(KeyEmail):              s.Project.Email,
		string(KeyGitHubHandle):       s.Project.GitHubHandle,
		string(KeyGitHubActions):      string(s.GitHubActions),
		string(KeyMkDocs):             string(s.MkDocs),
		string(KeyPublishTo):          string(s.PublishTo),
		string(KeyCodecov):            string(s.Codecov),
		string(KeyDockerfile):         string(s.Dockerfile),
		string(KeyDevcontainer):       string(s.Devcontainer),
	}
}

// String summarizes the feature options for logs.
func (s Set) String() string {
	return fmt.Sprintf("github_actions=%s mkdocs=%s publish_to=%s codecov=%s dockerfile=%s devcontainer=%s",
		s.GitHubActions, s.MkDocs, s.PublishTo, s.Codecov, s.Dockerfile, s.Devcontainer)
}

// checkKeys rejects keys outside the vocabulary.
func checkKeys(values map[string]string) error {
	for _, k := range sortedKeys(values) {
		if _, ok := Lookup(k); !ok {
			return unknownOption(k)
		}
	}
	return nil
}

// normalize maps a raw value to its canonical form for d.
func normalize(d Definition, raw string) (string, error) {
	switch d.Key {
	case KeyGitHubActions, KeyMkDocs, KeyCodecov, KeyDockerfile, KeyDevcontainer:
		v, ok := ParseYesNo(raw)
		if !ok {
			return "", invalidValue(d, raw)
		}
		return string(v), nil
	case KeyPublishTo:
		v, ok := ParsePublishTarget(raw)
		if !ok {
			return "", invalidValue(d, raw)
		}
		return string(v), nil
	default:
		return raw, nil
	}
}

// Normalize validates one answer and returns its canonical value.
func Normalize(key, value string) (string, error) {
	d, ok := Lookup(key)
	if !ok {
		return "", unknownOption(key)
	}
	return normalize(d, value)
}
