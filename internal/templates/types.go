package templates

import "github.com/opmodel/skel/internal/answers"

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier.
	Name string

	// Description explains what the template generates.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// UseCase describes when to use this template.
	UseCase string
}

// TemplateData holds the values available to template files.
type TemplateData struct {
	ProjectName        string
	ProjectSlug        string
	ProjectDescription string
	Author             string
	Email              string
	GitHubHandle       string

	GitHubActions bool
	MkDocs        bool
	Codecov       bool
	Dockerfile    bool
	Devcontainer  bool

	// PublishTo is the canonical publish target (none, artifactory, pypi).
	PublishTo          string
	Publish            bool
	PublishPyPI        bool
	PublishArtifactory bool
}

// NewTemplateData derives rendering data from an answer set.
func NewTemplateData(s answers.Set) TemplateData {
	return TemplateData{
		ProjectName:        s.Project.Name,
		ProjectSlug:        s.Project.Slug,
		ProjectDescription: s.Project.Description,
		Author:             s.Project.Author,
		Email:              s.Project.Email,
		GitHubHandle:       s.Project.GitHubHandle,
		GitHubActions:      s.GitHubActions.Enabled(),
		MkDocs:             s.MkDocs.Enabled(),
		Codecov:            s.Codecov.Enabled(),
		Dockerfile:         s.Dockerfile.Enabled(),
		Devcontainer:       s.Devcontainer.Enabled(),
		PublishTo:          string(s.PublishTo),
		Publish:            s.PublishTo.Publishes(),
		PublishPyPI:        s.PublishTo == answers.PublishPyPI,
		PublishArtifactory: s.PublishTo == answers.PublishArtifactory,
	}
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the project root to create.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// Answers supplies the rendering data.
	Answers answers.Set

	// Force allows writing into a non-empty directory.
	Force bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
