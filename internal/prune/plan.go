// Package prune removes template paths that an answer set excludes from a
// generated project tree.
package prune

import "github.com/opmodel/skel/internal/answers"

// Project-relative paths (slash-separated) that pruning may remove.
const (
	PathGitHub          = ".github"
	PathReleaseWorkflow = ".github/workflows/on-release-main.yml"
	PathCodecovWorkflow = ".github/workflows/validate-codecov-config.yml"
	PathDocs            = "docs"
	PathMkDocsConfig    = "mkdocs.yml"
	PathCodecovConfig   = "codecov.yaml"
	PathDockerfile      = "Dockerfile"
	PathDevcontainer    = ".devcontainer"
)

// Kind is the declared type of a target.
type Kind int

const (
	// File targets are removed with a single unlink.
	File Kind = iota
	// Dir targets are removed recursively.
	Dir
)

func (k Kind) String() string {
	if k == Dir {
		return "dir"
	}
	return "file"
}

// Target is one path scheduled for removal.
type Target struct {
	// Rule names the rule that scheduled the target.
	Rule string
	// Path is slash-separated and relative to the project root.
	Path string
	Kind Kind
}

// rule maps an answer set to the targets it removes.
type rule struct {
	name    string
	targets func(answers.Set) []Target
}

// rules run in order. A whole-directory removal precedes any rule that
// targets a path inside that directory.
var rules = []rule{
	{name: "github-actions", targets: func(s answers.Set) []Target {
		if !s.GitHubActions.Enabled() {
			return []Target{{Path: PathGitHub, Kind: Dir}}
		}
		if !s.MkDocs.Enabled() && s.PublishTo == answers.PublishNone {
			return []Target{{Path: PathReleaseWorkflow, Kind: File}}
		}
		return nil
	}},
	{name: "mkdocs", targets: func(s answers.Set) []Target {
		if s.MkDocs.Enabled() {
			return nil
		}
		return []Target{
			{Path: PathDocs, Kind: Dir},
			{Path: PathMkDocsConfig, Kind: File},
		}
	}},
	{name: "codecov", targets: func(s answers.Set) []Target {
		if s.Codecov.Enabled() {
			return nil
		}
		targets := []Target{{Path: PathCodecovConfig, Kind: File}}
		if s.GitHubActions.Enabled() {
			targets = append(targets, Target{Path: PathCodecovWorkflow, Kind: File})
		}
		return targets
	}},
	{name: "dockerfile", targets: func(s answers.Set) []Target {
		if s.Dockerfile.Enabled() {
			return nil
		}
		return []Target{{Path: PathDockerfile, Kind: File}}
	}},
	{name: "devcontainer", targets: func(s answers.Set) []Target {
		if s.Devcontainer.Enabled() {
			return nil
		}
		return []Target{{Path: PathDevcontainer, Kind: Dir}}
	}},
}

// Plan returns the ordered removal targets for s. It has no side effects.
func Plan(s answers.Set) []Target {
	var plan []Target
	for _, r := range rules {
		for _, t := range r.targets(s) {
			t.Rule = r.name
			plan = append(plan, t)
		}
	}
	return plan
}
