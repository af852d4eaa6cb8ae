package verify

import (
	"path"

	"github.com/opmodel/skel/internal/answers"
	"github.com/opmodel/skel/internal/prune"
)

const (
	mainWorkflow = ".github/workflows/main.yml"
	makefile     = "Makefile"
	toxConfig    = "tox.ini"

	deployDocs = "mkdocs gh-deploy"
)

// Expectations returns the checks a baked and pruned tree must pass for s.
func Expectations(s answers.Set) []Check {
	checks := []Check{
		FileCheck("pyproject.toml"),
		FileCheck(makefile),
		FileCheck(toxConfig),
		ContainsCheck(toxConfig, "[tox]"),
		FileCheck(path.Join(s.Project.Slug, "__init__.py")),
	}

	checks = append(checks, ciChecks(s)...)

	if s.PublishTo.Publishes() {
		checks = append(checks, ContainsCheck(makefile, "build-and-publish"))
	} else {
		checks = append(checks, NotContainsCheck(makefile, "build-and-publish"))
	}

	if s.MkDocs.Enabled() {
		checks = append(checks,
			DirCheck(prune.PathDocs),
			FileCheck(prune.PathMkDocsConfig),
			ContainsCheck(makefile, "docs:"))
	} else {
		checks = append(checks,
			NoDirCheck(prune.PathDocs),
			NoFileCheck(prune.PathMkDocsConfig),
			NotContainsCheck(makefile, "docs:"))
	}

	checks = append(checks, toggle(s.Codecov, prune.PathCodecovConfig))
	checks = append(checks, toggle(s.Dockerfile, prune.PathDockerfile))

	if s.Devcontainer.Enabled() {
		checks = append(checks,
			FileCheck(path.Join(prune.PathDevcontainer, "devcontainer.json")),
			FileCheck(path.Join(prune.PathDevcontainer, "postCreateCommand.sh")))
	} else {
		checks = append(checks, NoDirCheck(prune.PathDevcontainer))
	}

	return checks
}

func ciChecks(s answers.Set) []Check {
	if !s.GitHubActions.Enabled() {
		return []Check{NoDirCheck(prune.PathGitHub)}
	}

	checks := []Check{YAMLCheck(mainWorkflow)}
	checks = append(checks, toggle(s.Codecov, prune.PathCodecovWorkflow))
	if !s.MkDocs.Enabled() {
		checks = append(checks, NotContainsCheck(mainWorkflow, deployDocs))
		if s.Codecov.Enabled() {
			checks = append(checks, NotContainsCheck(prune.PathCodecovWorkflow, deployDocs))
		}
	}

	release := prune.PathReleaseWorkflow
	if !s.MkDocs.Enabled() && s.PublishTo == answers.PublishNone {
		return append(checks, NoFileCheck(release))
	}

	checks = append(checks, YAMLCheck(release))
	switch s.PublishTo {
	case answers.PublishArtifactory:
		checks = append(checks,
			ContainsCheck(release, "ARTIFACTORY_URL"),
			ContainsCheck(release, "ARTIFACTORY_USERNAME"),
			ContainsCheck(release, "ARTIFACTORY_PASSWORD"))
	case answers.PublishPyPI:
		checks = append(checks, ContainsCheck(release, "PYPI_TOKEN"))
	default:
		checks = append(checks, NotContainsCheck(release, "make build-and-publish"))
	}

	if s.MkDocs.Enabled() {
		checks = append(checks, ContainsCheck(release, deployDocs))
	} else {
		checks = append(checks, NotContainsCheck(release, deployDocs))
	}
	return checks
}

// toggle expects a file to exist exactly when the option is enabled.
func toggle(v answers.YesNo, file string) Check {
	if v.Enabled() {
		return FileCheck(file)
	}
	return NoFileCheck(file)
}
