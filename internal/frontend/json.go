package frontend

import (
	"encoding/json"
	"io"

	"github.com/blackwell-systems/repoctl/internal/compare"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

// jsonFrontend writes one indented JSON document per call.
type jsonFrontend struct {
	w io.Writer
}

type versionsOutput struct {
	Project  string   `json:"project"`
	Versions []string `json:"versions"`
}

type comparisonOutput struct {
	Name         string          `json:"name"`
	LocalVersion string          `json:"local_version"`
	Comment      string          `json:"comment,omitempty"`
	Repo         string          `json:"repo"`
	RepoVersion  string          `json:"repo_version,omitempty"`
	Status       repology.Status `json:"status,omitempty"`
	State        string          `json:"state"`
}

func (f *jsonFrontend) encode(v interface{}) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *jsonFrontend) ListPackages(pkgs []repology.Package) error {
	if pkgs == nil {
		pkgs = []repology.Package{}
	}
	return f.encode(pkgs)
}

func (f *jsonFrontend) ListProblems(problems []repology.Problem) error {
	if problems == nil {
		problems = []repology.Problem{}
	}
	return f.encode(problems)
}

func (f *jsonFrontend) ListVersions(project string, versions []string) error {
	if versions == nil {
		versions = []string{}
	}
	return f.encode(versionsOutput{Project: project, Versions: versions})
}

func (f *jsonFrontend) ListComparisons(results []compare.Result) error {
	out := make([]comparisonOutput, 0, len(results))
	for _, r := range results {
		c := comparisonOutput{
			Name:         r.Entry.Name,
			LocalVersion: r.Entry.Version,
			Comment:      r.Entry.Comment,
			Repo:         r.Repo,
			State:        r.State(),
		}
		if r.Package != nil {
			c.RepoVersion = r.Package.Version
			c.Status = r.Package.Status
		}
		out = append(out, c)
	}
	return f.encode(out)
}
