package compare

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

// Result pairs a local entry with what one repository ships for it.
// Package is nil when the repository does not ship the project.
type Result struct {
	Entry   Entry
	Repo    string
	Package *repology.Package
}

// State summarises a Result for display.
func (r Result) State() string {
	switch {
	case r.Package == nil:
		return "missing"
	case r.Package.Version == r.Entry.Version:
		return "same"
	default:
		return "differs"
	}
}

// Compare fetches every entry from src and returns one Result per package
// found in each of repos, or a missing Result where a repository has none.
// Duplicate repos are ignored. The first fetch error aborts the comparison.
func Compare(ctx context.Context, src repology.Source, entries []Entry, repos []string) ([]Result, error) {
	repos = lo.Uniq(repos)
	var out []Result
	for _, e := range entries {
		pkgs, err := src.Project(ctx, e.Name)
		if err != nil {
			return nil, fmt.Errorf("comparing %q: %w", e.Name, err)
		}
		for _, repo := range repos {
			found := false
			for i := range pkgs {
				if pkgs[i].Repo != repo {
					continue
				}
				found = true
				out = append(out, Result{Entry: e, Repo: repo, Package: &pkgs[i]})
			}
			if !found {
				out = append(out, Result{Entry: e, Repo: repo})
			}
		}
	}
	return out, nil
}
