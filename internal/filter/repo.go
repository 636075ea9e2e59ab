// Package filter decides which repositories are relevant to the user.
package filter

import (
	"slices"

	"github.com/samber/lo"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

// RepoFilter is a predicate over repository names built from an allowlist
// and a denylist. A repository passes when it is not denied, or when it is
// explicitly allowed; the allowlist overrides the denylist.
type RepoFilter struct {
	allow []string
	deny  []string
}

// NewRepoFilter builds a RepoFilter. The slices are copied.
func NewRepoFilter(allowlist, denylist []string) RepoFilter {
	return RepoFilter{
		allow: slices.Clone(allowlist),
		deny:  slices.Clone(denylist),
	}
}

// Allowed reports whether repo passes the filter.
func (f RepoFilter) Allowed(repo string) bool {
	denied := slices.Contains(f.deny, repo)
	allowed := slices.Contains(f.allow, repo)
	return !denied || allowed
}

// Packages returns the packages whose repository passes the filter.
func (f RepoFilter) Packages(pkgs []repology.Package) []repology.Package {
	return lo.Filter(pkgs, func(p repology.Package, _ int) bool {
		return f.Allowed(p.Repo)
	})
}

// Problems returns the problems whose repository passes the filter.
func (f RepoFilter) Problems(problems []repology.Problem) []repology.Problem {
	return lo.Filter(problems, func(p repology.Problem, _ int) bool {
		return f.Allowed(p.Repo)
	})
}
