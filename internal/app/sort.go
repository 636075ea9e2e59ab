package app

import (
	"cmp"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

// compareVersions orders semver-like versions numerically. Anything that
// doesn't parse sorts after the parsable ones, lexically.
func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

func sortPackagesByVersion(pkgs []repology.Package) {
	slices.SortStableFunc(pkgs, func(a, b repology.Package) int {
		return compareVersions(a.Version, b.Version)
	})
}

func sortPackagesByRepo(pkgs []repology.Package) {
	slices.SortStableFunc(pkgs, func(a, b repology.Package) int {
		return cmp.Compare(a.Repo, b.Repo)
	})
}

func sortProblemsByRepo(problems []repology.Problem) {
	slices.SortStableFunc(problems, func(a, b repology.Problem) int {
		return cmp.Compare(a.Repo, b.Repo)
	})
}

func sortProblemsByMaintainer(problems []repology.Problem) {
	slices.SortStableFunc(problems, func(a, b repology.Problem) int {
		return cmp.Compare(a.Maintainer, b.Maintainer)
	})
}
