package repology

import "context"

// Source is a provider of package and problem data. Implementations are the
// live Client and the offline Replay.
type Source interface {
	// Project returns every known package of the named project across all
	// repositories the source knows about.
	Project(ctx context.Context, name string) ([]Package, error)
	// ProblemsForRepo returns the problems reported for a repository.
	ProblemsForRepo(ctx context.Context, repo string) ([]Problem, error)
	// ProblemsForMaintainer returns the problems reported for a maintainer.
	ProblemsForMaintainer(ctx context.Context, maintainer string) ([]Problem, error)
}

var (
	_ Source = (*Client)(nil)
	_ Source = (*Replay)(nil)
)
