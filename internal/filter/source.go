package filter

import (
	"context"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

// Wrap returns a Source whose results are restricted to repositories f allows.
func Wrap(src repology.Source, f RepoFilter) repology.Source {
	return &filteredSource{src: src, f: f}
}

type filteredSource struct {
	src repology.Source
	f   RepoFilter
}

func (s *filteredSource) Project(ctx context.Context, name string) ([]repology.Package, error) {
	pkgs, err := s.src.Project(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.f.Packages(pkgs), nil
}

func (s *filteredSource) ProblemsForRepo(ctx context.Context, repo string) ([]repology.Problem, error) {
	problems, err := s.src.ProblemsForRepo(ctx, repo)
	if err != nil {
		return nil, err
	}
	return s.f.Problems(problems), nil
}

func (s *filteredSource) ProblemsForMaintainer(ctx context.Context, maintainer string) ([]repology.Problem, error) {
	problems, err := s.src.ProblemsForMaintainer(ctx, maintainer)
	if err != nil {
		return nil, err
	}
	return s.f.Problems(problems), nil
}
