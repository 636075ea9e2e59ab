package filter_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/repoctl/internal/filter"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

const replayDoc = `[
	{"repo": "arch", "name": "foo", "version": "1.2", "maintainer": "alice", "problem": "p1"},
	{"repo": "gentoo", "name": "foo", "version": "1.1", "maintainer": "alice", "problem": "p2"},
	{"repo": "debian_12", "name": "foo", "version": "1.0", "maintainer": "bob", "problem": "p3"}
]`

func TestWrapFiltersEveryQuery(t *testing.T) {
	replay, err := repology.NewReplay(strings.NewReader(replayDoc), nil)
	require.NoError(t, err)
	src := filter.Wrap(replay, filter.NewRepoFilter(nil, []string{"gentoo"}))
	ctx := context.Background()

	pkgs, err := src.Project(ctx, "foo")
	require.NoError(t, err)
	repos := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		repos = append(repos, p.Repo)
	}
	assert.Equal(t, []string{"arch", "debian_12"}, repos)

	problems, err := src.ProblemsForMaintainer(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "arch", problems[0].Repo)

	problems, err = src.ProblemsForRepo(ctx, "gentoo")
	require.NoError(t, err)
	assert.Empty(t, problems)
}

type failingSource struct{ err error }

func (s failingSource) Project(context.Context, string) ([]repology.Package, error) {
	return nil, s.err
}

func (s failingSource) ProblemsForRepo(context.Context, string) ([]repology.Problem, error) {
	return nil, s.err
}

func (s failingSource) ProblemsForMaintainer(context.Context, string) ([]repology.Problem, error) {
	return nil, s.err
}

func TestWrapPassesErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	src := filter.Wrap(failingSource{err: boom}, filter.NewRepoFilter(nil, nil))

	_, err := src.Project(context.Background(), "foo")
	assert.ErrorIs(t, err, boom)
	_, err = src.ProblemsForRepo(context.Background(), "arch")
	assert.ErrorIs(t, err, boom)
	_, err = src.ProblemsForMaintainer(context.Background(), "alice")
	assert.ErrorIs(t, err, boom)
}
