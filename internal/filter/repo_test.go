package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/repoctl/internal/filter"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

func TestRepoFilterAllowed(t *testing.T) {
	tests := []struct {
		name  string
		allow []string
		deny  []string
		repo  string
		want  bool
	}{
		{name: "denied", allow: []string{"b"}, deny: []string{"a", "b"}, repo: "a", want: false},
		{name: "allowlist overrides denylist", allow: []string{"b"}, deny: []string{"a", "b"}, repo: "b", want: true},
		{name: "unlisted", allow: []string{"b"}, deny: []string{"a", "b"}, repo: "c", want: true},
		{name: "empty lists pass everything", repo: "arch", want: true},
		{name: "empty allowlist keeps denylist", deny: []string{"arch"}, repo: "arch", want: false},
		{name: "allowlist alone does not exclude", allow: []string{"arch"}, repo: "gentoo", want: true},
		{name: "several allow entries", allow: []string{"x", "y"}, deny: []string{"y"}, repo: "y", want: true},
		{name: "exact match only", deny: []string{"debian"}, repo: "debian_12", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filter.NewRepoFilter(tt.allow, tt.deny)
			assert.Equal(t, tt.want, f.Allowed(tt.repo))
		})
	}
}

func TestRepoFilterDoesNotAliasInput(t *testing.T) {
	deny := []string{"arch"}
	f := filter.NewRepoFilter(nil, deny)
	deny[0] = "gentoo"

	assert.False(t, f.Allowed("arch"))
	assert.True(t, f.Allowed("gentoo"))
}

func TestRepoFilterPackagesAndProblems(t *testing.T) {
	f := filter.NewRepoFilter([]string{"b"}, []string{"a", "b"})

	pkgs := f.Packages([]repology.Package{
		{Repo: "a", Version: "1"},
		{Repo: "b", Version: "2"},
		{Repo: "c", Version: "3"},
	})
	assert.Equal(t, []repology.Package{{Repo: "b", Version: "2"}, {Repo: "c", Version: "3"}}, pkgs)

	problems := f.Problems([]repology.Problem{{Repo: "a"}, {Repo: "c"}})
	assert.Equal(t, []repology.Problem{{Repo: "c"}}, problems)
}
