package compare_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/repoctl/internal/compare"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

type mapSource map[string][]repology.Package

func (m mapSource) Project(_ context.Context, name string) ([]repology.Package, error) {
	if name == "broken" {
		return nil, errors.New("unreachable")
	}
	return m[name], nil
}

func (m mapSource) ProblemsForRepo(context.Context, string) ([]repology.Problem, error) {
	return nil, nil
}

func (m mapSource) ProblemsForMaintainer(context.Context, string) ([]repology.Problem, error) {
	return nil, nil
}

func TestParseCSV(t *testing.T) {
	in := "name;version;comment\ncurl;8.5.0;pinned\nzlib; 1.3 ;\n"
	entries, err := compare.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []compare.Entry{
		{Name: "curl", Version: "8.5.0", Comment: "pinned"},
		{Name: "zlib", Version: "1.3"},
	}, entries)
}

func TestParseCSVColumnOrderAndOptionalComment(t *testing.T) {
	entries, err := compare.ParseCSV(strings.NewReader("Version;Name\n1.0;foo\n"))
	require.NoError(t, err)
	assert.Equal(t, []compare.Entry{{Name: "foo", Version: "1.0"}}, entries)
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "missing version column", in: "name;comment\nfoo;x\n"},
		{name: "missing name", in: "name;version\n;1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compare.ParseCSV(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParseJSON(t *testing.T) {
	entries, err := compare.ParseJSON(strings.NewReader(`[{"name":"curl","version":"8.5.0","comment":"x"}]`))
	require.NoError(t, err)
	assert.Equal(t, []compare.Entry{{Name: "curl", Version: "8.5.0", Comment: "x"}}, entries)

	_, err = compare.ParseJSON(strings.NewReader(`{"name":"curl"}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "list.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte("name;version\nfoo;1\n"), 0644))
	jsonPath := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"bar","version":"2"}]`), 0644))
	txtPath := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("foo 1"), 0644))

	fromCSV, err := compare.Load(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "foo", fromCSV[0].Name)

	fromJSON, err := compare.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "bar", fromJSON[0].Name)

	_, err = compare.Load(txtPath)
	assert.Error(t, err)

	_, err = compare.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	src := mapSource{
		"curl": {
			{Repo: "arch", Version: "8.5.0"},
			{Repo: "debian_12", Version: "7.88.1"},
			{Repo: "debian_12", Version: "7.88.1+deb12u5"},
			{Repo: "gentoo", Version: "8.4.0"},
		},
	}
	entries := []compare.Entry{{Name: "curl", Version: "8.5.0"}}

	results, err := compare.Compare(context.Background(), src, entries, []string{"arch", "debian_12", "alpine_edge", "arch"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "arch", results[0].Repo)
	assert.Equal(t, "same", results[0].State())
	assert.Equal(t, "debian_12", results[1].Repo)
	assert.Equal(t, "differs", results[1].State())
	assert.Equal(t, "7.88.1+deb12u5", results[2].Package.Version)
	assert.Equal(t, "alpine_edge", results[3].Repo)
	assert.Nil(t, results[3].Package)
	assert.Equal(t, "missing", results[3].State())
}

func TestCompareFailFast(t *testing.T) {
	entries := []compare.Entry{{Name: "curl", Version: "1"}, {Name: "broken", Version: "1"}}
	results, err := compare.Compare(context.Background(), mapSource{}, entries, []string{"arch"})
	assert.Error(t, err)
	assert.Nil(t, results)
}
