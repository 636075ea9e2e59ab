package versiondb

import (
	"bytes"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"
)

// projects maps a tracked project name to its set of known versions.
type projects map[string]mapset.Set[string]

// parse decodes a version database document. Repeated versions in the
// document collapse into one set member.
func parse(data []byte) (projects, error) {
	out := projects{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing version database YAML: %w", err)
	}
	for name, versions := range raw {
		out[name] = mapset.NewThreadUnsafeSet(versions...)
	}
	return out, nil
}

// marshal encodes the database as a YAML mapping of project name to its
// sorted version list.
func marshal(p projects) ([]byte, error) {
	raw := make(map[string][]string, len(p))
	for name, set := range p {
		raw[name] = sortedVersions(set)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("encoding version database: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding version database: %w", err)
	}
	return buf.Bytes(), nil
}

func (p projects) clone() projects {
	out := make(projects, len(p))
	for name, set := range p {
		out[name] = set.Clone()
	}
	return out
}

func sortedVersions(set mapset.Set[string]) []string {
	if set == nil {
		return []string{}
	}
	versions := set.ToSlice()
	slices.Sort(versions)
	return versions
}
