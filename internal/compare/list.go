// Package compare checks a local package list against upstream repositories.
package compare

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one package of the local list.
type Entry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Comment string `json:"comment,omitempty"`
}

// Load reads a package list, choosing the decoder from the file extension
// (.json or .csv).
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening package list: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(f)
	case ".csv":
		return ParseCSV(f)
	default:
		return nil, fmt.Errorf("unsupported package list format %q (use .json or .csv)", ext)
	}
}

// ParseJSON decodes a JSON array of entries.
func ParseJSON(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing package list JSON: %w", err)
	}
	return validate(entries)
}

// ParseCSV decodes a ';'-separated list with a name;version;comment header.
// The comment column is optional.
func ParseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("package list CSV is empty")
		}
		return nil, fmt.Errorf("reading package list header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameCol, okName := cols["name"]
	versionCol, okVersion := cols["version"]
	if !okName || !okVersion {
		return nil, fmt.Errorf("package list header must contain name and version, got %q", strings.Join(header, ";"))
	}
	commentCol, hasComment := cols["comment"]

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading package list: %w", err)
		}
		e := Entry{
			Name:    field(rec, nameCol),
			Version: field(rec, versionCol),
		}
		if hasComment {
			e.Comment = field(rec, commentCol)
		}
		entries = append(entries, e)
	}
	return validate(entries)
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}

func validate(entries []Entry) ([]Entry, error) {
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("package list entry %d has no name", i+1)
		}
	}
	return entries, nil
}
