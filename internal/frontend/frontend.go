// Package frontend renders repology results for the terminal.
package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/repoctl/internal/compare"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

// Output formats accepted by New.
const (
	FormatLines = "lines"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists the accepted output formats, default first.
var Formats = []string{FormatLines, FormatTable, FormatJSON}

// Frontend renders each kind of result. It satisfies versiondb.Sink.
type Frontend interface {
	ListPackages(pkgs []repology.Package) error
	ListProblems(problems []repology.Problem) error
	ListVersions(project string, versions []string) error
	ListComparisons(results []compare.Result) error
}

// New returns the Frontend for format, writing to w.
func New(format string, w io.Writer) (Frontend, error) {
	switch strings.ToLower(format) {
	case "", FormatLines:
		return &linesFrontend{w: w}, nil
	case FormatTable:
		return newTableFrontend(w), nil
	case FormatJSON:
		return &jsonFrontend{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Flush writes out anything f held back, such as the table of stored
// versions that ListVersions builds one row at a time. Frontends that
// render immediately have nothing to flush.
func Flush(f Frontend) error {
	if fl, ok := f.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func statusText(s repology.Status) string {
	if s == "" {
		return "no status"
	}
	return string(s)
}
