package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/blackwell-systems/repoctl/internal/compare"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

// linesFrontend prints one space-separated record per line.
type linesFrontend struct {
	w io.Writer
}

func (f *linesFrontend) ListPackages(pkgs []repology.Package) error {
	for _, p := range pkgs {
		_, err := fmt.Fprintf(f.w, "%s %s %s %s %s\n",
			orDash(p.DisplayName()),
			orDash(p.Version),
			p.Repo,
			statusPrinter(p.Status)("%s", statusText(p.Status)),
			orDash(p.Homepage()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *linesFrontend) ListProblems(problems []repology.Problem) error {
	for _, p := range problems {
		_, err := fmt.Fprintf(f.w, "%s %s %s %s: %s\n",
			p.Repo,
			orDash(p.Name),
			orDash(p.EffName),
			orDash(p.Maintainer),
			p.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *linesFrontend) ListVersions(project string, versions []string) error {
	if len(versions) == 0 {
		_, err := fmt.Fprintf(f.w, "%s: %s\n", project, color.HiBlackString("(none)"))
		return err
	}
	_, err := fmt.Fprintf(f.w, "%s: %s\n", project, strings.Join(versions, " "))
	return err
}

func (f *linesFrontend) ListComparisons(results []compare.Result) error {
	for _, r := range results {
		repoVersion := "-"
		if r.Package != nil {
			repoVersion = orDash(r.Package.Version)
		}
		line := fmt.Sprintf("%s %s %s %s %s", r.Entry.Name, orDash(r.Entry.Version), r.Repo, repoVersion,
			statePrinter(r.State())("%s", r.State()))
		if r.Entry.Comment != "" {
			line += " # " + r.Entry.Comment
		}
		if _, err := fmt.Fprintln(f.w, line); err != nil {
			return err
		}
	}
	return nil
}
