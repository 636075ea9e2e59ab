package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"github.com/blackwell-systems/repoctl/internal/compare"
	"github.com/blackwell-systems/repoctl/internal/repology"
)

// maxCell caps free-text columns so wide descriptions don't blow up the layout.
const maxCell = 60

// tableFrontend renders bordered tables. Empty result sets print nothing.
// Stored versions are collected into one table that is written by Flush.
type tableFrontend struct {
	w        io.Writer
	r        *lipgloss.Renderer
	versions [][]string
}

// newTableFrontend follows the writer's color profile unless color output
// was switched off globally.
func newTableFrontend(w io.Writer) *tableFrontend {
	r := lipgloss.NewRenderer(w)
	if color.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &tableFrontend{w: w, r: r}
}

// render builds a table; colorCol, when >= 0, is styled per row by colors.
func (f *tableFrontend) render(headers []string, rows [][]string, colorCol int, colors []lipgloss.AdaptiveColor) error {
	if len(rows) == 0 {
		return nil
	}
	headerStyle := f.r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := f.r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.r.NewStyle().Foreground(colorGray)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == colorCol && row >= 0 && row < len(colors) {
				return cellStyle.Foreground(colors[row])
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(f.w, t.String())
	return err
}

func truncate(s string) string {
	return ansi.Truncate(s, maxCell, "…")
}

func (f *tableFrontend) ListPackages(pkgs []repology.Package) error {
	if err := f.Flush(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(pkgs))
	colors := make([]lipgloss.AdaptiveColor, 0, len(pkgs))
	for _, p := range pkgs {
		rows = append(rows, []string{
			p.DisplayName(),
			p.Version,
			p.Repo,
			statusText(p.Status),
			truncate(p.Homepage()),
		})
		colors = append(colors, statusColor(p.Status))
	}
	return f.render([]string{"Name", "Version", "Repo", "Status", "URL"}, rows, 3, colors)
}

func (f *tableFrontend) ListProblems(problems []repology.Problem) error {
	if err := f.Flush(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(problems))
	for _, p := range problems {
		rows = append(rows, []string{
			p.Repo,
			p.Name,
			p.EffName,
			p.Maintainer,
			truncate(p.Description),
		})
	}
	return f.render([]string{"Repo", "Name", "EffName", "Maintainer", "Description"}, rows, -1, nil)
}

func (f *tableFrontend) ListVersions(project string, versions []string) error {
	f.versions = append(f.versions, []string{project, truncate(strings.Join(versions, ", "))})
	return nil
}

func (f *tableFrontend) Flush() error {
	rows := f.versions
	f.versions = nil
	return f.render([]string{"Project", "Versions"}, rows, -1, nil)
}

func (f *tableFrontend) ListComparisons(results []compare.Result) error {
	if err := f.Flush(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(results))
	colors := make([]lipgloss.AdaptiveColor, 0, len(results))
	for _, r := range results {
		repoVersion, status := "", ""
		if r.Package != nil {
			repoVersion = r.Package.Version
			status = statusText(r.Package.Status)
		}
		rows = append(rows, []string{
			r.Entry.Name,
			r.Entry.Version,
			r.Repo,
			repoVersion,
			status,
			r.State(),
			truncate(r.Entry.Comment),
		})
		switch r.State() {
		case "same":
			colors = append(colors, colorGreen)
		case "differs":
			colors = append(colors, colorYellow)
		default:
			colors = append(colors, colorRed)
		}
	}
	return f.render([]string{"Name", "Local", "Repo", "Version", "Status", "State", "Comment"}, rows, 5, colors)
}
