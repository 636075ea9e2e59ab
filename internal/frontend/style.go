package frontend

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

// Palette shared by the table renderer.
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
)

// statusColor groups repology statuses into fresh, stale and unrated.
func statusColor(s repology.Status) lipgloss.AdaptiveColor {
	switch s {
	case repology.StatusNewest, repology.StatusUnique, repology.StatusDevel:
		return colorGreen
	case repology.StatusOutdated, repology.StatusLegacy:
		return colorRed
	case repology.StatusRolling:
		return colorCyan
	case repology.StatusIncorrect, repology.StatusUntrusted:
		return colorYellow
	default:
		return colorGray
	}
}

// statusPrinter is the fatih/color counterpart of statusColor.
func statusPrinter(s repology.Status) func(format string, a ...interface{}) string {
	switch s {
	case repology.StatusNewest, repology.StatusUnique, repology.StatusDevel:
		return color.GreenString
	case repology.StatusOutdated, repology.StatusLegacy:
		return color.RedString
	case repology.StatusRolling:
		return color.CyanString
	case repology.StatusIncorrect, repology.StatusUntrusted:
		return color.YellowString
	default:
		return color.HiBlackString
	}
}

func statePrinter(state string) func(format string, a ...interface{}) string {
	switch state {
	case "same":
		return color.GreenString
	case "differs":
		return color.YellowString
	default:
		return color.RedString
	}
}
