package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/atelier-tools/vitrine/pkg/status"
)

// StatusStyle maps a taxonomy color name onto a pterm style. Unknown
// colors render unstyled.
func StatusStyle(color string) *pterm.Style {
	switch strings.ToLower(color) {
	case "green":
		return pterm.NewStyle(pterm.FgGreen)
	case "orange", "yellow":
		return pterm.NewStyle(pterm.FgYellow)
	case "red":
		return pterm.NewStyle(pterm.FgRed)
	case "purple", "magenta":
		return pterm.NewStyle(pterm.FgMagenta)
	case "blue":
		return pterm.NewStyle(pterm.FgBlue)
	case "cyan":
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// StatusBadge renders one status record as a colored dot plus label,
// expanding a mixed record's underlying statuses in parentheses.
func StatusBadge(opt *status.Option, styled bool) string {
	if opt == nil {
		return ""
	}

	label := opt.Label
	if label == "" {
		label = opt.Handle
	}

	badge := "● " + label
	if styled {
		badge = StatusStyle(opt.Color).Sprint("●") + " " + label
	}

	if len(opt.Statuses) == 0 {
		return badge
	}

	parts := make([]string, len(opt.Statuses))
	for i, sub := range opt.Statuses {
		parts[i] = sub.Label
	}
	return fmt.Sprintf("%s (%s)", badge, strings.Join(parts, ", "))
}
