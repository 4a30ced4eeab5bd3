package tui

import (
	"github.com/charmbracelet/lipgloss"

	"terramap/internal/geo"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	coastFg   = lipgloss.Color("#5FAFAF")
	borderFg  = lipgloss.Color("#875F5F")
	cityFg    = lipgloss.Color("#FFA500")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	coastStyle   = lipgloss.NewStyle().Foreground(coastFg)
	borderStyle  = lipgloss.NewStyle().Foreground(borderFg)
	outlineStyle = lipgloss.NewStyle().Foreground(baseFg)
	cityStyle    = lipgloss.NewStyle().Foreground(cityFg)
)

// kindStyle maps a layer kind to its glyph style.
func kindStyle(k geo.Kind) lipgloss.Style {
	switch k {
	case geo.Coastline:
		return coastStyle
	case geo.Border:
		return borderStyle
	case geo.City:
		return cityStyle
	default:
		return outlineStyle
	}
}
