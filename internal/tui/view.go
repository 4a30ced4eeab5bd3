package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"terramap/internal/geo"
	"terramap/internal/render"
)

// drawOrder lists layer kinds back to front; a later kind wins the cell
// when grids overlap.
var drawOrder = []geo.Kind{geo.FallbackOutline, geo.Coastline, geo.Border, geo.City}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cols, rows := m.mapSize()
	m.cam.Resize(cols, rows)

	header := titleStyle.Render(" terramap ─ braille world atlas ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	mapView := m.renderMap(cols, rows)
	footer := m.renderFooter(m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, mapView, footer)
}

// renderMap runs the full frame pipeline: rasterize the visible layers
// through the camera, encode each kind's dot grid to braille, then
// composite the kinds into styled terminal lines.
func (m Model) renderMap(cols, rows int) string {
	grids := render.Rasterize(m.cam, m.visibleLayers(), m.index)

	glyphs := make([][]rune, rows)
	kinds := make([][]geo.Kind, rows)
	for y := 0; y < rows; y++ {
		glyphs[y] = make([]rune, cols)
		kinds[y] = make([]geo.Kind, cols)
		for x := 0; x < cols; x++ {
			glyphs[y][x] = ' '
		}
	}

	for _, k := range drawOrder {
		g, ok := grids[k]
		if !ok {
			continue
		}
		rowsOfGlyphs := render.Encode(g)
		for y := 0; y < rows && y < len(rowsOfGlyphs); y++ {
			for x := 0; x < cols && x < len(rowsOfGlyphs[y]); x++ {
				if r := rowsOfGlyphs[y][x]; r != ' ' {
					glyphs[y][x] = r
					kinds[y][x] = k
				}
			}
		}
	}

	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		lines[y] = styleRow(glyphs[y], kinds[y])
	}
	return strings.Join(lines, "\n")
}

// styleRow groups a row into runs of one kind so each run is styled
// once instead of per rune.
func styleRow(glyphs []rune, kinds []geo.Kind) string {
	var b strings.Builder
	start := 0
	for start < len(glyphs) {
		end := start
		for end < len(glyphs) && kinds[end] == kinds[start] {
			end++
		}
		run := string(glyphs[start:end])
		if strings.TrimSpace(run) == "" {
			b.WriteString(run)
		} else {
			b.WriteString(kindStyle(kinds[start]).Render(run))
		}
		start = end
	}
	return b.String()
}

func (m Model) renderFooter(w int) string {
	status := dimStyle.Render(" " + m.status + " ")
	view := dimStyle.Render(fmt.Sprintf(" %s  %.1fx  %d features ",
		formatCenter(m.cam.Center), m.cam.Zoom, m.index.Size()))
	spacerW := w - lipgloss.Width(status) - lipgloss.Width(view)
	if spacerW < 0 {
		spacerW = 0
	}
	top := status + strings.Repeat(" ", spacerW) + view

	help := ""
	if m.helpVisible {
		parts := make([]string, 0, 12)
		for _, b := range m.keys.helpBindings() {
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		help = dimStyle.Render("  " + strings.Join(parts, "  "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, help)
}

// formatCenter renders the camera center with hemisphere suffixes,
// e.g. "20.0°N, 0.0°E".
func formatCenter(p geo.Point) string {
	ns := "N"
	if p.Lat < 0 {
		ns = "S"
	}
	ew := "E"
	if p.Lon < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.1f°%s, %.1f°%s", abs(p.Lat), ns, abs(p.Lon), ew)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
