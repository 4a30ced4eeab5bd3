package tui

import (
	"fmt"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cam.Resize(m.mapSize())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.PanLeft):
			m.cam.Pan(-panStepX, 0)
		case key.Matches(msg, m.keys.PanRight):
			m.cam.Pan(panStepX, 0)
		case key.Matches(msg, m.keys.PanUp):
			m.cam.Pan(0, -panStepY)
		case key.Matches(msg, m.keys.PanDown):
			m.cam.Pan(0, panStepY)

		case key.Matches(msg, m.keys.ZoomIn):
			m.cam.ZoomIn()
			m.status = fmt.Sprintf("zoom: %.1fx", m.cam.Zoom)
		case key.Matches(msg, m.keys.ZoomOut):
			m.cam.ZoomOut()
			m.status = fmt.Sprintf("zoom: %.1fx", m.cam.Zoom)

		case key.Matches(msg, m.keys.Reset):
			m.cam.Reset()
			m.status = "view reset"

		case key.Matches(msg, m.keys.Coast):
			m.showCoast = !m.showCoast
			m.status = fmt.Sprintf("coastlines: %v", m.showCoast)
		case key.Matches(msg, m.keys.Borders):
			m.showBorders = !m.showBorders
			m.status = fmt.Sprintf("borders: %v", m.showBorders)
		case key.Matches(msg, m.keys.Cities):
			m.showCities = !m.showCities
			m.status = fmt.Sprintf("cities: %v", m.showCities)

		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}

// mapSize is the character area the camera renders into: everything
// between the header and the footer.
func (m Model) mapSize() (cols, rows int) {
	cols = m.width
	if cols < 10 {
		cols = 10
	}
	rows = m.height - headerHeight - footerHeight
	if rows < 4 {
		rows = 4
	}
	return cols, rows
}
