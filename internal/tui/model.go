package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"terramap/internal/geo"
	"terramap/internal/render"
)

const (
	headerHeight = 1
	footerHeight = 2

	// Pan step per keypress, in braille dots. Horizontal is larger
	// because a cell is two dots wide but four tall.
	panStepX = 10
	panStepY = 6
)

type Model struct {
	width  int
	height int

	cam    *render.Camera
	layers []geo.Layer
	index  *geo.Index
	source string

	// layer visibility
	showCoast   bool
	showBorders bool
	showCities  bool

	helpVisible bool
	status      string
	keys        keyMap
}

// New builds the initial model around an already-loaded dataset. The
// source string names where the data came from, for the status line.
func New(layers []geo.Layer, index *geo.Index, source string) Model {
	return Model{
		cam:         render.NewCamera(80, 24),
		layers:      layers,
		index:       index,
		source:      source,
		showCoast:   true,
		showBorders: true,
		showCities:  true,
		helpVisible: true,
		status:      "loaded " + source,
		keys:        defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// visibleLayers filters by the current toggles. Fallback outlines ride
// the coastline toggle.
func (m Model) visibleLayers() []geo.Layer {
	out := make([]geo.Layer, 0, len(m.layers))
	for _, l := range m.layers {
		switch l.Kind {
		case geo.Coastline, geo.FallbackOutline:
			if !m.showCoast {
				continue
			}
		case geo.Border:
			if !m.showBorders {
				continue
			}
		case geo.City:
			if !m.showCities {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}
