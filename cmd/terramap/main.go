package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"terramap/internal/geo"
	"terramap/internal/tui"
)

const defaultDataPath = "data/world.geojson"

func main() {
	path := defaultDataPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Any load failure falls back to the built-in outlines; the
	// renderer never knows the difference.
	layers, err := geo.Load(path)
	source := filepath.Base(path)
	if err != nil {
		layers = geo.BuiltinWorld()
		source = "built-in outlines"
	}
	index := geo.NewIndex(layers)

	m := tui.New(layers, index, source)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
