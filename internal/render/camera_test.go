package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"terramap/internal/geo"
)

func TestProjectDeterministic(t *testing.T) {
	c := NewCamera(80, 24)
	c.Pan(13, -7)
	c.ZoomIn()
	p := geo.Point{Lon: 12.5, Lat: 41.9}
	x1, y1 := c.Project(p)
	x2, y2 := c.Project(p)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func TestProjectCenterIsCanvasCenter(t *testing.T) {
	c := NewCamera(40, 10)
	x, y := c.Project(c.Center)
	w, h := c.DotSize()
	assert.InDelta(t, float64(w)/2, x, 1e-9)
	assert.InDelta(t, float64(h)/2, y, 1e-9)
}

func TestProjectInvertsYAxis(t *testing.T) {
	c := NewCamera(40, 10)
	_, yNorth := c.Project(geo.Point{Lon: 0, Lat: 60})
	_, ySouth := c.Project(geo.Point{Lon: 0, Lat: -60})
	assert.Less(t, yNorth, ySouth, "higher latitude must land on a smaller row")
}

func TestUnprojectInvertsProject(t *testing.T) {
	c := NewCamera(80, 24)
	c.ZoomIn()
	c.Pan(25, -40)
	p := geo.Point{Lon: -73.9, Lat: 40.7}
	x, y := c.Project(p)
	back := c.Unproject(x, y)
	assert.InDelta(t, p.Lon, back.Lon, 1e-9)
	assert.InDelta(t, p.Lat, back.Lat, 1e-9)
}

func TestResetRestoresDefaultView(t *testing.T) {
	c := NewCamera(80, 24)
	want := *NewCamera(80, 24)
	for i := 0; i < 10; i++ {
		c.Pan(31, -17)
		c.ZoomIn()
	}
	c.Reset()
	assert.Equal(t, want.Center, c.Center)
	assert.Equal(t, want.Zoom, c.Zoom)

	// reset is deterministic regardless of history
	c.ZoomOut()
	c.Pan(-500, 200)
	c.Reset()
	assert.Equal(t, want.Center, c.Center)
	assert.Equal(t, want.Zoom, c.Zoom)
}

func TestZoomConvergesToBounds(t *testing.T) {
	c := NewCamera(80, 24)
	for i := 0; i < 100; i++ {
		c.ZoomIn()
		assert.LessOrEqual(t, c.Zoom, zoomMax)
	}
	assert.Equal(t, zoomMax, c.Zoom)

	for i := 0; i < 100; i++ {
		c.ZoomOut()
		assert.GreaterOrEqual(t, c.Zoom, zoomMin)
	}
	assert.Equal(t, zoomMin, c.Zoom)
}

func TestPanRoundTrip(t *testing.T) {
	c := NewCamera(80, 24)
	origin := c.Center
	c.Pan(37, 0)
	c.Pan(-37, 0)
	assert.InDelta(t, origin.Lon, c.Center.Lon, 1e-9)
	assert.InDelta(t, origin.Lat, c.Center.Lat, 1e-9)
}

func TestPanIsScreenRelative(t *testing.T) {
	// The same dot delta must cover fewer degrees when zoomed in.
	wide := NewCamera(80, 24)
	wide.Pan(10, 0)
	wideShift := wide.Center.Lon

	zoomed := NewCamera(80, 24)
	zoomed.ZoomIn()
	zoomed.Pan(10, 0)
	assert.Less(t, zoomed.Center.Lon, wideShift)
}

func TestPanWrapsLongitude(t *testing.T) {
	c := NewCamera(80, 24)
	// one full canvas width is 360 degrees at zoom 1
	w, _ := c.DotSize()
	c.Pan(w*3/4, 0)
	assert.Greater(t, c.Center.Lon, -180.0)
	assert.LessOrEqual(t, c.Center.Lon, 180.0)
	assert.Less(t, c.Center.Lon, 0.0, "panning past the seam must wrap west")
}

func TestPanClampsLatitude(t *testing.T) {
	c := NewCamera(80, 24)
	for i := 0; i < 50; i++ {
		c.Pan(0, -1000)
	}
	assert.Equal(t, latLimit, c.Center.Lat)
	for i := 0; i < 50; i++ {
		c.Pan(0, 1000)
	}
	assert.Equal(t, -latLimit, c.Center.Lat)
}

func TestBoundsContainCenter(t *testing.T) {
	c := NewCamera(80, 24)
	c.ZoomIn()
	c.Pan(40, 12)
	b := c.Bounds()
	assert.Less(t, b.MinLon, c.Center.Lon)
	assert.Greater(t, b.MaxLon, c.Center.Lon)
	assert.Less(t, b.MinLat, c.Center.Lat)
	assert.Greater(t, b.MaxLat, c.Center.Lat)
}
