package render

import (
	"terramap/internal/geo"
)

// Default view: whole world, mid-northern bias so the major landmasses
// sit near the middle of the canvas.
const (
	defaultLon  = 0.0
	defaultLat  = 20.0
	defaultZoom = 1.0

	zoomStep = 1.5
	zoomMin  = 0.5
	zoomMax  = 100.0

	// Panning past the poles is useless; latitude clamps well before ±90.
	latLimit = 85.0
)

// A terminal cell is about twice as tall as it is wide; with 2x4
// braille dots per cell the dot pitch comes out square, so latitude and
// longitude share one scale in dot space. cellAspect stays explicit for
// fonts that deviate from 1:2.
const (
	cellAspect = 2.0
	latFactor  = (4.0 / 2.0) / cellAspect
)

// Camera is the view state: geographic center, zoom factor, and the
// viewport size in character cells. It is owned by the render loop and
// mutated only through Pan/Zoom/Reset/Resize; Project and Unproject are
// pure reads. Longitude wraps across the ±180° seam, latitude clamps.
type Camera struct {
	Center geo.Point
	Zoom   float64

	cols int
	rows int
}

// NewCamera returns a camera at the default world view.
func NewCamera(cols, rows int) *Camera {
	c := &Camera{}
	c.Resize(cols, rows)
	c.Reset()
	return c
}

// Reset restores the default view regardless of prior pan/zoom history.
func (c *Camera) Reset() {
	c.Center = geo.Point{Lon: defaultLon, Lat: defaultLat}
	c.Zoom = defaultZoom
}

// Resize sets the viewport size in character cells.
func (c *Camera) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols = cols
	c.rows = rows
}

// Viewport returns the size in character cells.
func (c *Camera) Viewport() (cols, rows int) { return c.cols, c.rows }

// DotSize returns the canvas size in braille dots.
func (c *Camera) DotSize() (w, h int) { return c.cols * 2, c.rows * 4 }

// dotsPerDegree is the projection scale: at zoom 1 the full longitude
// span fits the canvas width.
func (c *Camera) dotsPerDegree() float64 {
	return c.Zoom * float64(c.cols*2) / 360.0
}

// Pan shifts the center by a dot-space delta. The geographic shift is
// inversely proportional to zoom, so panning feels constant-speed on
// screen at any zoom level.
func (c *Camera) Pan(dx, dy int) {
	k := c.dotsPerDegree()
	if k <= 0 {
		return
	}
	c.Center.Lon += float64(dx) / k
	c.Center.Lat -= float64(dy) / (k * latFactor)

	if c.Center.Lon > 180 {
		c.Center.Lon -= 360
	} else if c.Center.Lon < -180 {
		c.Center.Lon += 360
	}
	if c.Center.Lat > latLimit {
		c.Center.Lat = latLimit
	} else if c.Center.Lat < -latLimit {
		c.Center.Lat = -latLimit
	}
}

// ZoomIn zooms by one step, anchored on the center.
func (c *Camera) ZoomIn() {
	c.Zoom *= zoomStep
	if c.Zoom > zoomMax {
		c.Zoom = zoomMax
	}
}

// ZoomOut zooms out by one step.
func (c *Camera) ZoomOut() {
	c.Zoom /= zoomStep
	if c.Zoom < zoomMin {
		c.Zoom = zoomMin
	}
}

// Project maps a geographic point into floating-point dot coordinates.
// Latitude increases upward while dot rows increase downward, so the
// y axis inverts here.
func (c *Camera) Project(p geo.Point) (x, y float64) {
	k := c.dotsPerDegree()
	cw, ch := c.DotSize()
	x = float64(cw)/2 + (p.Lon-c.Center.Lon)*k
	y = float64(ch)/2 - (p.Lat-c.Center.Lat)*k*latFactor
	return x, y
}

// Unproject is the inverse of Project.
func (c *Camera) Unproject(x, y float64) geo.Point {
	k := c.dotsPerDegree()
	cw, ch := c.DotSize()
	return geo.Point{
		Lon: c.Center.Lon + (x-float64(cw)/2)/k,
		Lat: c.Center.Lat - (y-float64(ch)/2)/(k*latFactor),
	}
}

// Bounds returns the geographic rectangle currently visible. Near the
// antimeridian the box simply extends past ±180 rather than splitting.
func (c *Camera) Bounds() geo.BBox {
	cw, ch := c.DotSize()
	tl := c.Unproject(0, 0)
	br := c.Unproject(float64(cw), float64(ch))
	return geo.BBox{MinLon: tl.Lon, MinLat: br.Lat, MaxLon: br.Lon, MaxLat: tl.Lat}
}
