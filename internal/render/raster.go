package render

import (
	"math"

	"terramap/internal/geo"
)

// Rasterize projects every layer through the camera and draws it onto a
// per-kind DotGrid. Kinds keep separate grids so the view can style
// them independently. Work is O(total points) regardless of zoom; the
// spatial index (when given) skips polylines wholly outside the view.
func Rasterize(cam *Camera, layers []geo.Layer, ix *geo.Index) map[geo.Kind]*DotGrid {
	cols, rows := cam.Viewport()
	view := cam.Bounds()

	var visible map[*geo.Polyline]bool
	if ix != nil {
		hits := ix.Search(view)
		visible = make(map[*geo.Polyline]bool, len(hits))
		for _, pl := range hits {
			visible[pl] = true
		}
	}

	out := make(map[geo.Kind]*DotGrid, len(layers))
	for i := range layers {
		layer := &layers[i]
		g := out[layer.Kind]
		if g == nil {
			g = NewDotGrid(cols, rows)
			out[layer.Kind] = g
		}
		for j := range layer.Lines {
			pl := &layer.Lines[j]
			if visible != nil {
				if !visible[pl] {
					continue
				}
			} else if !pl.BBox.Intersects(view) {
				continue
			}
			drawPolyline(cam, g, pl)
		}
		for _, mk := range layer.Markers {
			drawMarker(cam, g, mk.Point, 1)
		}
	}
	return out
}

// drawPolyline walks consecutive point pairs. A single-point line sets
// at most one dot. Any projection that comes out non-finite breaks the
// chain and is treated as off-canvas.
func drawPolyline(cam *Camera, g *DotGrid, pl *geo.Polyline) {
	w, h := g.Size()
	havePrev := false
	var px, py int
	for _, p := range pl.Points {
		fx, fy := cam.Project(p)
		if !finite(fx) || !finite(fy) {
			havePrev = false
			continue
		}
		x, y := int(fx), int(fy)
		if havePrev {
			if segmentMayHit(px, py, x, y, w, h) {
				drawLine(g, px, py, x, y)
			}
		} else if len(pl.Points) == 1 {
			g.Set(x, y)
		}
		px, py = x, y
		havePrev = true
	}
}

// segmentMayHit is the cheap reject: bounding box of the segment
// against the canvas.
func segmentMayHit(x0, y0, x1, y1, w, h int) bool {
	return max(x0, x1) >= 0 && min(x0, x1) < w &&
		max(y0, y1) >= 0 && min(y0, y1) < h
}

// drawLine rasterizes a segment with integer Bresenham. Degenerate
// segments (both endpoints equal) set a single dot.
func drawLine(g *DotGrid, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		g.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawMarker draws a small cross centered on a point feature.
func drawMarker(cam *Camera, g *DotGrid, p geo.Point, size int) {
	fx, fy := cam.Project(p)
	if !finite(fx) || !finite(fy) {
		return
	}
	x, y := int(fx), int(fy)
	for i := -size; i <= size; i++ {
		g.Set(x+i, y)
		g.Set(x, y+i)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
