package render

// DotGrid is the sub-pixel rasterization target: one bool per braille
// dot, (cols*2) wide by (rows*4) tall, flat row-major. It is rebuilt
// from scratch every frame; Set ignores out-of-bounds coordinates so
// callers never have to clip exactly.
type DotGrid struct {
	w, h int
	dots []bool
}

// NewDotGrid allocates an all-false grid sized for cols x rows cells.
func NewDotGrid(cols, rows int) *DotGrid {
	w, h := cols*2, rows*4
	return &DotGrid{w: w, h: h, dots: make([]bool, w*h)}
}

// Size returns the grid dimensions in dots.
func (g *DotGrid) Size() (w, h int) { return g.w, g.h }

// Set marks the dot at (x, y). Out-of-range coordinates are dropped.
func (g *DotGrid) Set(x, y int) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.dots[y*g.w+x] = true
}

// At reports whether the dot at (x, y) is set; out of range reads false.
func (g *DotGrid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return g.dots[y*g.w+x]
}

// Any reports whether any dot is set.
func (g *DotGrid) Any() bool {
	for _, d := range g.dots {
		if d {
			return true
		}
	}
	return false
}
