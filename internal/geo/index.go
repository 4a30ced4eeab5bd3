package geo

import (
	"github.com/dhconnelly/rtreego"
)

// Index is an R-tree over polyline bounding boxes. The rasterizer
// queries it with the camera's visible bounds so features wholly
// off-screen are never walked. Built once at load, read-only after.
type Index struct {
	rtree *rtreego.Rtree
}

// indexedLine wraps a polyline for R-tree storage.
type indexedLine struct {
	line *Polyline
}

// Minimum rect extent; rtreego requires non-zero dimensions, and
// degenerate (single-dot or axis-aligned) lines have zero-area boxes.
const rectEpsilon = 0.0001

// Bounds implements rtreego.Spatial.
func (il *indexedLine) Bounds() rtreego.Rect {
	b := il.line.BBox
	lonLen := b.MaxLon - b.MinLon
	latLen := b.MaxLat - b.MinLat
	if lonLen < rectEpsilon {
		lonLen = rectEpsilon
	}
	if latLen < rectEpsilon {
		latLen = rectEpsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinLon, b.MinLat}, []float64{lonLen, latLen})
	return rect
}

// NewIndex indexes every line of every layer.
func NewIndex(layers []Layer) *Index {
	rt := rtreego.NewTree(2, 25, 50)
	for i := range layers {
		for j := range layers[i].Lines {
			rt.Insert(&indexedLine{line: &layers[i].Lines[j]})
		}
	}
	return &Index{rtree: rt}
}

// Search returns the polylines whose bounding boxes intersect b.
func (ix *Index) Search(b BBox) []*Polyline {
	lonLen := b.MaxLon - b.MinLon
	latLen := b.MaxLat - b.MinLat
	if lonLen < rectEpsilon {
		lonLen = rectEpsilon
	}
	if latLen < rectEpsilon {
		latLen = rectEpsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinLon, b.MinLat}, []float64{lonLen, latLen})
	if err != nil {
		return nil
	}
	spatials := ix.rtree.SearchIntersect(rect)
	out := make([]*Polyline, 0, len(spatials))
	for _, s := range spatials {
		out = append(out, s.(*indexedLine).line)
	}
	return out
}

// Size is the number of indexed polylines.
func (ix *Index) Size() int {
	return ix.rtree.Size()
}
