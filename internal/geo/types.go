package geo

// Point is a geographic coordinate in signed degrees (lon, lat).
type Point struct {
	Lon float64
	Lat float64
}

// BBox is an axis-aligned geographic bounding box.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Extend grows the box to include p.
func (b *BBox) Extend(p Point) {
	if p.Lon < b.MinLon {
		b.MinLon = p.Lon
	}
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lon > b.MaxLon {
		b.MaxLon = p.Lon
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
}

// Intersects reports whether the two boxes overlap.
func (b BBox) Intersects(o BBox) bool {
	return b.MinLon <= o.MaxLon && b.MaxLon >= o.MinLon &&
		b.MinLat <= o.MaxLat && b.MaxLat >= o.MinLat
}

// Polyline is an ordered run of geographic points. It is open unless the
// first point is repeated as the last. Immutable once loaded.
type Polyline struct {
	Points []Point
	BBox   BBox
}

// NewPolyline builds a polyline and precomputes its bounding box.
func NewPolyline(pts []Point) Polyline {
	pl := Polyline{Points: pts}
	if len(pts) == 0 {
		return pl
	}
	pl.BBox = BBox{MinLon: pts[0].Lon, MinLat: pts[0].Lat, MaxLon: pts[0].Lon, MaxLat: pts[0].Lat}
	for _, p := range pts[1:] {
		pl.BBox.Extend(p)
	}
	return pl
}

// Kind tags a layer with the sort of geography it holds. Styling and
// visibility toggles key off the kind.
type Kind int

const (
	Coastline Kind = iota
	Border
	FallbackOutline
	City
)

func (k Kind) String() string {
	switch k {
	case Coastline:
		return "coastline"
	case Border:
		return "border"
	case FallbackOutline:
		return "outline"
	case City:
		return "city"
	}
	return "unknown"
}

// Marker is a labeled point feature (city markers in the fallback set).
type Marker struct {
	Point Point
	Name  string
}

// Layer groups features of one kind. Line kinds carry polylines; the
// City kind carries markers instead.
type Layer struct {
	Kind    Kind
	Lines   []Polyline
	Markers []Marker
}

// PointCount is the total number of vertices across the layer's lines.
func (l Layer) PointCount() int {
	n := 0
	for _, pl := range l.Lines {
		n += len(pl.Points)
	}
	return n + len(l.Markers)
}
