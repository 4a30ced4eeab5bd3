package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads a GeoJSON file and returns its line work grouped into
// layers. LineString and MultiLineString geometries are taken as-is;
// Polygon and MultiPolygon geometries contribute their exterior rings as
// closed polylines (outlines only, holes and fill ignored). Point
// geometries are skipped.
func Load(path string) ([]Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	byKind := map[Kind][]Polyline{}
	addLine := func(k Kind, pts []Point) {
		if len(pts) < 2 {
			return
		}
		byKind[k] = append(byKind[k], NewPolyline(pts))
	}

	parsePoint := func(v any) (Point, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return Point{}, false
		}
		lon, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if !lok || !aok {
			return Point{}, false
		}
		return Point{Lon: lon, Lat: lat}, true
	}
	parseRing := func(v any) ([]Point, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var pts []Point
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				pts = append(pts, p)
			}
		}
		return pts, true
	}

	var walkGeom func(k Kind, g map[string]any)
	walkGeom = func(k Kind, g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "LineString":
			if pts, ok := parseRing(g["coordinates"]); ok {
				addLine(k, pts)
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if pts, ok := parseRing(el); ok {
						addLine(k, pts)
					}
				}
			}
		case "Polygon":
			// exterior ring only
			if rings, ok := g["coordinates"].([]any); ok && len(rings) > 0 {
				if pts, ok := parseRing(rings[0]); ok {
					addLine(k, pts)
				}
			}
		case "MultiPolygon":
			if polys, ok := g["coordinates"].([]any); ok {
				for _, poly := range polys {
					if rings, ok := poly.([]any); ok && len(rings) > 0 {
						if pts, ok := parseRing(rings[0]); ok {
							addLine(k, pts)
						}
					}
				}
			}
		case "GeometryCollection":
			if gs, ok := g["geometries"].([]any); ok {
				for _, el := range gs {
					if gm, ok := el.(map[string]any); ok {
						walkGeom(k, gm)
					}
				}
			}
		}
	}

	walkFeature := func(f map[string]any) {
		k := Coastline
		if props, ok := f["properties"].(map[string]any); ok {
			k = classify(props)
		}
		if g, ok := f["geometry"].(map[string]any); ok {
			walkGeom(k, g)
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					walkFeature(fm)
				}
			}
		}
	case "Feature":
		walkFeature(raw)
	default:
		// bare geometry
		walkGeom(Coastline, raw)
	}

	var layers []Layer
	for _, k := range []Kind{Coastline, Border} {
		if lines := byKind[k]; len(lines) > 0 {
			layers = append(layers, Layer{Kind: k, Lines: lines})
		}
	}
	if len(layers) == 0 {
		return nil, errors.New("no line geometries found")
	}
	return layers, nil
}

// classify maps Natural Earth style feature properties to a layer kind.
// Unknown features render as coastline.
func classify(props map[string]any) Kind {
	cla, _ := props["featurecla"].(string)
	cla = strings.ToLower(cla)
	switch {
	case strings.Contains(cla, "boundary"), strings.Contains(cla, "border"), strings.Contains(cla, "admin"):
		return Border
	default:
		return Coastline
	}
}
