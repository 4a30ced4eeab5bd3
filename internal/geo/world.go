package geo

// BuiltinWorld returns a coarse set of continent outlines and major
// cities used whenever no GeoJSON file is available. The outlines are
// deliberately low-fidelity; they exist so the viewer always has
// something to draw.
func BuiltinWorld() []Layer {
	mk := func(coords ...[2]float64) Polyline {
		pts := make([]Point, len(coords))
		for i, c := range coords {
			pts[i] = Point{Lon: c[0], Lat: c[1]}
		}
		return NewPolyline(pts)
	}

	northAmerica := mk(
		[2]float64{-168, 65}, [2]float64{-166, 60}, [2]float64{-141, 60}, [2]float64{-130, 55},
		[2]float64{-125, 48}, [2]float64{-124, 40}, [2]float64{-117, 32}, [2]float64{-110, 25},
		[2]float64{-97, 25}, [2]float64{-97, 28}, [2]float64{-82, 24}, [2]float64{-80, 25},
		[2]float64{-81, 31}, [2]float64{-75, 35}, [2]float64{-70, 41}, [2]float64{-67, 45},
		[2]float64{-65, 47}, [2]float64{-55, 47}, [2]float64{-52, 47}, [2]float64{-55, 52},
		[2]float64{-58, 55}, [2]float64{-64, 60}, [2]float64{-73, 62}, [2]float64{-80, 63},
		[2]float64{-95, 62}, [2]float64{-110, 68}, [2]float64{-130, 70}, [2]float64{-145, 70},
		[2]float64{-168, 65},
	)
	southAmerica := mk(
		[2]float64{-80, 10}, [2]float64{-75, 5}, [2]float64{-70, 5}, [2]float64{-60, 5},
		[2]float64{-50, 0}, [2]float64{-35, -5}, [2]float64{-35, -10}, [2]float64{-38, -15},
		[2]float64{-40, -22}, [2]float64{-48, -25}, [2]float64{-55, -34}, [2]float64{-58, -38},
		[2]float64{-65, -42}, [2]float64{-68, -50}, [2]float64{-75, -52}, [2]float64{-75, -45},
		[2]float64{-72, -40}, [2]float64{-72, -30}, [2]float64{-70, -20}, [2]float64{-70, -15},
		[2]float64{-80, -5}, [2]float64{-80, 0}, [2]float64{-80, 10},
	)
	europe := mk(
		[2]float64{-10, 36}, [2]float64{-5, 36}, [2]float64{0, 38}, [2]float64{5, 43},
		[2]float64{10, 44}, [2]float64{15, 45}, [2]float64{20, 40}, [2]float64{25, 37},
		[2]float64{30, 40}, [2]float64{35, 42}, [2]float64{40, 43}, [2]float64{40, 55},
		[2]float64{30, 60}, [2]float64{25, 65}, [2]float64{20, 70}, [2]float64{10, 71},
		[2]float64{5, 62}, [2]float64{5, 58}, [2]float64{-5, 58}, [2]float64{-10, 52},
		[2]float64{-5, 48}, [2]float64{-5, 43}, [2]float64{-10, 36},
	)
	africaSouth := mk(
		[2]float64{-17, 15}, [2]float64{-15, 10}, [2]float64{-10, 5}, [2]float64{0, 5},
		[2]float64{10, 5}, [2]float64{15, 0}, [2]float64{20, -5}, [2]float64{25, -10},
		[2]float64{35, -20}, [2]float64{35, -25}, [2]float64{30, -30}, [2]float64{20, -35},
		[2]float64{18, -35}, [2]float64{15, -30}, [2]float64{10, -15}, [2]float64{10, 0},
		[2]float64{5, 5}, [2]float64{-5, 5}, [2]float64{-10, 10}, [2]float64{-17, 15},
	)
	africaNorth := mk(
		[2]float64{-17, 15}, [2]float64{-17, 20}, [2]float64{-15, 28}, [2]float64{-5, 35},
		[2]float64{10, 37}, [2]float64{20, 33}, [2]float64{25, 32}, [2]float64{35, 30},
		[2]float64{35, 20}, [2]float64{42, 12}, [2]float64{50, 12}, [2]float64{45, 5},
		[2]float64{35, -5}, [2]float64{35, -20},
	)
	asia := mk(
		[2]float64{35, 42}, [2]float64{40, 43}, [2]float64{50, 40}, [2]float64{55, 37},
		[2]float64{60, 25}, [2]float64{65, 25}, [2]float64{70, 20}, [2]float64{75, 15},
		[2]float64{80, 8}, [2]float64{80, 15}, [2]float64{88, 22}, [2]float64{92, 22},
		[2]float64{95, 16}, [2]float64{100, 14}, [2]float64{105, 10}, [2]float64{110, 20},
		[2]float64{115, 22}, [2]float64{120, 22}, [2]float64{122, 25}, [2]float64{125, 30},
		[2]float64{130, 35}, [2]float64{135, 35}, [2]float64{140, 40}, [2]float64{145, 45},
		[2]float64{145, 50}, [2]float64{140, 55}, [2]float64{135, 55}, [2]float64{130, 52},
		[2]float64{130, 43}, [2]float64{120, 40}, [2]float64{110, 45}, [2]float64{90, 50},
		[2]float64{70, 55}, [2]float64{60, 55}, [2]float64{50, 50}, [2]float64{40, 43},
	)
	australia := mk(
		[2]float64{115, -20}, [2]float64{120, -18}, [2]float64{130, -12}, [2]float64{140, -12},
		[2]float64{145, -15}, [2]float64{150, -25}, [2]float64{153, -30}, [2]float64{150, -35},
		[2]float64{145, -38}, [2]float64{140, -38}, [2]float64{135, -35}, [2]float64{130, -32},
		[2]float64{125, -32}, [2]float64{115, -35}, [2]float64{115, -25}, [2]float64{115, -20},
	)

	cities := []Marker{
		{Point: Point{Lon: -74.0, Lat: 40.7}, Name: "New York"},
		{Point: Point{Lon: -0.1, Lat: 51.5}, Name: "London"},
		{Point: Point{Lon: 2.3, Lat: 48.9}, Name: "Paris"},
		{Point: Point{Lon: 139.7, Lat: 35.7}, Name: "Tokyo"},
		{Point: Point{Lon: 151.2, Lat: -33.9}, Name: "Sydney"},
		{Point: Point{Lon: -43.2, Lat: -22.9}, Name: "Rio"},
		{Point: Point{Lon: 37.6, Lat: 55.8}, Name: "Moscow"},
		{Point: Point{Lon: 116.4, Lat: 39.9}, Name: "Beijing"},
		{Point: Point{Lon: 77.2, Lat: 28.6}, Name: "Delhi"},
		{Point: Point{Lon: -118.2, Lat: 34.0}, Name: "Los Angeles"},
	}

	return []Layer{
		{
			Kind: FallbackOutline,
			Lines: []Polyline{
				northAmerica, southAmerica, europe,
				africaSouth, africaNorth, asia, australia,
			},
		},
		{Kind: City, Markers: cities},
	}
}
