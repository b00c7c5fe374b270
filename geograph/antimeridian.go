package geograph

import "github.com/halvard-ren/geopath/geo"

// antimeridianCoordinatePath renders coords as a GeoPathResult.CoordinatePath
// according to mode: AntimeridianInterpolate (the default) keeps a single
// continuous path and inserts one point at ±180° per crossing;
// AntimeridianSplit instead breaks the path into one segment per side of the
// dateline, the shape most GeoJSON consumers expect when the antimeridian
// must not be drawn as a line straight across the map.
func antimeridianCoordinatePath(coords []geo.Coordinate, mode AntimeridianMode) [][]geo.Coordinate {
	if mode == AntimeridianSplit {
		return splitAntimeridian(coords)
	}

	return interpolateAntimeridian(coords)
}

// interpolateAntimeridian walks coords and, at each dateline crossing,
// inserts a single linearly-interpolated point sitting exactly on the
// antimeridian (±180°) before continuing with the real next coordinate, so
// the result is one continuous path rather than a family of segments. The
// crossing-latitude interpolation is the same arithmetic splitAntimeridian
// uses.
func interpolateAntimeridian(coords []geo.Coordinate) [][]geo.Coordinate {
	if len(coords) == 0 {
		return nil
	}

	path := []geo.Coordinate{coords[0]}

	for i := 1; i < len(coords); i++ {
		prev := coords[i-1]
		curr := coords[i]

		if crossing, ok := antimeridianCrossing(prev, curr); ok {
			path = append(path, crossing)
		}
		path = append(path, curr)
	}

	return [][]geo.Coordinate{path}
}

// antimeridianCrossing reports the point where the prev->curr segment
// crosses ±180° longitude, if it does.
func antimeridianCrossing(prev, curr geo.Coordinate) (geo.Coordinate, bool) {
	dLon := curr.Lon - prev.Lon
	if dLon <= 180 && dLon >= -180 {
		return geo.Coordinate{}, false
	}

	unwrappedCurrLon := curr.Lon
	if dLon > 180 {
		unwrappedCurrLon -= 360
	} else {
		unwrappedCurrLon += 360
	}

	crossingLon := -180.0
	if unwrappedCurrLon > prev.Lon {
		crossingLon = 180.0
	}

	t := (crossingLon - prev.Lon) / (unwrappedCurrLon - prev.Lon)
	crossingLat := prev.Lat + t*(curr.Lat-prev.Lat)

	return geo.Coordinate{Lat: crossingLat, Lon: crossingLon}, true
}

// splitAntimeridian breaks coords into one or more contiguous segments,
// splitting wherever consecutive points cross the ±180° longitude line,
// and linearly interpolating the crossing latitude so each segment's
// endpoints sit exactly on the antimeridian.
func splitAntimeridian(coords []geo.Coordinate) [][]geo.Coordinate {
	if len(coords) == 0 {
		return nil
	}

	segments := [][]geo.Coordinate{{coords[0]}}
	current := 0

	for i := 1; i < len(coords); i++ {
		prev := coords[i-1]
		curr := coords[i]

		crossing, ok := antimeridianCrossing(prev, curr)
		if !ok {
			segments[current] = append(segments[current], curr)
			continue
		}

		segments[current] = append(segments[current], crossing)
		segments = append(segments, []geo.Coordinate{{Lat: crossing.Lat, Lon: -crossing.Lon}})
		current++
		segments[current] = append(segments[current], curr)
	}

	return segments
}
