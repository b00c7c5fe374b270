package lineutil

import (
	"github.com/halvard-ren/geopath/geograph"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineStrings converts result.CoordinatePath into one orb.LineString per
// segment. result.CoordinatePath is split at the antimeridian only when the
// query used geograph.AntimeridianSplit, so only such a result that crosses
// the dateline yields more than one LineString here; under the default
// geograph.AntimeridianInterpolate every result yields exactly one. orb.Point is (lon, lat) order, the opposite of
// geo.Coordinate, so this is the one place that ordering flip happens.
func LineStrings(result geograph.GeoPathResult) ([]orb.LineString, error) {
	if len(result.CoordinatePath) == 0 {
		return nil, ErrEmptyPath
	}

	lines := make([]orb.LineString, 0, len(result.CoordinatePath))
	for _, segment := range result.CoordinatePath {
		line := make(orb.LineString, len(segment))
		for i, coord := range segment {
			line[i] = orb.Point{coord.Lon, coord.Lat}
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// FeatureCollection wraps LineStrings(result) in a GeoJSON FeatureCollection
// with one LineString Feature per segment, per spec §6's GeoJSON emission
// contract. Each feature carries result.Length and result.Units as
// properties so a split path's total length travels with every segment.
func FeatureCollection(result geograph.GeoPathResult) (*geojson.FeatureCollection, error) {
	lines, err := LineStrings(result)
	if err != nil {
		return nil, err
	}

	collection := geojson.NewFeatureCollection()
	for _, line := range lines {
		feature := geojson.NewFeature(line)
		feature.Properties["length"] = result.Length
		feature.Properties["units"] = string(result.Units)
		collection.Append(feature)
	}

	return collection, nil
}
