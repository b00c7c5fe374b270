// Package lineutil converts a solved geograph.GeoPathResult into line
// geometry suitable for downstream serialization, using
// github.com/paulmach/orb and its geojson subpackage (the same library the
// OSM-parsing routers in this corpus depend on) at the output boundary only
// — the core solver packages keep their own small geo.Coordinate type and
// never import orb.
package lineutil
