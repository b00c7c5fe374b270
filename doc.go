// Package geopath is an in-memory shortest-path engine for sparse weighted
// graphs and the geographic networks built on top of them.
//
// What's here:
//
//	geo/      — haversine great-circle distance and distance-unit conversion
//	graph/    — int-indexed sparse graph, Dijkstra (plain and lazy-deletion),
//	            A*, and single-source spanning trees
//	geograph/ — a geographic wrapper around graph.Graph: snaps arbitrary
//	            coordinates onto the network, answers shortest-path queries
//	            in real units, and caches spanning trees across queries
//	gridgraph/ — builds an 8-connected GeoGraph from an X×Y grid of blocked
//	            and open cells
//	lineutil/ — renders a solved path as GeoJSON
//	builder/  — random sparse graph generation for tests
//
// The engine is single-threaded by design: a *graph.Graph or *geograph.GeoGraph
// must not be queried and mutated concurrently from different goroutines.
// Nothing here performs I/O or blocks.
package geopath
