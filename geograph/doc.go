// Package geograph wraps a graph.Graph with real-world coordinates, so that
// shortest-path queries can be issued in latitude/longitude rather than
// node ids. A query's origin and destination need not be existing nodes:
// GetShortestPath temporarily grafts the nearest candidate nodes onto the
// graph with circuity-weighted synthetic edges, solves, and then undoes the
// graft before returning.
package geograph
