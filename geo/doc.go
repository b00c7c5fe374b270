// Package geo provides the distance primitives shared by the graph-based
// routing packages: a great-circle (haversine) distance function and the
// fixed table of output units it can be reported in.
package geo
