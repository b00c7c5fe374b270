// Package gridgraph builds a geograph.GeoGraph over the cells of an X×Y
// regular grid instead of arbitrary geographic coordinates. Cells are
// 8-connected by default (cardinal weight 1, diagonal weight sqrt(2)), or
// use a caller-supplied connectivity table via WithConnData; a set of
// blocked cells, or an exterior wall, removes cells and the edges that
// would otherwise cross them. Because grid cells are always exact nodes,
// queries are answered by direct cell-to-id lookup: there is no endpoint
// snapping and no antimeridian handling, unlike geograph.GetShortestPath.
package gridgraph
