// Package builder generates randomized graph.Graph instances for the
// property-based tests in graph: optimality (DijkstraMakowski
// and AStar must agree with a brute-force reference) and symmetry hold for
// any graph satisfying I1-I4, not just hand-picked fixtures.
package builder
