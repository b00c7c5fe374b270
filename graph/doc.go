// Package graph implements a sparse, undirected, non-negatively weighted
// graph over integer node ids 0..n-1, and the shortest-path algorithms that
// run on it: a lazy-deletion variant of Dijkstra, A*, BMSSP (a
// frontier-bounded multi-source solver for larger graphs), and single-source
// spanning trees for answering many shortest-path queries from the same
// origin cheaply.
//
// A *Graph is not safe for concurrent mutation and querying; callers that
// need that must add their own synchronization.
package graph
