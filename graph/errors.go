package graph

import "errors"

// Sentinel errors returned by this package. Callers should branch on these
// with errors.Is rather than string-matching.
var (
	// ErrInvalidNode indicates a node id outside [0, NodeCount) was used.
	ErrInvalidNode = errors.New("graph: invalid node id")
	// ErrInvalidGraph indicates the graph violates one of its structural
	// invariants (negative weight, self-loop, asymmetric adjacency).
	ErrInvalidGraph = errors.New("graph: invalid graph")
	// ErrUnreachable indicates no path exists between the requested nodes.
	ErrUnreachable = errors.New("graph: destination unreachable from origin")
	// ErrCorruptState indicates an internal consistency check failed; this
	// should never happen for a Graph built only through this package's API.
	ErrCorruptState = errors.New("graph: corrupt internal state")
	// ErrDuplicateArc indicates an arc already exists between two nodes.
	ErrDuplicateArc = errors.New("graph: arc already exists")
	// ErrMissingArc indicates no arc exists between two nodes.
	ErrMissingArc = errors.New("graph: arc does not exist")
	// ErrTreeRootMismatch indicates a SpanningTreeResult was used to
	// reconstruct a path between two nodes, neither of which is the tree's
	// root.
	ErrTreeRootMismatch = errors.New("graph: neither origin nor destination is the spanning tree's root")
	// ErrGraphTooSmall indicates BMSSP was called on a graph with 2 or
	// fewer nodes, too small for its recursive frontier-splitting strategy
	// to do anything but add overhead over DijkstraMakowski.
	ErrGraphTooSmall = errors.New("graph: BMSSP requires more than 2 nodes")
)
