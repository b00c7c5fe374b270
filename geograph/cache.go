package geograph

import "github.com/halvard-ren/geopath/graph"

// cacheKey identifies a single cached spanning tree.
type cacheKey struct {
	version   int
	algorithm Algorithm
	root      int
}

// SpanningTreeCache memoizes MakowskisSpanningTree results keyed by graph
// version, algorithm, and root node. Any GeoGraph mutation bumps the graph
// version, so stale entries are never returned; they are evicted lazily on
// their next lookup miss rather than proactively swept, since a GeoGraph
// that mutates often and queries rarely would otherwise pay sweep cost for
// no benefit.
type SpanningTreeCache struct {
	entries map[cacheKey]graph.SpanningTreeResult
}

// NewSpanningTreeCache returns an empty cache.
func NewSpanningTreeCache() *SpanningTreeCache {
	return &SpanningTreeCache{entries: make(map[cacheKey]graph.SpanningTreeResult)}
}

// get returns the cached tree for (version, algorithm, root), if present.
func (c *SpanningTreeCache) get(version int, algorithm Algorithm, root int) (graph.SpanningTreeResult, bool) {
	tree, ok := c.entries[cacheKey{version: version, algorithm: algorithm, root: root}]

	return tree, ok
}

// put stores tree under (version, algorithm, root), evicting any entry for
// the same (algorithm, root) at an older version.
func (c *SpanningTreeCache) put(version int, algorithm Algorithm, root int, tree graph.SpanningTreeResult) {
	key := cacheKey{version: version, algorithm: algorithm, root: root}
	for existing := range c.entries {
		if existing.algorithm == algorithm && existing.root == root && existing.version != version {
			delete(c.entries, existing)
		}
	}
	c.entries[key] = tree
}

// Len reports the number of live cache entries, mainly for tests.
func (c *SpanningTreeCache) Len() int {
	return len(c.entries)
}
