package builder

import (
	"math/rand"

	"github.com/halvard-ren/geopath/graph"
)

// RandomSparse returns a graph.Graph on n nodes where every unordered pair
// independently gets an arc with probability p, weighted uniformly in
// [minWeight, maxWeight). It is adapted from the teacher's
// builder.RandomSparse Erdos-Renyi generator, trimmed to this module's
// int-keyed undirected Graph: no string vertex ids, no directed/loop/weighted
// mode flags to honor, since graph.Graph only has one mode.
//
// Edge trials are made in a stable i<j order for a given rng, so two calls
// with rngs seeded identically produce identical graphs.
func RandomSparse(rng *rand.Rand, n int, p, minWeight, maxWeight float64) *graph.Graph {
	g := graph.NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			weight := minWeight + rng.Float64()*(maxWeight-minWeight)
			_ = g.AddArc(i, j, weight)
		}
	}

	return g
}
