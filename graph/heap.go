package graph

// pqItem is an entry in the priority queue used by the Dijkstra/A* variants
// in this package: a candidate node and the tentative cost to reach it.
type pqItem struct {
	node int
	cost float64
}

// nodePQ implements container/heap.Interface over []pqItem, ordered by
// smallest cost first. Staleness (an entry whose cost no longer matches the
// best known distance for its node) is detected by the caller on pop rather
// than by this type, which lets callers skip a separate decrease-key step.
type nodePQ []pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
