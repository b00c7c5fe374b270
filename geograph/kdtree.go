package geograph

import (
	"math"

	"github.com/halvard-ren/geopath/geo"
)

// kdPoint is one leaf of a geoKDTree: a node's coordinate mapped onto the
// unit sphere, paired with the node id it came from.
type kdPoint struct {
	x, y, z float64
	idx     int
}

// kdNode is one level of a geoKDTree, grounded on
// original_source/scgraph/helpers/kd_tree.py's `kdtree` tuple return value
// (point, axis, left, right). axis cycles through x/y/z (0, 1, 2) with tree
// depth, and the splitting point at each level is the median of its slice
// along that axis.
type kdNode struct {
	point       kdPoint
	axis        int
	left, right *kdNode
}

// geoKDTree is a 3D KD-tree over every node's coordinate, used by
// candidateNodes's KDClosest strategy as an O(log N) alternative to the
// linear-scan strategies (Closest, Quadrant, All). Grounded on
// original_source/scgraph/helpers/kd_tree.py's GeoKDTree, which
// original_source/scgraph/geograph.py builds by default
// (`node_addition_type = "kdclosest"`) and queries via `closest_idx`.
type geoKDTree struct {
	root *kdNode
}

// latLonToXYZ converts a coordinate to a point on the unit sphere, matching
// GeoKDTree.lat_lon_idx_to_xyz_idx.
func latLonToXYZ(c geo.Coordinate, idx int) kdPoint {
	latRad := c.Lat * math.Pi / 180
	lonRad := c.Lon * math.Pi / 180
	cosLat := math.Cos(latRad)

	return kdPoint{
		x:   cosLat * math.Cos(lonRad),
		y:   cosLat * math.Sin(lonRad),
		z:   math.Sin(latRad),
		idx: idx,
	}
}

func (p kdPoint) axisValue(axis int) float64 {
	switch axis {
	case 0:
		return p.x
	case 1:
		return p.y
	default:
		return p.z
	}
}

func squaredDistance3D(a, b kdPoint) float64 {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z

	return dx*dx + dy*dy + dz*dz
}

// newGeoKDTree builds a tree over coordinates, indexed 0..len(coordinates)-1
// to match the node ids they came from.
func newGeoKDTree(coordinates []geo.Coordinate) *geoKDTree {
	points := make([]kdPoint, len(coordinates))
	for i, c := range coordinates {
		points[i] = latLonToXYZ(c, i)
	}

	return &geoKDTree{root: buildKDNode(points, 0)}
}

// buildKDNode recursively splits points on the median of depth%3, the same
// median-of-sorted-slice strategy as kd_tree.py's `kdtree` function.
func buildKDNode(points []kdPoint, depth int) *kdNode {
	if len(points) == 0 {
		return nil
	}
	axis := depth % 3
	sortByAxis(points, axis)
	median := len(points) / 2

	return &kdNode{
		point: points[median],
		axis:  axis,
		left:  buildKDNode(points[:median], depth+1),
		right: buildKDNode(points[median+1:], depth+1),
	}
}

// sortByAxis insertion-sorts points in place by their coordinate on axis.
// The candidate sets this module builds trees over are small (one entry per
// graph node), so the simplicity of an in-place insertion sort outweighs
// pulling in sort.Slice for a one-line comparator.
func sortByAxis(points []kdPoint, axis int) {
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].axisValue(axis) < points[j-1].axisValue(axis); j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}

// closestIdx returns the node id of the tree's nearest point to target,
// mirroring GeoKDTree.closest_idx/closest_point_3d's recursive
// nearest-with-backtrack search: descend toward target's side first, then
// only re-examine the far side if it could still hold something closer than
// the best distance found so far.
func (t *geoKDTree) closestIdx(target kdPoint) (int, bool) {
	best, _, found := closestPoint3D(t.root, target, kdPoint{}, math.Inf(1), false)
	if !found {
		return 0, false
	}

	return best.idx, true
}

func closestPoint3D(node *kdNode, target, best kdPoint, bestDist float64, found bool) (kdPoint, float64, bool) {
	if node == nil {
		return best, bestDist, found
	}

	dist := squaredDistance3D(target, node.point)
	if !found || dist < bestDist {
		best, bestDist, found = node.point, dist, true
	}

	diff := target.axisValue(node.axis) - node.point.axisValue(node.axis)
	near, far := node.left, node.right
	if diff >= 0 {
		near, far = node.right, node.left
	}

	best, bestDist, found = closestPoint3D(near, target, best, bestDist, found)
	if diff*diff < bestDist {
		best, bestDist, found = closestPoint3D(far, target, best, bestDist, found)
	}

	return best, bestDist, found
}
