package geom

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// VisibilityGraph is a graph over a fixed obstacle set whose vertices are
// polygon vertices and whose edges are unobstructed line-of-sight segments
// (plus every polygon's own adjacent edges). It is built once via Build and
// queried many times via VisibleFrom/ShortestPath.
//
// Internally backed by gonum.org/v1/gonum/graph/simple.WeightedUndirectedGraph;
// shortest paths are computed with gonum.org/v1/gonum/graph/path.DijkstraFrom.
type VisibilityGraph struct {
	polygons []Polygon
	g        *simple.WeightedUndirectedGraph
	idOf     map[Point]int64
	ptOf     map[int64]Point
	nextID   int64
}

// Build constructs a VisibilityGraph over the given obstacle polygons.
// Complexity: O(V^2 * E) where V is the total vertex count and E the total
// edge count across polygons, since every vertex pair is tested for
// line-of-sight against every polygon edge.
func Build(polygons []Polygon) *VisibilityGraph {
	vg := &VisibilityGraph{
		polygons: polygons,
		g:        simple.NewWeightedUndirectedGraph(0, 0),
		idOf:     make(map[Point]int64),
		ptOf:     make(map[int64]Point),
	}

	var verts []Point
	for _, poly := range polygons {
		for _, v := range poly {
			if _, ok := vg.idOf[v]; ok {
				continue
			}
			id := vg.nextID
			vg.nextID++
			vg.idOf[v] = id
			vg.ptOf[id] = v
			vg.g.AddNode(simple.Node(id))
			verts = append(verts, v)
		}
	}

	// Always include each polygon's own adjacent edges.
	for _, poly := range polygons {
		for _, e := range poly.Edges() {
			vg.addEdge(e[0], e[1])
		}
	}

	// Connect every other pair of vertices with a clear line of sight.
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			a, b := verts[i], verts[j]
			if vg.hasEdge(a, b) {
				continue
			}
			if vg.lineOfSight(a, b) {
				vg.addEdge(a, b)
			}
		}
	}

	return vg
}

func (vg *VisibilityGraph) hasEdge(a, b Point) bool {
	return vg.g.HasEdgeBetween(vg.idOf[a], vg.idOf[b])
}

func (vg *VisibilityGraph) addEdge(a, b Point) {
	ida, idb := vg.idOf[a], vg.idOf[b]
	if ida == idb {
		return
	}
	vg.g.SetWeightedEdge(vg.g.NewWeightedEdge(simple.Node(ida), simple.Node(idb), Dist(a, b)))
}

// lineOfSight reports whether the open segment a-b crosses no polygon's
// interior, i.e. a and b can see each other.
func (vg *VisibilityGraph) lineOfSight(a, b Point) bool {
	for _, poly := range vg.polygons {
		if segmentCrossesPolygon(a, b, poly) {
			return false
		}
	}
	return true
}

// VisibleFrom returns the vertices of the graph directly reachable from an
// arbitrary point p via a segment not crossing any polygon's interior.
func (vg *VisibilityGraph) VisibleFrom(p Point) []Point {
	var out []Point
	for _, v := range vg.ptOf {
		if vg.lineOfSight(p, v) {
			out = append(out, v)
		}
	}
	return out
}

// ShortestPath returns the minimum-length sequence of points (a, ..., b)
// routing through the visibility graph, augmenting it with a and b and
// their visibility edges for this query only. Returns ErrPointInsideObstacle
// if a or b lies strictly inside a polygon, and ErrNoPath if b is
// unreachable from a.
func (vg *VisibilityGraph) ShortestPath(a, b Point) ([]Point, float64, error) {
	if PointInAny(a, vg.polygons) || PointInAny(b, vg.polygons) {
		return nil, 0, ErrPointInsideObstacle
	}

	// a and b may coincide with an existing vertex; querying the base
	// graph directly in that case avoids creating duplicate augmented
	// nodes with the same ID space collision.
	if ida, ok := vg.idOf[a]; ok {
		if idb, ok2 := vg.idOf[b]; ok2 {
			return vg.shortestOnIDs(ida, idb)
		}
	}

	aug := vg.cloneGraph()
	aID := vg.nextID
	bID := vg.nextID + 1
	aug.AddNode(simple.Node(aID))
	aug.AddNode(simple.Node(bID))

	for id, v := range vg.ptOf {
		if vg.lineOfSight(a, v) {
			aug.SetWeightedEdge(aug.NewWeightedEdge(simple.Node(aID), simple.Node(id), Dist(a, v)))
		}
		if vg.lineOfSight(b, v) {
			aug.SetWeightedEdge(aug.NewWeightedEdge(simple.Node(bID), simple.Node(id), Dist(b, v)))
		}
	}
	if lineOfSightPolys(a, b, vg.polygons) {
		aug.SetWeightedEdge(aug.NewWeightedEdge(simple.Node(aID), simple.Node(bID), Dist(a, b)))
	}

	return shortestOnGraph(aug, aID, bID, func(id int64) Point {
		if id == aID {
			return a
		}
		if id == bID {
			return b
		}
		return vg.ptOf[id]
	})
}

func (vg *VisibilityGraph) shortestOnIDs(aID, bID int64) ([]Point, float64, error) {
	return shortestOnGraph(vg.g, aID, bID, func(id int64) Point { return vg.ptOf[id] })
}

func (vg *VisibilityGraph) cloneGraph() *simple.WeightedUndirectedGraph {
	clone := simple.NewWeightedUndirectedGraph(0, 0)
	nodes := vg.g.Nodes()
	for nodes.Next() {
		clone.AddNode(nodes.Node())
	}
	edges := vg.g.Edges()
	for edges.Next() {
		e := edges.Edge().(graph.WeightedEdge)
		clone.SetWeightedEdge(e)
	}
	return clone
}

func shortestOnGraph(g *simple.WeightedUndirectedGraph, from, to int64, pt func(int64) Point) ([]Point, float64, error) {
	tree := path.DijkstraFrom(simple.Node(from), g)
	nodes, weight := tree.To(to)
	if len(nodes) == 0 {
		return nil, 0, ErrNoPath
	}
	pts := make([]Point, len(nodes))
	for i, n := range nodes {
		pts[i] = pt(n.ID())
	}
	return pts, weight, nil
}

func lineOfSightPolys(a, b Point, polys []Polygon) bool {
	for _, poly := range polys {
		if segmentCrossesPolygon(a, b, poly) {
			return false
		}
	}
	return true
}

// PathLength returns the total Euclidean length of a polyline.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}
