package geom

import "sort"

// Union merges a set of (possibly mutually overlapping) polygons into the
// minimal set of non-overlapping polygons whose union equals the input's
// set-theoretic union. Orientation of the output rings matches the input's
// convention. Polygons that only touch (share boundary points but no area)
// are returned as separate polygons, so no zero-area sliver is produced.
func Union(polys []Polygon) []Polygon {
	result := make([]Polygon, len(polys))
	copy(result, polys)

	// Repeatedly merge the first mergeable pair found until a fixed point
	// is reached: no two polygons in the set have a proper edge crossing
	// and none lies wholly inside another.
	for {
		merged := false
		for i := 0; i < len(result); i++ {
			for j := i + 1; j < len(result); j++ {
				if u, ok := unionTwo(result[i], result[j]); ok {
					result[i] = u
					result = append(result[:j], result[j+1:]...)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}

	return result
}

// unionTwo attempts to merge polygons a and b into a single ring. ok is
// false when the two polygons are disjoint (no shared boundary or overlap),
// in which case they must be kept as separate output polygons.
func unionTwo(a, b Polygon) (Polygon, bool) {
	// Degenerate containment cases, handled directly to avoid the general
	// boundary-trace algorithm misfiring when one ring is wholly inside
	// the other (no proper edge crossings to trace).
	if allVerticesIn(a, b) {
		return b, true
	}
	if allVerticesIn(b, a) {
		return a, true
	}

	ga, gb, anyCross := insertIntersections(a, b)
	if !anyCross {
		if touches(a, b) {
			// Sharing only a boundary segment/vertex with no proper
			// crossing: a simple (if rare) case resolvable by containment
			// test above; otherwise the polygons are genuinely disjoint.
			return nil, false
		}
		return nil, false
	}

	markEntryExit(ga, b)
	markEntryExit(gb, a)

	return traceUnion(ga), true
}

// allVerticesIn reports whether every vertex of p lies inside or on other.
func allVerticesIn(p, other Polygon) bool {
	for _, v := range p {
		if !other.Contains(v) && !onBoundary(other, v) {
			return false
		}
	}
	return true
}

func onBoundary(poly Polygon, p Point) bool {
	for _, e := range poly.Edges() {
		if p == e[0] || p == e[1] {
			return true
		}
		if orientation(e[0], e[1], p) == 0 && onSegment(e[0], p, e[1]) {
			return true
		}
	}
	return false
}

// touches reports whether a and b share at least one boundary point without
// a proper crossing (used only to short-circuit the "fully disjoint" case).
func touches(a, b Polygon) bool {
	for _, v := range a {
		if onBoundary(b, v) {
			return true
		}
	}
	for _, v := range b {
		if onBoundary(a, v) {
			return true
		}
	}
	return false
}

// gNode is a node in the Greiner-Hormann-style augmented ring used to trace
// the union boundary of two polygons.
type gNode struct {
	pt         Point
	intersect  bool
	entry      bool
	next, prev *gNode
	neighbor   *gNode
	visited    bool
	tValue     float64
}

// insertIntersections builds augmented doubly-linked rings for a and b with
// every pairwise edge intersection inserted in parametric order, and links
// matching intersection nodes across the two rings via neighbor.
func insertIntersections(a, b Polygon) (ga, gb *gNode, anyCross bool) {
	ga = ringOf(a)
	gb = ringOf(b)

	na := len(a)
	nb := len(b)
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			ip, ta, tb, ok := segmentIntersection(a1, a2, b1, b2)
			if !ok {
				continue
			}
			anyCross = true
			na1 := nodeAt(ga, i)
			nb1 := nodeAt(gb, j)
			in := insertIntersectionNode(na1, ip, ta)
			ib := insertIntersectionNode(nb1, ip, tb)
			in.neighbor = ib
			ib.neighbor = in
		}
	}

	return ga, gb, anyCross
}

func ringOf(p Polygon) *gNode {
	nodes := make([]*gNode, len(p))
	for i, v := range p {
		nodes[i] = &gNode{pt: v}
	}
	for i := range nodes {
		nodes[i].next = nodes[(i+1)%len(nodes)]
		nodes[(i+1)%len(nodes)].prev = nodes[i]
	}
	return nodes[0]
}

// nodeAt walks from head (index 0 of the original ring) to the node that
// starts edge index i. Rings mutate as intersections are inserted, but
// original vertices keep their relative order, so a bounded walk from head
// by original index suffices because insertions never precede vertex 0.
func nodeAt(head *gNode, i int) *gNode {
	n := head
	for k := 0; k < i; k++ {
		for n.next.intersect {
			n = n.next
		}
		n = n.next
	}
	return n
}

// insertIntersectionNode inserts a new intersection node between edgeStart
// and its current next pointer, ordered by t among any intersections
// already inserted on this edge.
func insertIntersectionNode(edgeStart *gNode, pt Point, t float64) *gNode {
	type tagged struct {
		n *gNode
		t float64
	}
	// Collect already-inserted intersection nodes between edgeStart and the
	// next original vertex, to keep them sorted by t.
	var existing []tagged
	cur := edgeStart.next
	for cur.intersect {
		existing = append(existing, tagged{cur, cur.t()})
		cur = cur.next
	}
	newNode := &gNode{pt: pt, intersect: true}
	newNode.setT(t)

	existing = append(existing, tagged{newNode, t})
	sort.Slice(existing, func(i, j int) bool { return existing[i].t < existing[j].t })

	prev := edgeStart
	for _, e := range existing {
		prev.next = e.n
		e.n.prev = prev
		prev = e.n
	}
	prev.next = cur
	cur.prev = prev

	return newNode
}

// t/setT stash the parametric position of an intersection node along its
// originating edge in an unexported field via closures is unnecessary here;
// we instead keep it directly on gNode.
func (n *gNode) t() float64    { return n.tValue }
func (n *gNode) setT(v float64) { n.tValue = v }

// markEntryExit classifies every intersection node of ring (belonging to
// one polygon) as entry/exit relative to other: an intersection is an
// "entry" when the ring is passing from outside other to inside other.
func markEntryExit(ring *gNode, other Polygon) {
	// Determine the status of the first non-intersection vertex.
	start := ring
	inside := other.Contains(start.pt)

	n := ring
	for {
		if n.intersect {
			n.entry = !inside
			inside = !inside
		} else {
			inside = other.Contains(n.pt)
		}
		n = n.next
		if n == ring {
			break
		}
	}
}

// traceUnion walks the augmented rings starting from ga, switching rings at
// intersection points so the walk always follows the outer boundary, and
// returns the resulting single polygon.
func traceUnion(ga *gNode) Polygon {
	var out Polygon

	start := firstIntersection(ga)
	if start == nil {
		// No intersections reachable (shouldn't happen when anyCross is
		// true, but fall back to the raw ring rather than panic).
		n := ga
		for {
			out = append(out, n.pt)
			n = n.next
			if n == ga {
				break
			}
		}
		return out
	}

	cur := start
	for {
		if cur.visited {
			break
		}
		cur.visited = true
		out = append(out, cur.pt)

		if cur.intersect && cur.entry {
			// We're about to re-enter the other polygon: hop across and
			// continue tracing its boundary instead, which is now outer.
			cur = cur.neighbor
			cur.visited = true
		}
		cur = cur.next
		if cur == start {
			break
		}
	}

	return dedupClosing(out)
}

func firstIntersection(ring *gNode) *gNode {
	n := ring
	for {
		if n.intersect {
			return n
		}
		n = n.next
		if n == ring {
			return nil
		}
	}
}

// dedupClosing drops a trailing point equal to the first, which can appear
// when the trace closes exactly on the starting vertex.
func dedupClosing(p Polygon) Polygon {
	if len(p) > 1 && p[0] == p[len(p)-1] {
		return p[:len(p)-1]
	}
	return p
}

// segmentIntersection returns the intersection point of segments p1-p2 and
// p3-p4 along with the parametric position t along p1-p2 and u along p3-p4,
// when they cross at a single point interior to both of them; ok is
// false for parallel, collinear, or non-intersecting segments (collinear
// overlaps are handled by the containment fallback in unionTwo).
func segmentIntersection(p1, p2, p3, p4 Point) (pt Point, t, u float64, ok bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point{}, 0, 0, false
	}
	diff := p3.Sub(p1)
	t = (diff.X*d2.Y - diff.Y*d2.X) / denom
	u = (diff.X*d1.Y - diff.Y*d1.X) / denom
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return Point{}, 0, 0, false
	}
	return p1.Add(d1.Scale(t)), t, u, true
}
