package geom

// Polygon is a closed ring of >=3 points, oriented consistently with
// interior on one side. The ring is implicit: Edges() connects the last
// point back to the first.
type Polygon []Point

// Validate reports ErrDegeneratePolygon if p has fewer than 3 vertices.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return ErrDegeneratePolygon
	}
	return nil
}

// Edges returns the ordered list of (from, to) edges of the ring, including
// the closing edge from the last vertex back to the first.
func (p Polygon) Edges() [][2]Point {
	n := len(p)
	edges := make([][2]Point, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]Point{p[i], p[(i+1)%n]})
	}
	return edges
}

// Translate returns a copy of p with every vertex shifted by d.
func (p Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// orientation returns the signed area sign of the triplet (a,b,c):
// >0 counter-clockwise turn, <0 clockwise turn, 0 collinear.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether q lies on the closed segment p-r, given that
// p, q, r are already known to be collinear.
func onSegment(p, q, r Point) bool {
	return min2(p.X, r.X) <= q.X && q.X <= max2(p.X, r.X) &&
		min2(p.Y, r.Y) <= q.Y && q.Y <= max2(p.Y, r.Y)
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// segmentsProperlyIntersect reports whether segment a1-a2 crosses segment
// b1-b2 at a point interior to both segments (i.e. not merely touching at a
// shared endpoint). Shared endpoints are common in a polygon's own edge
// list (consecutive edges share a vertex) and must not count as blocking.
func segmentsProperlyIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear overlap cases: a boundary point of one segment lies on the
	// interior of the other. Shared endpoints (d==0 at a literal vertex
	// match) are excluded by the onSegment/non-equality checks below.
	if d1 == 0 && onSegment(b1, a1, b2) && a1 != b1 && a1 != b2 {
		return true
	}
	if d2 == 0 && onSegment(b1, a2, b2) && a2 != b1 && a2 != b2 {
		return true
	}
	if d3 == 0 && onSegment(a1, b1, a2) && b1 != a1 && b1 != a2 {
		return true
	}
	if d4 == 0 && onSegment(a1, b2, a2) && b2 != a1 && b2 != a2 {
		return true
	}

	return false
}

// segmentCrossesPolygon reports whether the open segment a-b crosses the
// interior of polygon poly: it properly intersects one of poly's edges, or
// its midpoint lies inside poly (handles a segment that runs entirely
// through the interior without crossing an edge, e.g. between two
// non-adjacent vertices of a concave polygon).
func segmentCrossesPolygon(a, b Point, poly Polygon) bool {
	for _, e := range poly.Edges() {
		if segmentsProperlyIntersect(a, b, e[0], e[1]) {
			return true
		}
	}
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return poly.Contains(mid)
}

// Contains reports whether point p lies strictly inside poly using the
// standard ray-casting (even-odd) rule. Points exactly on the boundary are
// reported as not contained, matching the spec's use of Contains only to
// detect "starts/ends inside an obstacle" (boundary placements are
// considered feasible, not trapped).
func (poly Polygon) Contains(p Point) bool {
	if onBoundary(poly, p) {
		return false
	}
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if vi == p {
			return false // on a vertex: boundary, not interior
		}
		intersects := (vi.Y > p.Y) != (vj.Y > p.Y)
		if intersects {
			xCross := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xCross {
				inside = !inside
			} else if p.X == xCross {
				return false // exactly on an edge: boundary
			}
		}
	}
	return inside
}

// PointInAny reports whether p lies inside any polygon of polys.
func PointInAny(p Point, polys []Polygon) bool {
	for _, poly := range polys {
		if poly.Contains(p) {
			return true
		}
	}
	return false
}
