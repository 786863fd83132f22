// Package geom provides the 2-D geometry kernel used by the layout search:
// generic vectors, polygons, polygon union, and obstacle-aware visibility
// graphs with shortest-path queries.
//
// Polygons are closed rings of Points (≥3), the last point implicitly
// connecting back to the first. Vertices are compared by coordinate
// equality, not by an epsilon tolerance: callers that want two polygons to
// share a vertex must construct that vertex with literally the same X, Y
// values, since VisibilityGraph keys vertices by value equality.
//
// Float-valued points (Point) are interoperable with
// gonum.org/v1/gonum/spatial/r2.Vec; visibility graphs and shortest paths
// are built on gonum.org/v1/gonum/graph/simple and
// gonum.org/v1/gonum/graph/path.
package geom
