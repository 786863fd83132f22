package geom

import "errors"

// Sentinel errors for the geometry kernel.
var (
	// ErrPointInsideObstacle is returned by ShortestPath when either endpoint
	// lies strictly inside one of the graph's polygons.
	ErrPointInsideObstacle = errors.New("geom: point lies inside an obstacle polygon")

	// ErrDegeneratePolygon is returned when a polygon has fewer than 3 vertices.
	ErrDegeneratePolygon = errors.New("geom: polygon must have at least 3 vertices")

	// ErrNoPath is returned when no route exists between two points in a
	// visibility graph (no chain of line-of-sight segments connects them).
	ErrNoPath = errors.New("geom: no path between the given points")
)
