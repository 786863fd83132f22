// Package layoutvis builds the per-plant, per-transport visibility graphs a
// fully placed plant requires (spec.md §4.4): for each transport station,
// the obstacles of every other station are inflated along the "invisible
// from here" edges and re-unioned, so a shortest path computed against the
// resulting graph never hugs the far side of an obstacle.
//
// Grounded on geom.VisibilityGraph/geom.Union for the underlying graph and
// boundary-trace machinery; this package only assembles the per-station
// obstacle sets and performs the vertex extrusion step.
package layoutvis
