package layoutvis

import (
	"math"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
)

// InflationDistance is the fixed outward-extrusion distance (spec.md §4.4)
// applied to polygon vertices that sit on the boundary between visible and
// invisible from a transport's centre point. It must exceed the maximum
// cell extent to safely forbid a path hugging the far side of an obstacle;
// a tunable constant, not a derived one (spec.md §9 open questions).
const InflationDistance = 20.0

// Graphs maps a transport station's name to the visibility graph its
// transport must navigate, one entry per transport station in the plant.
type Graphs map[string]*geom.VisibilityGraph

// Build constructs one visibility graph per transport station in pl, a
// plant that must already be fully placed. g supplies which stations have
// a transport capability.
func Build(pl *plant.Plant, g *process.Graph) Graphs {
	normal, robot := collectObstacles(pl)

	out := make(Graphs, len(robot))
	for _, sn := range g.Stations {
		if !sn.HasTransport {
			continue
		}
		cell, ok := pl.CellOf(sn.Name)
		if !ok {
			continue
		}
		p := pl.Params().CellCentre(cell)
		out[sn.Name] = buildForTransport(p, sn.Name, normal, robot)
	}

	return out
}

// buildForTransport implements spec.md §4.4 step 2 for a single transport
// station T centred at p: gather every other station's obstacles, extrude
// the edges invisible from p by InflationDistance, re-union the result, and
// build the final graph over it.
func buildForTransport(p geom.Point, name string, normal []geom.Polygon, robot map[string][]geom.Polygon) *geom.VisibilityGraph {
	others := make([]geom.Polygon, 0, len(normal))
	others = append(others, normal...)
	for t, polys := range robot {
		if t == name {
			continue
		}
		others = append(others, polys...)
	}

	visible := make(map[geom.Point]bool)
	for _, poly := range others {
		local := geom.Build([]geom.Polygon{poly})
		for _, v := range local.VisibleFrom(p) {
			visible[v] = true
		}
	}

	extruded := make([]geom.Polygon, 0, len(others))
	for _, poly := range others {
		extruded = append(extruded, extrudeInvisibleEdges(poly, p, visible))
	}

	return geom.Build(geom.Union(extruded))
}

// collectObstacles translates every placed station's obstacle polygons by
// its cell origin and partitions them into stations without a transport
// capability (normal) and per-transport-station obstacles (robot), keyed
// by station name.
func collectObstacles(pl *plant.Plant) (normal []geom.Polygon, robot map[string][]geom.Polygon) {
	robot = make(map[string][]geom.Polygon)
	for _, entry := range pl.Iter() {
		origin := pl.Params().CellOrigin(entry.Cell)
		translated := make([]geom.Polygon, 0, len(entry.Station.Obstacles))
		for _, poly := range entry.Station.Obstacles {
			translated = append(translated, poly.Translate(origin))
		}
		if len(translated) == 0 {
			continue
		}
		if entry.Station.HasTransport() {
			robot[entry.Station.Name] = translated
		} else {
			normal = append(normal, translated...)
		}
	}
	return normal, robot
}

// extrudeInvisibleEdges produces P' from P per spec.md §4.4 step 2(c):
// every vertex visible from p whose neighbour on either side is not visible
// gets an auxiliary vertex inserted on that side, extruded outward along
// the p->v ray by InflationDistance.
func extrudeInvisibleEdges(poly geom.Polygon, p geom.Point, visible map[geom.Point]bool) geom.Polygon {
	n := len(poly)
	out := make(geom.Polygon, 0, n+2)
	for i, v := range poly {
		prev := poly[(i-1+n)%n]
		next := poly[(i+1)%n]

		if visible[v] && !visible[prev] {
			out = append(out, auxVertex(p, v))
		}
		out = append(out, v)
		if visible[v] && !visible[next] {
			out = append(out, auxVertex(p, v))
		}
	}
	return out
}

func auxVertex(p, v geom.Point) geom.Point {
	theta := math.Atan2(v.Y-p.Y, v.X-p.X)
	return geom.Pt(v.X+InflationDistance*math.Cos(theta), v.Y+InflationDistance*math.Sin(theta))
}
