package evaluator

import (
	"errors"
	"sort"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/layoutvis"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
)

// ErrNoFeasibleLayout is returned by package search when no leaf of the
// placement tree is feasible (spec.md §7's NoFeasibleLayout outcome). It is
// a normal result, not an indication of a malformed specification.
var ErrNoFeasibleLayout = errors.New("evaluator: no feasible layout")

// Feasible implements check_configuration (spec.md §4.6): for every
// RoutingEdge, the transport's centre point must reach the storage slot's
// absolute position within the transport's range, without starting inside
// an obstacle. A layout is feasible only if every routing edge passes.
func Feasible(pl *plant.Plant, g *process.Graph, graphs layoutvis.Graphs) bool {
	for _, e := range g.Routing {
		t := g.Stations[e.TransportIdx]
		vg, ok := graphs[t.Name]
		if !ok {
			return false
		}
		tCell, ok := pl.CellOf(t.Name)
		if !ok {
			return false
		}
		pT := pl.Params().CellCentre(tCell)

		storage := g.Storages[e.StorageIdx]
		station := g.Stations[storage.StationIdx]
		sCell, ok := pl.CellOf(station.Name)
		if !ok {
			return false
		}
		pZ := g.StorageAbsolutePlace(e.StorageIdx, pl.Params().CellOrigin(sCell))

		_, length, err := vg.ShortestPath(pT, pZ)
		if err != nil {
			return false
		}
		if length > t.TransportRange {
			return false
		}
	}
	return true
}

// Cost implements evaluate_plant (spec.md §4.6): for every PathEdge and
// every transport station, accumulate the shortest-path length between the
// edge's origin and destiny storage slots under that transport's
// visibility graph. A transport that cannot reach one of the two slots
// contributes nothing for that pair, rather than aborting the whole sum,
// matching the evaluator's never-throw discipline (spec.md §7). Transports
// are visited in sorted-name order so the summation order, and so the
// floating-point result, is identical across calls (spec.md §8 Testable
// Property 9); map iteration order is otherwise randomized and float
// addition is not associative.
func Cost(pl *plant.Plant, g *process.Graph, graphs layoutvis.Graphs) float64 {
	names := make([]string, 0, len(graphs))
	for name := range graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	var sum float64
	for _, e := range g.Paths {
		origin := absolutePlace(pl, g, e.Origin)
		destiny := absolutePlace(pl, g, e.Destiny)
		for _, name := range names {
			_, length, err := graphs[name].ShortestPath(origin, destiny)
			if err != nil {
				continue
			}
			sum += length
		}
	}
	return sum
}

func absolutePlace(pl *plant.Plant, g *process.Graph, storageIdx int) geom.Point {
	storage := g.Storages[storageIdx]
	station := g.Stations[storage.StationIdx]
	cell, _ := pl.CellOf(station.Name)
	return g.StorageAbsolutePlace(storageIdx, pl.Params().CellOrigin(cell))
}
