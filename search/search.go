package search

import (
	"math"

	"github.com/forgekit/plantlayout/evaluator"
	"github.com/forgekit/plantlayout/layoutvis"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
	"github.com/forgekit/plantlayout/spec"
)

// Search builds the placement tree for s, evaluates every leaf for
// feasibility and cost (spec.md §4.5-4.6), and returns the minimum-cost
// feasible leaf's plant and cost. Returns evaluator.ErrNoFeasibleLayout
// when no leaf is feasible.
func Search(s *spec.Specification, g *process.Graph, opts ...Option) (*plant.Plant, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	params := plant.GridParams{Size: s.GridSize, Measures: s.CellMeasures}
	var stats SearchStats

	tree := buildTree(s, params, &stats)

	var best *plant.Plant
	bestCost := math.Inf(1)

	for _, leafIdx := range tree.Leaves() {
		pl, err := tree.PlantAt(leafIdx, params, s.Stations)
		if err != nil {
			continue
		}
		stats.LeavesEvaluated++

		graphs := layoutvis.Build(pl, g)
		feasible := evaluator.Feasible(pl, g, graphs)

		var cost float64
		if feasible {
			cost = evaluator.Cost(pl, g, graphs)
			stats.FeasibleLeavesFound++
			if cost < bestCost {
				bestCost = cost
				best = pl
				o.OnBestUpdated(best, bestCost)
			}
		} else {
			stats.LeavesPruned++
		}

		o.OnLeafEvaluated(tree.Nodes[leafIdx].Cell, feasible, cost)
	}

	o.OnSearchComplete(stats)

	if best == nil {
		return nil, 0, evaluator.ErrNoFeasibleLayout
	}
	return best, bestCost, nil
}
