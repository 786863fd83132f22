package search

import (
	"sort"

	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/spec"
)

// buildTree expands the depth-first placement tree of spec.md §4.5,
// starting from an InOut-only root. Station model iteration at each node
// is in sorted-name order, making the tree (and so ConfigsDeduplicated)
// deterministic across runs over the same Specification.
func buildTree(s *spec.Specification, params plant.GridParams, stats *SearchStats) *Tree {
	tree := &Tree{Nodes: []TreeNode{{
		Parent:  -1,
		Station: spec.InOutStationName,
		Cell:    params.InOutCell(),
	}}}

	names := sortedStationNames(s)
	seen := make(map[string]struct{})

	root, err := tree.PlantAt(0, params, s.Stations)
	if err == nil {
		seen[root.CanonicalString()] = struct{}{}
	}

	var expand func(idx, placedCount int)
	expand = func(idx, placedCount int) {
		pl, err := tree.PlantAt(idx, params, s.Stations)
		if err != nil {
			return
		}
		if placedCount == len(s.Stations) {
			return
		}
		candidates := pl.AdjacentEmptyCells()
		if len(candidates) == 0 {
			return
		}

		for _, name := range names {
			if _, placed := pl.CellOf(name); placed {
				continue
			}
			model := s.Stations[name]
			for _, cell := range candidates {
				candidate := pl.Clone()
				if err := candidate.Place(model, cell); err != nil {
					continue
				}
				cs := candidate.CanonicalString()
				if _, dup := seen[cs]; dup {
					stats.ConfigsDeduplicated++
					continue
				}
				seen[cs] = struct{}{}

				tree.Nodes = append(tree.Nodes, TreeNode{Parent: idx, Station: name, Cell: cell})
				childIdx := len(tree.Nodes) - 1
				tree.Nodes[idx].Children = append(tree.Nodes[idx].Children, childIdx)
				stats.NodesExpanded++

				expand(childIdx, placedCount+1)
			}
		}
	}

	expand(0, 1)
	return tree
}

// PlantAt reconstructs the plant induced by walking parent pointers from
// node idx to the root, in root-to-leaf placement order.
func (t *Tree) PlantAt(idx int, params plant.GridParams, models map[string]*spec.StationModel) (*plant.Plant, error) {
	var chain []int
	for i := idx; i != -1; i = t.Nodes[i].Parent {
		chain = append(chain, i)
	}

	pl := plant.New(params)
	for i := len(chain) - 1; i >= 0; i-- {
		n := t.Nodes[chain[i]]
		if err := pl.Place(models[n.Station], n.Cell); err != nil {
			return nil, err
		}
	}
	return pl, nil
}

func sortedStationNames(s *spec.Specification) []string {
	names := make([]string, 0, len(s.Stations))
	for name := range s.Stations {
		if name == spec.InOutStationName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
