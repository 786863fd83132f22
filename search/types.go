package search

import "github.com/forgekit/plantlayout/plant"

// TreeNode is one station-placement decision in the search tree: placing
// Station at Cell, with Parent the index of the node it extends (-1 for
// the InOut root) and Children the indices of every candidate placement
// tried from here.
type TreeNode struct {
	Parent   int
	Children []int
	Station  string
	Cell     plant.Cell
}

// Tree is the arena holding every TreeNode built during one search.
type Tree struct {
	Nodes []TreeNode
}

// Leaves returns the index of every node with no children: either every
// station model has been placed, or no adjacency candidates remained
// (spec.md §4.5 termination rule).
func (t *Tree) Leaves() []int {
	var out []int
	for i, n := range t.Nodes {
		if len(n.Children) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// SearchStats counts the work one Search call performed, replacing the
// original source's practice of stashing a counter on a function object
// (spec.md §9).
type SearchStats struct {
	NodesExpanded       int
	ConfigsDeduplicated int
	LeavesEvaluated     int
	LeavesPruned        int
	FeasibleLeavesFound int
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options carries the reporter hooks Search calls at defined milestones
// (spec.md §9's "isolate I/O behind a reporter interface"): no hook does
// any I/O itself, and all three default to no-ops.
type Options struct {
	OnLeafEvaluated  func(cell plant.Cell, feasible bool, cost float64)
	OnBestUpdated    func(best *plant.Plant, cost float64)
	OnSearchComplete func(stats SearchStats)
}

// DefaultOptions returns an Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnLeafEvaluated:  func(plant.Cell, bool, float64) {},
		OnBestUpdated:    func(*plant.Plant, float64) {},
		OnSearchComplete: func(SearchStats) {},
	}
}

// WithOnLeafEvaluated registers a callback run after every leaf's
// feasibility and cost have been computed.
func WithOnLeafEvaluated(fn func(cell plant.Cell, feasible bool, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLeafEvaluated = fn
		}
	}
}

// WithOnBestUpdated registers a callback run whenever a new minimum-cost
// feasible leaf is found.
func WithOnBestUpdated(fn func(best *plant.Plant, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBestUpdated = fn
		}
	}
}

// WithOnSearchComplete registers a callback run once, after every leaf has
// been evaluated and the best (if any) selected.
func WithOnSearchComplete(fn func(stats SearchStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSearchComplete = fn
		}
	}
}
