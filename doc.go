// Package plantlayout searches for the lowest-cost feasible placement of a
// set of station models on a fixed grid, given the parts a plant must be
// able to produce.
//
// Search validates the specification, builds the process graph
// (package process), expands and prunes the placement search tree
// (package search, backed by package evaluator and package layoutvis for
// obstacle-aware feasibility and cost), and returns the best layout found.
package plantlayout
