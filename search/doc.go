// Package search builds the depth-first station-placement tree of
// spec.md §4.5, de-duplicates equivalent configurations via
// plant.CanonicalString, evaluates each leaf for feasibility and cost
// (package evaluator), and selects the minimum-cost feasible leaf.
//
// The tree itself is an arena (Tree.Nodes, arranged with integer parent
// and children indices), grounded on the same style as the process
// package; milestone callbacks are exposed through functional Options in
// the style of katalvlaran-lvlath's bfs.Option/bfs.BFSOptions.
package search
