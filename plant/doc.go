// Package plant holds the Plant grid: which station model occupies which
// cell of a fixed-size rectangular grid, lookup/placement/iteration, and
// the canonical-string representation used to de-duplicate equivalent
// configurations in the search tree.
//
// A Plant is built incrementally by Place and is immutable to callers
// otherwise: Get, Iter, AdjacentEmptyCells and CanonicalSet never mutate it.
package plant
