// Package evaluator implements the two predicates a placed plant is judged
// by (spec.md §4.6): Feasible, a hard per-routing-edge range check, and
// Cost, an aggregate distance proxy summed over every required part path
// and every transport station. Neither function errors on a geometric
// pathological case (an unreachable or obstacle-enclosed point); such
// cases are treated as the routing edge or path edge failing silently,
// per spec.md §7's propagation policy.
package evaluator
