// Package process builds the process graph derived from a Specification:
// which station nodes and storage nodes exist, which transport↔storage
// routing edges they support, and which storage→storage part flows
// (pathing edges) the production goal requires.
//
// Per Design Notes §9, the graph is modeled as an arena: each node/edge
// kind lives in its own slice on Graph, and cross-references are slice
// indices (StationIdx, StorageIdx) rather than pointers — this avoids the
// mutually-referencing StationNode<->StorageNode<->RoutingEdge<->PathEdge
// cycle the original source's object graph has, and makes Graph trivially
// serializable.
//
// Graph is built once from a Specification and is read-only afterward
// (spec.md §5): StationNode does not carry a mutable "placed cell" field —
// a station's cell, once a search leaf places it, is resolved by querying
// the plant.Plant directly (see package evaluator), keeping this graph
// immutable across the whole search.
package process
