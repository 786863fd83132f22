package process

import "github.com/forgekit/plantlayout/geom"

// Direction distinguishes a RoutingEdge's transport<->storage flow.
type Direction int

const (
	// Input means transport->storage: the storage slot accepts the part.
	Input Direction = iota
	// Output means storage->transport: the storage slot yields the part.
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "INPUT"
	}
	return "OUTPUT"
}

// StationNode is one station model, indexed by StationIdx (its position in
// Graph.Stations). HasTransport mirrors StationModel.HasTransport for
// cheap filtering without re-walking the specification.
type StationNode struct {
	Name           string
	HasTransport   bool
	TransportRange float64 // meaningful only when HasTransport
	StorageIdx     []int   // indices into Graph.Storages belonging to this station
}

// StorageNode is one storage slot, at a position relative to its parent
// station's cell origin.
type StorageNode struct {
	StationIdx int
	SlotID     string
	Place      geom.Point
}

// RoutingEdge captures that transport station TransportIdx can deposit to
// (Input) or pick from (Output) storage slot StorageIdx, for Part.
type RoutingEdge struct {
	Part        string
	TransportIdx int
	StorageIdx  int
	Direction   Direction
}

// PathEdge is a required part flow from storage slot Origin to storage
// slot Destiny: Origin.Remove=1 and Destiny.Add=1 for Part, in matching
// storage types (spec.md §3 invariant 4).
type PathEdge struct {
	Part    string
	Origin  int // index into Graph.Storages
	Destiny int // index into Graph.Storages
}

// Graph is the arena holding every process-graph node and edge kind,
// built once from a Specification via Build.
type Graph struct {
	Stations     []StationNode
	StationIndex map[string]int // station name -> index into Stations

	Storages []StorageNode

	Routing []RoutingEdge
	Paths   []PathEdge

	// RequiredActivities is the union of part.Activities over the target
	// parts (step 1 of spec.md §4.3); informational — no downstream step
	// of the v2 process graph filters nodes by it, matching the source.
	RequiredActivities map[string]struct{}
}

// StorageAbsolutePlace is a convenience a caller can use once it knows the
// station's cell; kept here (rather than on StorageNode) because Graph
// itself never learns a station's placement.
func (g *Graph) StorageAbsolutePlace(storageIdx int, stationOrigin geom.Point) geom.Point {
	return stationOrigin.Add(g.Storages[storageIdx].Place)
}
