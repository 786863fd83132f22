package spec

import "github.com/forgekit/plantlayout/geom"

// InOutStationName is the required station name that must exist in every
// Specification and is always placed at the grid's reserved InOut cell
// (row 0, middle column) before search begins.
const InOutStationName = "InOut"

// StorageType describes one part this storage slot can handle: whether it
// accepts the part (Add), yields it (Remove), and any prerequisite parts
// (Requires) that must already be produced before this entry is active.
type StorageType struct {
	Part     string
	Add      bool
	Remove   bool
	Requires []string
}

// Storage is one physical slot on a station, at a position relative to the
// station's cell origin, handling one or more part types.
type Storage struct {
	ID    string
	Place geom.Point
	Types []StorageType
}

// Transport is the capability to move parts over a bounded range. At most
// one Transport per StationModel (spec.md §3).
type Transport struct {
	Range float64
	Parts map[string]struct{}
}

// StationModel is a named station template: optional storage slots,
// optional transport capability, optional activities it can execute, and
// optional obstacle polygons (cell-relative).
//
// At most one of {Transport, Activities} may be set; Storage may coexist
// with either (spec.md §3).
type StationModel struct {
	Name       string
	Storage    []Storage
	Transport  *Transport
	Activities []string
	Obstacles  []geom.Polygon
}

// HasTransport reports whether m declares a Transport capability.
func (m *StationModel) HasTransport() bool { return m.Transport != nil }

// Part is a produced good: its name plus the ordered activities that
// produce it.
type Part struct {
	Name       string
	Activities []string
}

// Activity is a named manufacturing step consuming Requires and yielding
// Returns over TimeSpend (time-spend is carried for completeness but not
// simulated — real-time scheduling is a spec.md §1 non-goal).
type Activity struct {
	Requires  []string
	Returns   []string
	TimeSpend float64
}

// Specification is the immutable, fully-parsed input to the layout search:
// grid parameters, every station model, every part, and every activity.
type Specification struct {
	GridSize     geom.Vector[int]
	CellMeasures geom.Point
	Stations     map[string]*StationModel
	Parts        map[string]*Part
	Activities   map[string]*Activity
}

// RequiredActivities returns the union of part.Activities for every part
// named in targetParts (process graph step 1, spec.md §4.3). Order of the
// input slice does not affect the result, since it is a set.
func (s *Specification) RequiredActivities(targetParts []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, name := range targetParts {
		p, ok := s.Parts[name]
		if !ok {
			return nil, ErrUnknownPart
		}
		for _, act := range p.Activities {
			out[act] = struct{}{}
		}
	}
	return out, nil
}
