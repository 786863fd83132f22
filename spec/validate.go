package spec

import "fmt"

// Validate checks the structural requirements of spec.md §7
// (SpecificationInvalid): a station named "InOut" must exist; no station
// may declare both Transport and Activities; every obstacle polygon must
// have at least 3 vertices. Structural errors abort the search (§7
// propagation policy) rather than pruning a branch.
func (s *Specification) Validate() error {
	if _, ok := s.Stations[InOutStationName]; !ok {
		return ErrMissingInOut
	}
	for name, m := range s.Stations {
		if m.Transport != nil && len(m.Activities) > 0 {
			return fmt.Errorf("spec: station %q: %w", name, ErrTransportAndActivities)
		}
		for i, poly := range m.Obstacles {
			if err := poly.Validate(); err != nil {
				return fmt.Errorf("spec: station %q obstacle %d: %w", name, i, ErrObstacleTooFewVertices)
			}
		}
	}
	return nil
}
