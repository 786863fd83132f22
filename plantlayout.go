package plantlayout

import (
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
	"github.com/forgekit/plantlayout/search"
	"github.com/forgekit/plantlayout/spec"
)

// Search validates s, builds its process graph for targetParts, and
// searches for the minimum-cost feasible station layout. It returns
// evaluator.ErrNoFeasibleLayout (via errors.Is) when the search tree has
// no feasible leaf, and propagates any spec.Specification structural
// error from s.Validate() unchanged.
func Search(s *spec.Specification, targetParts []string, opts ...search.Option) (*plant.Plant, float64, error) {
	if err := s.Validate(); err != nil {
		return nil, 0, err
	}

	g, err := process.Build(s, targetParts)
	if err != nil {
		return nil, 0, err
	}

	return search.Search(s, g, opts...)
}
