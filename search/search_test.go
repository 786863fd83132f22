package search

import (
	"errors"
	"testing"

	"github.com/forgekit/plantlayout/evaluator"
	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
	"github.com/forgekit/plantlayout/spec"
)

func s1Spec() *spec.Specification {
	return &spec.Specification{
		GridSize:     geom.Vector[int]{X: 5, Y: 5},
		CellMeasures: geom.Pt(0.8, 0.8),
		Parts: map[string]*spec.Part{
			"P1": {Name: "P1"},
			"P2": {Name: "P2"},
			"P3": {Name: "P3", Activities: []string{"A1"}},
		},
		Activities: map[string]*spec.Activity{
			"A1": {Requires: []string{"P1", "P2"}, Returns: []string{"P3"}},
		},
		Stations: map[string]*spec.StationModel{
			spec.InOutStationName: {Name: spec.InOutStationName},
			"Robot1": {
				Name:      "Robot1",
				Transport: &spec.Transport{Range: 2, Parts: map[string]struct{}{"P1": {}, "P2": {}, "P3": {}}},
			},
			"Press": {
				Name:       "Press",
				Activities: []string{"A1"},
				Storage: []spec.Storage{
					{ID: "out", Place: geom.Pt(0, 0), Types: []spec.StorageType{{Part: "P3", Remove: true}}},
				},
			},
			"PartsStorage": {
				Name: "PartsStorage",
				Storage: []spec.Storage{
					{ID: "s1", Place: geom.Pt(0, 0), Types: []spec.StorageType{
						{Part: "P1", Remove: true},
						{Part: "P2", Remove: true},
						{Part: "P3", Add: true},
					}},
				},
			},
		},
	}
}

func TestSearchFindsFeasibleS1Layout(t *testing.T) {
	s := s1Spec()
	g, err := process.Build(s, []string{"P3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best, cost, err := Search(s, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best == nil {
		t.Fatal("expected a non-nil best plant")
	}
	if cost <= 0 {
		t.Fatalf("expected a positive cost, got %v", cost)
	}
	if best.Count() != len(s.Stations) {
		t.Fatalf("expected all %d stations placed, got %d", len(s.Stations), best.Count())
	}
}

func TestSearchReturnsNoFeasibleLayoutWhenRangeTooSmall(t *testing.T) {
	s := s1Spec()
	for _, m := range s.Stations {
		if m.Transport != nil {
			m.Transport.Range = 0.5
		}
	}
	g, err := process.Build(s, []string{"P3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = Search(s, g)
	if !errors.Is(err, evaluator.ErrNoFeasibleLayout) {
		t.Fatalf("expected ErrNoFeasibleLayout, got %v", err)
	}
}

func TestSearchCallsReporterHooks(t *testing.T) {
	s := s1Spec()
	g, err := process.Build(s, []string{"P3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var leavesSeen int
	var bestUpdates int
	var completed bool

	_, _, err = Search(s, g,
		WithOnLeafEvaluated(func(cell plant.Cell, feasible bool, cost float64) { leavesSeen++ }),
		WithOnBestUpdated(func(best *plant.Plant, cost float64) { bestUpdates++ }),
		WithOnSearchComplete(func(stats SearchStats) { completed = true }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leavesSeen == 0 {
		t.Error("expected OnLeafEvaluated to be called at least once")
	}
	if bestUpdates == 0 {
		t.Error("expected OnBestUpdated to be called at least once")
	}
	if !completed {
		t.Error("expected OnSearchComplete to be called")
	}
}
