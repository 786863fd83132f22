package evaluator

import (
	"math"
	"testing"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/layoutvis"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
	"github.com/forgekit/plantlayout/spec"
)

func s1SpecForEval() *spec.Specification {
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

func buildS1Plant(t *testing.T) (*plant.Plant, *process.Graph) {
	t.Helper()
	s := s1SpecForEval()
	g, err := process.Build(s, []string{"P3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params := plant.GridParams{Size: s.GridSize, Measures: s.CellMeasures}
	pl := plant.New(params)
	mustPlace(t, pl, s.Stations[spec.InOutStationName], plant.Cell{X: 2, Y: 0})
	mustPlace(t, pl, s.Stations["Robot1"], plant.Cell{X: 1, Y: 1})
	mustPlace(t, pl, s.Stations["PartsStorage"], plant.Cell{X: 2, Y: 1})
	mustPlace(t, pl, s.Stations["Press"], plant.Cell{X: 2, Y: 2})
	return pl, g
}

func mustPlace(t *testing.T, pl *plant.Plant, m *spec.StationModel, c plant.Cell) {
	t.Helper()
	if err := pl.Place(m, c); err != nil {
		t.Fatalf("place %q at %v: %v", m.Name, c, err)
	}
}

func TestFeasibleS1Layout(t *testing.T) {
	pl, g := buildS1Plant(t)
	graphs := layoutvis.Build(pl, g)
	if !Feasible(pl, g, graphs) {
		t.Fatal("expected the S1 optimum layout to be feasible")
	}
}

func TestInfeasibleWhenRangeTooSmall(t *testing.T) {
	s := s1SpecForEval()
	for _, m := range s.Stations {
		if m.Transport != nil {
			m.Transport.Range = 0.5
		}
	}
	g, err := process.Build(s, []string{"P3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params := plant.GridParams{Size: s.GridSize, Measures: s.CellMeasures}
	pl := plant.New(params)
	mustPlace(t, pl, s.Stations[spec.InOutStationName], plant.Cell{X: 2, Y: 0})
	mustPlace(t, pl, s.Stations["Robot1"], plant.Cell{X: 1, Y: 1})
	mustPlace(t, pl, s.Stations["PartsStorage"], plant.Cell{X: 2, Y: 1})
	mustPlace(t, pl, s.Stations["Press"], plant.Cell{X: 2, Y: 2})

	graphs := layoutvis.Build(pl, g)
	if Feasible(pl, g, graphs) {
		t.Fatal("expected infeasibility when transport range shrinks to 0.5")
	}
}

func TestCostIsDeterministic(t *testing.T) {
	pl, g := buildS1Plant(t)
	graphs := layoutvis.Build(pl, g)
	c1 := Cost(pl, g, graphs)
	c2 := Cost(pl, g, graphs)
	if math.Abs(c1-c2) > 1e-9 {
		t.Fatalf("cost not deterministic: %v vs %v", c1, c2)
	}
	if c1 <= 0 {
		t.Fatalf("expected a positive cost, got %v", c1)
	}
}
