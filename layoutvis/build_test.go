package layoutvis

import (
	"testing"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/plant"
	"github.com/forgekit/plantlayout/process"
	"github.com/forgekit/plantlayout/spec"
)

func testGridParams() plant.GridParams {
	return plant.GridParams{Size: geom.Vector[int]{X: 5, Y: 5}, Measures: geom.Pt(0.8, 0.8)}
}

func TestBuildOnlyCoversTransportStations(t *testing.T) {
	s := &spec.Specification{
		Stations: map[string]*spec.StationModel{
			spec.InOutStationName: {Name: spec.InOutStationName},
			"Robot1":               {Name: "Robot1", Transport: &spec.Transport{Range: 2}},
			"Press":                {Name: "Press"},
		},
	}
	g, err := process.Build(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pl := plant.New(testGridParams())
	mustPlace(t, pl, s.Stations[spec.InOutStationName], plant.Cell{X: 2, Y: 0})
	mustPlace(t, pl, s.Stations["Robot1"], plant.Cell{X: 1, Y: 1})
	mustPlace(t, pl, s.Stations["Press"], plant.Cell{X: 2, Y: 1})

	graphs := Build(pl, g)
	if _, ok := graphs["Robot1"]; !ok {
		t.Fatal("expected a visibility graph for Robot1")
	}
	if _, ok := graphs["Press"]; ok {
		t.Fatal("Press has no transport capability and should not get a graph")
	}
}

func TestBuildRoutesAroundObstacle(t *testing.T) {
	obstacle := geom.Polygon{
		geom.Pt(0.1, 0.1), geom.Pt(0.7, 0.1), geom.Pt(0.7, 0.7), geom.Pt(0.1, 0.7),
	}
	s := &spec.Specification{
		Stations: map[string]*spec.StationModel{
			spec.InOutStationName: {Name: spec.InOutStationName},
			"Robot1":               {Name: "Robot1", Transport: &spec.Transport{Range: 10}},
			"Press":                {Name: "Press", Obstacles: []geom.Polygon{obstacle}},
		},
	}
	g, err := process.Build(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params := testGridParams()
	pl := plant.New(params)
	mustPlace(t, pl, s.Stations[spec.InOutStationName], plant.Cell{X: 2, Y: 0})
	mustPlace(t, pl, s.Stations["Robot1"], plant.Cell{X: 1, Y: 1})
	mustPlace(t, pl, s.Stations["Press"], plant.Cell{X: 2, Y: 2})

	graphs := Build(pl, g)
	vg, ok := graphs["Robot1"]
	if !ok {
		t.Fatal("expected a visibility graph for Robot1")
	}

	a := params.CellCentre(plant.Cell{X: 1, Y: 1})
	pressOrigin := params.CellOrigin(plant.Cell{X: 2, Y: 2})
	b := pressOrigin.Add(geom.Pt(0.75, 0.75)) // diagonally opposite corner of Press's cell from a

	_, length, err := vg.ShortestPath(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length < geom.Dist(a, b) {
		t.Fatalf("routed path length %v shorter than straight-line distance %v", length, geom.Dist(a, b))
	}
}

func mustPlace(t *testing.T, pl *plant.Plant, m *spec.StationModel, c plant.Cell) {
	t.Helper()
	if err := pl.Place(m, c); err != nil {
		t.Fatalf("place %q at %v: %v", m.Name, c, err)
	}
}
