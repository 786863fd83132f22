package plant

import (
	"errors"
	"testing"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/spec"
)

func testParams() GridParams {
	return GridParams{Size: Cell{X: 5, Y: 5}, Measures: geom.Pt(0.8, 0.8)}
}

func TestPlaceRejectsOutOfRange(t *testing.T) {
	p := New(GridParams{Size: Cell{X: 2, Y: 2}})
	m := &spec.StationModel{Name: "A"}
	if err := p.Place(m, Cell{X: 5, Y: 5}); !errors.Is(err, ErrCellOutOfRange) {
		t.Fatalf("expected ErrCellOutOfRange, got %v", err)
	}
}

func TestPlaceRejectsOccupied(t *testing.T) {
	p := New(GridParams{Size: Cell{X: 2, Y: 2}})
	a := &spec.StationModel{Name: "A"}
	b := &spec.StationModel{Name: "B"}
	if err := p.Place(a, Cell{X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Place(b, Cell{X: 0, Y: 0}); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
}

func TestPlaceRejectsDuplicateStation(t *testing.T) {
	p := New(GridParams{Size: Cell{X: 2, Y: 2}})
	a := &spec.StationModel{Name: "A"}
	if err := p.Place(a, Cell{X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Place(a, Cell{X: 1, Y: 1}); !errors.Is(err, ErrStationAlreadyPlaced) {
		t.Fatalf("expected ErrStationAlreadyPlaced, got %v", err)
	}
}

func TestAdjacentEmptyCellsExcludesRowZero(t *testing.T) {
	p := New(GridParams{Size: Cell{X: 3, Y: 3}})
	a := &spec.StationModel{Name: "InOut"}
	if err := p.Place(a, Cell{X: 1, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range p.AdjacentEmptyCells() {
		if c.Y == 0 {
			t.Errorf("row 0 must never be an adjacency candidate, got %v", c)
		}
	}
}

func TestAdjacentEmptyCellsOnlyFourConnected(t *testing.T) {
	p := New(GridParams{Size: Cell{X: 3, Y: 3}})
	a := &spec.StationModel{Name: "A"}
	if err := p.Place(a, Cell{X: 1, Y: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := map[Cell]bool{}
	for _, c := range p.AdjacentEmptyCells() {
		got[c] = true
	}
	// Orthogonal neighbours of (1,1): (1,0) excluded by row-0 rule,
	// (0,1), (2,1), (1,2) should be candidates.
	for _, want := range []Cell{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		if !got[want] {
			t.Errorf("expected %v to be an adjacency candidate", want)
		}
	}
	// Diagonal neighbour (2,2) must NOT be a candidate (4-connectivity only).
	if got[(Cell{X: 2, Y: 2})] {
		t.Error("diagonal neighbour must not be an adjacency candidate")
	}
}

func TestCanonicalSetOrderIndependence(t *testing.T) {
	p1 := New(GridParams{Size: Cell{X: 3, Y: 3}})
	p2 := New(GridParams{Size: Cell{X: 3, Y: 3}})
	a := &spec.StationModel{Name: "A"}
	b := &spec.StationModel{Name: "B"}

	p1.Place(a, Cell{X: 0, Y: 0})
	p1.Place(b, Cell{X: 1, Y: 0})

	p2.Place(b, Cell{X: 1, Y: 0})
	p2.Place(a, Cell{X: 0, Y: 0})

	if p1.CanonicalString() != p2.CanonicalString() {
		t.Errorf("canonical strings differ by placement order: %q vs %q", p1.CanonicalString(), p2.CanonicalString())
	}
}
