package plant

import (
	"fmt"

	"github.com/forgekit/plantlayout/geom"
	"github.com/forgekit/plantlayout/spec"
)

// Cell is a grid coordinate (column, row).
type Cell = geom.Vector[int]

// GridParams describes the fixed rectangular grid a Plant is laid out on.
type GridParams struct {
	// Size is (columns, rows).
	Size Cell
	// Measures is the physical (width, height) of one cell.
	Measures geom.Point
}

// HalfMeasures returns half of Measures, used to locate a cell's centre.
func (g GridParams) HalfMeasures() geom.Point {
	return g.Measures.Scale(0.5)
}

// CellOrigin returns the absolute position of cell c's bottom-left corner.
func (g GridParams) CellOrigin(c Cell) geom.Point {
	return geom.Pt(float64(c.X)*g.Measures.X, float64(c.Y)*g.Measures.Y)
}

// CellCentre returns the absolute position of cell c's centre.
func (g GridParams) CellCentre(c Cell) geom.Point {
	return g.CellOrigin(c).Add(g.HalfMeasures())
}

// InBounds reports whether c lies within the grid.
func (g GridParams) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size.X && c.Y >= 0 && c.Y < g.Size.Y
}

// InOutCell is the reserved cell (row 0, middle column) where the station
// named spec.InOutStationName is auto-placed before search begins.
func (g GridParams) InOutCell() Cell {
	return Cell{X: g.Size.X / 2, Y: 0}
}

// Plant is a grid of cells, each empty or holding a reference to the
// StationModel placed there, plus the inverse mapping station name -> cell.
type Plant struct {
	params   GridParams
	grid     [][]*spec.StationModel // grid[y][x]
	stations map[string]Cell        // station name -> cell, only for placed stations
}

// New creates an empty Plant over the given grid parameters.
func New(params GridParams) *Plant {
	grid := make([][]*spec.StationModel, params.Size.Y)
	for y := range grid {
		grid[y] = make([]*spec.StationModel, params.Size.X)
	}
	return &Plant{
		params:   params,
		grid:     grid,
		stations: make(map[string]Cell),
	}
}

// Params returns the grid parameters this Plant was built over.
func (p *Plant) Params() GridParams { return p.params }

// Place assigns station model m to cell c. It fails with ErrCellOutOfRange,
// ErrCellOccupied, or ErrStationAlreadyPlaced per spec.md §4.2.
func (p *Plant) Place(m *spec.StationModel, c Cell) error {
	if !p.params.InBounds(c) {
		return fmt.Errorf("plant: cell %v: %w", c, ErrCellOutOfRange)
	}
	if p.grid[c.Y][c.X] != nil {
		return fmt.Errorf("plant: cell %v: %w", c, ErrCellOccupied)
	}
	if _, placed := p.stations[m.Name]; placed {
		return fmt.Errorf("plant: station %q: %w", m.Name, ErrStationAlreadyPlaced)
	}
	p.grid[c.Y][c.X] = m
	p.stations[m.Name] = c
	return nil
}

// Get returns the station model placed at cell c, or nil if empty.
func (p *Plant) Get(c Cell) *spec.StationModel {
	if !p.params.InBounds(c) {
		return nil
	}
	return p.grid[c.Y][c.X]
}

// CellOf returns the cell station name is placed at, and whether it has
// been placed at all.
func (p *Plant) CellOf(name string) (Cell, bool) {
	c, ok := p.stations[name]
	return c, ok
}

// PlacedEntry pairs a cell with the station model occupying it.
type PlacedEntry struct {
	Cell    Cell
	Station *spec.StationModel
}

// Iter returns every non-empty (cell, station) pair, in row-major order.
func (p *Plant) Iter() []PlacedEntry {
	var out []PlacedEntry
	for y := 0; y < p.params.Size.Y; y++ {
		for x := 0; x < p.params.Size.X; x++ {
			if m := p.grid[y][x]; m != nil {
				out = append(out, PlacedEntry{Cell: Cell{X: x, Y: y}, Station: m})
			}
		}
	}
	return out
}

// Count returns the number of stations currently placed.
func (p *Plant) Count() int { return len(p.stations) }
