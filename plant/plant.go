package plant

import (
	"fmt"
	"sort"
	"strings"
)

// neighborOffsets4 are the four orthogonal (N/S/E/W) adjacency offsets, per
// spec.md §4.2: only 4-connectivity is used to derive placement candidates,
// unlike the original source's 8-connected get_available_positions.
var neighborOffsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// AdjacentEmptyCells returns every empty cell that has at least one of its
// 4-neighbours occupied. Row 0 is reserved for the InOut/conveyor strip, so
// candidates are drawn only from rows 1..Size.Y-1.
func (p *Plant) AdjacentEmptyCells() []Cell {
	var out []Cell
	for y := 1; y < p.params.Size.Y; y++ {
		for x := 0; x < p.params.Size.X; x++ {
			c := Cell{X: x, Y: y}
			if p.Get(c) != nil {
				continue
			}
			if p.hasOccupiedNeighbor(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (p *Plant) hasOccupiedNeighbor(c Cell) bool {
	for _, d := range neighborOffsets4 {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !p.params.InBounds(n) {
			continue
		}
		if p.Get(n) != nil {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of p: mutating the clone (Place) never
// affects p. Used by the search tree to try a candidate placement without
// disturbing the parent node's plant.
func (p *Plant) Clone() *Plant {
	c := New(p.params)
	for _, e := range p.Iter() {
		c.grid[e.Cell.Y][e.Cell.X] = e.Station
		c.stations[e.Station.Name] = e.Cell
	}
	return c
}

// CanonicalSet returns the set of "{station-name}({x},{y})" fragments over
// every placed station. Two plants with the same canonical set represent
// the same configuration (see CanonicalString for the de-duplication key
// actually used by the search tree).
func (p *Plant) CanonicalSet() []string {
	entries := p.Iter()
	frags := make([]string, len(entries))
	for i, e := range entries {
		frags[i] = fmt.Sprintf("%s(%d,%d)", e.Station.Name, e.Cell.X, e.Cell.Y)
	}
	sort.Strings(frags)
	return frags
}

// CanonicalString collapses CanonicalSet into a single sorted-join string,
// per Design Notes §9: "collapse each configuration to a single canonical
// string ... and use a set of strings" rather than a set of sets.
func (p *Plant) CanonicalString() string {
	return strings.Join(p.CanonicalSet(), "|")
}

// String renders the plant as a fixed-width grid of station names, one row
// per grid row, for debugging and test-failure output. This is a
// stand-alone re-expression of the original source's prettytable-based
// print_table (see DESIGN.md); no visualisation library is pulled in for a
// debug-only helper.
func (p *Plant) String() string {
	const colWidth = 12
	var b strings.Builder
	for y := 0; y < p.params.Size.Y; y++ {
		for x := 0; x < p.params.Size.X; x++ {
			name := "."
			if m := p.Get(Cell{X: x, Y: y}); m != nil {
				name = m.Name
			}
			if len(name) > colWidth-1 {
				name = name[:colWidth-1]
			}
			fmt.Fprintf(&b, "%-*s", colWidth, name)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
