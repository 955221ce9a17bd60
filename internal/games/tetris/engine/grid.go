package engine

import "fmt"

// Cell is the occupancy marker of one grid square.
// Zero is empty; an occupied cell remembers the kind that filled it.
type Cell uint8

// CellEmpty marks an unoccupied square.
const CellEmpty Cell = 0

// CellOf returns the occupied cell value for a shape kind.
func CellOf(k Kind) Cell {
	return Cell(k) + 1
}

// Occupied reports whether the cell is filled.
func (c Cell) Occupied() bool {
	return c != CellEmpty
}

// Kind returns the kind that filled the cell. Only meaningful if Occupied.
func (c Cell) Kind() Kind {
	if c == CellEmpty {
		return 0
	}
	return Kind(c - 1)
}

// Grid is a fixed-size occupancy matrix stored in row-major order.
// Its dimensions never change after construction.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. Non-positive dimensions are a programming
// error and panic.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y), or CellEmpty outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellEmpty
	}
	return g.cells[y*g.width+x]
}

// Occupied reports whether (x, y) is filled. Out-of-range squares read as
// empty so that pieces poking above row 0 never fault.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y).Occupied()
}

// Set writes a cell. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = c
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

// CanMoveLeft reports whether p can shift one column left.
// Only the left wall and occupancy are checked.
func (g *Grid) CanMoveLeft(p Piece) bool {
	for _, c := range p.Cells() {
		nx := c.X - 1
		if nx < 0 || g.Occupied(nx, c.Y) {
			return false
		}
	}
	return true
}

// CanMoveRight reports whether p can shift one column right.
// Only the right wall and occupancy are checked.
func (g *Grid) CanMoveRight(p Piece) bool {
	for _, c := range p.Cells() {
		nx := c.X + 1
		if nx >= g.width || g.Occupied(nx, c.Y) {
			return false
		}
	}
	return true
}

// CanMoveDown reports whether p can drop one row.
// Only the floor and occupancy are checked.
func (g *Grid) CanMoveDown(p Piece) bool {
	for _, c := range p.Cells() {
		ny := c.Y + 1
		if ny >= g.height || g.Occupied(c.X, ny) {
			return false
		}
	}
	return true
}

// CanPlace reports whether p fits where it stands: inside the side walls,
// above the floor and not overlapping locked cells. Cells above row 0 are
// allowed.
func (g *Grid) CanPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.width || c.Y >= g.height {
			return false
		}
		if g.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock writes the piece's filled cells into the grid. The caller must have
// checked placement; cells outside the grid are dropped.
func (g *Grid) Lock(p Piece) {
	cell := CellOf(p.Kind())
	for _, c := range p.Cells() {
		g.Set(c.X, c.Y, cell)
	}
}

// RowFull reports whether every column of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for x := 0; x < g.width; x++ {
		if !g.cells[y*g.width+x].Occupied() {
			return false
		}
	}
	return true
}

// RowOccupied reports whether any column of row y is occupied.
func (g *Grid) RowOccupied(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for x := 0; x < g.width; x++ {
		if g.cells[y*g.width+x].Occupied() {
			return true
		}
	}
	return false
}

// ClearFullRows removes every full row, scanning top to bottom. Each removal
// shifts the rows above it down by one and empties row 0; rows below are
// never touched. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := 0; y < g.height; y++ {
		if !g.RowFull(y) {
			continue
		}
		g.removeRow(y)
		cleared++
	}
	return cleared
}

// removeRow collapses row r by copying each row above it down one step.
func (g *Grid) removeRow(r int) {
	w := g.width
	for y := r; y > 0; y-- {
		copy(g.cells[y*w:(y+1)*w], g.cells[(y-1)*w:y*w])
	}
	for x := 0; x < w; x++ {
		g.cells[x] = CellEmpty
	}
}

// Rows returns a deep copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied() {
			n++
		}
	}
	return n
}
