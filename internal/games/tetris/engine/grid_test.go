package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow occupies every column of row y except the listed gaps.
func fillRow(g *Grid, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if !skip[x] {
			g.Set(x, y, CellOf(KindZ))
		}
	}
}

func TestNewGridPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 20) })
	assert.Panics(t, func() { NewGrid(10, -1) })
	assert.NotPanics(t, func() { NewGrid(1, 1) })
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(-1, 0, CellOf(KindI))
	g.Set(0, 20, CellOf(KindI))

	assert.Equal(t, 0, g.FilledCount())
	assert.Equal(t, CellEmpty, g.At(-1, -1))
	assert.False(t, g.Occupied(3, -5))
}

func TestCellKindTag(t *testing.T) {
	for _, s := range Shapes() {
		c := CellOf(s.Kind())
		assert.True(t, c.Occupied())
		assert.Equal(t, s.Kind(), c.Kind())
	}
	assert.False(t, CellEmpty.Occupied())
}

func TestCanMoveLeftRight(t *testing.T) {
	g := NewGrid(10, 20)
	o := ShapeOf(KindO)

	tests := []struct {
		name      string
		piece     Piece
		setup     func(*Grid)
		wantLeft  bool
		wantRight bool
	}{
		{"open field", NewPiece(o, 4, 5), nil, true, true},
		{"left wall", NewPiece(o, 0, 5), nil, false, true},
		{"right wall", NewPiece(o, 8, 5), nil, true, false},
		{"blocked left", NewPiece(o, 4, 5), func(g *Grid) { g.Set(3, 6, CellOf(KindI)) }, false, true},
		{"blocked right", NewPiece(o, 4, 5), func(g *Grid) { g.Set(6, 5, CellOf(KindI)) }, true, false},
		{"above top edge", NewPiece(ShapeOf(KindI).Rotate(), 4, -2), nil, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g.Clear()
			if tc.setup != nil {
				tc.setup(g)
			}
			assert.Equal(t, tc.wantLeft, g.CanMoveLeft(tc.piece))
			assert.Equal(t, tc.wantRight, g.CanMoveRight(tc.piece))
		})
	}
}

func TestCanMoveDown(t *testing.T) {
	g := NewGrid(10, 20)
	o := ShapeOf(KindO)

	assert.True(t, g.CanMoveDown(NewPiece(o, 4, 17)))
	assert.False(t, g.CanMoveDown(NewPiece(o, 4, 18)), "floor")

	g.Set(5, 10, CellOf(KindS))
	assert.False(t, g.CanMoveDown(NewPiece(o, 4, 8)), "stack")
	assert.True(t, g.CanMoveDown(NewPiece(o, 6, 8)))
}

func TestCanPlace(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(2, 19, CellOf(KindJ))
	vertI := ShapeOf(KindI).Rotate()

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"inside", NewPiece(ShapeOf(KindT), 4, 4), true},
		{"left wall", NewPiece(ShapeOf(KindT), -1, 4), false},
		{"right wall", NewPiece(ShapeOf(KindI), 7, 4), false},
		{"below floor", NewPiece(vertI, 0, 17), false},
		{"overlap", NewPiece(vertI, 2, 16), false},
		{"partly above row 0", NewPiece(vertI, 5, -2), true},
		{"entirely above row 0", NewPiece(ShapeOf(KindO), 5, -3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.CanPlace(tc.piece))
		})
	}
}

func TestLockWritesFootprintOnly(t *testing.T) {
	g := NewGrid(10, 20)
	g.Set(0, 0, CellOf(KindZ))

	p := NewPiece(ShapeOf(KindT), 3, 10)
	require.True(t, g.CanPlace(p))
	g.Lock(p)

	for _, c := range p.Cells() {
		assert.Equal(t, CellOf(KindT), g.At(c.X, c.Y))
	}
	assert.Equal(t, 5, g.FilledCount())
	assert.False(t, g.Occupied(3, 10), "empty corner of the bounding box stays empty")
	assert.False(t, g.CanPlace(p), "a locked piece cannot be placed over itself")
}

func TestLockSkipsCellsAboveGrid(t *testing.T) {
	g := NewGrid(10, 20)
	g.Lock(NewPiece(ShapeOf(KindI).Rotate(), 0, -2))

	assert.Equal(t, 2, g.FilledCount())
	assert.True(t, g.Occupied(0, 0))
	assert.True(t, g.Occupied(0, 1))
}

func TestClearFullRowsSingle(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	g.Set(4, 18, CellOf(KindT))
	g.Set(7, 10, CellOf(KindL))

	cleared := g.ClearFullRows()

	assert.Equal(t, 1, cleared)
	assert.True(t, g.Occupied(4, 19), "row above shifts into the cleared row")
	assert.True(t, g.Occupied(7, 11))
	assert.Equal(t, 2, g.FilledCount())
	assert.False(t, g.RowOccupied(0))
}

func TestClearFullRowsMultipleNonAdjacent(t *testing.T) {
	g := NewGrid(6, 8)
	fillRow(g, 7)
	fillRow(g, 6, 2)
	fillRow(g, 5)
	g.Set(1, 4, CellOf(KindO))

	cleared := g.ClearFullRows()

	assert.Equal(t, 2, cleared)
	// Row 6 (with its gap) ends on the floor; the marker lands two rows lower.
	for x := 0; x < 6; x++ {
		assert.Equal(t, x != 2, g.Occupied(x, 7), "x=%d", x)
	}
	assert.True(t, g.Occupied(1, 6))
	assert.Equal(t, 6, g.FilledCount())
}

func TestClearFullRowsNoop(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19, 0)
	before := g.Rows()

	assert.Equal(t, 0, g.ClearFullRows())
	assert.Empty(t, cmp.Diff(before, g.Rows()))
}

// collapse is a reference model: drop full rows, pad empty rows on top.
func collapse(rows [][]Cell) [][]Cell {
	width := len(rows[0])
	kept := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		full := true
		for _, c := range row {
			if !c.Occupied() {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	out := make([][]Cell, 0, len(rows))
	for len(out)+len(kept) < len(rows) {
		out = append(out, make([]Cell, width))
	}
	return append(out, kept...)
}

func TestClearFullRowsMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		g := NewGrid(10, 20)
		lowestFull := -1
		for y := 0; y < g.Height(); y++ {
			switch rng.Intn(4) {
			case 0:
				fillRow(g, y)
				lowestFull = y
			case 1:
				fillRow(g, y, rng.Intn(10))
			default:
				for x := 0; x < g.Width(); x++ {
					if rng.Intn(3) == 0 {
						g.Set(x, y, CellOf(Kind(rng.Intn(KindCount))))
					}
				}
				if g.RowFull(y) {
					lowestFull = y
				}
			}
		}

		before := g.Rows()
		want := collapse(before)
		g.ClearFullRows()
		got := g.Rows()

		require.Empty(t, cmp.Diff(want, got), "trial %d", trial)
		for y := 0; y < g.Height(); y++ {
			require.False(t, g.RowFull(y), "trial %d: row %d still full", trial, y)
		}
		for y := lowestFull + 1; y < g.Height(); y++ {
			require.Equal(t, before[y], got[y], "trial %d: row %d below the clears changed", trial, y)
		}
	}
}

func TestRowsAndCloneAreIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	rows := g.Rows()
	rows[0][0] = CellOf(KindI)
	assert.False(t, g.Occupied(0, 0))

	c := g.Clone()
	c.Set(1, 1, CellOf(KindO))
	assert.False(t, g.Occupied(1, 1))
	assert.True(t, c.Occupied(1, 1))
}
