package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnCentersOnUnrotatedWidth(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
		wantX int
	}{
		{KindI, 10, 3},
		{KindO, 10, 4},
		{KindT, 10, 4},
		{KindS, 10, 4},
		{KindI, 7, 1},
		{KindO, 7, 2},
	}

	for _, tc := range tests {
		p := Spawn(ShapeOf(tc.kind), tc.width)
		assert.Equal(t, tc.wantX, p.X(), "kind %s width %d", tc.kind, tc.width)
		assert.Equal(t, 0, p.Y())
	}
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(ShapeOf(KindT), 4, 2)

	want := []Point{{5, 2}, {4, 3}, {5, 3}, {6, 3}}
	assert.Equal(t, want, p.Cells())
}

func TestPieceMovedIsACopy(t *testing.T) {
	p := NewPiece(ShapeOf(KindO), 4, 0)
	q := p.Moved(-1, 1)

	assert.Equal(t, 4, p.X())
	assert.Equal(t, 0, p.Y())
	assert.Equal(t, 3, q.X())
	assert.Equal(t, 1, q.Y())
}

func TestPieceRotateKeepsOrigin(t *testing.T) {
	p := NewPiece(ShapeOf(KindL), 2, 7)
	r := p.Rotate()

	assert.Equal(t, 2, r.X())
	assert.Equal(t, 7, r.Y())
	assert.Equal(t, 3, r.Shape().Rows())
	assert.Equal(t, 2, r.Shape().Cols())
	assert.True(t, p.Shape().Equal(ShapeOf(KindL)), "original piece keeps its shape")
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "J@(3,-1)", NewPiece(ShapeOf(KindJ), 3, -1).String())
}
