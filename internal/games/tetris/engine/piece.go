package engine

import "fmt"

// Point is an absolute grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a positioned shape. The origin is the top-left corner of the
// shape's bounding box. Pieces are values: moving or rotating returns a new one.
type Piece struct {
	shape Shape
	x, y  int
}

// NewPiece places a shape with its top-left corner at (x, y).
func NewPiece(shape Shape, x, y int) Piece {
	return Piece{shape: shape, x: x, y: y}
}

// Spawn positions a shape horizontally centered on row 0 of a grid
// gridWidth columns wide.
func Spawn(shape Shape, gridWidth int) Piece {
	return Piece{
		shape: shape,
		x:     gridWidth/2 - shape.Cols()/2,
		y:     0,
	}
}

// Shape returns the piece's current (possibly rotated) shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// X returns the origin column.
func (p Piece) X() int {
	return p.x
}

// Y returns the origin row.
func (p Piece) Y() int {
	return p.y
}

// Kind returns the kind of the underlying shape.
func (p Piece) Kind() Kind {
	return p.shape.Kind()
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return Piece{shape: p.shape, x: p.x + dx, y: p.y + dy}
}

// Rotate returns a copy with the shape turned 90 degrees clockwise.
// The origin is kept as is; no wall kick is attempted.
func (p Piece) Rotate() Piece {
	return Piece{shape: p.shape.Rotate(), x: p.x, y: p.y}
}

// Cells returns the absolute coordinates of every filled cell, row by row.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, 4)
	for i := 0; i < p.shape.Rows(); i++ {
		for j := 0; j < p.shape.Cols(); j++ {
			if p.shape.Filled(i, j) {
				pts = append(pts, Point{X: p.x + j, Y: p.y + i})
			}
		}
	}
	return pts
}

// String returns a short description such as "T@(4,0)".
func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.shape.Kind(), p.x, p.y)
}
