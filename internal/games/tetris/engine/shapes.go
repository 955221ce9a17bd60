// Package engine implements the falling-block game state: the grid, pieces,
// collision rules, row clearing and the tick-driven state machine.
// It is UI-agnostic; the platform layer drives it and renders snapshots.
package engine

import "strings"

// Kind identifies one of the seven canonical shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// String returns the conventional letter for the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is an immutable boolean matrix describing the filled cells of a
// bounding box. Storage is unexported so a Shape can be shared freely.
type Shape struct {
	kind  Kind
	rows  int
	cols  int
	cells []bool // row-major, len rows*cols
}

// newShape builds a shape from a 0/1 matrix.
func newShape(kind Kind, matrix [][]int) Shape {
	s := Shape{
		kind:  kind,
		rows:  len(matrix),
		cols:  len(matrix[0]),
		cells: make([]bool, len(matrix)*len(matrix[0])),
	}
	for i, row := range matrix {
		for j, v := range row {
			s.cells[i*s.cols+j] = v != 0
		}
	}
	return s
}

var catalog = []Shape{
	newShape(KindI, [][]int{{1, 1, 1, 1}}),
	newShape(KindO, [][]int{{1, 1}, {1, 1}}),
	newShape(KindT, [][]int{{0, 1, 0}, {1, 1, 1}}),
	newShape(KindL, [][]int{{1, 0, 0}, {1, 1, 1}}),
	newShape(KindJ, [][]int{{0, 0, 1}, {1, 1, 1}}),
	newShape(KindS, [][]int{{0, 1, 1}, {1, 1, 0}}),
	newShape(KindZ, [][]int{{1, 1, 0}, {0, 1, 1}}),
}

// Shapes returns the catalog in I, O, T, L, J, S, Z order.
// The returned slice is a copy; the shapes themselves are immutable.
func Shapes() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// ShapeOf returns the catalog template for a kind.
func ShapeOf(k Kind) Shape {
	return catalog[int(k)%len(catalog)]
}

// Kind returns the shape's catalog identity.
func (s Shape) Kind() Kind {
	return s.kind
}

// Rows returns the height of the bounding box.
func (s Shape) Rows() int {
	return s.rows
}

// Cols returns the width of the bounding box.
func (s Shape) Cols() int {
	return s.cols
}

// Filled reports whether cell (i, j) of the bounding box is filled.
// Out-of-range indices are empty.
func (s Shape) Filled(i, j int) bool {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return false
	}
	return s.cells[i*s.cols+j]
}

// IsZero reports whether s is the zero Shape (no matrix).
func (s Shape) IsZero() bool {
	return s.rows == 0 || s.cols == 0
}

// Rotate returns the shape turned 90 degrees clockwise.
// For an R x C source the result is C x R with result[j][R-1-i] = source[i][j].
func (s Shape) Rotate() Shape {
	r := Shape{
		kind:  s.kind,
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]bool, len(s.cells)),
	}
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			r.cells[j*r.cols+(s.rows-1-i)] = s.cells[i*s.cols+j]
		}
	}
	return r
}

// Matrix returns a fresh copy of the filled-cell matrix.
func (s Shape) Matrix() [][]bool {
	m := make([][]bool, s.rows)
	for i := range m {
		m[i] = make([]bool, s.cols)
		copy(m[i], s.cells[i*s.cols:(i+1)*s.cols])
	}
	return m
}

// Equal reports whether two shapes have the same kind and matrix.
func (s Shape) Equal(other Shape) bool {
	if s.kind != other.kind || s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i, v := range s.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix with '#' for filled and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for i := 0; i < s.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < s.cols; j++ {
			if s.Filled(i, j) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
