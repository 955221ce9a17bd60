package engine

// Lookahead is a bounded FIFO of shapes waiting to become the active piece.
// The engine keeps it at exactly Depth entries between operations:
// every Pop is immediately followed by a Push.
type Lookahead struct {
	depth  int
	shapes []Shape
}

// NewLookahead creates an empty queue holding at most depth shapes.
// A depth below 1 is raised to 1.
func NewLookahead(depth int) *Lookahead {
	if depth < 1 {
		depth = 1
	}
	return &Lookahead{
		depth:  depth,
		shapes: make([]Shape, 0, depth),
	}
}

// Depth returns the steady-state capacity.
func (q *Lookahead) Depth() int {
	return q.depth
}

// Len returns the number of queued shapes.
func (q *Lookahead) Len() int {
	return len(q.shapes)
}

// Push appends a shape. Returns false if the queue is already full.
func (q *Lookahead) Push(s Shape) bool {
	if len(q.shapes) >= q.depth {
		return false
	}
	q.shapes = append(q.shapes, s)
	return true
}

// Pop removes and returns the oldest shape.
func (q *Lookahead) Pop() (Shape, bool) {
	if len(q.shapes) == 0 {
		return Shape{}, false
	}
	s := q.shapes[0]
	copy(q.shapes, q.shapes[1:])
	q.shapes = q.shapes[:len(q.shapes)-1]
	return s, true
}

// Peek returns the oldest shape without removing it.
func (q *Lookahead) Peek() (Shape, bool) {
	if len(q.shapes) == 0 {
		return Shape{}, false
	}
	return q.shapes[0], true
}

// Items returns the queued shapes, oldest first.
func (q *Lookahead) Items() []Shape {
	out := make([]Shape, len(q.shapes))
	copy(out, q.shapes)
	return out
}

// Reset empties the queue.
func (q *Lookahead) Reset() {
	q.shapes = q.shapes[:0]
}

// Fill pushes shapes from src until the queue is full.
func (q *Lookahead) Fill(src ShapeSource) {
	for len(q.shapes) < q.depth {
		q.shapes = append(q.shapes, src.Next())
	}
}
