package engine

// Snapshot is a read-only copy of the engine state for rendering and tests.
// Nothing in it aliases engine memory.
type Snapshot struct {
	Width        int
	Height       int
	Grid         [][]Cell // Grid[y][x]
	Active       *Piece   // nil between a lock and the next spawn
	Next         Shape    // Head of the lookahead queue
	Upcoming     []Shape  // Whole lookahead queue, head first
	Score        int
	State        State
	Ticks        uint64
	LinesCleared int
	PiecesLocked int
}

// Snapshot captures the current state under the engine lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		Width:        e.grid.Width(),
		Height:       e.grid.Height(),
		Grid:         e.grid.Rows(),
		Upcoming:     e.queue.Items(),
		Score:        e.score,
		State:        e.state,
		Ticks:        e.ticks,
		LinesCleared: e.linesCleared,
		PiecesLocked: e.piecesLocked,
	}
	if next, ok := e.queue.Peek(); ok {
		snap.Next = next
	}
	if e.active != nil {
		p := *e.active
		snap.Active = &p
	}
	return snap
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Occupied reports whether (x, y) is filled in the captured grid.
func (s Snapshot) Occupied(x, y int) bool {
	if y < 0 || y >= len(s.Grid) || x < 0 || x >= len(s.Grid[y]) {
		return false
	}
	return s.Grid[y][x].Occupied()
}
