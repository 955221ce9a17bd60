package tetris

import "github.com/vovakirdan/blockfall/internal/games/tetris/engine"

// Snapshot is the engine snapshot plus the adapter's frame state.
type Snapshot struct {
	engine.Snapshot
	Variant          string
	Frame            uint64
	FramesPerAdvance int
	Paused           bool
}

// Snapshot captures the current game for tests and debugging.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snapshot:         g.eng.Snapshot(),
		Variant:          g.id,
		Frame:            g.frame,
		FramesPerAdvance: g.framesPerAdvance,
		Paused:           g.paused,
	}
}
