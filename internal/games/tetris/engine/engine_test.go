package engine

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, kinds ...Kind) *Engine {
	t.Helper()
	e, err := New(DefaultConfig(), WithShapeSource(NewSequenceSource(kinds...)))
	require.NoError(t, err)
	return e
}

func setActive(e *Engine, kind Kind, x, y int) {
	p := NewPiece(ShapeOf(kind), x, y)
	e.active = &p
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"narrow", func(c *Config) { c.Width = 3 }, false},
		{"short", func(c *Config) { c.Height = 0 }, false},
		{"negative reward", func(c *Config) { c.RowReward = -1 }, false},
		{"zero reward", func(c *Config) { c.RowReward = 0 }, true},
		{"no lookahead", func(c *Config) { c.LookaheadDepth = 0 }, false},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }, false},
		{"deep lookahead", func(c *Config) { c.LookaheadDepth = 5 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			e, err := New(cfg)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, cfg, e.Config())
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
			assert.Nil(t, e)
		})
	}
}

func TestNewGameState(t *testing.T) {
	e := newTestEngine(t, KindT)
	snap := e.Snapshot()

	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, StateRunning, snap.State)
	assert.Nil(t, snap.Active, "first piece spawns on the first advance")
	assert.Equal(t, KindT, snap.Next.Kind())
	assert.Len(t, snap.Upcoming, 1)
	for y := range snap.Grid {
		for x := range snap.Grid[y] {
			require.False(t, snap.Occupied(x, y))
		}
	}
}

func TestFirstAdvanceSpawnsAndDrops(t *testing.T) {
	e := newTestEngine(t, KindT, KindO)
	e.Advance()

	snap := e.Snapshot()
	require.NotNil(t, snap.Active)
	assert.Equal(t, KindT, snap.Active.Kind())
	assert.Equal(t, 4, snap.Active.X())
	assert.Equal(t, 1, snap.Active.Y(), "a fresh piece falls in the same tick it spawns")
	assert.Equal(t, KindO, snap.Next.Kind(), "queue refilled after spawn")
}

// An O piece resting on the floor has origin row 18; the tick that finds it
// there locks it.
func TestOPieceFallsToFloorThenLocks(t *testing.T) {
	e := newTestEngine(t, KindI)
	setActive(e, KindO, 4, 0)

	for i := 0; i < 18; i++ {
		e.Advance()
	}
	snap := e.Snapshot()
	require.NotNil(t, snap.Active)
	assert.Equal(t, 4, snap.Active.X())
	assert.Equal(t, 18, snap.Active.Y())
	assert.Equal(t, 0, snap.PiecesLocked)

	e.Advance()
	snap = e.Snapshot()
	assert.Nil(t, snap.Active)
	assert.Equal(t, 1, snap.PiecesLocked)
	for _, p := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, CellOf(KindO), snap.Grid[p.Y][p.X], "cell %v", p)
	}
	assert.Equal(t, 4, e.grid.FilledCount())
}

func TestFillingGapClearsRowAndScores(t *testing.T) {
	e := newTestEngine(t, KindO)
	fillRow(e.grid, 19, 3)
	e.grid.Set(6, 18, CellOf(KindS))

	// Vertical I occupying column 3, rows 16..19: already resting on the floor.
	p := NewPiece(ShapeOf(KindI).Rotate(), 3, 16)
	require.True(t, e.grid.CanPlace(p))
	e.active = &p

	e.Advance()
	snap := e.Snapshot()

	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 1, snap.LinesCleared)
	assert.Nil(t, snap.Active)

	// Row 19 now holds what used to be row 18: the I's column and the S marker.
	want := make([]Cell, 10)
	want[3] = CellOf(KindI)
	want[6] = CellOf(KindS)
	assert.Empty(t, cmp.Diff(want, snap.Grid[19]))
	for y := 16; y <= 18; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, x == 3 && y >= 17, snap.Occupied(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestClearingSeveralRowsScoresEach(t *testing.T) {
	e := newTestEngine(t, KindO)
	for y := 16; y < 20; y++ {
		fillRow(e.grid, y, 9)
	}
	p := NewPiece(ShapeOf(KindI).Rotate(), 9, 16)
	e.active = &p

	e.Advance()

	assert.Equal(t, 400, e.Score())
	assert.Equal(t, 0, e.grid.FilledCount())
}

func TestRowZeroOccupiedEndsGame(t *testing.T) {
	e := newTestEngine(t, KindT)
	fillRow(e.grid, 0)
	e.grid.Set(2, 10, CellOf(KindL))
	setActive(e, KindO, 4, 5)
	before := e.Snapshot()

	e.Advance()
	assert.True(t, e.IsGameOver())
	assert.Equal(t, StateGameOver, e.State())

	for i := 0; i < 5; i++ {
		e.Advance()
		e.MoveLeft()
		e.MoveRight()
		e.Rotate()
	}
	after := e.Snapshot()
	assert.Empty(t, cmp.Diff(before.Grid, after.Grid), "grid must not change after game over")
	require.NotNil(t, after.Active)
	assert.Equal(t, 4, after.Active.X())
	assert.Equal(t, 5, after.Active.Y())
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, uint64(1), after.Ticks, "ticks stop counting once the game is over")
}

func TestStackReachingTopEndsGame(t *testing.T) {
	e := newTestEngine(t, KindO)
	for i := 0; i < 500 && !e.IsGameOver(); i++ {
		e.Advance()
	}
	require.True(t, e.IsGameOver())

	snap := e.Snapshot()
	assert.True(t, snap.Occupied(4, 0) || snap.Occupied(5, 0))
	assert.Equal(t, 10, snap.PiecesLocked, "ten stacked O pieces fill twenty rows")
	assert.Equal(t, 0, snap.Score)
}

func TestMoveLeftAtWallIsNoop(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindT, 0, 5)

	e.MoveLeft()
	snap := e.Snapshot()
	assert.Equal(t, 0, snap.Active.X())
	assert.Equal(t, 5, snap.Active.Y())

	e.MoveRight()
	assert.Equal(t, 1, e.Snapshot().Active.X())
}

func TestMoveRightAtWallIsNoop(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindI, 6, 5)

	e.MoveRight()
	assert.Equal(t, 6, e.Snapshot().Active.X())
}

func TestMoveBlockedByStack(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindO, 4, 5)
	e.grid.Set(3, 6, CellOf(KindZ))
	e.grid.Set(6, 5, CellOf(KindZ))

	e.MoveLeft()
	e.MoveRight()
	assert.Equal(t, 4, e.Snapshot().Active.X())
}

func TestRotateRejectedPastLeftWall(t *testing.T) {
	e := newTestEngine(t, KindO)
	// A vertical T with its left column at x=-1 only exists if placed by hand;
	// the turned shape still has a filled cell in that column.
	p := NewPiece(ShapeOf(KindT).Rotate().Rotate().Rotate(), -1, 5)
	e.active = &p
	before := p.Shape().Matrix()

	e.Rotate()
	snap := e.Snapshot()
	assert.Empty(t, cmp.Diff(before, snap.Active.Shape().Matrix()))
	assert.Equal(t, -1, snap.Active.X())
}

func TestRotateRejectedPastRightWall(t *testing.T) {
	e := newTestEngine(t, KindO)
	vertical := ShapeOf(KindT).Rotate()
	p := NewPiece(vertical, 8, 5)
	require.True(t, e.grid.CanPlace(p))
	e.active = &p

	e.Rotate()
	snap := e.Snapshot()
	assert.True(t, snap.Active.Shape().Equal(vertical), "rotated T would need columns 8..10")
}

func TestRotateRejectedByStack(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindI, 3, 5)
	e.grid.Set(3, 7, CellOf(KindS))

	e.Rotate()
	assert.Equal(t, 1, e.Snapshot().Active.Shape().Rows())
}

func TestRotateAllowedAboveTop(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindI, 3, -1)

	e.Rotate()
	snap := e.Snapshot()
	assert.Equal(t, 4, snap.Active.Shape().Rows(), "rows above the grid do not block rotation")
}

func TestRotateAccepted(t *testing.T) {
	e := newTestEngine(t, KindO)
	setActive(e, KindT, 4, 5)

	e.Rotate()
	assert.True(t, e.Snapshot().Active.Shape().Equal(ShapeOf(KindT).Rotate()))
}

func TestCommandsWithoutActivePieceAreNoops(t *testing.T) {
	e := newTestEngine(t, KindO)
	before := e.Snapshot()

	e.MoveLeft()
	e.MoveRight()
	e.Rotate()

	after := e.Snapshot()
	assert.Nil(t, after.Active)
	assert.Equal(t, before.Ticks, after.Ticks)
}

func TestScoreMovesInRowRewardSteps(t *testing.T) {
	e, err := New(DefaultConfig(), WithSeed(99))
	require.NoError(t, err)

	prev := e.Score()
	prevLines := 0
	for i := 0; i < 2000 && !e.IsGameOver(); i++ {
		switch i % 5 {
		case 1:
			e.MoveLeft()
		case 2:
			e.Rotate()
		case 3:
			e.MoveRight()
			e.MoveRight()
		}
		e.Advance()

		snap := e.Snapshot()
		require.GreaterOrEqual(t, snap.Score, prev)
		require.Equal(t, (snap.Score-prev)/100, snap.LinesCleared-prevLines)
		require.Zero(t, (snap.Score-prev)%100)
		require.Len(t, snap.Upcoming, 1)
		for y := range snap.Grid {
			require.False(t, e.grid.RowFull(y), "no full row survives a tick")
		}
		prev, prevLines = snap.Score, snap.LinesCleared
	}
}

func TestLookaheadDepthStaysConstant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LookaheadDepth = 3
	e, err := New(cfg, WithShapeSource(NewSequenceSource(KindI, KindO, KindT, KindL)))
	require.NoError(t, err)

	kinds := func(shapes []Shape) []Kind {
		out := make([]Kind, len(shapes))
		for i, s := range shapes {
			out[i] = s.Kind()
		}
		return out
	}
	assert.Equal(t, []Kind{KindI, KindO, KindT}, kinds(e.Snapshot().Upcoming))

	e.Advance()
	snap := e.Snapshot()
	assert.Equal(t, KindI, snap.Active.Kind())
	assert.Equal(t, []Kind{KindO, KindT, KindL}, kinds(snap.Upcoming))

	for i := 0; i < 300 && !e.IsGameOver(); i++ {
		e.Advance()
		require.Len(t, e.Snapshot().Upcoming, 3)
	}
}

func TestInitializeResets(t *testing.T) {
	e := newTestEngine(t, KindO)
	for i := 0; i < 500 && !e.IsGameOver(); i++ {
		e.Advance()
	}
	require.True(t, e.IsGameOver())

	e.Initialize()
	snap := e.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, uint64(0), snap.Ticks)
	assert.Equal(t, 0, snap.PiecesLocked)
	assert.Nil(t, snap.Active)
	assert.Equal(t, 0, e.grid.FilledCount())
	assert.Len(t, snap.Upcoming, 1)
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() Snapshot {
		e, err := New(DefaultConfig(), WithSeed(1234))
		require.NoError(t, err)
		for i := 0; i < 400; i++ {
			if i%3 == 0 {
				e.MoveRight()
			}
			e.Advance()
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if diff := cmp.Diff(a.Grid, b.Grid); diff != "" {
		t.Fatalf("grids diverged (-a +b):\n%s", diff)
	}
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.State, b.State)
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newTestEngine(t, KindT)
	e.Advance()

	snap := e.Snapshot()
	snap.Grid[19][0] = CellOf(KindZ)
	snap.Upcoming[0] = ShapeOf(KindI)
	moved := snap.Active.Moved(3, 3)
	snap.Active = &moved

	fresh := e.Snapshot()
	assert.False(t, fresh.Occupied(0, 19))
	assert.Equal(t, KindT, fresh.Upcoming[0].Kind())
	assert.Equal(t, 1, fresh.Active.Y())
}

func TestLoggerReceivesLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	e, err := New(DefaultConfig(), WithShapeSource(NewSequenceSource(KindO)), WithLogger(logger))
	require.NoError(t, err)
	for i := 0; i < 500 && !e.IsGameOver(); i++ {
		e.Advance()
	}

	out := buf.String()
	assert.Contains(t, out, "piece spawned")
	assert.Contains(t, out, "piece locked")
	assert.Contains(t, out, "game over")
}

func TestConcurrentCommands(t *testing.T) {
	e, err := New(DefaultConfig(), WithSeed(5))
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for _, cmd := range []func(){e.MoveLeft, e.MoveRight, e.Rotate} {
		wg.Add(1)
		go func(cmd func()) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					cmd()
					_ = e.Snapshot()
				}
			}
		}(cmd)
	}

	deadline := time.After(200 * time.Millisecond)
loop:
	for !e.IsGameOver() {
		select {
		case <-deadline:
			break loop
		default:
			e.Advance()
		}
	}
	close(stop)
	wg.Wait()

	snap := e.Snapshot()
	if snap.Active != nil {
		for _, c := range snap.Active.Cells() {
			assert.GreaterOrEqual(t, c.X, 0)
			assert.Less(t, c.X, 10)
			assert.Less(t, c.Y, 20)
		}
	}
}
