package engine

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config holds the constants fixed when an engine is built.
type Config struct {
	Width          int           // Grid columns
	Height         int           // Grid rows
	TickInterval   time.Duration // Cadence the driver should call Advance at
	RowReward      int           // Points per cleared row
	LookaheadDepth int           // Number of upcoming shapes kept queued
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         20,
		TickInterval:   500 * time.Millisecond,
		RowReward:      100,
		LookaheadDepth: 1,
	}
}

// ErrInvalidConfig is returned by New when the configuration cannot be used.
var ErrInvalidConfig = errors.New("engine: invalid config")

// Validate checks the config. Every catalog shape must fit the grid.
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 4x4", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.RowReward < 0 {
		return fmt.Errorf("%w: negative row reward %d", ErrInvalidConfig, c.RowReward)
	}
	if c.LookaheadDepth < 1 {
		return fmt.Errorf("%w: lookahead depth %d, need at least 1", ErrInvalidConfig, c.LookaheadDepth)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

// Option customizes an Engine.
type Option func(*Engine)

// WithShapeSource replaces the random shape generator.
func WithShapeSource(src ShapeSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithSeed seeds the default random shape generator.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.source = NewRandomSource(seed)
	}
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the grid, the active piece, the lookahead queue and the score.
// All methods are safe for concurrent use; they are serialized by one mutex
// and never block beyond it.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	source ShapeSource
	logger *log.Logger

	grid   *Grid
	queue  *Lookahead
	active *Piece
	score  int
	state  State

	ticks        uint64
	linesCleared int
	piecesLocked int
}

// New validates cfg, applies options and initializes a fresh game.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = NewRandomSource(time.Now().UnixNano())
	}

	e.grid = NewGrid(cfg.Width, cfg.Height)
	e.queue = NewLookahead(cfg.LookaheadDepth)
	e.Initialize()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Initialize starts a new game on the same engine.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.Clear()
	e.queue.Reset()
	e.queue.Fill(e.source)
	e.active = nil
	e.score = 0
	e.state = StateRunning
	e.ticks = 0
	e.linesCleared = 0
	e.piecesLocked = 0
}

// Advance runs one gravity tick: game-over check, spawn if needed, then
// drop the active piece one row or lock it and clear rows.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateGameOver {
		return
	}
	e.ticks++

	if e.grid.RowOccupied(0) {
		e.state = StateGameOver
		e.logger.Info("game over", "score", e.score, "lines", e.linesCleared, "pieces", e.piecesLocked)
		return
	}

	if e.active == nil {
		e.spawnLocked()
	}

	if e.grid.CanMoveDown(*e.active) {
		next := e.active.Moved(0, 1)
		e.active = &next
		return
	}

	e.grid.Lock(*e.active)
	e.piecesLocked++
	cleared := e.grid.ClearFullRows()
	if cleared > 0 {
		e.score += cleared * e.cfg.RowReward
		e.linesCleared += cleared
		e.logger.Debug("rows cleared", "rows", cleared, "score", e.score)
	}
	e.logger.Debug("piece locked", "piece", e.active.String())
	e.active = nil
}

// spawnLocked activates the head of the queue and refills it.
// Caller must hold e.mu.
func (e *Engine) spawnLocked() {
	shape, ok := e.queue.Pop()
	if !ok {
		shape = e.source.Next()
	}
	e.queue.Fill(e.source)

	p := Spawn(shape, e.cfg.Width)
	e.active = &p
	e.logger.Debug("piece spawned", "piece", p.String())
}

// MoveLeft shifts the active piece one column left if it fits.
func (e *Engine) MoveLeft() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.commandable() {
		return
	}
	if e.grid.CanMoveLeft(*e.active) {
		next := e.active.Moved(-1, 0)
		e.active = &next
	}
}

// MoveRight shifts the active piece one column right if it fits.
func (e *Engine) MoveRight() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.commandable() {
		return
	}
	if e.grid.CanMoveRight(*e.active) {
		next := e.active.Moved(1, 0)
		e.active = &next
	}
}

// Rotate turns the active piece clockwise if the rotated shape fits
// at the same origin.
func (e *Engine) Rotate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.commandable() {
		return
	}
	rotated := e.active.Rotate()
	if e.grid.CanPlace(rotated) {
		e.active = &rotated
	}
}

// commandable reports whether player commands apply. Caller must hold e.mu.
func (e *Engine) commandable() bool {
	return e.state == StateRunning && e.active != nil
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == StateGameOver
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}
