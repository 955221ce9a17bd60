// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/tetris/engine"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Grid    TetrisGrid    `yaml:"grid"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
	Preview TetrisPreview `yaml:"preview"`
}

// TetrisGrid defines the playfield size in cells.
type TetrisGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines how often gravity runs.
type TetrisTiming struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// TetrisScoring defines points awarded per cleared row.
type TetrisScoring struct {
	RowReward int `yaml:"row_reward"`
}

// TetrisPreview defines how many upcoming shapes are queued and shown.
type TetrisPreview struct {
	LookaheadDepth int `yaml:"lookahead_depth"`
}

// TickInterval returns the gravity interval as a duration.
func (c TetrisConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// Validate checks that the values describe a playable game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Grid.Width < 4 || c.Grid.Height < 4:
		return fmt.Errorf("%w: grid %dx%d, need at least 4x4", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.Width > 64 || c.Grid.Height > 64:
		return fmt.Errorf("%w: grid %dx%d, at most 64x64", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Timing.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick_interval_ms %d", ErrInvalid, c.Timing.TickIntervalMs)
	case c.Scoring.RowReward < 0:
		return fmt.Errorf("%w: row_reward %d", ErrInvalid, c.Scoring.RowReward)
	case c.Preview.LookaheadDepth < 1 || c.Preview.LookaheadDepth > 6:
		return fmt.Errorf("%w: lookahead_depth %d, want 1..6", ErrInvalid, c.Preview.LookaheadDepth)
	}
	return nil
}

// EngineConfig converts to the engine's construction parameters.
func (c TetrisConfig) EngineConfig() engine.Config {
	return engine.Config{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		TickInterval:   c.TickInterval(),
		RowReward:      c.Scoring.RowReward,
		LookaheadDepth: c.Preview.LookaheadDepth,
	}
}
