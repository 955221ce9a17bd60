package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic 10x20 configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			TickIntervalMs: 500,
		},
		Scoring: TetrisScoring{
			RowReward: 100,
		},
		Preview: TetrisPreview{
			LookaheadDepth: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_preview":
		return defaultTetrisYAML
	default:
		return nil
	}
}
