package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: tetris).

Controls:
  Left/A/H        - Move left
  Right/D/L       - Move right
  Up/W/K/Space    - Rotate
  P               - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a text screenshot
  Q/Esc/Ctrl+C    - Quit

Examples:
  blockfall play
  blockfall play tetris_preview
  blockfall play --seed 42 --config ./fast.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'blockfall list' to see them", gameID)
	}

	logger, cleanup, err := setupLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without a scoreboard
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
