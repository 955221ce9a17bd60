// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List game variants
//	blockfall play [variant]    - Play a variant (default: tetris)
//	blockfall menu              - Pick variants interactively
//	blockfall serve             - Host games over SSH
//	blockfall scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible games
//	--db <path>           - Scores database (default: ~/.blockfall/scores.db)
//	--config <path>       - Game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops shapes into a 10x20 well. Steer and rotate them to
fill rows; every full row is cleared and scores 100 points. The game
ends when the stack reaches the top.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Host games over SSH
  scores   - View high scores

Examples:
  blockfall play
  blockfall play tetris_preview --fps 30
  blockfall menu --config ./wide.yaml
  blockfall serve --ssh :2222
  blockfall scores tetris`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		if flagConfig != "" {
			if _, err := config.LoadTetris(flagConfig); err != nil {
				return err
			}
		}
		tetris.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
