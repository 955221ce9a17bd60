// Package tetris adapts the falling-block engine to the platform's
// frame-driven Game interface.
package tetris

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant IDs.
const (
	IDClassic = "tetris"
	IDPreview = "tetris_preview"
)

// previewDepth is the lookahead depth of the preview variant.
const previewDepth = 3

var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the YAML config file used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDPreview, func() registry.Game {
		return NewPreview()
	})
}

var (
	_ registry.Game    = (*Game)(nil)
	_ registry.Resizer = (*Game)(nil)
)

// Game runs one engine at the platform frame rate.
type Game struct {
	id    string
	depth int // Lookahead override; 0 uses the config value

	cfg    config.TetrisConfig
	eng    *engine.Engine
	rng    *rand.Rand
	source engine.ShapeSource // Test hook; nil means seeded random

	frame            uint64
	framesPerAdvance int
	frameCounter     int

	paused  bool
	screenW int
	screenH int
	fps     int
}

// New creates the classic variant.
func New() *Game {
	return &Game{id: IDClassic}
}

// NewPreview creates the variant that shows three upcoming shapes.
func NewPreview() *Game {
	return &Game{id: IDPreview, depth: previewDepth}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDPreview {
		return "Blockfall (3 Preview)"
	}
	return "Blockfall"
}

// Reset loads the config and starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	if g.depth > 0 {
		cfg.Preview.LookaheadDepth = g.depth
	}
	g.cfg = cfg

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	opts := []engine.Option{
		engine.WithSeed(seed),
		engine.WithLogger(logger.With("game", g.id)),
	}
	if g.source != nil {
		opts = append(opts, engine.WithShapeSource(g.source))
	}

	eng, err := engine.New(cfg.EngineConfig(), opts...)
	if err != nil {
		// LoadTetris only returns validated configs
		logger.Error("engine rejected config", "err", err)
		eng, _ = engine.New(config.DefaultTetrisConfig().EngineConfig(), opts...)
	}
	g.eng = eng

	g.fps = rc.TickRate
	if g.fps <= 0 {
		g.fps = core.DefaultConfig().TickRate
	}
	g.framesPerAdvance = FramesPerAdvance(cfg.TickInterval(), g.fps)
	g.frame = 0
	g.frameCounter = 0
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// FramesPerAdvance converts the gravity interval into whole frames, at least one.
func FramesPerAdvance(interval time.Duration, fps int) int {
	n := int(math.Round(interval.Seconds() * float64(fps)))
	return max(1, n)
}

// Step handles one frame of input and runs gravity when due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	over := g.eng.IsGameOver()

	if in.Has(core.ActionRestart) && over {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.fps,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if over || g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.eng.Rotate()
	}

	advanced := false
	g.frameCounter++
	if g.frameCounter >= g.framesPerAdvance {
		g.frameCounter = 0
		g.eng.Advance()
		advanced = true
	}

	return core.StepResult{State: g.State(), Advanced: advanced}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Lines:    snap.LinesCleared,
		GameOver: snap.GameOver(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
