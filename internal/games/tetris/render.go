package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris/engine"
)

const (
	hudHeight   = 2  // Status line and separator
	cellWidth   = 2  // Screen columns per grid cell
	panelWidth  = 12 // Upcoming-shapes box, borders included
	panelGap    = 2
	statsHeight = 5 // Score, lines and pieces below the panel
)

// kindColors maps each shape kind to its palette color.
var kindColors = [engine.KindCount]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindO: core.ColorYellow,
	engine.KindT: core.ColorMagenta,
	engine.KindL: core.ColorOrange,
	engine.KindJ: core.ColorBlue,
	engine.KindS: core.ColorGreen,
	engine.KindZ: core.ColorRed,
}

// KindColor returns the color a shape kind is drawn in.
func KindColor(k engine.Kind) core.Color {
	if int(k) >= len(kindColors) {
		return core.ColorDefault
	}
	return kindColors[k]
}

// layout is the screen placement of the well and the side panel.
type layout struct {
	well  core.Rect // Including the border
	panel core.Rect // Upcoming shapes box
	stats core.Rect // Text block under the panel
}

// computeLayout centers the well and panel below the HUD.
func computeLayout(screenW, screenH, gridW, gridH, depth int) (layout, bool) {
	wellW := gridW*cellWidth + 2
	wellH := gridH + 2
	panelH := 3 + depth*3 // Borders, title row, two rows plus a gap per shape

	totalW := wellW + panelGap + panelWidth
	totalH := hudHeight + max(wellH, panelH+statsHeight)
	if screenW < totalW || screenH < totalH {
		return layout{}, false
	}

	x := (screenW - totalW) / 2
	y := hudHeight
	return layout{
		well:  core.NewRect(x, y, wellW, wellH),
		panel: core.NewRect(x+wellW+panelGap, y, panelWidth, panelH),
		stats: core.NewRect(x+wellW+panelGap, y+panelH, panelWidth, statsHeight),
	}, true
}

// tooSmall reports whether the screen cannot fit the playfield.
func (g *Game) tooSmall() bool {
	cfg := g.eng.Config()
	_, ok := computeLayout(g.screenW, g.screenH, cfg.Width, cfg.Height, cfg.LookaheadDepth)
	return !ok
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	snap := g.eng.Snapshot()

	g.renderHUD(dst, snap)

	lay, ok := computeLayout(dst.Width(), dst.Height(), snap.Width, snap.Height, len(snap.Upcoming))
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderWell(dst, lay.well, snap)
	renderUpcoming(dst, lay.panel, snap.Upcoming)
	renderStats(dst, lay.stats, snap)

	switch {
	case snap.GameOver():
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  -  R to restart", snap.Score))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	hud := fmt.Sprintf(" %s | Score: %d  Lines: %d", g.Title(), snap.Score, snap.LinesCleared)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderWell draws the border, locked cells and the active piece.
func renderWell(dst *core.Screen, well core.Rect, snap engine.Snapshot) {
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inset(1)

	for y, row := range snap.Grid {
		for x, cell := range row {
			sx, sy := inner.X+x*cellWidth, inner.Y+y
			if cell.Occupied() {
				drawBlock(dst, sx, sy, KindColor(cell.Kind()))
			} else {
				dst.SetColor(sx+1, sy, '·', core.ColorGray)
			}
		}
	}

	if snap.Active == nil {
		return
	}
	color := KindColor(snap.Active.Kind())
	for _, c := range snap.Active.Cells() {
		// Rows above the grid are not shown
		if c.Y < 0 {
			continue
		}
		drawBlock(dst, inner.X+c.X*cellWidth, inner.Y+c.Y, color)
	}
}

// renderUpcoming draws the queued shapes, head first.
func renderUpcoming(dst *core.Screen, panel core.Rect, upcoming []engine.Shape) {
	dst.DrawBox(panel, core.ColorGray)
	dst.DrawTextColor(panel.X+2, panel.Y+1, "NEXT", core.ColorWhite)

	for n, s := range upcoming {
		top := panel.Y + 2 + n*3
		left := panel.X + 1 + (panel.W-2-s.Cols()*cellWidth)/2
		color := KindColor(s.Kind())
		for i := 0; i < s.Rows(); i++ {
			for j := 0; j < s.Cols(); j++ {
				if s.Filled(i, j) {
					drawBlock(dst, left+j*cellWidth, top+i, color)
				}
			}
		}
	}
}

// renderStats draws the counters under the panel.
func renderStats(dst *core.Screen, area core.Rect, snap engine.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Lines  %d", snap.LinesCleared),
		fmt.Sprintf("Pieces %d", snap.PiecesLocked),
	}
	for i, line := range lines {
		dst.DrawTextColor(area.X+1, area.Y+1+i, line, core.ColorWhite)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColor(x, y, '█', c)
	dst.SetColor(x+1, y, '█', c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+3, line2, core.ColorWhite)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, c)
}
