package asil

import (
	"fmt"

	"github.com/vovakirdan/auto-arcade/internal/core"
)

var howToPlay = []string{
	"Learn automotive safety integrity levels (ASIL) and quality management (QM)!",
	"",
	"HOW TO PLAY",
	"Functionality blocks approach your car from the right.",
	"Guess each block's level and press A, B, C, D or Q",
	"while it is inside the detection zone.",
	"Wrong key or collision: game over!",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.fsm.Phase() {
	case core.PhaseStart:
		g.drawStart(dst)
		return
	case core.PhasePlaying:
		g.drawWorld(dst)
		if g.paused {
			drawPanel(dst, []string{"PAUSED", "", "Press P to resume"}, core.ColorBrightYellow)
		}
	case core.PhaseGameOver:
		g.drawWorld(dst)
		g.drawGameOver(dst)
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	y := max(1, (dst.Height()-len(howToPlay)-len(legendOrder)-6)/2)
	dst.DrawTextCenteredColor(y, g.Title(), core.ColorBrightCyan)
	y += 2
	for _, line := range howToPlay {
		dst.DrawTextCentered(y, line)
		y++
	}
	y++
	dst.DrawTextCentered(y, "ASIL LEVELS")
	y++
	for _, l := range legendOrder {
		dst.DrawTextCenteredColor(y, fmt.Sprintf("%-2s %-20s", l.Key(), l.Risk()), l.Color())
		y++
	}
	y++
	dst.DrawTextCenteredColor(y, "Press SPACE to start!", core.ColorBrightRed)
}

func (g *Game) drawWorld(dst *core.Screen) {
	groundY := g.car.Bottom()
	dst.DrawHLineColor(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	g.drawZone(dst)
	g.drawCar(dst)
	for _, b := range g.blocks {
		drawBlock(dst, b)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Blocks.Speed, g.score, g.ticks)
		spd := fmt.Sprintf(" Spd: %.2f ", speed)
		dst.DrawText(dst.Width()-len(spd)-2, 0, spd)
	}
	dst.DrawTextColor(2, dst.Height()-1,
		"Press A, B, C, D or Q for the ASIL level | P pause | Esc quit", core.ColorGray)
}

// drawZone outlines where the left edge of a block must be for a key to count.
func (g *Game) drawZone(dst *core.Screen) {
	left := g.car.X - g.cfg.Detection.Behind
	right := g.car.X + g.cfg.Detection.Ahead
	top := g.car.Bottom() - max(g.cfg.Blocks.Height, g.car.H) - 1
	for y := top; y < g.car.Bottom(); y++ {
		dst.SetColor(left, y, ZoneChar, core.ColorGreen)
		dst.SetColor(right, y, ZoneChar, core.ColorGreen)
	}
	dst.DrawTextColor(left+1, top-1, "Detection Zone", core.ColorGreen)
}

func (g *Game) drawCar(dst *core.Screen) {
	c := g.car
	dst.DrawRectColor(core.NewRect(c.X, c.Y+1, c.W, max(c.H-2, 1)), BodyChar, core.ColorRed)
	if c.W > 4 {
		dst.DrawHLineColor(c.X+2, c.Y, c.W-4, '▄', core.ColorBlue)
	}
	dst.SetColor(c.X+1, c.Bottom()-1, WheelChar, core.ColorGray)
	dst.SetColor(c.Right()-2, c.Bottom()-1, WheelChar, core.ColorGray)
}

func drawBlock(dst *core.Screen, b Block) {
	r := b.Rect()
	col := b.Func.Level.Color()
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, col)

	inner := max(r.W-2, 0)
	for i, line := range b.Lines() {
		if i >= r.H-2 {
			break
		}
		runes := []rune(line)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		x := r.X + 1 + (inner-len(runes))/2
		dst.DrawTextColor(x, r.Y+1+i, string(runes), col)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{"GAME OVER", "", fmt.Sprintf("Final Score: %d", g.score), ""}
	if e := g.ending; e != nil {
		if e.wrong {
			lines = append(lines, fmt.Sprintf("%s is ASIL %s, you pressed %s",
				e.block.Func.Name, e.block.Func.Level, e.pressed.Key()))
		} else {
			lines = append(lines, fmt.Sprintf("%s (ASIL %s) hit your car",
				e.block.Func.Name, e.block.Func.Level))
		}
		lines = append(lines, "")
	}
	lines = append(lines,
		"Remember: D=Highest, C=High, B=Medium, A=Low, Q=Quality Managed",
		"",
		"Press SPACE to restart or ESC to quit",
	)
	drawPanel(dst, lines, core.ColorBrightRed)
}

// drawPanel draws a bordered message box in the centre of the screen.
// The first line is the title.
func drawPanel(dst *core.Screen, lines []string, titleColor core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		col := core.ColorDefault
		if i == 0 {
			col = titleColor
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+1+i, l, col)
	}
}
