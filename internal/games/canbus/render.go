package canbus

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/auto-arcade/internal/core"
)

const logPanelWidth = 32

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawMission(dst)
	g.drawCar(dst, 2, 5)
	g.drawLog(dst)
	g.drawPrompt(dst)

	if g.showMapping {
		g.drawMapping(dst)
	}
	g.drawError(dst)
}

func (g *Game) drawMission(dst *core.Screen) {
	dst.DrawBoxColor(core.NewRect(0, 0, dst.Width(), 4), core.ColorLightBlue)

	var title, progress string
	if g.current < len(g.missions) {
		title = fmt.Sprintf("Mission %d: %s", g.current+1, g.missions[g.current].Description)
		progress = fmt.Sprintf("Progress: %d/%d missions completed", g.current, len(g.missions))
	} else {
		title = "ALL MISSIONS COMPLETED! YOU WON!"
		progress = "Congratulations! You've mastered CAN bus communication!"
	}
	dst.DrawTextColor(2, 1, title, core.ColorBrightWhite)
	dst.DrawTextColor(2, 2, progress, core.ColorGray)
}

// drawCar draws a top view of the car and its status lines.
func (g *Game) drawCar(dst *core.Screen, x, y int) {
	c := g.car
	dst.DrawText(x, y, "Here is a CAR to control")

	body := core.NewRect(x+3, y+2, 22, 5)
	dst.DrawBoxColor(body, core.ColorWhite)

	light := core.ColorGray
	if c.Headlights == On {
		light = core.ColorBrightYellow
	}
	dst.SetColor(x, body.Y+1, '◉', light)
	dst.SetColor(x, body.Y+3, '◉', light)

	drawWindow(dst, body.X+3, body.Y+1, c.DriverWindow)
	drawWindow(dst, body.X+3, body.Y+3, c.PassengerWindow)

	lock := core.ColorGreen
	if c.Doors == Locked {
		lock = core.ColorRed
	}
	dst.SetColor(body.X+16, body.Y+1, '●', lock)
	dst.SetColor(body.X+16, body.Y+3, '●', lock)

	rpm := core.ColorDefault
	if c.EngineRPM > 0 {
		rpm = core.ColorGreen
	}
	sy := body.Bottom() + 1
	dst.DrawText(x, sy, fmt.Sprintf("Driver window:    %s", c.DriverWindow))
	dst.DrawText(x, sy+1, fmt.Sprintf("Passenger window: %s", c.PassengerWindow))
	dst.DrawText(x, sy+2, fmt.Sprintf("Headlights:       %s", c.Headlights))
	dst.DrawText(x, sy+3, fmt.Sprintf("Doors:            %s", c.Doors))
	dst.DrawTextColor(x, sy+4, fmt.Sprintf("Engine RPM:       %d", c.EngineRPM), rpm)
}

func drawWindow(dst *core.Screen, x, y int, w Window) {
	fill, col := ' ', core.ColorDefault
	if w == Closed {
		fill, col = '▒', core.ColorLightBlue
	}
	dst.Set(x, y, '[')
	dst.DrawHLineColor(x+1, y, 8, fill, col)
	dst.Set(x+9, y, ']')
}

func (g *Game) drawLog(dst *core.Screen) {
	panel := core.NewRect(dst.Width()-logPanelWidth, 5, logPanelWidth, max(dst.Height()-8, 3))
	dst.DrawBox(panel)
	dst.DrawText(panel.X+2, panel.Y, " CAN Bus Messages ")

	rows := panel.H - 2
	inner := panel.W - 2
	entries := g.log.Entries()
	if len(entries) > rows {
		entries = entries[len(entries)-rows:]
	}
	for i, e := range entries {
		col := core.ColorDefault
		if e.IsSystem() {
			col = core.ColorBrightBlue
		}
		dst.DrawTextColor(panel.X+1, panel.Y+1+i, truncate(e.Text(g.runtime.TickRate), inner), col)
	}
}

func (g *Game) drawPrompt(dst *core.Screen) {
	h := dst.Height()
	switch {
	case g.fsm.Over():
		dst.DrawTextColor(2, h-1, "Press SPACE to play again or ESC to quit", core.ColorBrightGreen)
	case g.showMapping:
		dst.DrawTextColor(2, h-1, "Study the CAN Bus mappings above, then press SPACE!", core.ColorBrightYellow)
	default:
		dst.DrawTextColor(2, h-2, "Press ENTER to send command | Press M to show mappings again", core.ColorGray)
		dst.DrawText(2, h-1, "Enter CAN Bus Command (example: send 0x201 01):")
	}
}

func (g *Game) drawMapping(dst *core.Screen) {
	lines := []string{"CAN BUS MAPPINGS", ""}
	for _, id := range g.bus.IDs() {
		name, data := describe(g.bus[id])
		lines = append(lines, fmt.Sprintf("0x%03X -> %s", id, name))
		for i, d := range data {
			prefix := "   Data: "
			if i > 0 {
				prefix = "         "
			}
			lines = append(lines, prefix+d)
		}
	}
	dismiss := "Press SPACE to start playing"
	if g.fsm.Playing() {
		dismiss = "Press SPACE to close"
	}
	lines = append(lines, "", "Command format: send <CAN_ID> <DATA>", dismiss)
	drawPanel(dst, lines, core.ColorBrightCyan)
}

func describe(sub Subsystem) (string, []string) {
	switch sub {
	case SubsystemWindows:
		return "Windows Control", []string{"0=Driver Close, 1=Driver Open", "2=Passenger Close, 3=Passenger Open"}
	case SubsystemHeadlights:
		return "Headlights", []string{"0=OFF, 1=ON"}
	case SubsystemDoors:
		return "Door Locks", []string{"0=UNLOCK, 1=LOCK"}
	case SubsystemEngine:
		return "Engine", []string{fmt.Sprintf("RPM in thousands (0-%d)", MaxRPM/1000)}
	}
	return string(sub), nil
}

// drawError draws the popping INVALID COMMAND box.
func (g *Game) drawError(dst *core.Screen) {
	scale := g.popupScale()
	if scale <= 0 {
		return
	}
	w := int(34 * scale)
	h := int(5 * scale)
	if w < 2 || h < 2 {
		return
	}
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightRed)

	inner := w - 2
	mid := box.Y + h/2
	titleY := mid
	if h >= 5 {
		titleY = mid - 1
	}
	title := "INVALID COMMAND!"
	if inner >= len(title) {
		dst.DrawTextColor(box.X+1+(inner-len(title))/2, titleY, title, core.ColorBrightRed)
	}
	if g.lastErr != nil && h >= 5 {
		reason := truncate(strings.TrimPrefix(g.lastErr.Error(), "canbus: "), inner)
		dst.DrawTextColor(box.X+1+(inner-len([]rune(reason)))/2, mid+1, reason, core.ColorRed)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}

// drawPanel draws a bordered box in the centre of the screen.
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
		if i == 0 {
			dst.DrawTextColor(box.X+(boxW-len([]rune(l)))/2, box.Y+1, l, titleColor)
			continue
		}
		dst.DrawText(box.X+2, box.Y+1+i, l)
	}
}
