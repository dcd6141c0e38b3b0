package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBody      = '●'
	BirdLevel     = '▶'
	BirdClimb     = '▲'
	BirdDive      = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	WallChar      = '│'
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Minimum terminal size that can show a playable field.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// viewport maps playfield coordinates onto screen cells.
type viewport struct {
	x, y, w, h     int // field area in cells
	fieldW, fieldH float64
}

// newViewport fits the playfield into the screen, keeping its aspect ratio
// and reserving the bottom row for the ground.
func newViewport(screenW, screenH int, fieldW, fieldH float64) viewport {
	h := screenH - 1
	w := int(math.Round(float64(h) * cellAspect * fieldW / fieldH))
	if w > screenW {
		w = screenW
		h = core.Clamp(int(math.Round(float64(w)/cellAspect*fieldH/fieldW)), 1, screenH-1)
	}
	return viewport{
		x:      (screenW - w) / 2,
		y:      (screenH - 1 - h) / 2,
		w:      w,
		h:      h,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

func (v viewport) col(x float64) int {
	return v.x + int(math.Floor(x*float64(v.w)/v.fieldW))
}

func (v viewport) row(y float64) int {
	return v.y + int(math.Floor(y*float64(v.h)/v.fieldH))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), dst)
}

// Render draws a snapshot to the screen.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	v := newViewport(dst.Width(), dst.Height(), s.FieldW, s.FieldH)

	// Side walls and ground
	for y := v.y; y < v.y+v.h; y++ {
		dst.SetWithColor(v.x-1, y, WallChar, core.ColorGray)
		dst.SetWithColor(v.x+v.w, y, WallChar, core.ColorGray)
	}
	dst.DrawHLine(v.x-1, v.y+v.h, v.w+2, GroundChar, core.ColorGreen)

	for _, p := range s.Pipes {
		drawPipe(dst, v, p)
	}
	drawBird(dst, v, s.Bird)

	// HUD
	hud := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.Best)
	dst.DrawTextWithColor(v.x+(v.w-len(hud))/2, v.y, hud, core.ColorBrightWhite)

	switch {
	case s.State == StateMenu:
		drawMessage(dst, core.ColorBrightYellow, "FLAPPY BIRD",
			"Space / click to start", "Space to flap, P to pause")
	case s.State == StateGameOver:
		lines := []string{fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Best)}
		if s.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "Space to retry, B for menu")
		drawMessage(dst, core.ColorRed, "GAME OVER", lines...)
	case s.Paused:
		drawMessage(dst, core.ColorCyan, "PAUSED", "Press P to resume")
	}
}

// drawPipe renders a single pipe clipped to the field.
func drawPipe(dst *core.Screen, v viewport, p Pipe) {
	left := core.Max(v.col(p.X), v.x)
	right := core.Min(core.Max(v.col(p.Right()), v.col(p.X)+1), v.x+v.w)
	if left >= right {
		return
	}

	topEnd := v.row(p.TopHeight)
	bottomStart := v.row(math.Max(v.fieldH-p.BottomHeight, 0))
	fieldBottom := v.y + v.h

	for x := left; x < right; x++ {
		for y := v.y; y < topEnd; y++ {
			dst.SetWithColor(x, y, PipeChar, core.ColorGreen)
		}
		if topEnd > v.y {
			dst.SetWithColor(x, topEnd-1, PipeCapTop, core.ColorBrightGreen)
		}

		for y := bottomStart; y < fieldBottom; y++ {
			dst.SetWithColor(x, y, PipeChar, core.ColorGreen)
		}
		if bottomStart < fieldBottom {
			dst.SetWithColor(x, bottomStart, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird renders the bird with its head tilted by rotation.
func drawBird(dst *core.Screen, v viewport, b Bird) {
	x := v.col(b.X)
	y := core.Clamp(v.row(b.Y+b.Height/2), v.y, v.y+v.h-1)

	head := BirdLevel
	switch {
	case b.Rotation <= -10:
		head = BirdClimb
	case b.Rotation >= 45:
		head = BirdDive
	}

	dst.SetWithColor(x, y, BirdBody, core.ColorYellow)
	dst.SetWithColor(x+1, y, head, core.ColorOrange)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextWithColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
