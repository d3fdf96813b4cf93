package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/render"
)

// HUD is the non-world state shown around the playfield
type HUD struct {
	Level    int
	Score    int64
	Lives    int
	Paused   bool
	Muted    bool
	GameOver bool

	// Leaders is shown on the game-over overlay when non-empty
	Leaders []string

	// Stats is shown beside the playfield when non-empty
	Stats []string
}

// Renderer rasterizes pixel-space draw commands onto terminal cells
type Renderer struct {
	screen tcell.Screen

	// Pixels per cell
	cellW float64
	cellH float64

	// Playfield size in cells, and its top-left cell on screen
	cols, rows int
	left, top  int
}

// NewRenderer creates a renderer for a playfield of width x height pixels
func NewRenderer(screen tcell.Screen, width, height, cellW, cellH float64) *Renderer {
	return &Renderer{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		cols:   int(math.Ceil(width / cellW)),
		rows:   int(math.Ceil(height / cellH)),
		left:   1,
		top:    2,
	}
}

// PlayfieldSize returns the playfield size in cells
func (r *Renderer) PlayfieldSize() (cols, rows int) {
	return r.cols, r.rows
}

// CellOf maps a pixel position to its screen cell
func (r *Renderer) CellOf(x, y float64) (int, int) {
	return r.left + int(math.Floor(x/r.cellW)), r.top + int(math.Floor(y/r.cellH))
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Frame draws one complete frame and shows it
func (r *Renderer) Frame(cmds []render.DrawCommand, hud HUD) {
	r.screen.Clear()
	r.drawFrame()
	for _, cmd := range cmds {
		r.drawCommand(cmd)
	}
	r.drawStatus(hud)
	if len(hud.Stats) > 0 {
		r.drawLines(r.left+r.cols+2, r.top, hud.Stats, dimStyle)
	}
	switch {
	case hud.GameOver:
		r.drawGameOver(hud)
	case hud.Paused:
		r.drawCentered(r.top+r.rows/2, "PAUSED", alertStyle)
	}
	r.screen.Show()
}

func (r *Renderer) drawFrame() {
	x0, y0 := r.left-1, r.top-1
	x1, y1 := r.left+r.cols, r.top+r.rows
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, frameStyle)
	}
	for y := y0 + 1; y <= y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, frameStyle)
		r.screen.SetContent(x1, y, '│', nil, frameStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, frameStyle)
	r.screen.SetContent(x1, y0, '┐', nil, frameStyle)
}

// drawCommand fills every playfield cell whose center lies inside the command bounds
// Commands smaller than a cell still cover the cell holding their center
func (r *Renderer) drawCommand(cmd render.DrawCommand) {
	x, y, w, h := cmd.Bounds()
	glyph := glyphFor(cmd.Texture)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(cmd.Color.R), int32(cmd.Color.G), int32(cmd.Color.B)))

	c0 := int(math.Floor(x/r.cellW + 0.5))
	c1 := int(math.Ceil((x+w)/r.cellW-0.5)) - 1
	r0 := int(math.Floor(y/r.cellH + 0.5))
	r1 := int(math.Ceil((y+h)/r.cellH-0.5)) - 1
	if c1 < c0 {
		c0 = int(math.Floor((x + w/2) / r.cellW))
		c1 = c0
	}
	if r1 < r0 {
		r0 = int(math.Floor((y + h/2) / r.cellH))
		r1 = r0
	}

	for row := r0; row <= r1; row++ {
		if row < 0 || row >= r.rows {
			continue
		}
		for col := c0; col <= c1; col++ {
			if col < 0 || col >= r.cols {
				continue
			}
			r.screen.SetContent(r.left+col, r.top+row, glyph, nil, style)
		}
	}
}

func glyphFor(tex component.TextureID) rune {
	switch tex {
	case component.TextureBall:
		return '●'
	case component.TexturePaddle:
		return '▀'
	case component.TextureBrick:
		return '█'
	default:
		return '?'
	}
}

func (r *Renderer) drawStatus(hud HUD) {
	status := fmt.Sprintf("LEVEL %d   SCORE %d   LIVES %s", hud.Level, hud.Score, strings.Repeat("♥", max(hud.Lives, 0)))
	if hud.Muted {
		status += "   [muted]"
	}
	r.drawText(r.left, 0, status, textStyle)
	r.drawText(r.left, r.top+r.rows+1, "←/→ or A/D move  SPACE launch  P pause  M mute  Q quit", dimStyle)
}

func (r *Renderer) drawGameOver(hud HUD) {
	mid := r.top + r.rows/3
	r.drawCentered(mid, "GAME OVER", alertStyle)
	r.drawCentered(mid+1, fmt.Sprintf("score %d", hud.Score), textStyle)
	r.drawCentered(mid+2, "R or ENTER to restart", dimStyle)
	for i, line := range hud.Leaders {
		r.drawCentered(mid+4+i, line, textStyle)
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	x := r.left + (r.cols-len([]rune(text)))/2
	r.drawText(max(x, r.left), y, text, style)
}

func (r *Renderer) drawLines(x, y int, lines []string, style tcell.Style) {
	for i, line := range lines {
		r.drawText(x, y+i, line, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}
