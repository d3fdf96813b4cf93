package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/render"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(120, 60)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestRendererDrawsCommands(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s, 320, 240, 4, 6.5)

	paddle := render.DrawCommand{
		Position: mgl64.Vec2{160, 220},
		Origin:   mgl32.Vec2{32, 4},
		Texture:  component.TexturePaddle,
		Region:   component.Region{W: 64, H: 8},
		Color:    component.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
	ball := render.DrawCommand{
		Position: mgl64.Vec2{100, 100},
		Origin:   mgl32.Vec2{3, 3},
		Texture:  component.TextureBall,
		Region:   component.Region{W: 6, H: 6},
		Color:    component.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
	r.Frame([]render.DrawCommand{paddle, ball}, HUD{Level: 1, Score: 300, Lives: 3})

	x, y := r.CellOf(160, 220)
	if got := runeAt(s, x, y); got != '▀' {
		t.Errorf("paddle center cell = %q, want '▀'", got)
	}
	// 64 px paddle at 4 px per cell spans 16 cells
	lx, _ := r.CellOf(128, 220)
	rx, _ := r.CellOf(191, 220)
	if runeAt(s, lx, y) != '▀' || runeAt(s, rx, y) != '▀' {
		t.Error("paddle edges not drawn")
	}
	if runeAt(s, lx-1, y) == '▀' || runeAt(s, rx+1, y) == '▀' {
		t.Error("paddle drawn past its bounds")
	}

	bx, by := r.CellOf(100, 100)
	if got := runeAt(s, bx, by); got != '●' {
		t.Errorf("ball cell = %q, want '●'", got)
	}
}

func TestRendererClipsToPlayfield(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s, 320, 240, 4, 6.5)

	off := render.DrawCommand{
		Position: mgl64.Vec2{-50, 500},
		Texture:  component.TextureBrick,
		Region:   component.Region{W: 20, H: 13},
	}
	r.Frame([]render.DrawCommand{off}, HUD{})

	cols, rows := r.PlayfieldSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cx, cy := r.left+x, r.top+y
			if runeAt(s, cx, cy) == '█' {
				t.Fatalf("off-field brick drawn at %d,%d", cx, cy)
			}
		}
	}
}

func TestRendererGameOverOverlay(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s, 320, 240, 4, 6.5)
	r.Frame(nil, HUD{GameOver: true, Score: 1200, Leaders: []string{"1. 1200"}})

	found := false
	w, h := s.Size()
	for y := 0; y < h && !found; y++ {
		line := make([]rune, 0, w)
		for x := 0; x < w; x++ {
			line = append(line, runeAt(s, x, y))
		}
		if strings.Contains(string(line), "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Error("game over text not drawn")
	}
}
