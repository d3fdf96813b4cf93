package system

import (
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/render"
)

// SpriteRenderer fills the draw queue from sprites at interpolated positions
// Runs on demand per frame, outside the tick pipeline
type SpriteRenderer struct {
	engine.SystemBase
}

// NewSpriteRenderer creates a new sprite renderer
func NewSpriteRenderer(world *engine.World) *SpriteRenderer {
	return &SpriteRenderer{SystemBase: engine.NewSystemBase(world)}
}

// Render clears the queue and pushes one command per sprite blended by alpha
func (s *SpriteRenderer) Render(alpha float64) {
	queue := s.Resource.Render.Queue
	queue.Clear()
	for _, e := range s.Component.Sprite.All() {
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		sp, _ := s.Component.Sprite.Get(e)
		queue.Push(render.DrawCommand{
			Position: render.Lerp(tr.LastPosition, tr.Position, alpha),
			Origin:   tr.Origin,
			Scale:    tr.Scale,
			Texture:  sp.Texture,
			Region:   sp.Region,
			Color:    sp.Color,
			Layer:    sp.Layer,
		})
	}
}
