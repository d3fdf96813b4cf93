package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
)

// DrawCommand is one sprite placement for the renderer
// Position is already interpolated, pixels
type DrawCommand struct {
	Position mgl64.Vec2
	Origin   mgl32.Vec2
	Scale    mgl32.Vec2
	Texture  component.TextureID
	Region   component.Region
	Color    component.RGBA
	Layer    int
}

// Bounds returns the pixel rectangle covered by the command: left, top, width, height
func (c DrawCommand) Bounds() (x, y, w, h float64) {
	sx, sy := float64(c.Scale.X()), float64(c.Scale.Y())
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	w = float64(c.Region.W) * sx
	h = float64(c.Region.H) * sy
	x = c.Position.X() - float64(c.Origin.X())*sx
	y = c.Position.Y() - float64(c.Origin.Y())*sy
	return x, y, w, h
}

// Queue is the drained list of draw commands produced each frame
type Queue struct {
	commands []DrawCommand
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{commands: make([]DrawCommand, 0, 512)}
}

// Push appends a command
func (q *Queue) Push(cmd DrawCommand) {
	q.commands = append(q.commands, cmd)
}

// Clear drops all commands, keeping capacity
func (q *Queue) Clear() {
	q.commands = q.commands[:0]
}

// Len returns the number of queued commands
func (q *Queue) Len() int {
	return len(q.commands)
}

// Drain returns the queued commands sorted by layer and empties the queue
// Commands on the same layer keep push order
func (q *Queue) Drain() []DrawCommand {
	out := make([]DrawCommand, len(q.commands))
	copy(out, q.commands)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer < out[j].Layer
	})
	q.Clear()
	return out
}

// Lerp blends the previous and current positions by alpha in [0, 1]
func Lerp(last, current mgl64.Vec2, alpha float64) mgl64.Vec2 {
	return last.Add(current.Sub(last).Mul(alpha))
}
