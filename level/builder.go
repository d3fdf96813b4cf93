package level

import (
	"errors"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/prefab"
)

// Builder rebuilds the world from a level layout
type Builder struct {
	db *DB
}

// NewBuilder creates a builder over db
func NewBuilder(db *DB) *Builder {
	return &Builder{db: db}
}

// Load clears the world, builds walls, bricks and paddle for req.Level,
// queues a ball held by the new paddle, and resets the run state
// A level past the last one wraps to the first
func (b *Builder) Load(w *engine.World, req event.LoadLevel) error {
	asset, err := b.db.Resolve(req.Level)
	if err != nil {
		return err
	}
	if asset.ID != req.Level {
		log.Printf("[LEVEL] level %d not found, wrapping to %d", req.Level, asset.ID)
	}

	run, ok := engine.GetResource[*engine.RunState](w.Resources)
	if !ok {
		return errors.New("run state resource missing")
	}
	events, ok := engine.GetResource[*engine.EventResource](w.Resources)
	if !ok {
		return errors.New("event resource missing")
	}

	w.DeleteAll()
	w.Maintain()

	BuildWalls(w, run.Width, run.Height)
	bricks := BuildBricks(w, asset)
	paddle := prefab.Paddle(w,
		mgl64.Vec2{run.Width / 2, run.Height - parameter.PaddleBottomGap},
		run.Width)
	w.Maintain()

	events.Spawn.Write(event.SpawnBall{Paddle: paddle.Ref()})
	run.Reset(asset.ID, paddle)

	log.Printf("[LEVEL] loaded level %d: %d bricks, restart=%v", asset.ID, bricks, req.Restart)
	return nil
}

// BrickCenter returns the pixel center of the grid cell at index i
func BrickCenter(i int) mgl64.Vec2 {
	col := i % parameter.LevelBricksGridSize
	row := i / parameter.LevelBricksGridSize
	return mgl64.Vec2{
		float64(col)*parameter.BrickWidth + parameter.BrickWidth/2,
		parameter.LevelBricksYOffset + float64(row)*parameter.BrickHeight + parameter.BrickHeight/2,
	}
}

// BuildBricks creates one brick per non-air cell and returns how many were created
func BuildBricks(w *engine.World, asset Asset) int {
	n := 0
	for i, kind := range asset.Bricks {
		if kind == component.BrickAir {
			continue
		}
		prefab.Brick(w, kind, BrickCenter(i))
		n++
	}
	return n
}

// BuildWalls creates the left, top and right walls; the bottom stays open
func BuildWalls(w *engine.World, width, height float64) []core.Entity {
	t := parameter.WallThickness / 2
	return []core.Entity{
		prefab.Wall(w, mgl64.Vec2{-t, height / 2}, t, height),
		prefab.Wall(w, mgl64.Vec2{width / 2, -t}, width, t),
		prefab.Wall(w, mgl64.Vec2{width + t, height / 2}, t, height),
	}
}
