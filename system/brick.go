package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/event"
	"github.com/lixenwraith/brickbreaker/parameter"
)

// BrickSystem damages bricks hit by balls and requests the next level once none destructible remain
type BrickSystem struct {
	engine.SystemBase

	collisions *event.Channel[event.Collision]
	reader     event.ReaderID

	// Bricks hit this tick, in hit order
	hit   map[core.Entity]struct{}
	order []core.Entity

	statDestroyed *atomic.Int64
	statRemaining *atomic.Int64
}

// NewBrickSystem creates a brick system reading from collisions
// Must be constructed before the first tick
func NewBrickSystem(world *engine.World, collisions *event.Channel[event.Collision]) *BrickSystem {
	s := &BrickSystem{
		SystemBase: engine.NewSystemBase(world),
		collisions: collisions,
		reader:     collisions.Register(),
		hit:        make(map[core.Entity]struct{}),
	}
	s.statDestroyed = s.Resource.Status.Ints.Get("brick.destroyed")
	s.statRemaining = s.Resource.Status.Ints.Get("brick.remaining")
	return s
}

func (s *BrickSystem) Name() string {
	return "brick"
}

func (s *BrickSystem) Priority() int {
	return parameter.PriorityBrick
}

func (s *BrickSystem) Update() {
	clear(s.hit)
	s.order = s.order[:0]

	for _, ev := range s.collisions.Read(s.reader) {
		if e, ok := s.struckBrick(ev); ok {
			if _, dup := s.hit[e]; !dup {
				s.hit[e] = struct{}{}
				s.order = append(s.order, e)
			}
		}
	}

	run := s.Resource.Run
	for _, e := range s.order {
		var hp int32
		s.Component.Brick.Mutate(e, func(b *component.BrickComponent) {
			b.HP--
			hp = b.HP
		})
		if hp > 0 {
			s.Resource.Audio.Play(core.SoundBrickHit)
			continue
		}
		s.World.Delete(e)
		run.Score += parameter.BrickReward
		s.statDestroyed.Add(1)
		s.Resource.Audio.Play(core.SoundBrickBreak)
	}

	remaining := s.remaining()
	s.statRemaining.Store(int64(remaining))
	if remaining == 0 && run.PendingLoad == nil && !run.GameOver {
		if run.RequestLoad(event.LoadLevel{Level: run.Level + 1}) {
			log.Printf("[LEVEL] level %d cleared, score %d", run.Level, run.Score)
			s.Resource.Audio.Play(core.SoundLevelClear)
		}
	}
}

// struckBrick returns the destructible brick of a ball-brick pair
func (s *BrickSystem) struckBrick(ev event.Collision) (core.Entity, bool) {
	if ev.EntityA == nil || ev.EntityB == nil {
		return core.NoEntity, false
	}
	a, b := *ev.EntityA, *ev.EntityB
	var brick core.Entity
	switch {
	case s.Component.Brick.Has(a) && s.Component.Ball.Has(b):
		brick = a
	case s.Component.Brick.Has(b) && s.Component.Ball.Has(a):
		brick = b
	default:
		return core.NoEntity, false
	}
	if s.World.Deleting(brick) {
		return core.NoEntity, false
	}
	bc, _ := s.Component.Brick.Get(brick)
	if bc.Indestructible {
		return core.NoEntity, false
	}
	return brick, true
}

// remaining counts destructible bricks not already queued for deletion
func (s *BrickSystem) remaining() int {
	n := 0
	for _, e := range s.Component.Brick.All() {
		if s.World.Deleting(e) {
			continue
		}
		if b, _ := s.Component.Brick.Get(e); !b.Indestructible && b.HP > 0 {
			n++
		}
	}
	return n
}
