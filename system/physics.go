package system

import (
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/parameter"
	"github.com/lixenwraith/brickbreaker/physics"
)

// PhysicsSendSystem pushes gameplay component changes into the physics engine
type PhysicsSendSystem struct {
	bridge *physics.Bridge
}

func NewPhysicsSendSystem(bridge *physics.Bridge) *PhysicsSendSystem {
	return &PhysicsSendSystem{bridge: bridge}
}

func (s *PhysicsSendSystem) Name() string  { return "physics_send" }
func (s *PhysicsSendSystem) Priority() int { return parameter.PriorityPhysicsSend }
func (s *PhysicsSendSystem) Update()       { s.bridge.Send() }

// PhysicsStepSystem advances the engine one fixed tick and runs the collision pipeline
type PhysicsStepSystem struct {
	bridge *physics.Bridge
	time   *engine.TimeResource
}

func NewPhysicsStepSystem(world *engine.World, bridge *physics.Bridge) *PhysicsStepSystem {
	return &PhysicsStepSystem{
		bridge: bridge,
		time:   engine.MustGetResource[*engine.TimeResource](world.Resources),
	}
}

func (s *PhysicsStepSystem) Name() string  { return "physics_step" }
func (s *PhysicsStepSystem) Priority() int { return parameter.PriorityPhysicsStep }
func (s *PhysicsStepSystem) Update()       { s.bridge.Step(s.time.DT()) }

// PhysicsReceiveSystem copies resolved engine state back into components
type PhysicsReceiveSystem struct {
	bridge *physics.Bridge
}

func NewPhysicsReceiveSystem(bridge *physics.Bridge) *PhysicsReceiveSystem {
	return &PhysicsReceiveSystem{bridge: bridge}
}

func (s *PhysicsReceiveSystem) Name() string  { return "physics_receive" }
func (s *PhysicsReceiveSystem) Priority() int { return parameter.PriorityPhysicsReceive }
func (s *PhysicsReceiveSystem) Update()       { s.bridge.Receive() }
