// Package prefab holds the entity templates of the game: ball, paddle, brick and wall
// All components are inserted lazily; entities become visible to stores at the next Maintain
package prefab

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/brickbreaker/component"
	"github.com/lixenwraith/brickbreaker/core"
	"github.com/lixenwraith/brickbreaker/engine"
	"github.com/lixenwraith/brickbreaker/parameter"
)

var (
	ballGroups = component.CollisionGroups{
		Membership: component.Group(parameter.GroupBall),
		Mask:       ^component.Group(parameter.GroupBall),
	}
	solidGroups = component.CollisionGroups{
		Membership: component.Group(parameter.GroupSolid),
		Mask:       ^uint32(0),
	}
)

// BallGroups returns the collision groups of balls
func BallGroups() component.CollisionGroups { return ballGroups }

// SolidGroups returns the collision groups of paddles, bricks and walls
func SolidGroups() component.CollisionGroups { return solidGroups }

var brickColors = map[component.BrickKind]component.RGBA{
	component.BrickGrey:   {R: 128, G: 128, B: 128, A: 255},
	component.BrickGreen:  {R: 40, G: 200, B: 90, A: 255},
	component.BrickBlue:   {R: 50, G: 120, B: 255, A: 255},
	component.BrickRed:    {R: 230, G: 50, B: 50, A: 255},
	component.BrickPurple: {R: 170, G: 70, B: 220, A: 255},
}

var brickHP = map[component.BrickKind]int32{
	component.BrickGrey:   0,
	component.BrickGreen:  1,
	component.BrickBlue:   2,
	component.BrickRed:    3,
	component.BrickPurple: 4,
}

// BrickColor returns the sprite color of a brick kind
func BrickColor(kind component.BrickKind) component.RGBA {
	return brickColors[kind]
}

// BrickHP returns the starting hit points of a brick kind, 0 for indestructible
func BrickHP(kind component.BrickKind) int32 {
	return brickHP[kind]
}

// Ball creates a ball at pos; a non-nil holder creates it riding that paddle
func Ball(w *engine.World, pos, vel mgl64.Vec2, holder *core.Entity) core.Entity {
	held := holder != nil
	if held {
		vel = mgl64.Vec2{}
	}
	half := float32(parameter.BallSpriteSize / 2)

	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, withOrigin(component.NewTransform(pos), half, half))
	engine.With(eb, w.Components.Rigidbody, component.RigidbodyComponent{
		Velocity: vel,
		Mass:     parameter.PhysicsDefaultMass,
		Disabled: held,
	})
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape:      component.Circle(parameter.BallRadius),
		Groups:     ballGroups,
		Elasticity: parameter.BallElasticity,
		Friction:   parameter.BallFriction,
	})
	engine.With(eb, w.Components.Ball, component.BallComponent{
		LastPos:       pos,
		HoldingPaddle: holder,
		Velocity:      vel,
		Radius:        parameter.BallRadius,
	})
	engine.With(eb, w.Components.Sprite, component.SpriteComponent{
		Texture: component.TextureBall,
		Region:  component.Region{W: parameter.BallSpriteSize, H: parameter.BallSpriteSize},
		Color:   component.RGBA{R: 255, G: 255, B: 255, A: 255},
		Layer:   parameter.LayerBall,
	})
	return eb.Build()
}

// Paddle creates the player paddle centered at pos
// The paddle has no rigidbody; its collider is static and re-pushed when the transform moves
func Paddle(w *engine.World, pos mgl64.Vec2, levelWidth float64) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, withOrigin(component.NewTransform(pos),
		parameter.PaddleSpriteWidth/2, parameter.PaddleSpriteHeight/2))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape:      component.Box(parameter.PaddleHalfWidth, parameter.PaddleHalfHeight),
		Groups:     solidGroups,
		Elasticity: 1,
	})
	engine.With(eb, w.Components.Paddle, component.PaddleComponent{
		HeldBallPosition: HeldBallAnchor(pos, parameter.PaddleHalfHeight),
		LevelWidth:       levelWidth,
		HalfWidth:        parameter.PaddleHalfWidth,
		HalfHeight:       parameter.PaddleHalfHeight,
	})
	engine.With(eb, w.Components.Sprite, component.SpriteComponent{
		Texture: component.TexturePaddle,
		Region:  component.Region{W: parameter.PaddleSpriteWidth, H: parameter.PaddleSpriteHeight},
		Color:   component.RGBA{R: 220, G: 220, B: 230, A: 255},
		Layer:   parameter.LayerPaddle,
	})
	return eb.Build()
}

// HeldBallAnchor is where a held ball rides above a paddle centered at pos
func HeldBallAnchor(pos mgl64.Vec2, halfHeight float64) mgl64.Vec2 {
	return mgl64.Vec2{pos.X(), pos.Y() - halfHeight - parameter.BallRadius - parameter.HeldBallMargin}
}

// Brick creates a brick of kind centered at pos
func Brick(w *engine.World, kind component.BrickKind, pos mgl64.Vec2) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, withOrigin(component.NewTransform(pos),
		parameter.BrickWidth/2, parameter.BrickHeight/2))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape:      component.Box(parameter.BrickWidth/2, parameter.BrickHeight/2),
		Groups:     solidGroups,
		Elasticity: 1,
	})
	engine.With(eb, w.Components.Brick, component.NewBrick(kind, BrickHP(kind)))
	engine.With(eb, w.Components.Sprite, component.SpriteComponent{
		Texture: component.TextureBrick,
		Region:  component.Region{W: parameter.BrickWidth, H: parameter.BrickHeight},
		Color:   BrickColor(kind),
		Layer:   parameter.LayerBrick,
	})
	return eb.Build()
}

// Wall creates an invisible static box centered at pos
func Wall(w *engine.World, pos mgl64.Vec2, halfWidth, halfHeight float64) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transform, component.NewTransform(pos))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape:      component.Box(halfWidth, halfHeight),
		Groups:     solidGroups,
		Density:    1,
		Elasticity: 1,
	})
	return eb.Build()
}

func withOrigin(t component.TransformComponent, x, y float32) component.TransformComponent {
	t.Origin = mgl32.Vec2{x, y}
	return t
}
