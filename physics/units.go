package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/brickbreaker/parameter"
)

// ToWorld converts a pixel-space vector to engine world units
func ToWorld(v mgl64.Vec2) cp.Vector {
	return cp.Vector{X: v.X() * parameter.WorldUnitRatio, Y: v.Y() * parameter.WorldUnitRatio}
}

// ToPixels converts an engine world-unit vector to pixel space
func ToPixels(v cp.Vector) mgl64.Vec2 {
	return mgl64.Vec2{v.X * parameter.PixelsPerWorldUnit, v.Y * parameter.PixelsPerWorldUnit}
}

// toWorldScalar converts a pixel length to world units
func toWorldScalar(px float64) float64 {
	return px * parameter.WorldUnitRatio
}
