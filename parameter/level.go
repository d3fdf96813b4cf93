package parameter

// Brick grid layout, pixels
const (
	LevelBricksGridSize = 16
	LevelBricksYOffset  = 32.0
	BrickWidth          = 20.0
	BrickHeight         = 13.0
)

// Default playfield, pixels
const (
	LevelWidth  = LevelBricksGridSize * BrickWidth
	LevelHeight = 240.0
)

// Walls frame the left, top and right edges; the bottom is open
const (
	WallThickness = 20.0
)

// Scoring and run
const (
	BrickReward        = 100
	PlayerDefaultLives = 3
	FirstLevel         = 1
)

// Collision group indices
const (
	GroupBall  = 0
	GroupSolid = 1
)
