package parameter

// Sprite regions, pixels
const (
	PaddleSpriteWidth  = 64.0
	PaddleSpriteHeight = 8.0
	BallSpriteSize     = 6.0
)

// Draw layers, lower first
const (
	LayerBrick  = 0
	LayerPaddle = 1
	LayerBall   = 2
)

// Terminal cell size in pixels
const (
	DefaultCellWidth  = 4.0
	DefaultCellHeight = 6.5
)
