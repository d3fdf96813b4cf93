package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddleHit  SoundType = iota // Ball deflected by paddle
	SoundWallHit                     // Ball reflected by wall or indestructible brick
	SoundBrickHit                    // Brick damaged but not destroyed
	SoundBrickBreak                  // Brick destroyed
	SoundBallDeath                   // Ball fell below the playfield
	SoundLevelClear                  // Last destructible brick destroyed
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundPaddleHit:  "paddle_hit",
	SoundWallHit:    "wall_hit",
	SoundBrickHit:   "brick_hit",
	SoundBrickBreak: "brick_break",
	SoundBallDeath:  "ball_death",
	SoundLevelClear: "level_clear",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
