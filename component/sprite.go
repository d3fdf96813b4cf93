package component

// TextureID names a sprite sheet
type TextureID uint8

const (
	TextureNone TextureID = iota
	TexturePaddle
	TextureBall
	TextureBrick
)

// Region is a sub-rectangle of a texture in pixels
type Region struct {
	X, Y, W, H float32
}

// RGBA is a non-premultiplied 8-bit color
type RGBA struct {
	R, G, B, A uint8
}

// SpriteComponent is the render metadata of an entity
// Layer orders draw commands, lower draws first
type SpriteComponent struct {
	Texture TextureID
	Region  Region
	Color   RGBA
	Layer   int
}
