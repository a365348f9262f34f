package ecs

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/domain/entity"
)

// Sprite is a live entity the scene ticks once per frame and draws
type Sprite interface {
	Update(t entity.Tick)
	Image() *ebiten.Image
	DrawPosition() image.Point
}

// Collider is a sprite with a collision rectangle
type Collider interface {
	Hitbox() image.Rectangle
}

// Layer names a draw-order bucket. The integer order of each layer is
// configured separately; only the values below are valid.
type Layer int

const (
	LayerGround Layer = iota
	LayerBlock
	LayerEnemy
	LayerPlayer
)

// Layers lists every valid layer
var Layers = [4]Layer{LayerGround, LayerBlock, LayerEnemy, LayerPlayer}

// Valid reports whether l is one of the known layers
func (l Layer) Valid() bool {
	return l >= LayerGround && l <= LayerPlayer
}

// String returns the string representation of the layer
func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerBlock:
		return "block"
	case LayerEnemy:
		return "enemy"
	case LayerPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Tag names a gameplay group an entity can belong to
type Tag int

const (
	TagGround Tag = iota
	TagBlock
	TagEnemy
	TagPlayer
)

// Static is a sprite that never changes, used for ground and wall tiles
type Static struct {
	Img  *ebiten.Image
	Rect image.Rectangle
}

// Update does nothing; static tiles never move
func (s *Static) Update(entity.Tick) {}

// Image returns the tile image
func (s *Static) Image() *ebiten.Image { return s.Img }

// DrawPosition returns the tile's top-left pixel
func (s *Static) DrawPosition() image.Point { return s.Rect.Min }

// Hitbox returns the tile rectangle
func (s *Static) Hitbox() image.Rectangle { return s.Rect }
