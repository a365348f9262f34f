// Package compositor keeps every visible entity in layer order, ticks them
// and draws them back to front.
package compositor

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/ecs"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

var (
	// ErrUnknownLayer is returned for a layer outside ecs.Layers
	ErrUnknownLayer = errors.New("unknown layer")
	// ErrUnknownEntity is returned for an ID that is not live
	ErrUnknownEntity = errors.New("unknown entity")
)

// Canvas receives draw calls in back-to-front order
type Canvas interface {
	DrawImage(img *ebiten.Image, at image.Point)
}

// LayerOrder is the draw order value of each layer; lower draws first
type LayerOrder [len(ecs.Layers)]int

// DefaultLayerOrder is ground 1, block 2, enemy 3, player 5
var DefaultLayerOrder = LayerOrder{1, 2, 3, 5}

// NewLayerOrder reads the order values from config
func NewLayerOrder(cfg config.LayersConfig) LayerOrder {
	var o LayerOrder
	o[ecs.LayerGround] = cfg.Ground
	o[ecs.LayerBlock] = cfg.Block
	o[ecs.LayerEnemy] = cfg.Enemy
	o[ecs.LayerPlayer] = cfg.Player
	return o
}

// Compositor is the layered render group over an entity store
type Compositor struct {
	world *ecs.World
	order LayerOrder

	joined  map[ecs.EntityID]uint64 // when the entity entered its current layer
	nextSeq uint64
}

// New creates a compositor over world. Entities already in the world join
// their layers in creation order.
func New(world *ecs.World, order LayerOrder) *Compositor {
	c := &Compositor{
		world:  world,
		order:  order,
		joined: make(map[ecs.EntityID]uint64),
	}
	for _, id := range world.IDs() {
		c.join(id)
	}
	return c
}

// World returns the underlying entity store
func (c *Compositor) World() *ecs.World {
	return c.world
}

// Add stores a sprite on a layer with optional gameplay tags
func (c *Compositor) Add(s ecs.Sprite, layer ecs.Layer, tags ...ecs.Tag) (ecs.EntityID, error) {
	if !layer.Valid() {
		return 0, fmt.Errorf("failed to add sprite: %w: %d", ErrUnknownLayer, layer)
	}
	id := c.world.SpawnTagged(s, layer, tags...)
	c.join(id)
	return id, nil
}

// Remove deletes the entity from the store and every group
func (c *Compositor) Remove(id ecs.EntityID) {
	c.world.DestroyEntity(id)
	delete(c.joined, id)
}

// ChangeLayer moves a live entity to the end of another layer. Tags and
// update order are unaffected.
func (c *Compositor) ChangeLayer(id ecs.EntityID, layer ecs.Layer) error {
	if !layer.Valid() {
		return fmt.Errorf("failed to change layer of %d: %w: %d", id, ErrUnknownLayer, layer)
	}
	if !c.world.Exists(id) {
		return fmt.Errorf("failed to change layer of %d: %w", id, ErrUnknownEntity)
	}
	c.world.Layer[id] = layer
	c.join(id)
	return nil
}

// Update ticks every live entity once
func (c *Compositor) Update(t entity.Tick) {
	for _, id := range c.world.IDs() {
		if s, ok := c.world.Sprites[id]; ok {
			s.Update(t)
		}
	}
}

// Draw hands every entity to the canvas in ascending layer order, and in
// the order they joined the layer within one layer
func (c *Compositor) Draw(canvas Canvas) {
	for _, id := range c.DrawOrder() {
		s := c.world.Sprites[id]
		canvas.DrawImage(s.Image(), s.DrawPosition())
	}
}

// DrawOrder returns the live IDs in the order Draw visits them
func (c *Compositor) DrawOrder() []ecs.EntityID {
	ids := c.world.IDs()
	slices.SortFunc(ids, func(a, b ecs.EntityID) int {
		return cmp.Or(
			cmp.Compare(c.order[c.world.Layer[a]], c.order[c.world.Layer[b]]),
			cmp.Compare(c.joined[a], c.joined[b]),
		)
	})
	return ids
}

// Len returns the number of live entities
func (c *Compositor) Len() int {
	return len(c.world.Sprites)
}

func (c *Compositor) join(id ecs.EntityID) {
	c.nextSeq++
	c.joined[id] = c.nextSeq
}
