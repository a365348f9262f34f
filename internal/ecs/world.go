package ecs

import (
	"image"
	"maps"
	"slices"

	"github.com/younwookim/tilequest/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World is the single store of live entities. The gameplay groups
// (ground, blocks, enemies, player slot) are ID sets into the same store.
type World struct {
	nextID EntityID

	Sprites map[EntityID]Sprite
	Layer   map[EntityID]Layer

	// Tags
	IsGround map[EntityID]struct{}
	IsBlock  map[EntityID]struct{}
	IsEnemy  map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Sprites:  make(map[EntityID]Sprite),
		Layer:    make(map[EntityID]Layer),
		IsGround: make(map[EntityID]struct{}),
		IsBlock:  make(map[EntityID]struct{}),
		IsEnemy:  make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes an entity from the store and every group
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Sprites, id)
	delete(w.Layer, id)
	delete(w.IsGround, id)
	delete(w.IsBlock, id)
	delete(w.IsEnemy, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity is live
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Sprites[id]
	return ok
}

// Spawn stores a sprite on a layer and returns its ID
func (w *World) Spawn(s Sprite, layer Layer) EntityID {
	id := w.NewEntity()
	w.Sprites[id] = s
	w.Layer[id] = layer
	return id
}

// AddTag puts a live entity into a gameplay group. Tagging a second
// entity as the player replaces the slot.
func (w *World) AddTag(id EntityID, tag Tag) {
	switch tag {
	case TagGround:
		w.IsGround[id] = struct{}{}
	case TagBlock:
		w.IsBlock[id] = struct{}{}
	case TagEnemy:
		w.IsEnemy[id] = struct{}{}
	case TagPlayer:
		w.PlayerID = id
	}
}

// HasTag reports group membership
func (w *World) HasTag(id EntityID, tag Tag) bool {
	var ok bool
	switch tag {
	case TagGround:
		_, ok = w.IsGround[id]
	case TagBlock:
		_, ok = w.IsBlock[id]
	case TagEnemy:
		_, ok = w.IsEnemy[id]
	case TagPlayer:
		ok = id != 0 && w.PlayerID == id
	}
	return ok
}

// SpawnTagged stores a sprite on a layer and puts it in every given group
func (w *World) SpawnTagged(s Sprite, layer Layer, tags ...Tag) EntityID {
	id := w.Spawn(s, layer)
	for _, tag := range tags {
		w.AddTag(id, tag)
	}
	return id
}

// IDs returns every live entity in creation order
func (w *World) IDs() []EntityID {
	return slices.Sorted(maps.Keys(w.Sprites))
}

// Player returns the player sprite, or nil when the slot is empty
func (w *World) Player() Sprite {
	return w.Sprites[w.PlayerID]
}

// PlayerHitbox returns the player's collision rectangle, if there is a player
func (w *World) PlayerHitbox() (image.Rectangle, bool) {
	c, ok := w.Sprites[w.PlayerID].(Collider)
	if !ok {
		return image.Rectangle{}, false
	}
	return c.Hitbox(), true
}

// EnemyIDs returns the enemy IDs in creation order
func (w *World) EnemyIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.IsEnemy))
}

// BlockIDs returns the block IDs in creation order
func (w *World) BlockIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.IsBlock))
}

// EnemyHitboxes returns the current enemy hitboxes in creation order.
// Enemies already updated this tick report their new rectangles.
func (w *World) EnemyHitboxes() []image.Rectangle {
	ids := w.EnemyIDs()
	boxes := make([]image.Rectangle, 0, len(ids))
	for _, id := range ids {
		if c, ok := w.Sprites[id].(Collider); ok {
			boxes = append(boxes, c.Hitbox())
		}
	}
	return boxes
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}
