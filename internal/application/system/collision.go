package system

import (
	"image"
	"math"

	"github.com/younwookim/tilequest/internal/domain/entity"
)

// DefaultOverlapRatio is the fraction of each rectangle used by the overlap test
const DefaultOverlapRatio = 0.75

// Axes is the resolution order. Horizontal always goes first.
var Axes = [2]entity.Axis{entity.AxisX, entity.AxisY}

// Hit reports the obstacle a body was snapped against
type Hit struct {
	Axis     entity.Axis
	Dir      entity.Direction // direction of travel into the obstacle
	Obstacle int              // index into the obstacle slice
	Rect     image.Rectangle
}

// Resolver performs axis-separated rectangle collision
type Resolver struct {
	Ratio float64
}

// NewResolver creates a resolver. A ratio outside (0, 1] falls back to the default.
func NewResolver(ratio float64) *Resolver {
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultOverlapRatio
	}
	return &Resolver{Ratio: ratio}
}

// Move turns the accumulated displacement into whole pixels and translates
// the hitbox on that axis only
func (r *Resolver) Move(b *entity.Body, axis entity.Axis) {
	n := b.TakeStep(axis)
	if n == 0 {
		return
	}
	if axis == entity.AxisX {
		b.Hitbox = b.Hitbox.Add(image.Pt(n, 0))
	} else {
		b.Hitbox = b.Hitbox.Add(image.Pt(0, n))
	}
}

// Resolve snaps the hitbox flush against the nearest overlapping obstacle
// and cancels motion on the axis. Without displacement on the axis there is
// nothing to resolve.
func (r *Resolver) Resolve(b *entity.Body, axis entity.Axis, obstacles []image.Rectangle) (Hit, bool) {
	d := b.Displacement(axis)
	if d == 0 {
		return Hit{}, false
	}

	idx := r.nearest(b.Hitbox, r.overlapping(b.Hitbox, obstacles), obstacles)
	if idx < 0 {
		return Hit{}, false
	}
	obs := obstacles[idx]

	hit := Hit{Axis: axis, Obstacle: idx, Rect: obs}
	switch {
	case axis == entity.AxisX && d > 0:
		hit.Dir = entity.DirRight
		b.Hitbox = b.Hitbox.Add(image.Pt(obs.Min.X-b.Hitbox.Max.X, 0))
	case axis == entity.AxisX:
		hit.Dir = entity.DirLeft
		b.Hitbox = b.Hitbox.Add(image.Pt(obs.Max.X-b.Hitbox.Min.X, 0))
	case d > 0:
		hit.Dir = entity.DirDown
		b.Hitbox = b.Hitbox.Add(image.Pt(0, obs.Min.Y-b.Hitbox.Max.Y))
	default:
		hit.Dir = entity.DirUp
		b.Hitbox = b.Hitbox.Add(image.Pt(0, obs.Max.Y-b.Hitbox.Min.Y))
	}
	b.Cancel(axis)

	// upward hits always stop vertical motion
	if hit.Dir == entity.DirUp {
		b.DY = 0
	}
	return hit, true
}

// Apply moves the body on one axis and resolves the result
func (r *Resolver) Apply(b *entity.Body, axis entity.Axis, obstacles []image.Rectangle) (Hit, bool) {
	r.Move(b, axis)
	return r.Resolve(b, axis, obstacles)
}

// ResolveClear resolves against moving obstacles like Resolve, but leaves
// the body untouched when the snap would put its hitbox inside a block
func (r *Resolver) ResolveClear(b *entity.Body, axis entity.Axis, obstacles, blocks []image.Rectangle) (Hit, bool) {
	saved := *b
	hit, ok := r.Resolve(b, axis, obstacles)
	if !ok {
		return hit, false
	}
	for _, blk := range blocks {
		if r.Overlaps(b.Hitbox, blk) {
			*b = saved
			return Hit{}, false
		}
	}
	return hit, true
}

// Overlaps reports whether a and b overlap once both are scaled to the ratio
func (r *Resolver) Overlaps(a, b image.Rectangle) bool {
	return scaleRect(a, r.Ratio).Overlaps(scaleRect(b, r.Ratio))
}

func (r *Resolver) overlapping(hb image.Rectangle, obstacles []image.Rectangle) []int {
	var hits []int
	for i, obs := range obstacles {
		if r.Overlaps(hb, obs) {
			hits = append(hits, i)
		}
	}
	return hits
}

// nearest picks the candidate whose centre is closest to any hitbox corner.
// Corners are scanned TL, TR, BL, BR and only a strictly smaller distance
// replaces the best, so ties keep the earlier corner and obstacle.
func (r *Resolver) nearest(hb image.Rectangle, candidates []int, obstacles []image.Rectangle) int {
	if len(candidates) == 0 {
		return -1
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	corners := [4]image.Point{
		hb.Min,
		{X: hb.Max.X, Y: hb.Min.Y},
		{X: hb.Min.X, Y: hb.Max.Y},
		hb.Max,
	}
	best, bestDist := -1, math.Inf(1)
	for _, c := range corners {
		for _, i := range candidates {
			obs := obstacles[i]
			cx := float64(obs.Min.X+obs.Max.X) / 2
			cy := float64(obs.Min.Y+obs.Max.Y) / 2
			dist := math.Hypot(float64(c.X)-cx, float64(c.Y)-cy)
			if dist < bestDist {
				best, bestDist = i, dist
			}
		}
	}
	return best
}

// scaleRect shrinks r around its centre to ratio of its width and height
func scaleRect(r image.Rectangle, ratio float64) image.Rectangle {
	dw := r.Dx() - int(float64(r.Dx())*ratio)
	dh := r.Dy() - int(float64(r.Dy())*ratio)
	r.Min.X += dw / 2
	r.Max.X -= dw - dw/2
	r.Min.Y += dh / 2
	r.Max.Y -= dh - dh/2
	return r
}
