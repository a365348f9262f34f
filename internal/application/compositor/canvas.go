package compositor

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenCanvas draws onto an ebiten image through a camera
type ScreenCanvas struct {
	Screen *ebiten.Image
	Camera image.Point // world pixel shown at the screen's top-left
}

// DrawImage draws img with its top-left at world position at. Images
// entirely off screen and nil images are skipped.
func (c ScreenCanvas) DrawImage(img *ebiten.Image, at image.Point) {
	if img == nil {
		return
	}
	pos := at.Sub(c.Camera)
	if !img.Bounds().Sub(img.Bounds().Min).Add(pos).Overlaps(c.Screen.Bounds()) {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	c.Screen.DrawImage(img, op)
}

// Camera centres on focus, clamped so the view never leaves a world of
// the given pixel size. A world smaller than the view is pinned at 0.
func Camera(focus image.Point, view, world image.Point) image.Point {
	cam := focus.Sub(view.Div(2))
	cam.X = clamp(cam.X, 0, world.X-view.X)
	cam.Y = clamp(cam.Y, 0, world.Y-view.Y)
	return cam
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
