package playing

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	colorHUDText      = color.RGBA{230, 230, 230, 255}
	colorHUDPanel     = color.RGBA{0, 0, 0, 160}
	colorPlayerHitbox = color.RGBA{80, 255, 120, 255}
	colorEnemyHitbox  = color.RGBA{255, 90, 90, 255}
)

const hudFontSize = 12

// DebugStats is what the debug overlay shows for one frame
type DebugStats struct {
	FPS          float64
	TPS          float64
	Tick         int
	PlayerCell   image.Point
	Facing       entity.Direction
	EnemyStates  map[entity.EnemyState]int
	PlayerHitbox image.Rectangle
	EnemyHitbox  []image.Rectangle
	Recording    bool
}

// Lines formats the text part of the overlay
func (s DebugStats) Lines() []string {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  tick %d", s.FPS, s.TPS, s.Tick),
		fmt.Sprintf("player cell (%d,%d) facing %s", s.PlayerCell.X, s.PlayerCell.Y, s.Facing),
		fmt.Sprintf("enemies moving %d  stalling %d  reacting %d",
			s.EnemyStates[entity.EnemyMoving], s.EnemyStates[entity.EnemyStalling], s.EnemyStates[entity.EnemyReacting]),
	}
	if s.Recording {
		lines = append(lines, "REC")
	}
	return lines
}

// HUD draws the debug overlay
type HUD struct {
	face *text.GoTextFace
}

// NewHUD loads the overlay font
func NewHUD() (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load mono font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

// Draw renders hitbox outlines in world space and the stats panel on top
func (h *HUD) Draw(screen *ebiten.Image, cam image.Point, stats DebugStats) {
	for _, r := range stats.EnemyHitbox {
		strokeRect(screen, r.Sub(cam), colorEnemyHitbox)
	}
	strokeRect(screen, stats.PlayerHitbox.Sub(cam), colorPlayerHitbox)

	lines := stats.Lines()
	lineH := hudFontSize + 4
	vector.DrawFilledRect(screen, 4, 4, 340, float32(len(lines)*lineH+8), colorHUDPanel, false)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, float64(8+i*lineH))
		op.ColorScale.ScaleWithColor(colorHUDText)
		text.Draw(screen, line, h.face, op)
	}
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}
