package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// Colors is the fill/outline pair of a generated character
type Colors struct {
	Fill    color.RGBA
	Outline color.RGBA
}

// Palette holds the colours of the generated placeholder art
var Palette = struct {
	Player Colors
	Enemy  Colors
	Ground color.RGBA
	Grain  color.RGBA
	Wall   color.RGBA
	Mortar color.RGBA
	Eye    color.RGBA
}{
	Player: Colors{Fill: color.RGBA{0, 200, 100, 255}, Outline: color.RGBA{0, 90, 40, 255}},
	Enemy:  Colors{Fill: color.RGBA{220, 60, 60, 255}, Outline: color.RGBA{100, 20, 20, 255}},
	Ground: color.RGBA{70, 110, 60, 255},
	Grain:  color.RGBA{60, 95, 50, 255},
	Wall:   color.RGBA{130, 125, 115, 255},
	Mortar: color.RGBA{90, 85, 80, 255},
	Eye:    color.RGBA{250, 250, 250, 255},
}

// CharacterSheet draws a sheet laid out as cfg describes: one row per
// direction, cfg.Frames columns. Each frame is a disc with an eye on the
// facing side and a bob that changes with the frame index.
func CharacterSheet(cfg config.SheetConfig, body Colors) *image.RGBA {
	rows := 0
	for _, r := range cfg.Rows {
		if r+1 > rows {
			rows = r + 1
		}
	}
	fw, fh := cfg.FrameWidth, cfg.FrameHeight
	sheet := image.NewRGBA(image.Rect(0, 0, fw*cfg.Frames, fh*rows))

	for name, row := range cfg.Rows {
		dir, ok := entity.ParseDirection(name)
		if !ok {
			continue
		}
		for i := 0; i < cfg.Frames; i++ {
			cell := image.Rect(i*fw, row*fh, (i+1)*fw, (row+1)*fh)
			drawCharacter(sheet, cell, dir, i, body)
		}
	}
	return sheet
}

func drawCharacter(dst *image.RGBA, cell image.Rectangle, dir entity.Direction, frame int, body Colors) {
	w, h := cell.Dx(), cell.Dy()
	radius := min(w, h)/2 - 2
	bob := []int{0, -1, 0, 1}[frame%4]
	cx := cell.Min.X + w/2
	cy := cell.Min.Y + h/2 + bob

	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			switch {
			case d <= radius*radius:
				dst.SetRGBA(x, y, body.Fill)
			case d <= (radius+1)*(radius+1):
				dst.SetRGBA(x, y, body.Outline)
			}
		}
	}

	ux, uy := dir.Unit()
	ex := cx + int(ux*float64(radius)/2)
	ey := cy + int(uy*float64(radius)/2)
	draw.Draw(dst, image.Rect(ex-1, ey-1, ex+2, ey+2), &image.Uniform{Palette.Eye}, image.Point{}, draw.Src)
}

// TerrainSheet draws a sheet holding the ground and wall tiles at the
// pixel positions cfg names
func TerrainSheet(cfg config.TerrainConfig, tileSize int) *image.RGBA {
	w := max(cfg.Ground.X, cfg.Wall.X) + tileSize
	h := max(cfg.Ground.Y, cfg.Wall.Y) + tileSize
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))

	ground := image.Rect(cfg.Ground.X, cfg.Ground.Y, cfg.Ground.X+tileSize, cfg.Ground.Y+tileSize)
	draw.Draw(sheet, ground, &image.Uniform{Palette.Ground}, image.Point{}, draw.Src)
	for i := 2; i < tileSize; i += 6 {
		sheet.SetRGBA(ground.Min.X+i, ground.Min.Y+(i*7)%tileSize, Palette.Grain)
	}

	wall := image.Rect(cfg.Wall.X, cfg.Wall.Y, cfg.Wall.X+tileSize, cfg.Wall.Y+tileSize)
	draw.Draw(sheet, wall, &image.Uniform{Palette.Wall}, image.Point{}, draw.Src)
	brick := max(tileSize/4, 1)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			offset := 0
			if (y/brick)%2 == 1 {
				offset = brick
			}
			if y%brick == 0 || (x+offset)%(2*brick) == 0 {
				sheet.SetRGBA(wall.Min.X+x, wall.Min.Y+y, Palette.Mortar)
			}
		}
	}
	return sheet
}
