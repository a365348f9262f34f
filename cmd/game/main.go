package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tilequest/internal/application/game"
	"github.com/younwookim/tilequest/internal/application/replay"
	"github.com/younwookim/tilequest/internal/application/scene/playing"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/sprite"
)

//go:embed configs
var configFS embed.FS

// flags holds the parsed command line
type flags struct {
	configDir  string
	level      string
	seed       int64
	record     string
	replayFile string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.StringVar(&f.configDir, "config", "", "Read settings and levels from this directory instead of the embedded ones")
	fset.StringVar(&f.level, "level", "", "Level to load (e.g., -level arena)")
	fset.Int64Var(&f.seed, "seed", 0, "RNG seed (0 = time based)")
	fset.StringVar(&f.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&f.replayFile, "replay", "", "Play back a recorded file (e.g., -replay replay.json)")
	if err := fset.Parse(args); err != nil {
		return f, err
	}
	if f.record != "" && f.replayFile != "" {
		return f, errors.New("-record and -replay cannot be combined")
	}
	return f, nil
}

// newLoader picks the config source
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// levelError turns the level errors into a readable message
func levelError(err error) string {
	var formatErr *entity.MapFormatError
	var spawnErr *entity.NoPlayerSpawnError
	switch {
	case errors.As(err, &formatErr):
		return fmt.Sprintf("Level is malformed: %v", formatErr)
	case errors.As(err, &spawnErr):
		return fmt.Sprintf("Level has no player: %v", spawnErr)
	default:
		return fmt.Sprintf("Failed to start level: %v", err)
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	opts := playing.Options{Seed: f.seed, RecordPath: f.record}
	level := f.level

	if f.replayFile != "" {
		data, err := replay.LoadReplay(f.replayFile)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Seed = data.Seed
		opts.Input = replay.NewReplayer(*data)
		if level == "" {
			level = data.Level
		}
		log.Printf("Replaying %s: %d frames, seed %d", f.replayFile, len(data.Frames), data.Seed)
	} else if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	loader, err := newLoader(f.configDir)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := loader.LoadAll(level)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings := cfg.Settings

	assets, err := sprite.Load(loader.FS(), settings.Sprites, settings.World.TileSize)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	sc, err := playing.New(cfg, assets, opts)
	if err != nil {
		log.Fatal(levelError(err))
	}

	d := settings.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)
	ebiten.SetWindowClosingHandled(true)

	g := game.New(sc, d.ScreenWidth, d.ScreenHeight, d.Framerate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
