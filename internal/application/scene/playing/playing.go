// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/tilequest/internal/application/compositor"
	"github.com/younwookim/tilequest/internal/application/replay"
	"github.com/younwookim/tilequest/internal/application/scene"
	"github.com/younwookim/tilequest/internal/application/state"
	"github.com/younwookim/tilequest/internal/application/system"
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/ecs"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
	"github.com/younwookim/tilequest/internal/infrastructure/sprite"
)

// Colors for rendering
var (
	colorBG    = color.RGBA{50, 50, 50, 255}
	colorPause = color.RGBA{0, 0, 0, 128}
)

// Keys handled by the scene itself
const (
	keyQuit  = ebiten.KeyEscape
	keyPause = ebiten.KeyP
	keyDebug = ebiten.KeyF3
	keySave  = ebiten.KeyF5
)

// Options configures a Playing scene
type Options struct {
	Seed       int64
	RecordPath string             // empty disables recording
	Input      system.InputSource // nil reads the keyboard
}

// Playing is the main gameplay scene
type Playing struct {
	settings *config.SettingsConfig
	level    string
	world    *entity.TileWorld
	store    *ecs.World
	comp     *compositor.Compositor
	player   *system.PlayerController
	enemies  []*system.EnemyController
	input    system.InputSource
	state    state.GameState
	hud      *HUD
	screenW  int
	screenH  int
	tick     int

	showDebug bool

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	justPressed func(ebiten.Key) bool
	closing     func() bool
}

// New builds the world from the level and wires every entity into the
// compositor. A malformed level or a missing player spawn is returned as
// *entity.MapFormatError or *entity.NoPlayerSpawnError.
func New(cfg *config.GameConfig, assets *sprite.Assets, opts Options) (*Playing, error) {
	settings := cfg.Settings
	tileSize := settings.World.TileSize

	world, err := entity.NewTileWorld(cfg.Level.Rows, tileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", cfg.Level.Name, err)
	}
	spawn, err := world.PlayerSpawn()
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", cfg.Level.Name, err)
	}

	input := opts.Input
	if input == nil {
		input = system.NewInputSystem(nil)
	}

	p := &Playing{
		settings:       settings,
		level:          cfg.Level.Name,
		world:          world,
		store:          ecs.NewWorld(),
		input:          input,
		state:          state.StatePlaying,
		screenW:        settings.Display.ScreenWidth,
		screenH:        settings.Display.ScreenHeight,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
		justPressed:    inpututil.IsKeyJustPressed,
		closing:        ebiten.IsWindowBeingClosed,
	}
	p.comp = compositor.New(p.store, compositor.NewLayerOrder(settings.Layers))

	if err := p.populate(assets, spawn); err != nil {
		return nil, err
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed, p.level)
		log.Printf("Recording enabled: %s (seed: %d)", opts.RecordPath, opts.Seed)
	}

	log.Printf("Level %s loaded: %dx%d cells, %d blocks, %d enemies",
		p.level, world.Cols(), world.Rows(), len(world.BlockRects()), len(p.enemies))
	return p, nil
}

// populate adds ground under every cell, then blocks, enemies and the player
func (p *Playing) populate(assets *sprite.Assets, spawn image.Point) error {
	s := p.settings
	tileSize := s.World.TileSize
	resolver := system.NewResolver(s.Collision.OverlapRatio)
	blocks := p.world.BlockRects()

	for row := 0; row < p.world.Rows(); row++ {
		for col := 0; col < p.world.Cols(); col++ {
			tile := &ecs.Static{Img: assets.Terrain.Ground, Rect: p.world.CellRect(col, row)}
			if _, err := p.comp.Add(tile, ecs.LayerGround, ecs.TagGround); err != nil {
				return err
			}
		}
	}

	for _, cell := range p.world.SpawnPoints(entity.CellWall) {
		tile := &ecs.Static{Img: assets.Terrain.Wall, Rect: p.world.CellRect(cell.X, cell.Y)}
		if _, err := p.comp.Add(tile, ecs.LayerBlock, ecs.TagBlock); err != nil {
			return err
		}
	}

	for _, cell := range p.world.SpawnPoints(entity.CellEnemy) {
		e := system.NewWanderingEnemy(0, cell.X*tileSize, cell.Y*tileSize, s.Enemy, tileSize, p.rng)
		ctrl := system.NewEnemyController(e, resolver, blocks, p.store, assets.Enemy, s.Enemy.FrameStep, p.rng)
		id, err := p.comp.Add(ctrl, ecs.LayerEnemy, ecs.TagEnemy)
		if err != nil {
			return err
		}
		e.ID = id
		p.enemies = append(p.enemies, ctrl)
	}

	hitW, hitH := s.Player.Hitbox(tileSize)
	player := entity.NewPlayer(spawn.X*tileSize, spawn.Y*tileSize, tileSize, hitW, hitH, s.Player.Speed, s.Player.IdleFrame)
	p.player = system.NewPlayerController(player, resolver, blocks, p.store, assets.Player, s.Player.FrameStep)
	if _, err := p.comp.Add(p.player, ecs.LayerPlayer, ecs.TagPlayer); err != nil {
		return err
	}
	return nil
}

// Update proceeds the game state (implements scene.Scene).
// Closing the window quits like Escape, provided the window close is
// handled (ebiten.SetWindowClosingHandled).
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.justPressed(keyQuit) || p.closing() {
		return nil, ebiten.Termination
	}
	if p.justPressed(keyPause) {
		p.state = p.state.TogglePause()
	}
	if p.justPressed(keyDebug) {
		p.showDebug = !p.showDebug
	}
	// F5: Save recording manually
	if p.justPressed(keySave) && p.recorder != nil {
		p.saveRecording()
	}

	if p.state.Ticking() {
		p.step(dt)
	}
	return nil, nil // nil = stay on this scene
}

// step runs one simulation tick
func (p *Playing) step(dt float64) {
	keys := p.input.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(keys)
	}

	p.comp.Update(entity.Tick{DT: dt, Keys: keys})
	p.tick++

	if r, ok := p.input.(*replay.Replayer); ok && r.Done() {
		log.Printf("Replay finished after %d ticks", p.tick)
		p.state = state.StatePaused
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Camera returns the world pixel at the screen's top-left
func (p *Playing) Camera() image.Point {
	hb := p.player.Hitbox()
	focus := hb.Min.Add(hb.Max).Div(2)
	w, h := p.world.PixelSize()
	return compositor.Camera(focus, image.Pt(p.screenW, p.screenH), image.Pt(w, h))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.Camera()
	p.comp.Draw(compositor.ScreenCanvas{Screen: screen, Camera: cam})

	if p.showDebug {
		p.drawDebug(screen, cam)
	}
	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawDebug(screen *ebiten.Image, cam image.Point) {
	if p.hud == nil {
		hud, err := NewHUD()
		if err != nil {
			log.Printf("Debug overlay disabled: %v", err)
			p.showDebug = false
			return
		}
		p.hud = hud
	}
	stats := p.Stats()
	stats.FPS = ebiten.ActualFPS()
	stats.TPS = ebiten.ActualTPS()
	p.hud.Draw(screen, cam, stats)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorPause, false)

	text := "PAUSED\n\nPress P to resume\nESC to quit"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// Stats collects the debug overlay figures that do not depend on ebiten
func (p *Playing) Stats() DebugStats {
	pl := p.player.Player
	stats := DebugStats{
		Tick:         p.tick,
		PlayerCell:   pl.Cell(p.world.TileSize()),
		Facing:       pl.Facing,
		EnemyStates:  make(map[entity.EnemyState]int),
		PlayerHitbox: pl.Hitbox,
		EnemyHitbox:  p.store.EnemyHitboxes(),
		Recording:    p.recorder != nil && p.recorder.IsRecording(),
	}
	for _, e := range p.enemies {
		stats.EnemyStates[e.Enemy.State]++
	}
	return stats
}

// State returns the current run state
func (p *Playing) State() state.GameState {
	return p.state
}

// Player returns the player controller
func (p *Playing) Player() *system.PlayerController {
	return p.player
}

// Enemies returns the enemy controllers in spawn order
func (p *Playing) Enemies() []*system.EnemyController {
	return p.enemies
}

// Compositor returns the scene's render group
func (p *Playing) Compositor() *compositor.Compositor {
	return p.comp
}

// Seed returns the RNG seed of this run
func (p *Playing) Seed() int64 {
	return p.seed
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
