package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Level    *LevelConfig
}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from (sprite sheets live there too)
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadSettings loads and validates settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadLevel loads levels/<name>.yaml, .yml or .json, in that order
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		p := path.Join("levels", name+ext)
		data, err := fs.ReadFile(l.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read level %s: %w", name, err)
		}

		var cfg LevelConfig
		if ext == ".json" {
			err = json.Unmarshal(data, &cfg)
		} else {
			err = yaml.Unmarshal(data, &cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse level %s: %w", p, err)
		}
		if cfg.Name == "" {
			cfg.Name = name
		}
		return &cfg, nil
	}
	return nil, fmt.Errorf("failed to read level %s: %w", name, fs.ErrNotExist)
}

// LoadAll loads settings and the level they name. A non-empty level
// overrides the one in settings.
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	if level == "" {
		level = settings.World.Level
	}
	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Level:    lvl,
	}, nil
}
