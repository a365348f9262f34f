package config

// LevelConfig is the root config for level files (YAML or JSON)
type LevelConfig struct {
	Name string   `json:"name" yaml:"name"`
	Rows []string `json:"rows" yaml:"rows"`
}
