package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	TickRate      time.Duration `toml:"tick_rate"`
	UnitScale     float64       `toml:"unit_scale"` // world-unit constant scaling radar distances
	TemplatesPath string        `toml:"templates_path"`
	ScenePath     string        `toml:"scene_path"`
	ScriptsDir    string        `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:      50 * time.Millisecond,
			UnitScale:     4.0,
			TemplatesPath: "data/yaml/object_templates.yaml",
			ScenePath:     "data/yaml/scene.yaml",
			ScriptsDir:    "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
