package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roversim/server/internal/object"
)

// SpawnEntry places one object in the world at boot.
type SpawnEntry struct {
	Type    object.ObjectType
	X, Z    float64
	Heading float64
	Team    int
	Power   float64
}

type spawnYaml struct {
	Type    string  `yaml:"type"`
	X       float64 `yaml:"x"`
	Z       float64 `yaml:"z"`
	Heading float64 `yaml:"heading"`
	Team    int     `yaml:"team"`
	Power   float64 `yaml:"power"`
}

type sceneFile struct {
	Spawns []spawnYaml `yaml:"spawns"`
}

// LoadScene reads a spawn list from a YAML file.
func LoadScene(path string) ([]SpawnEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	var f sceneFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	entries := make([]SpawnEntry, 0, len(f.Spawns))
	for i, row := range f.Spawns {
		t, ok := object.ParseObjectType(row.Type)
		if !ok {
			return nil, fmt.Errorf("scene %s: row %d: unknown type %q", path, i, row.Type)
		}
		power := row.Power
		if power == 0 {
			power = 1.0
		}
		entries = append(entries, SpawnEntry{
			Type:    t,
			X:       row.X,
			Z:       row.Z,
			Heading: row.Heading,
			Team:    row.Team,
			Power:   power,
		})
	}
	return entries, nil
}
