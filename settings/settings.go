package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/freerun/freerun/locomotion"
	"github.com/freerun/freerun/physics"
	"github.com/freerun/freerun/sim"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a freerun run.
type Settings struct {
	Locomotion locomotion.Config  `toml:"locomotion" yaml:"locomotion"`
	Body       physics.BodyConfig `toml:"body" yaml:"body"`
	Simulation sim.Config         `toml:"simulation" yaml:"simulation"`
	Log        struct {
		// Level is a logrus level name such as "info" or "debug".
		Level string `toml:"level" yaml:"level"`
	} `toml:"log" yaml:"log"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{
		Locomotion: locomotion.DefaultConfig(),
		Body:       physics.DefaultBodyConfig(),
		Simulation: sim.DefaultConfig(),
	}
	s.Log.Level = "info"
	return s
}

// Validate checks every section that has constraints of its own.
func (s Settings) Validate() error {
	if err := s.Locomotion.Validate(); err != nil {
		return fmt.Errorf("locomotion: %w", err)
	}
	if err := s.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

// SaveDefault will create and save the default settings file, encoded by the file's extension. If the file
// already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("settings file %s already exists", path)
	}
	data, err := encode(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from the settings file at path. The file must hold every setting, as written by
// SaveDefault, and the result is validated before it is returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	var s Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", ext)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

func encode(path string, s Settings) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Marshal(s)
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("unsupported settings format %q", ext)
	}
}
