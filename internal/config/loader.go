package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load fills cfg for the named game.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml ->
// ./configs/<game>.yaml -> embedded default. Only a failing customPath is
// reported; broken implicit files are skipped.
func load[T any, PT interface {
	*T
	validator
}](game, customPath string, fallback func() T) (T, error) {
	if customPath != "" {
		cfg, err := readFile[T, PT](customPath)
		if err != nil {
			var zero T
			return zero, err
		}
		return cfg, nil
	}

	filename := game + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := readFile[T, PT](path); err == nil {
			return cfg, nil
		}
	}

	var cfg T
	if err := decode[T, PT](DefaultYAML(game), &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func readFile[T any, PT interface {
	*T
	validator
}](path string) (T, error) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode[T, PT](data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decode[T any, PT interface {
	*T
	validator
}](data []byte, cfg *T) error {
	if len(data) == 0 {
		return errors.New("empty document")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	return PT(cfg).Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadAsil loads the ASIL game configuration.
func LoadAsil(customPath string) (AsilConfig, error) {
	return load[AsilConfig]("asil", customPath, DefaultAsilConfig)
}

// LoadCanBus loads the CAN bus puzzle configuration.
func LoadCanBus(customPath string) (CanBusConfig, error) {
	return load[CanBusConfig]("canbus", customPath, DefaultCanBusConfig)
}

// LoadDino loads the Dino Runner configuration.
func LoadDino(customPath string) (DinoConfig, error) {
	return load[DinoConfig]("dino", customPath, DefaultDinoConfig)
}

// Validate checks the ASIL config for values the game cannot run with.
func (c *AsilConfig) Validate() error {
	switch {
	case c.Car.Width <= 0 || c.Car.Height <= 0:
		return errors.New("car: width and height must be positive")
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0:
		return errors.New("blocks: width and height must be positive")
	case c.Blocks.Speed <= 0:
		return errors.New("blocks: speed must be positive")
	case c.Blocks.SpawnEvery <= 0:
		return errors.New("blocks: spawn_every must be positive")
	case len(c.Functionalities) == 0:
		return errors.New("functionalities: at least one entry required")
	}
	for i, f := range c.Functionalities {
		if f.Name == "" || f.Level == "" {
			return fmt.Errorf("functionalities[%d]: name and level are required", i)
		}
	}
	return nil
}

// Validate checks the CAN bus config. Field names inside mission targets
// are checked by the game, which owns the car model.
func (c *CanBusConfig) Validate() error {
	switch {
	case len(c.BusIDs) == 0:
		return errors.New("bus_ids: at least one id required")
	case len(c.Missions) == 0:
		return errors.New("missions: at least one mission required")
	case c.LogSize <= 0:
		return errors.New("log_size must be positive")
	case c.ErrorTicks < 0:
		return errors.New("error_ticks must not be negative")
	}
	for i, m := range c.Missions {
		if len(m.Target) == 0 {
			return fmt.Errorf("missions[%d]: empty target", i)
		}
	}
	return nil
}

// Validate checks the Dino config.
func (c *DinoConfig) Validate() error {
	switch {
	case c.Physics.JumpImpulse >= 0:
		return errors.New("physics: jump_impulse must be negative")
	case c.Physics.Gravity <= 0:
		return errors.New("physics: gravity must be positive")
	case c.Physics.MaxFallSpeed <= 0:
		return errors.New("physics: max_fall_speed must be positive")
	case c.Physics.BaseSpeed <= 0:
		return errors.New("physics: base_speed must be positive")
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return errors.New("obstacles: width and height must be positive")
	case c.Obstacles.InitialSpawnDelay <= 0:
		return errors.New("obstacles: initial_spawn_delay must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("player: width and height must be positive")
	}
	return nil
}
