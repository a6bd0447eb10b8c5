package config

import (
	_ "embed"
)

//go:embed defaults/asil.yaml
var defaultAsilYAML []byte

//go:embed defaults/canbus.yaml
var defaultCanBusYAML []byte

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultAsilConfig returns the built-in ASIL game configuration.
func DefaultAsilConfig() AsilConfig {
	return AsilConfig{
		Car:         AsilCar{X: 6, Width: 9, Height: 3, GroundOffset: 5},
		Blocks:      AsilBlocks{Width: 22, Height: 4, Speed: 0.25, SpawnEvery: 120},
		Detection:   AsilDetection{Ahead: 24, Behind: 4},
		KeyCooldown: 12,
		Functionalities: []Functionality{
			{Name: "Airbags", Level: "D"},
			{Name: "ABS", Level: "D"},
			{Name: "Electronic Stability Control", Level: "D"},
			{Name: "Power Steering", Level: "C"},
			{Name: "Brake Assist", Level: "D"},
			{Name: "Lane Departure Warning", Level: "B"},
			{Name: "Blind Spot Monitoring", Level: "B"},
			{Name: "Adaptive Cruise Control", Level: "B"},
			{Name: "Automatic Emergency Braking", Level: "C"},
			{Name: "Lane Keep Assist", Level: "B"},
			{Name: "Traffic Sign Recognition", Level: "A"},
			{Name: "Parking Sensors", Level: "QM"},
			{Name: "Backup Camera", Level: "QM"},
			{Name: "Tire Pressure Monitoring", Level: "A"},
			{Name: "Engine Control Unit", Level: "D"},
			{Name: "Transmission Control", Level: "C"},
			{Name: "Anti-lock Braking System", Level: "D"},
			{Name: "Electronic Brake Distribution", Level: "C"},
			{Name: "Hill Start Assist", Level: "B"},
			{Name: "Traction Control", Level: "C"},
			{Name: "Forward Collision Warning", Level: "B"},
			{Name: "Driver Drowsiness Detection", Level: "A"},
			{Name: "Night Vision Assist", Level: "A"},
			{Name: "Park Assist", Level: "QM"},
			{Name: "Keyless Entry", Level: "QM"},
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 30},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultCanBusConfig returns the built-in CAN bus puzzle configuration.
func DefaultCanBusConfig() CanBusConfig {
	return CanBusConfig{
		BusIDs: map[string]string{
			"0x101": "windows",
			"0x201": "headlights",
			"0x301": "doors",
			"0x401": "engine",
		},
		Missions: []MissionConfig{
			{Description: "Turn on headlights", Target: map[string]string{"headlights": "on"}},
			{Description: "Close the driver's window", Target: map[string]string{"driver_window": "closed"}},
			{Description: "Open the passenger window", Target: map[string]string{"passenger_window": "open"}},
			{Description: "Lock the doors", Target: map[string]string{"doors": "locked"}},
			{Description: "Start engine (1000 RPM)", Target: map[string]string{"engine_rpm": "1000"}},
			{Description: "Turn off headlights", Target: map[string]string{"headlights": "off"}},
		},
		LogSize:    15,
		ErrorTicks: 120,
	}
}

// DefaultDinoConfig returns the built-in Dino Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:      0.055,
			JumpImpulse:  -1.0,
			MaxFallSpeed: 1.5,
			BaseSpeed:    0.5,
		},
		Obstacles: DinoObstacles{
			Width:             2,
			Height:            3,
			InitialSpawnDelay: 120,
			MinSpawnDelay:     60,
			SpawnStep:         1,
		},
		Player: DinoPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 600},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "asil":
		return defaultAsilYAML
	case "canbus":
		return defaultCanBusYAML
	case "dino":
		return defaultDinoYAML
	default:
		return nil
	}
}
