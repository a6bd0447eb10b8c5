package canbus

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/auto-arcade/internal/config"
)

// Mission is a goal state for part of the car.
type Mission struct {
	Description string
	Target      map[string]string // field -> value, as produced by CarState.Field
}

// NewMissions converts configured missions, rejecting unknown fields and
// values a field can never take.
func NewMissions(cfgs []config.MissionConfig) ([]Mission, error) {
	if len(cfgs) == 0 {
		return nil, errors.New("canbus: no missions")
	}
	out := make([]Mission, 0, len(cfgs))
	for i, mc := range cfgs {
		m := Mission{Description: mc.Description, Target: make(map[string]string, len(mc.Target))}
		for field, value := range mc.Target {
			v, err := normalizeTarget(field, value)
			if err != nil {
				return nil, fmt.Errorf("canbus: mission %d (%s): %w", i+1, mc.Description, err)
			}
			m.Target[field] = v
		}
		out = append(out, m)
	}
	return out, nil
}

// Satisfied reports whether every target field currently holds its value.
func (m Mission) Satisfied(c CarState) bool {
	for field, want := range m.Target {
		got, ok := c.Field(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}
