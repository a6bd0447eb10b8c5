package asil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/auto-arcade/internal/config"
	"github.com/vovakirdan/auto-arcade/internal/core"
)

// ErrUnknownLevel is returned when a catalogue entry names a level that
// is not QM, A, B, C or D.
var ErrUnknownLevel = errors.New("asil: unknown level")

// Level is an Automotive Safety Integrity Level, or QM for functions
// that only need quality management.
type Level int

const (
	LevelQM Level = iota
	LevelA
	LevelB
	LevelC
	LevelD
)

// ParseLevel accepts "A" to "D", "Q" and "QM", in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return LevelA, nil
	case "B":
		return LevelB, nil
	case "C":
		return LevelC, nil
	case "D":
		return LevelD, nil
	case "Q", "QM":
		return LevelQM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// String returns the level as printed on the legend.
func (l Level) String() string {
	switch l {
	case LevelA:
		return "A"
	case LevelB:
		return "B"
	case LevelC:
		return "C"
	case LevelD:
		return "D"
	default:
		return "QM"
	}
}

// Key returns the keyboard key that selects the level.
func (l Level) Key() string {
	if l == LevelQM {
		return "Q"
	}
	return l.String()
}

// Color is the block colour for the level.
func (l Level) Color() core.Color {
	switch l {
	case LevelD:
		return core.ColorRed
	case LevelC:
		return core.ColorOrange
	case LevelB:
		return core.ColorGold
	case LevelA:
		return core.ColorBrightGreen
	default:
		return core.ColorLightBlue
	}
}

// Risk describes the level for the legend.
func (l Level) Risk() string {
	switch l {
	case LevelD:
		return "Highest safety risk"
	case LevelC:
		return "High safety risk"
	case LevelB:
		return "Medium safety risk"
	case LevelA:
		return "Low safety risk"
	default:
		return "Quality Managed"
	}
}

// legendOrder lists levels from most to least critical.
var legendOrder = []Level{LevelD, LevelC, LevelB, LevelA, LevelQM}

// levelFor maps a level-select action to its level.
func levelFor(a core.Action) (Level, bool) {
	switch a {
	case core.ActionLevelA:
		return LevelA, true
	case core.ActionLevelB:
		return LevelB, true
	case core.ActionLevelC:
		return LevelC, true
	case core.ActionLevelD:
		return LevelD, true
	case core.ActionLevelQM:
		return LevelQM, true
	}
	return 0, false
}

// Functionality is a vehicle function with its assigned level.
type Functionality struct {
	Name  string
	Level Level
}

// NewCatalogue converts configured entries, rejecting unknown levels.
func NewCatalogue(entries []config.Functionality) ([]Functionality, error) {
	if len(entries) == 0 {
		return nil, errors.New("asil: empty functionality catalogue")
	}
	out := make([]Functionality, 0, len(entries))
	for _, e := range entries {
		lvl, err := ParseLevel(e.Level)
		if err != nil {
			return nil, fmt.Errorf("functionality %q: %w", e.Name, err)
		}
		out = append(out, Functionality{Name: e.Name, Level: lvl})
	}
	return out, nil
}

// Block is a functionality approaching the car from the right.
type Block struct {
	X    float64 // Left edge, sub-cell precision
	Y    int
	W, H int
	Func Functionality
}

// Rect returns the collision rectangle.
func (b Block) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// Lines splits the name into one line, or two when it has more than two
// words. The first line takes the shorter half.
func (b Block) Lines() []string {
	words := strings.Fields(b.Func.Name)
	if len(words) <= 2 {
		return []string{b.Func.Name}
	}
	half := len(words) / 2
	return []string{
		strings.Join(words[:half], " "),
		strings.Join(words[half:], " "),
	}
}
