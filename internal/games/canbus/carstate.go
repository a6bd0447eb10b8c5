package canbus

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/auto-arcade/internal/core"
)

// Subsystem names a part of the car addressed by a CAN id.
type Subsystem string

const (
	SubsystemWindows    Subsystem = "windows"
	SubsystemHeadlights Subsystem = "headlights"
	SubsystemDoors      Subsystem = "doors"
	SubsystemEngine     Subsystem = "engine"
)

var subsystems = []Subsystem{SubsystemWindows, SubsystemHeadlights, SubsystemDoors, SubsystemEngine}

// MaxRPM is the engine speed limit.
const MaxRPM = 8000

// Switch is an on/off subsystem.
type Switch int

const (
	Off Switch = iota
	On
)

func (s Switch) String() string {
	if s == On {
		return "ON"
	}
	return "OFF"
}

// Window is the position of a window.
type Window int

const (
	Closed Window = iota
	Open
)

func (w Window) String() string {
	if w == Open {
		return "OPEN"
	}
	return "CLOSED"
}

// Lock is the state of the door locks.
type Lock int

const (
	Unlocked Lock = iota
	Locked
)

func (l Lock) String() string {
	if l == Locked {
		return "LOCKED"
	}
	return "UNLOCKED"
}

// CarState is everything the player can change over the bus.
type CarState struct {
	Headlights      Switch
	DriverWindow    Window
	PassengerWindow Window
	Doors           Lock
	EngineRPM       int
}

// NewCarState returns the state a run starts from.
func NewCarState() CarState {
	return CarState{
		Headlights:      Off,
		DriverWindow:    Open,
		PassengerWindow: Closed, // opening it is a mission step

		Doors:           Unlocked,
		EngineRPM:       0,
	}
}

// Apply sets a subsystem from a frame's data byte. The state is left
// unchanged when the value means nothing to the subsystem.
func (c *CarState) Apply(sub Subsystem, value int) error {
	switch sub {
	case SubsystemHeadlights:
		if value != 0 && value != 1 {
			return invalidValue(sub, value)
		}
		c.Headlights = Switch(value)
	case SubsystemDoors:
		if value != 0 && value != 1 {
			return invalidValue(sub, value)
		}
		c.Doors = Lock(value)
	case SubsystemWindows:
		switch value {
		case 0:
			c.DriverWindow = Closed
		case 1:
			c.DriverWindow = Open
		case 2:
			c.PassengerWindow = Closed
		case 3:
			c.PassengerWindow = Open
		default:
			return invalidValue(sub, value)
		}
	case SubsystemEngine:
		// same as clamp(value*1000, 0, MaxRPM) without overflow
		c.EngineRPM = core.Clamp(value, 0, MaxRPM/1000) * 1000
	default:
		return fmt.Errorf("%w: no subsystem %q", ErrInvalidValue, sub)
	}
	return nil
}

func invalidValue(sub Subsystem, value int) error {
	return fmt.Errorf("%w: %d for %s", ErrInvalidValue, value, sub)
}

// Field returns a state field in the lower-case form mission targets use.
func (c CarState) Field(name string) (string, bool) {
	switch name {
	case "headlights":
		return strings.ToLower(c.Headlights.String()), true
	case "driver_window":
		return strings.ToLower(c.DriverWindow.String()), true
	case "passenger_window":
		return strings.ToLower(c.PassengerWindow.String()), true
	case "doors":
		return strings.ToLower(c.Doors.String()), true
	case "engine_rpm":
		return strconv.Itoa(c.EngineRPM), true
	}
	return "", false
}

// normalizeTarget checks a mission target against the field's domain and
// returns it in the form Field produces.
func normalizeTarget(field, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	var allowed []string
	switch field {
	case "headlights":
		allowed = []string{"on", "off"}
	case "driver_window", "passenger_window":
		allowed = []string{"open", "closed"}
	case "doors":
		allowed = []string{"locked", "unlocked"}
	case "engine_rpm":
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > MaxRPM {
			return "", fmt.Errorf("engine_rpm target %q: want 0-%d", value, MaxRPM)
		}
		return strconv.Itoa(n), nil
	default:
		return "", fmt.Errorf("unknown field %q", field)
	}
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("%s target %q: want one of %v", field, value, allowed)
	}
	return v, nil
}

// BusMap routes CAN ids to subsystems.
type BusMap map[int]Subsystem

// NewBusMap parses the configured id table.
func NewBusMap(ids map[string]string) (BusMap, error) {
	bus := make(BusMap, len(ids))
	for key, name := range ids {
		id, err := parseNumber(strings.ToLower(strings.TrimSpace(key)))
		if err != nil {
			return nil, fmt.Errorf("canbus: bus id %q: %w", key, err)
		}
		sub := Subsystem(strings.ToLower(name))
		if !slices.Contains(subsystems, sub) {
			return nil, fmt.Errorf("canbus: bus id %q: unknown subsystem %q", key, name)
		}
		bus[id] = sub
	}
	return bus, nil
}

// Lookup returns the subsystem for id.
func (b BusMap) Lookup(id int) (Subsystem, error) {
	sub, ok := b[id]
	if !ok {
		return "", fmt.Errorf("%w: 0x%03X", ErrUnknownID, id)
	}
	return sub, nil
}

// IDs returns the mapped ids in ascending order.
func (b BusMap) IDs() []int {
	ids := make([]int, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
