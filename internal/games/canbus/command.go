package canbus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors reported for rejected commands. Callers match them with errors.Is.
var (
	ErrInvalidCommand = errors.New("canbus: invalid command")
	ErrUnknownID      = errors.New("canbus: unknown CAN id")
	ErrInvalidValue   = errors.New("canbus: invalid value")
)

// Frame is one CAN frame typed by the player.
type Frame struct {
	ID   int
	Data int
}

// String formats the frame the way the bus log shows it.
func (f Frame) String() string {
	return fmt.Sprintf("ID: 0x%03X Data: %02X", f.ID, f.Data)
}

// ParseCommand parses "send <id> <data>". The line is trimmed and
// lower-cased, and must split into exactly three fields. Numbers with a
// 0x prefix are hexadecimal, anything else is decimal.
func ParseCommand(line string) (Frame, error) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(parts) != 3 {
		return Frame{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidCommand, len(parts))
	}
	if parts[0] != "send" {
		return Frame{}, fmt.Errorf("%w: unknown verb %q", ErrInvalidCommand, parts[0])
	}

	id, err := parseNumber(parts[1])
	if err != nil {
		return Frame{}, fmt.Errorf("%w: id: %w", ErrInvalidCommand, err)
	}
	data, err := parseNumber(parts[2])
	if err != nil {
		return Frame{}, fmt.Errorf("%w: data: %w", ErrInvalidCommand, err)
	}
	return Frame{ID: id, Data: data}, nil
}

func parseNumber(s string) (int, error) {
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		if rest == "" || rest[0] == '+' || rest[0] == '-' {
			return 0, fmt.Errorf("malformed hex number %q", s)
		}
		s, base = rest, 16
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
