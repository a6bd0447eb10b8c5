package canbus

import "fmt"

// Entry is one line of the bus log: a frame or a system message.
type Entry struct {
	Frame  Frame
	System string // set for system messages
	Tick   int    // run tick at which the entry was added
}

// IsSystem reports whether the entry is a system message.
func (e Entry) IsSystem() bool {
	return e.System != ""
}

// Text renders the entry with its elapsed-time stamp.
func (e Entry) Text(tickRate int) string {
	stamp := elapsed(e.Tick, tickRate)
	if e.IsSystem() {
		return fmt.Sprintf("SYS: %s [%s]", e.System, stamp)
	}
	return fmt.Sprintf("%s [%s]", e.Frame, stamp)
}

// elapsed formats ticks as +mm:ss.
func elapsed(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("+%02d:%02d", secs/60, secs%60)
}

// BusLog keeps the most recent entries, oldest first.
type BusLog struct {
	entries []Entry
	size    int
}

// NewBusLog creates a log holding at most size entries.
func NewBusLog(size int) *BusLog {
	size = max(size, 1)
	return &BusLog{entries: make([]Entry, 0, size), size: size}
}

// Add appends an entry, dropping the oldest when full.
func (l *BusLog) Add(e Entry) {
	if len(l.entries) == l.size {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.size-1]
	}
	l.entries = append(l.entries, e)
}

// Entries returns the log, oldest first. The slice must not be modified.
func (l *BusLog) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *BusLog) Len() int {
	return len(l.entries)
}

// Clear empties the log.
func (l *BusLog) Clear() {
	l.entries = l.entries[:0]
}
