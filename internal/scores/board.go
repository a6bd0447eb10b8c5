// Package scores keeps high scores for the lifetime of one arcade process.
// Nothing is written to disk.
package scores

import (
	"sort"
	"sync"
	"time"
)

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Board is an in-memory score table shared by the menu and game runs.
type Board struct {
	mu     sync.RWMutex
	nextID int64
	byGame map[string][]ScoreEntry
	now    func() time.Time
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		byGame: make(map[string][]ScoreEntry),
		now:    time.Now,
	}
}

// SaveScore records a new score for the given game and returns its ID.
func (b *Board) SaveScore(gameID string, score int) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.byGame[gameID] = append(b.byGame[gameID], ScoreEntry{
		ID:        b.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: b.now(),
	})
	return b.nextID
}

// TopScores returns up to limit scores for the game, best first. Ties keep
// the earlier score first. A non-positive limit means 10.
func (b *Board) TopScores(gameID string, limit int) []ScoreEntry {
	if limit <= 0 {
		limit = 10
	}

	b.mu.RLock()
	entries := append([]ScoreEntry(nil), b.byGame[gameID]...)
	b.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// BestScore returns the highest score for the game, if any.
func (b *Board) BestScore(gameID string) (int, bool) {
	top := b.TopScores(gameID, 1)
	if len(top) == 0 {
		return 0, false
	}
	return top[0].Score, true
}

// Count returns how many scores were recorded for the game.
func (b *Board) Count(gameID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byGame[gameID])
}
