// Package score keeps the persisted top-10 high-score table.
package score

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Capacity is the number of records a table keeps.
const Capacity = 10

// Record is one table entry.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store loads and saves the records of a table.
type Store interface {
	Load() ([]Record, error)
	Save(records []Record) error
}

// Table is the high-score table. It is safe for concurrent use; SSH sessions share one.
type Table struct {
	mu      sync.RWMutex
	records []Record
	store   Store
	logger  *log.Logger
}

// NewTable loads the table from store. A missing or unreadable store yields an empty table.
// A nil store keeps the table in memory only.
func NewTable(store Store, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.Default()
	}
	t := &Table{store: store, logger: logger}
	if store == nil {
		return t
	}

	records, err := store.Load()
	if err != nil {
		logger.Debug("high scores unavailable, starting empty", "err", err)
		return t
	}
	t.records = normalize(records)
	logger.Debug("high scores loaded", "count", len(t.records))
	return t
}

// IsHighScore reports whether score would make the table: fewer than Capacity
// records exist or it beats the lowest one. Ties with the lowest do not qualify.
func (t *Table) IsHighScore(score int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.records) < Capacity {
		return true
	}
	return score > t.records[Capacity-1].Score
}

// Add inserts a record, keeps the table sorted and truncated, and saves it.
// A save error is returned but the in-memory table keeps the new record.
func (t *Table) Add(name string, score int) error {
	t.mu.Lock()
	t.records = normalize(append(t.records, Record{Name: name, Score: score}))
	snapshot := slices.Clone(t.records)
	t.mu.Unlock()

	if t.store == nil {
		return nil
	}
	if err := t.store.Save(snapshot); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

// Top returns a copy of the best n records, or all of them if n <= 0.
func (t *Table) Top(n int) []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if n <= 0 || n > len(t.records) {
		n = len(t.records)
	}
	return slices.Clone(t.records[:n])
}

// Len returns the number of records.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}

// normalize sorts descending by score, keeping insertion order among equal scores, and truncates.
func normalize(records []Record) []Record {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(records) > Capacity {
		clear(records[Capacity:])
		records = records[:Capacity]
	}
	return records
}
