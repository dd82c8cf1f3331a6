// Package history keeps the bounded list of recently searched cities.
//
// The list is ordered oldest first, never holds duplicates and never grows past
// Capacity entries. Every change is written through to the backing storage before
// Record returns.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"weather-lookup/internal/storage"
)

const (
	Capacity = 5
	Key      = "searchHistory"
)

type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	entries []string
}

func New(s storage.Storage) *Store {
	return &Store{storage: s}
}

// Load replaces the in-memory list with the persisted one. A missing or unreadable
// value leaves the history empty; it is never an error for the caller.
func (h *Store) Load(ctx context.Context) {
	raw, err := h.storage.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("history: read %s failed, starting empty: %v", Key, err)
		}
		h.reset(nil)
		return
	}

	var saved []string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Printf("history: %s is not a list, starting empty: %v", Key, err)
		h.reset(nil)
		return
	}

	var entries []string
	for _, term := range saved {
		entries = appendBounded(entries, term)
	}
	h.reset(entries)
}

// Record appends term unless it is already present. The in-memory list changes even
// when persisting fails; the write error is returned.
func (h *Store) Record(ctx context.Context, term string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if slices.Contains(h.entries, term) {
		return nil
	}
	h.entries = appendBounded(h.entries, term)

	data, err := json.Marshal(h.entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := h.storage.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// List returns the entries oldest first.
func (h *Store) List() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.entries)
}

// Recent returns the entries newest first.
func (h *Store) Recent() []string {
	out := h.List()
	slices.Reverse(out)
	return out
}

func (h *Store) reset(entries []string) {
	h.mu.Lock()
	h.entries = entries
	h.mu.Unlock()
}

func appendBounded(entries []string, term string) []string {
	if slices.Contains(entries, term) {
		return entries
	}
	entries = append(entries, term)
	if len(entries) > Capacity {
		entries = slices.Clone(entries[len(entries)-Capacity:])
	}
	return entries
}
