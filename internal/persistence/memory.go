package persistence

import (
	"context"
	"fmt"
	"sync"
)

// MemoryActionLog is an in-process ActionLogger for tests and local
// development, with no external dependency.
type MemoryActionLog struct {
	mu      sync.Mutex
	games   map[string]GameRecord
	actions map[string][]LoggedAction
}

var _ ActionLogger = (*MemoryActionLog)(nil)

// NewMemoryActionLog returns an empty in-memory log.
func NewMemoryActionLog() *MemoryActionLog {
	return &MemoryActionLog{
		games:   make(map[string]GameRecord),
		actions: make(map[string][]LoggedAction),
	}
}

func (m *MemoryActionLog) CreateGame(ctx context.Context, record GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.games[record.ID]; exists {
		return nil
	}
	m.games[record.ID] = record
	return nil
}

func (m *MemoryActionLog) LogAction(ctx context.Context, gameID string, entry LoggedAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[gameID]; !ok {
		return fmt.Errorf("log action for unknown game %s", gameID)
	}
	for _, existing := range m.actions[gameID] {
		if existing.Revision == entry.Revision {
			return nil
		}
	}
	m.actions[gameID] = append(m.actions[gameID], entry)
	return nil
}

func (m *MemoryActionLog) LoadGame(ctx context.Context, gameID string) (GameRecord, []LoggedAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.games[gameID]
	if !ok {
		return GameRecord{}, nil, fmt.Errorf("game %s not found", gameID)
	}
	out := make([]LoggedAction, len(m.actions[gameID]))
	copy(out, m.actions[gameID])
	return record, out, nil
}
