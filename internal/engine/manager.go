package engine

import (
	"fmt"
	"sync"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

// ActionMeta carries the optimistic-concurrency and idempotency data a
// transport layer attaches to an incoming action.
type ActionMeta struct {
	ActionID         string
	ExpectedRevision int
	PlayerID         string
}

// ActionResult reports the outcome of a successfully processed action.
type ActionResult struct {
	Revision  int
	Duplicate bool
}

// RevisionMismatchError indicates the caller's view of a game is stale: it
// submitted an action built against an older revision than the one the
// manager currently holds.
type RevisionMismatchError struct {
	Expected int
	Current  int
}

func (e *RevisionMismatchError) Error() string {
	return fmt.Sprintf("revision mismatch: expected %d, current %d", e.Expected, e.Current)
}

// GameNotFoundError is returned when a game ID has no active game.
type GameNotFoundError struct {
	ID string
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game %s not found", e.ID)
}

// Manager holds every in-progress match the transport layer is serving,
// tracking a monotonic revision per game so websocket clients can detect
// when they've missed a broadcast and need to refetch.
type Manager struct {
	mu              sync.RWMutex
	games           map[string]*Game
	revisions       map[string]int
	appliedActionID map[string]map[string]int
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		games:           make(map[string]*Game),
		revisions:       make(map[string]int),
		appliedActionID: make(map[string]map[string]int),
	}
}

// CreateGame starts a fresh game under the given ID and registers it.
func (m *Manager) CreateGame(id string, players []LobbyPlayer, roles []catalogue.RoleName, districts []catalogue.DistrictName, seed int64) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.games[id]; exists {
		return nil, fmt.Errorf("game %s already exists", id)
	}

	g, err := Start(players, roles, districts, seed)
	if err != nil {
		return nil, err
	}

	m.games[id] = g
	m.revisions[id] = 0
	m.appliedActionID[id] = make(map[string]int)
	return g, nil
}

// GetGame retrieves a game by ID.
func (m *Manager) GetGame(id string) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	return g, ok
}

// GetRevision returns a game's current revision.
func (m *Manager) GetRevision(id string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.games[id]; !ok {
		return 0, false
	}
	return m.revisions[id], true
}

// ListGames returns every active game, in no particular order.
func (m *Manager) ListGames() []*Game {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	return out
}

// RemoveGame drops a finished or abandoned game from the manager.
func (m *Manager) RemoveGame(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	delete(m.revisions, id)
	delete(m.appliedActionID, id)
}

// Perform applies an action with no revision or idempotency checking; a
// thin wrapper for callers (tests, scripted replays) that don't need the
// concurrency machinery.
func (m *Manager) Perform(gameID string, action Action, playerID string) error {
	_, err := m.PerformWithMeta(gameID, action, ActionMeta{ExpectedRevision: -1, PlayerID: playerID})
	return err
}

// PerformWithMeta validates the caller's revision and action ID before
// applying an action, so a websocket client that retries after a dropped
// ack never double-applies, and a stale client is told exactly why its
// action was rejected rather than silently corrupting shared state.
func (m *Manager) PerformWithMeta(gameID string, action Action, meta ActionMeta) (*ActionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[gameID]
	if !ok {
		return nil, &GameNotFoundError{ID: gameID}
	}

	currentRevision := m.revisions[gameID]
	if meta.ActionID != "" {
		if _, exists := m.appliedActionID[gameID][meta.ActionID]; exists {
			return &ActionResult{Revision: currentRevision, Duplicate: true}, nil
		}
	}

	if meta.ExpectedRevision >= 0 && meta.ExpectedRevision != currentRevision {
		return nil, &RevisionMismatchError{Expected: meta.ExpectedRevision, Current: currentRevision}
	}

	if err := g.Perform(action, meta.PlayerID); err != nil {
		return nil, err
	}

	currentRevision++
	m.revisions[gameID] = currentRevision
	if meta.ActionID != "" {
		if m.appliedActionID[gameID] == nil {
			m.appliedActionID[gameID] = make(map[string]int)
		}
		m.appliedActionID[gameID][meta.ActionID] = currentRevision
	}

	return &ActionResult{Revision: currentRevision, Duplicate: false}, nil
}
