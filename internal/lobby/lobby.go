// Package lobby tracks open games waiting for players and the per-game
// configuration (role set, district pool) the host has chosen, separate
// from internal/engine which only knows about games already under way.
package lobby

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

// Player is a named seat in a lobby, identified by a stable session ID
// distinct from its display name.
type Player struct {
	ID   string
	Name string
}

// GameMeta describes one open lobby: who has joined and under what rules
// the match will start.
type GameMeta struct {
	ID         string
	Name       string
	Players    []Player
	MaxPlayers int
	Config     GameConfig
	CreatedAt  time.Time
}

// UsernameTakenError is returned by Register when another seat in the
// lobby already holds the requested display name.
type UsernameTakenError struct {
	Name string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("username %q is taken", e.Name)
}

// FullError is returned when a lobby has no open seats left.
type FullError struct {
	ID string
}

func (e *FullError) Error() string {
	return fmt.Sprintf("game %s is full", e.ID)
}

// Register adds a new seat to the lobby or renames an existing one,
// refusing a display name already in use by a different seat.
func (g *GameMeta) Register(id, name string) error {
	for _, p := range g.Players {
		if p.ID != id && p.Name == name {
			return &UsernameTakenError{Name: name}
		}
	}
	for i, p := range g.Players {
		if p.ID == id {
			g.Players[i].Name = name
			return nil
		}
	}
	if len(g.Players) >= g.MaxPlayers {
		return &FullError{ID: g.ID}
	}
	g.Players = append(g.Players, Player{ID: id, Name: name})
	return nil
}

// Leave removes a seat from the lobby, if present.
func (g *GameMeta) Leave(id string) {
	out := g.Players[:0]
	for _, p := range g.Players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	g.Players = out
}

// Manager maintains the set of lobbies waiting to start. It holds only
// pre-game state; once a lobby starts, internal/engine.Manager takes over
// the running game under the same ID.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameMeta
}

// NewManager returns an empty lobby Manager.
func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameMeta)}
}

// CreateGame opens a new lobby with the default game configuration.
func (m *Manager) CreateGame(name string, maxPlayers int) *GameMeta {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := &GameMeta{
		ID:         uuid.New().String(),
		Name:       name,
		MaxPlayers: maxPlayers,
		Config:     DefaultConfig(),
		CreatedAt:  time.Now(),
		Players:    make([]Player, 0, maxPlayers),
	}
	m.games[g.ID] = g
	return g
}

// GetGame retrieves a lobby by ID.
func (m *Manager) GetGame(id string) (*GameMeta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	return g, ok
}

// JoinGame seats a player in an existing lobby.
func (m *Manager) JoinGame(id, playerID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	return g.Register(playerID, name)
}

// LeaveGame removes a seated player from a lobby.
func (m *Manager) LeaveGame(id, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	g.Leave(playerID)
	return nil
}

// SetRoles overwrites a lobby's enabled role set, rejecting a selection
// that would leave any rank with no enabled role.
func (m *Manager) SetRoles(id string, roles map[catalogue.RoleName]bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	return g.Config.SetRoles(roles)
}

// SetDistrict overwrites a lobby's configuration option for one unique
// district.
func (m *Manager) SetDistrict(id string, district catalogue.DistrictName, opt ConfigOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	g.Config.Districts[district] = opt
	return nil
}

// ListGames returns every open lobby, in no particular order.
func (m *Manager) ListGames() []*GameMeta {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*GameMeta, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	return out
}

// RemoveGame drops a lobby, typically once it has started and ownership
// has passed to internal/engine.Manager.
func (m *Manager) RemoveGame(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}
