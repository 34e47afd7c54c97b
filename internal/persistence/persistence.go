// Package persistence appends every applied action to a durable log keyed
// by game ID, so a finished or crashed game can be replayed exactly from
// its seed and action sequence without keeping the live *engine.Game
// around in memory.
package persistence

import (
	"context"
	"time"

	"github.com/kevlar-tabletop/citadels/internal/engine"
)

// LoggedAction is one row of a game's action log, in the order it was
// applied.
type LoggedAction struct {
	Revision  int
	PlayerID  string
	Action    engine.Action
	AppliedAt time.Time
}

// GameRecord is the immutable setup information a replay needs before it
// can start re-applying a game's logged actions.
type GameRecord struct {
	ID        string
	Seed      int64
	Players   []engine.LobbyPlayer
	CreatedAt time.Time
}

// ActionLogger is the append-only action log a running game writes
// through. Implementations must make LogAction safe to call from the same
// goroutine that holds the engine.Manager lock - it should never block
// on anything slower than a single insert.
type ActionLogger interface {
	// CreateGame records a new game's immutable setup before any actions
	// are logged against it.
	CreateGame(ctx context.Context, record GameRecord) error
	// LogAction appends one applied action at the given revision. A
	// duplicate (gameID, revision) pair is ignored and returns nil.
	LogAction(ctx context.Context, gameID string, entry LoggedAction) error
	// LoadGame returns a game's setup record and its full action log, in
	// revision order, so a caller can reconstruct the game by replaying
	// engine.Start followed by each action.
	LoadGame(ctx context.Context, gameID string) (GameRecord, []LoggedAction, error)
}
