// Package enginetest provides a fast-start harness for tests that need a
// game already past its draft, without re-deriving draft mechanics in every
// caller. It is the idiomatic replacement for the original implementation's
// dev-only fixed-state shortcut: rather than a build-time feature flag that
// seeds a fabricated mid-game snapshot, QuickStart drives the real draft to
// completion through the engine's own API, so the game it returns is exactly
// as valid as one a client reached by playing it out.
package enginetest

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/engine"
)

// QuickStart starts a game with n players and drives every draft pick and
// discard automatically (each player always takes the first role offered to
// them), returning the game the moment the call phase begins. Use it when a
// test cares about build/role-ability behavior and would otherwise have to
// script an entire draft just to get there.
func QuickStart(t testing.TB, n int, roles []catalogue.RoleName, districts []catalogue.DistrictName, seed int64) *engine.Game {
	t.Helper()

	players := make([]engine.LobbyPlayer, n)
	for i := range players {
		id := string(rune('a' + i))
		players[i] = engine.LobbyPlayer{ID: id, Name: "Player " + id}
	}

	g, err := engine.Start(players, roles, districts, seed)
	if err != nil {
		t.Fatalf("enginetest.QuickStart: Start: %v", err)
	}

	for g.ActiveTurn.Phase == engine.PhaseDraft {
		active, err := g.ActivePlayer()
		if err != nil {
			t.Fatalf("enginetest.QuickStart: ActivePlayer: %v", err)
		}
		allowed := g.AllowedFor(active.ID)
		if len(allowed) == 0 {
			t.Fatalf("enginetest.QuickStart: no allowed actions for %s during draft", active.Name)
		}
		role := g.ActiveTurn.Draft.Remaining[0]

		action := engine.Action{Tag: allowed[0], Role: role}
		if err := g.Perform(action, active.ID); err != nil {
			t.Fatalf("enginetest.QuickStart: Perform(%v, role=%v): %v", allowed[0], role, err)
		}
	}

	return g
}
