package engine

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func baseRoles() []catalogue.RoleName {
	return []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	}
}

func newTestGame(t *testing.T, n int) *Game {
	t.Helper()
	players := make([]LobbyPlayer, n)
	for i := range players {
		players[i] = LobbyPlayer{ID: string(rune('a' + i)), Name: string(rune('A' + i))}
	}
	g, err := Start(players, baseRoles(), catalogue.AllDistricts(), 42)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func TestStartDealsFourCardHands(t *testing.T) {
	g := newTestGame(t, 4)
	for _, p := range g.Players {
		if len(p.Hand) != 4 {
			t.Fatalf("player %s has %d cards, want 4", p.Name, len(p.Hand))
		}
		if p.Gold != 2 {
			t.Fatalf("player %s has %d gold, want 2", p.Name, p.Gold)
		}
	}
}

func TestStartRequiresTwoPlayers(t *testing.T) {
	_, err := Start([]LobbyPlayer{{ID: "a", Name: "A"}}, baseRoles(), catalogue.AllDistricts(), 1)
	if err == nil {
		t.Fatalf("expected error for a single player")
	}
}

func TestDraftPickAssignsRoleAndEndsTurn(t *testing.T) {
	g := newTestGame(t, 4)
	active, err := g.ActivePlayer()
	if err != nil {
		t.Fatalf("ActivePlayer: %v", err)
	}
	draft, err := g.ActiveTurn.asDraft()
	if err != nil {
		t.Fatalf("asDraft: %v", err)
	}
	role := draft.Remaining[0]

	if err := g.Perform(Action{Tag: catalogue.DraftPick, Role: role}, active.ID); err != nil {
		t.Fatalf("Perform DraftPick: %v", err)
	}
	if !active.HasRole(role) {
		t.Fatalf("player did not receive drafted role %v", role)
	}
	if g.Characters.Get(role.Rank()).Player == nil || *g.Characters.Get(role.Rank()).Player != active.Index {
		t.Fatalf("character table not updated for drafted role")
	}
}

func TestDraftPickRejectsUnavailableRole(t *testing.T) {
	g := newTestGame(t, 4)
	active, err := g.ActivePlayer()
	if err != nil {
		t.Fatalf("ActivePlayer: %v", err)
	}
	draft, _ := g.ActiveTurn.asDraft()

	var missing catalogue.RoleName = -1
	for _, r := range baseRoles() {
		found := false
		for _, rem := range draft.Remaining {
			if rem == r {
				found = true
			}
		}
		if !found {
			missing = r
			break
		}
	}
	if missing == -1 {
		t.Skip("no discarded role to test against in this seed")
	}

	err = g.Perform(Action{Tag: catalogue.DraftPick, Role: missing}, active.ID)
	if err == nil {
		t.Fatalf("expected error picking an unavailable role")
	}
}

func TestAllowedForRejectsWrongPlayer(t *testing.T) {
	g := newTestGame(t, 4)
	active, _ := g.ActivePlayer()
	var other *Player
	for _, p := range g.Players {
		if p.Index != active.Index {
			other = p
			break
		}
	}
	if allowed := g.AllowedFor(other.ID); len(allowed) != 0 {
		t.Fatalf("expected no actions allowed for non-active player, got %v", allowed)
	}
}

func TestTwoPlayerDraftSpecialWindow(t *testing.T) {
	g := newTestGame(t, 2)
	// Drive the draft by always performing whatever the engine currently
	// allows for the active player, rather than assuming every step is a
	// DraftPick - the 2p draft interleaves discards.
	for i := 0; i < 40 && g.ActiveTurn.Phase == PhaseDraft; i++ {
		active, err := g.ActivePlayer()
		if err != nil {
			t.Fatalf("ActivePlayer: %v", err)
		}
		draft, err := g.ActiveTurn.asDraft()
		if err != nil {
			break
		}
		if len(draft.Remaining) == 0 {
			break
		}
		allowed := g.AllowedFor(active.ID)
		if len(allowed) == 0 {
			t.Fatalf("no actions allowed for the active player mid-draft")
		}
		if err := g.Perform(Action{Tag: allowed[0], Role: draft.Remaining[0]}, active.ID); err != nil {
			t.Fatalf("Perform %v: %v", allowed[0], err)
		}
	}
	if g.ActiveTurn.Phase != PhaseCall {
		t.Fatalf("expected draft to finish into the call phase, got phase %v", g.ActiveTurn.Phase)
	}
	for _, p := range g.Players {
		if len(p.Roles) != 2 {
			t.Fatalf("player %s has %d roles, want 2 in a 2-player game", p.Name, len(p.Roles))
		}
	}
}

func TestCallNextAdvancesThroughRanksInOrder(t *testing.T) {
	g := newTestGame(t, 4)
	g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: catalogue.RankOne}}
	g.callNext()
	if g.ActiveTurn.Call.Rank != catalogue.RankTwo {
		t.Fatalf("expected rank advance to RankTwo, got %v", g.ActiveTurn.Call.Rank)
	}
}

func TestCallNextAtLastRankEndsRound(t *testing.T) {
	g := newTestGame(t, 4)
	lastRank := catalogue.RankEight
	g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: lastRank}}
	roundBefore := g.Round
	g.callNext()
	if g.ActiveTurn.Phase != PhaseDraft {
		t.Fatalf("expected a new draft to begin after the final rank, got phase %v", g.ActiveTurn.Phase)
	}
	if g.Round != roundBefore+1 {
		t.Fatalf("expected round to increment, got %d -> %d", roundBefore, g.Round)
	}
}
