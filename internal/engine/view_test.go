package engine

import "testing"

func TestViewForHidesOtherPlayersHands(t *testing.T) {
	g := newTestGame(t, 4)
	active, _ := g.ActivePlayer()

	view := g.ViewFor(active.ID)
	for _, pv := range view.Players {
		if pv.Index == active.Index {
			if len(pv.Hand) != 4 {
				t.Fatalf("own hand not visible in view: got %d cards, want 4", len(pv.Hand))
			}
		} else if pv.Hand != nil {
			t.Fatalf("other player's hand leaked into view: %v", pv.Hand)
		}
		if pv.HandSize != 4 {
			t.Fatalf("HandSize = %d, want 4 for every player", pv.HandSize)
		}
	}
}

func TestViewForHidesUnrevealedCharacters(t *testing.T) {
	g := newTestGame(t, 4)
	view := g.ViewFor("")
	for _, cv := range view.Characters {
		if cv.Revealed {
			t.Fatalf("character at rank %v unexpectedly revealed before any turn starts", cv.Rank)
		}
		if cv.Player != nil {
			t.Fatalf("unrevealed character at rank %v leaked its holder", cv.Rank)
		}
	}
}
