package engine

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/deck"
	"github.com/kevlar-tabletop/citadels/internal/prng"
)

// newCallGame builds a minimal game sitting mid-call, with the given rank
// active and assigned to player 0, skipping the draft machinery entirely so
// dispatcher tests can exercise one action in isolation.
func newCallGame(n int, rank catalogue.Rank, roles []catalogue.RoleName) *Game {
	players := make([]*Player, n)
	for i := 0; i < n; i++ {
		players[i] = &Player{Index: PlayerIndex(i), ID: string(rune('a' + i)), Name: string(rune('A' + i)), Gold: 2}
	}
	chars := newCharacters(roles)
	zero := PlayerIndex(0)
	chars.Get(rank).Player = &zero
	chars.Get(rank).Revealed = true

	g := &Game{
		rng:        prng.New(7),
		Players:    players,
		Characters: chars,
		Deck:       deck.New(catalogue.AllDistricts()),
	}
	g.ActiveTurn = Turn{Phase: PhaseCall, Call: &Call{Rank: rank}}
	g.RemainingBuilds = chars.Get(rank).Role.BuildLimit()
	return g
}

func TestPerformBuildRegularChargesGoldAndAddsToCity(t *testing.T) {
	g := newCallGame(4, catalogue.RankOne, []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	})
	player := g.Players[0]
	player.Gold = 3
	player.Hand = []catalogue.DistrictName{catalogue.Temple}
	g.TurnActions = []Action{{Tag: catalogue.GatherResourceGold}}

	out, err := g.performAction(&Action{Tag: catalogue.Build, Build: BuildMethod{Kind: BuildRegular, District: catalogue.Temple}})
	if err != nil {
		t.Fatalf("performBuild: %v", err)
	}
	if player.Gold != 2 {
		t.Fatalf("gold = %d, want 2 (cost 1 deducted)", player.Gold)
	}
	if !player.CityHas(catalogue.Temple) {
		t.Fatalf("Temple not added to city")
	}
	if len(player.Hand) != 0 {
		t.Fatalf("Temple should have left the hand")
	}
	if out.endTurn {
		t.Fatalf("Build should not end the turn by itself")
	}
}

func TestPerformBuildRejectsInsufficientGold(t *testing.T) {
	g := newCallGame(4, catalogue.RankOne, []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	})
	player := g.Players[0]
	player.Gold = 0
	player.Hand = []catalogue.DistrictName{catalogue.Temple}
	g.TurnActions = []Action{{Tag: catalogue.GatherResourceGold}}

	_, err := g.performAction(&Action{Tag: catalogue.Build, Build: BuildMethod{Kind: BuildRegular, District: catalogue.Temple}})
	if err == nil {
		t.Fatalf("expected an error building without enough gold")
	}
}

func TestTaxCollectorTollChargedOnBuild(t *testing.T) {
	roles := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
		catalogue.TaxCollector,
	}
	g := newCallGame(4, catalogue.RankOne, roles)
	// Seat player 1 as the Tax Collector; HasTaxCollector itself only
	// checks the role at rank 9.
	one := PlayerIndex(1)
	g.Characters.Get(catalogue.RankNine).Player = &one

	player := g.Players[0]
	player.Gold = 3
	player.Hand = []catalogue.DistrictName{catalogue.Temple}
	g.TurnActions = []Action{{Tag: catalogue.GatherResourceGold}}

	if _, err := g.performAction(&Action{Tag: catalogue.Build, Build: BuildMethod{Kind: BuildRegular, District: catalogue.Temple}}); err != nil {
		t.Fatalf("performBuild: %v", err)
	}
	if g.TaxCollector != 1 {
		t.Fatalf("TaxCollector escrow = %d, want 1", g.TaxCollector)
	}
	if player.Gold != 1 {
		t.Fatalf("gold = %d, want 1 (cost 1 + 1 toll deducted from 3)", player.Gold)
	}
}

func TestTaxCollectorDoesNotTollItsOwnBuild(t *testing.T) {
	roles := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
		catalogue.TaxCollector,
	}
	g := newCallGame(4, catalogue.RankNine, roles)
	player := g.Players[0]
	player.Gold = 3
	player.Hand = []catalogue.DistrictName{catalogue.Temple}
	g.TurnActions = []Action{{Tag: catalogue.GatherResourceGold}}

	if _, err := g.performAction(&Action{Tag: catalogue.Build, Build: BuildMethod{Kind: BuildRegular, District: catalogue.Temple}}); err != nil {
		t.Fatalf("performBuild: %v", err)
	}
	if g.TaxCollector != 0 {
		t.Fatalf("TaxCollector escrow = %d, want 0 when the Tax Collector builds themselves", g.TaxCollector)
	}
}

func TestAlchemistRefundedAtEndOfTurn(t *testing.T) {
	roles := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Alchemist, catalogue.Architect, catalogue.Warlord,
	}
	g := newCallGame(4, catalogue.RankSix, roles)
	player := g.Players[0]
	player.Gold = 5
	player.Hand = []catalogue.DistrictName{catalogue.Cathedral}
	player.City = nil

	if err := g.Perform(Action{Tag: catalogue.GatherResourceGold}, player.ID); err != nil {
		t.Fatalf("Perform GatherResourceGold: %v", err)
	}
	if err := g.Perform(Action{Tag: catalogue.Build, Build: BuildMethod{Kind: BuildRegular, District: catalogue.Cathedral}}, player.ID); err != nil {
		t.Fatalf("Perform Build: %v", err)
	}
	goldAfterBuild := player.Gold
	if err := g.Perform(Action{Tag: catalogue.EndTurn}, player.ID); err != nil {
		t.Fatalf("Perform EndTurn: %v", err)
	}
	if player.Gold != goldAfterBuild+5 {
		t.Fatalf("gold after refund = %d, want %d", player.Gold, goldAfterBuild+5)
	}
	if g.Alchemist != 0 {
		t.Fatalf("Alchemist escrow should be cleared after refund, got %d", g.Alchemist)
	}
}

func TestBishopProtectsAgainstWarlordDestroy(t *testing.T) {
	roles := []catalogue.RoleName{
		catalogue.Assassin, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	}
	g := newCallGame(4, catalogue.RankEight, roles)

	bishopSeat := PlayerIndex(1)
	g.Characters.Get(catalogue.RankFive).Player = &bishopSeat
	g.Characters.Get(catalogue.RankFive).Revealed = true

	target := g.Players[1]
	target.City = []CityDistrict{{Name: catalogue.Watchtower}}

	_, err := g.performAction(&Action{Tag: catalogue.WarlordDestroy, WarlordTarget: CityDistrictTarget{
		Player: target.Name, District: catalogue.Watchtower,
	}})
	if err == nil {
		t.Fatalf("expected Bishop protection to block the destroy")
	}
}
