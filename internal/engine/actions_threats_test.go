package engine

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func eightRoles() []catalogue.RoleName {
	return []catalogue.RoleName{
		catalogue.Magistrate, catalogue.Thief, catalogue.Magician, catalogue.King,
		catalogue.Bishop, catalogue.Merchant, catalogue.Architect, catalogue.Warlord,
	}
}

func TestRevealSignedWarrantConfiscatesAndClearsAllWarrants(t *testing.T) {
	g := newCallGame(4, catalogue.RankFour, eightRoles())

	// Two other roles also carry unsigned warrants; revealing the signed one
	// should clear every warrant marker in play, not just the King's.
	g.Characters.Get(catalogue.RankOne).Markers = append(g.Characters.Get(catalogue.RankOne).Markers,
		Marker{Kind: MarkerWarrant, Signed: false})
	g.Characters.Get(catalogue.RankFour).Markers = append(g.Characters.Get(catalogue.RankFour).Markers,
		Marker{Kind: MarkerWarrant, Signed: true})
	g.Characters.Get(catalogue.RankSix).Markers = append(g.Characters.Get(catalogue.RankSix).Markers,
		Marker{Kind: MarkerWarrant, Signed: false})

	magistrateSeat := PlayerIndex(1)
	g.Characters.Get(catalogue.RankOne).Player = &magistrateSeat

	builder := g.Players[0]
	builder.Gold = 5
	magistrate := g.Players[1]

	g.Followup = &Followup{
		Kind:       FollowupWarrant,
		Magistrate: magistrateSeat,
		WarrantFor: catalogue.Temple,
		WarrantPay: 1,
		Signed:     true,
	}

	out, err := g.performAction(&Action{Tag: catalogue.RevealWarrant})
	if err != nil {
		t.Fatalf("performRevealWarrant: %v", err)
	}
	if !magistrate.CityHas(catalogue.Temple) {
		t.Fatalf("Magistrate should have confiscated the Temple")
	}
	if builder.Gold != 6 {
		t.Fatalf("builder gold = %d, want 6 (refunded the 1 gold cost)", builder.Gold)
	}
	if out.log == "" {
		t.Fatalf("expected a log line")
	}
	for _, rank := range []catalogue.Rank{catalogue.RankOne, catalogue.RankFour, catalogue.RankSix} {
		if g.Characters.Get(rank).hasWarrant() {
			t.Fatalf("rank %v still has a warrant marker after reveal", rank)
		}
	}
}

func TestPassOnUnsignedWarrantCompletesTheBuild(t *testing.T) {
	g := newCallGame(4, catalogue.RankFour, eightRoles())
	magistrateSeat := PlayerIndex(1)
	g.Characters.Get(catalogue.RankOne).Player = &magistrateSeat
	g.Characters.Get(catalogue.RankFour).Player = func() *PlayerIndex { i := PlayerIndex(0); return &i }()

	builder := g.Players[0]
	builder.Gold = 5

	g.Followup = &Followup{
		Kind:       FollowupWarrant,
		Magistrate: magistrateSeat,
		WarrantFor: catalogue.Temple,
		WarrantPay: 1,
		Signed:     false,
	}

	if _, err := g.performAction(&Action{Tag: catalogue.Pass}); err != nil {
		t.Fatalf("performPass: %v", err)
	}
	if !builder.CityHas(catalogue.Temple) {
		t.Fatalf("builder should keep the Temple when the warrant is not revealed")
	}
}

func TestRevealBlackmailTakesAllGoldAndClearsAllBlackmail(t *testing.T) {
	g := newCallGame(4, catalogue.RankSix, eightRoles())
	blackmailerSeat := PlayerIndex(1)

	g.Characters.Get(catalogue.RankSix).Markers = append(g.Characters.Get(catalogue.RankSix).Markers,
		Marker{Kind: MarkerBlackmail, Flowered: true})
	g.Characters.Get(catalogue.RankThree).Markers = append(g.Characters.Get(catalogue.RankThree).Markers,
		Marker{Kind: MarkerBlackmail, Flowered: false})

	builder := g.Players[0]
	builder.Gold = 9
	blackmailer := g.Players[1]
	blackmailer.Gold = 0

	g.Followup = &Followup{Kind: FollowupBlackmail, Blackmailer: blackmailerSeat}

	if _, err := g.performAction(&Action{Tag: catalogue.RevealBlackmail}); err != nil {
		t.Fatalf("performRevealBlackmail: %v", err)
	}
	if builder.Gold != 0 {
		t.Fatalf("builder gold = %d, want 0 after the threat is revealed", builder.Gold)
	}
	if blackmailer.Gold != 9 {
		t.Fatalf("blackmailer gold = %d, want 9", blackmailer.Gold)
	}
	if g.Characters.Get(catalogue.RankThree).hasBlackmail() {
		t.Fatalf("unrelated blackmail marker should have been cleared too")
	}
}

func TestRevealBlackmailOnEmptyThreatDoesNothing(t *testing.T) {
	g := newCallGame(4, catalogue.RankSix, eightRoles())
	blackmailerSeat := PlayerIndex(1)
	builder := g.Players[0]
	builder.Gold = 9
	blackmailer := g.Players[1]
	blackmailer.Gold = 0

	g.Followup = &Followup{Kind: FollowupBlackmail, Blackmailer: blackmailerSeat}

	if _, err := g.performAction(&Action{Tag: catalogue.RevealBlackmail}); err != nil {
		t.Fatalf("performRevealBlackmail: %v", err)
	}
	if builder.Gold != 9 {
		t.Fatalf("gold should be untouched on an empty threat, got %d", builder.Gold)
	}
	if blackmailer.Gold != 0 {
		t.Fatalf("blackmailer should gain nothing from an empty threat, got %d", blackmailer.Gold)
	}
}

func TestPayBribeSplitsGoldWithBlackmailer(t *testing.T) {
	g := newCallGame(4, catalogue.RankSix, eightRoles())
	blackmailerSeat := PlayerIndex(1)
	g.Characters.Get(catalogue.RankTwo).Player = &blackmailerSeat

	player := g.Players[0]
	player.Gold = 7
	blackmailer := g.Players[1]
	blackmailer.Gold = 0

	out, err := g.performAction(&Action{Tag: catalogue.PayBribe})
	if err != nil {
		t.Fatalf("performPayBribe: %v", err)
	}
	if player.Gold != 4 {
		t.Fatalf("payer gold = %d, want 4 (half of 7, rounded down, kept)", player.Gold)
	}
	if blackmailer.Gold != 3 {
		t.Fatalf("blackmailer gold = %d, want 3", blackmailer.Gold)
	}
	_ = out
}
