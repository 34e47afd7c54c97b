package engine

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// MarkerKind is the kind of marker placed on a character card.
type MarkerKind int

const (
	MarkerDiscarded MarkerKind = iota
	MarkerKilled
	MarkerBewitched
	MarkerRobbed
	MarkerBlackmail
	MarkerWarrant
)

// Marker is a token placed on a character card during the draft or call
// phase. Blackmail and Warrant carry an extra signed/flowered bit; the rest
// are bare flags.
type Marker struct {
	Kind     MarkerKind
	Flowered bool // only meaningful when Kind == MarkerBlackmail
	Signed   bool // only meaningful when Kind == MarkerWarrant
}

func (m Marker) isWarrant() bool   { return m.Kind == MarkerWarrant }
func (m Marker) isBlackmail() bool { return m.Kind == MarkerBlackmail }

// GameRole is the per-round state of one of the nine character cards: who
// picked it, whether it has been revealed by play, and any markers placed
// on it during the round.
type GameRole struct {
	Role     catalogue.RoleName
	Markers  []Marker
	Player   *PlayerIndex
	Revealed bool
	Logs     []string
}

func (c *GameRole) hasMarker(kind MarkerKind) bool {
	for _, m := range c.Markers {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

func (c *GameRole) hasBlackmail() bool {
	for _, m := range c.Markers {
		if m.isBlackmail() {
			return true
		}
	}
	return false
}

func (c *GameRole) hasWarrant() bool {
	for _, m := range c.Markers {
		if m.isWarrant() {
			return true
		}
	}
	return false
}

func (c *GameRole) removeMarkersOfKind(kind MarkerKind) {
	kept := c.Markers[:0]
	for _, m := range c.Markers {
		if m.Kind != kind {
			kept = append(kept, m)
		}
	}
	c.Markers = kept
}

func (c *GameRole) cleanupRound() {
	c.Markers = nil
	c.Player = nil
	c.Revealed = false
	c.Logs = nil
}

// Characters is the character cards in play (8 or 9, depending on player
// count), indexed by rank.
type Characters struct {
	roles  [9]GameRole
	inPlay int
}

func newCharacters(roles []catalogue.RoleName) Characters {
	var c Characters
	c.inPlay = len(roles)
	for i, role := range roles {
		c.roles[i] = GameRole{Role: role}
	}
	return c
}

// Len reports how many character cards are in play.
func (c *Characters) Len() int {
	return c.inPlay
}

// Get returns the character card at a rank.
func (c *Characters) Get(rank catalogue.Rank) *GameRole {
	return &c.roles[rank.Index()]
}

// Next returns the next rank with a character card in play, after rank.
func (c *Characters) Next(rank catalogue.Rank) (catalogue.Rank, bool) {
	next, ok := rank.Next()
	if !ok || next.Index() >= c.inPlay {
		return 0, false
	}
	return next, true
}

// Iter returns the role names in play, in rank order.
func (c *Characters) Iter() []catalogue.RoleName {
	out := make([]catalogue.RoleName, c.inPlay)
	for i := 0; i < c.inPlay; i++ {
		out[i] = c.roles[i].Role
	}
	return out
}

// HasBishopProtection reports whether the rank-8 character's destroy/seize/
// trade ability is blocked against this player because they hold the
// revealed Bishop (or, if the Bishop is bewitched, the Witch).
func (c *Characters) HasBishopProtection(player PlayerIndex) bool {
	bishop := c.Get(catalogue.RankFive)
	if bishop.Role != catalogue.Bishop || !bishop.Revealed {
		return false
	}
	if bishop.hasMarker(MarkerBewitched) {
		witch := c.Get(catalogue.RankOne)
		return witch.Player != nil && *witch.Player == player
	}
	return bishop.Player != nil && *bishop.Player == player
}

// HasTaxCollector reports whether the rank-9 character in play is the Tax
// Collector.
func (c *Characters) HasTaxCollector() bool {
	return c.inPlay >= 9 && c.roles[catalogue.RankNine.Index()].Role == catalogue.TaxCollector
}
