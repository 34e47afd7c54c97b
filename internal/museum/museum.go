// Package museum tracks the cards tucked facedown under a player's Museum
// district. It is kept separate from internal/engine because both the
// build dispatcher (tucking) and the destroy/scoring paths (returning the
// tucked cards to the discard pile, counting them for score) mutate it.
package museum

import "github.com/kevlar-tabletop/citadels/internal/catalogue"

// Museum holds the districts a player has tucked facedown.
type Museum struct {
	cards []catalogue.DistrictName
}

// Tuck assigns a card from hand facedown under the Museum.
func (m *Museum) Tuck(card catalogue.DistrictName) {
	m.cards = append(m.cards, card)
}

// Cards returns the tucked cards in tuck order.
func (m *Museum) Cards() []catalogue.DistrictName {
	return m.cards
}

// Count returns how many cards are tucked, used for the end-of-game
// scoring bonus (1 point per tucked card).
func (m *Museum) Count() int {
	return len(m.cards)
}

// Empty resets the Museum and returns the cards that were tucked, for
// shuffling back into the district deck when the Museum itself is
// discarded or destroyed.
func (m *Museum) Empty() []catalogue.DistrictName {
	cards := m.cards
	m.cards = nil
	return cards
}
