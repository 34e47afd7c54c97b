// Package deck implements the draw/discard pile used for the district deck
// (the Scholar's 7-card draw is taken from that same pile).
package deck

import "github.com/kevlar-tabletop/citadels/internal/prng"

// Deck is a draw pile backed by a discard pile. When the draw pile is
// empty, Draw swaps the discard pile in as the new draw pile and reverses
// it, so the oldest discards are drawn first.
type Deck[T any] struct {
	draw    []T
	discard []T
}

// New builds a Deck whose draw pile starts as the given cards, in order.
func New[T any](cards []T) *Deck[T] {
	d := &Deck[T]{draw: make([]T, len(cards))}
	copy(d.draw, cards)
	return d
}

// Size returns the total number of cards remaining, draw pile plus discard.
func (d *Deck[T]) Size() int {
	return len(d.draw) + len(d.discard)
}

// Shuffle merges the discard pile back into the draw pile and shuffles the
// whole thing.
func (d *Deck[T]) Shuffle(src *prng.Source) {
	d.draw = append(d.draw, d.discard...)
	d.discard = nil
	src.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw removes and returns the top card. When the draw pile is exhausted it
// recycles the discard pile (oldest-discarded-first) before giving up.
func (d *Deck[T]) Draw() (T, bool) {
	var zero T
	if n := len(d.draw); n > 0 {
		card := d.draw[n-1]
		d.draw = d.draw[:n-1]
		return card, true
	}
	d.draw, d.discard = d.discard, d.draw
	reverse(d.draw)
	if n := len(d.draw); n > 0 {
		card := d.draw[n-1]
		d.draw = d.draw[:n-1]
		return card, true
	}
	return zero, false
}

// DrawMany draws up to amount cards, stopping early if the deck runs dry.
func (d *Deck[T]) DrawMany(amount int) []T {
	out := make([]T, 0, amount)
	for i := 0; i < amount; i++ {
		card, ok := d.Draw()
		if !ok {
			break
		}
		out = append(out, card)
	}
	return out
}

// DiscardToBottom adds a card to the discard pile, where it will be the
// last card drawn once the draw pile empties and recycles.
func (d *Deck[T]) DiscardToBottom(card T) {
	d.discard = append(d.discard, card)
}

// DiscardManyToBottom discards a batch in order.
func (d *Deck[T]) DiscardManyToBottom(cards []T) {
	d.discard = append(d.discard, cards...)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
