package museum

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
)

func TestTuckAndCount(t *testing.T) {
	var m Museum
	m.Tuck(catalogue.Temple)
	m.Tuck(catalogue.Church)
	if got := m.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
}

func TestEmptyClearsAndReturnsCards(t *testing.T) {
	var m Museum
	m.Tuck(catalogue.Temple)
	m.Tuck(catalogue.Church)

	cards := m.Empty()
	if len(cards) != 2 {
		t.Fatalf("Empty() returned %d cards, want 2", len(cards))
	}
	if m.Count() != 0 {
		t.Fatalf("Count() after Empty() = %d, want 0", m.Count())
	}
}
