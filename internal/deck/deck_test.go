package deck

import (
	"testing"

	"github.com/kevlar-tabletop/citadels/internal/prng"
)

func TestDrawEmptiesInOrder(t *testing.T) {
	d := New([]int{1, 2, 3})
	got := make([]int, 0, 3)
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		got = append(got, card)
	}
	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d cards, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("card %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDrawRecyclesDiscardOldestFirst(t *testing.T) {
	d := New([]int{1})
	card, ok := d.Draw()
	if !ok || card != 1 {
		t.Fatalf("first draw = %d, %v, want 1, true", card, ok)
	}
	d.DiscardToBottom(10)
	d.DiscardToBottom(20)

	card, ok = d.Draw()
	if !ok || card != 10 {
		t.Fatalf("recycled draw = %d, %v, want 10, true", card, ok)
	}
	card, ok = d.Draw()
	if !ok || card != 20 {
		t.Fatalf("recycled draw = %d, %v, want 20, true", card, ok)
	}
	if _, ok := d.Draw(); ok {
		t.Fatalf("expected deck to be empty")
	}
}

func TestDrawManyStopsWhenDry(t *testing.T) {
	d := New([]int{1, 2})
	got := d.DrawMany(5)
	if len(got) != 2 {
		t.Fatalf("got %d cards, want 2", len(got))
	}
}

func TestSizeCountsDrawAndDiscard(t *testing.T) {
	d := New([]int{1, 2, 3})
	d.Draw()
	d.DiscardToBottom(99)
	if got := d.Size(); got != 3 {
		t.Fatalf("Size() = %d, want 3", got)
	}
}

func TestShuffleIsDeterministicForSameSeed(t *testing.T) {
	cards := []int{1, 2, 3, 4, 5, 6, 7, 8}

	d1 := New(cards)
	d1.Shuffle(prng.New(42))
	d2 := New(cards)
	d2.Shuffle(prng.New(42))

	for i := 0; i < len(cards); i++ {
		c1, ok1 := d1.Draw()
		c2, ok2 := d2.Draw()
		if ok1 != ok2 || c1 != c2 {
			t.Fatalf("draw %d diverged: (%d,%v) vs (%d,%v)", i, c1, ok1, c2, ok2)
		}
	}
}
