package hand

import "testing"

func TestNaturalBlackjack(t *testing.T) {
	h := Empty().Add(Ace).Add(Ten)
	if !h.IsNat() {
		t.Fatal("want natural")
	}
	if h.Value() != 21 {
		t.Fatalf("want value 21, got %d", h.Value())
	}
	if h.CanHit() {
		t.Fatal("a natural cannot hit")
	}
}

const (
	Ace = aceFace
	Ten = tenFace
)

func TestBustSaturates(t *testing.T) {
	h := Empty().Add(9).Add(9).Add(9)
	if !h.IsBust() {
		t.Fatal("want bust")
	}
	far := Empty().Add(9).Add(9).Add(9).Add(9).Add(9)
	if !far.IsBust() {
		t.Fatal("want bust")
	}
	if h.Key() != far.Key() {
		t.Fatalf("all busts should collapse to the same key: %q vs %q", h.Key(), far.Key())
	}
}

func TestSecondAceDemotesImmediately(t *testing.T) {
	h := Empty().Add(Ace).Add(Ace)
	if h.Value() != 12 {
		t.Fatalf("want soft 12 (11+1), got %d", h.Value())
	}
	h = h.Add(9)
	if h.Value() != 21 {
		t.Fatalf("want 21, got %d", h.Value())
	}
}

func TestSoft17(t *testing.T) {
	h := Empty().Add(Ace).Add(6)
	if !h.IsA17() {
		t.Fatal("want soft 17")
	}
	if h.Value() != 17 {
		t.Fatalf("want value 17, got %d", h.Value())
	}
}

func TestIs22UsesValue(t *testing.T) {
	h := Empty().Add(8).Add(8).Add(6)
	if h.Value() != 22 {
		t.Fatalf("want value 22, got %d", h.Value())
	}
	if !h.Is22() {
		t.Fatal("want is22 true")
	}
}

func TestFirstTwoClearedAfterThirdCard(t *testing.T) {
	h := Empty().Add(2).Add(3)
	a, b, ok := h.FirstTwo()
	if !ok || a != 2 || b != 3 {
		t.Fatalf("want (2,3,true), got (%d,%d,%v)", a, b, ok)
	}
	h = h.Add(4)
	_, _, ok = h.FirstTwo()
	if ok {
		t.Fatal("want first-two cleared after third card")
	}
}

func TestCardsDealtSaturates(t *testing.T) {
	h := Empty().Add(2).Add(3).Add(4).Add(5).Add(6)
	if h.CardsDealt() != 3 {
		t.Fatalf("want cardsDealt saturate at 3, got %d", h.CardsDealt())
	}
}
