// Package hand models a single Blackjack hand as an immutable value: just
// enough state to compute its value and predicates, never the card
// sequence itself.
package hand

import "fmt"

const (
	maxOsum = 23
	noCard  = -1
)

// Hand is an immutable accumulator of dealt cards. It tracks whether an ace
// has been counted as 11 (ace), the sum of every other card plus any
// demoted ace (osum, saturating at 23 so that all busts collapse to one
// state), and the first two cards dealt (fst/snd, needed only to test
// whether a two-card hand is a pair eligible for splitting; cleared once a
// third card arrives since nothing past that point cares about them).
type Hand struct {
	ace      bool
	osum     int
	cards    int
	fst, snd int
}

// Empty is a hand with nothing dealt to it yet.
func Empty() Hand {
	return Hand{fst: noCard, snd: noCard}
}

// Add returns the hand after dealing card (a face 0..9, per the cards
// package's convention: 0 is any ten-valued card, 1 is an ace, 2..9 their
// own pip value).
//
// Only the first ace dealt is ever counted soft (worth 11, carried in the
// ace flag); every subsequent ace — like every non-ace card — adds its pip
// value (1) into osum directly. This mirrors the single-soft-ace
// bookkeeping a human player actually does at the table: a second ace is
// never tracked as a second "soft" eleven, it just demotes immediately.
func (h Hand) Add(card int) Hand {
	next := h
	before := h.CardsDealt()

	if card == aceFace && !next.ace {
		next.ace = true
	} else {
		v := card
		if card == tenFace {
			v = 10
		}
		next.osum += v
		if next.osum > maxOsum {
			next.osum = maxOsum
		}
	}

	switch before {
	case 0:
		next.fst = card
	case 1:
		next.snd = card
	}
	next.cards = h.cards + 1
	if next.CardsDealt() >= 3 {
		next.fst, next.snd = noCard, noCard
	}
	return next
}

const (
	tenFace = 0
	aceFace = 1
)

// Value returns the hand's best total: the ace counted as 11 unless that
// would bust, in which case it counts as 1.
func (h Hand) Value() int {
	if !h.ace {
		return h.osum
	}
	if h.osum <= 10 {
		return h.osum + 11
	}
	return h.osum + 1
}

// IsBust reports whether the hand's total exceeds 21.
func (h Hand) IsBust() bool {
	if h.ace {
		return h.osum >= 21
	}
	return h.osum >= 22
}

// IsNat reports whether this is a natural Blackjack: an ace and a ten-value
// card as the only two cards dealt.
func (h Hand) IsNat() bool {
	return h.ace && h.osum == 10 && h.cards == 2
}

// IsA17 reports whether the hand is a soft 17 (ace plus 6): the value the
// H17/S17 house policies differ on.
func (h Hand) IsA17() bool {
	return h.ace && h.osum == 6
}

// Is22 reports whether the hand totals exactly 22, the push-not-bust total
// used by Blackjack Switch's house-bust-pushes-non-natural-hands rule.
func (h Hand) Is22() bool {
	return h.Value() == 22
}

// CanHit reports whether it is legal to draw another card: the hand must
// be neither a finished natural nor already bust.
func (h Hand) CanHit() bool {
	return !h.IsNat() && !h.IsBust()
}

// CardsDealt returns the number of cards dealt, saturating at 3 (nothing
// downstream distinguishes a 3-card hand from a 7-card hand).
func (h Hand) CardsDealt() int {
	if h.cards > 3 {
		return 3
	}
	return h.cards
}

// FirstTwo returns the first two cards dealt and whether both are still
// known (false once a third card has arrived, or fewer than two cards have
// been dealt).
func (h Hand) FirstTwo() (int, int, bool) {
	if h.fst == noCard || h.snd == noCard {
		return 0, 0, false
	}
	return h.fst, h.snd, true
}

// Key canonicalizes the hand for distribution merging: it collapses any
// state that's strategically indistinguishable (every bust, regardless of
// margin, collapses into one osum value).
func (h Hand) Key() string {
	return fmt.Sprintf("%t|%d|%d|%d|%d", h.ace, h.osum, h.CardsDealt(), h.fst, h.snd)
}

func (h Hand) String() string {
	return fmt.Sprintf("Hand(ace=%t osum=%d cards=%d value=%d)", h.ace, h.osum, h.cards, h.Value())
}
