package table

import (
	"errors"
	"fmt"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/hand"
	"blackjackodds/internal/domain/probdist"
)

// ErrPrecondition is returned by the checked driver variants when a
// caller's state doesn't satisfy the precondition the driver assumes.
// Reaching this in calculateOdds would be a bug in the engine itself, not a
// bad user input; it exists so tests can pin the invariant down rather than
// letting a violation silently produce a nonsensical state.
var ErrPrecondition = errors.New("table: precondition violated")

// Hit deals one card to the current seat's hand. If v is non-nil, the card
// is forced (useful for dealing known cards); otherwise it's drawn per the
// shared card state. A hand that cannot currently hit (already a natural or
// bust) is left untouched and the turn is marked done instead — this makes
// Hit always safe to call via Bind without callers having to check
// canHit() themselves first.
func Hit[T probdist.Numeric[T]](sp probdist.Space[T], g GameState[T], v *int) (probdist.Dist[T, GameState[T]], error) {
	if !g.CurrentHand().CanHit() {
		return probdist.Inject[T, GameState[T]](TurnDone(g)), nil
	}

	var draws probdist.Dist[T, cards.Draw[T]]
	var err error
	if v != nil {
		draws, err = g.Cards.DrawCard(sp, *v)
	} else {
		draws, err = g.Cards.Draw(sp)
	}
	if err != nil {
		return probdist.Dist[T, GameState[T]]{}, err
	}

	return probdist.Map(draws, func(d cards.Draw[T]) GameState[T] {
		next := g
		hands := append([]hand.Hand(nil), g.Hands...)
		hands[g.Turn] = hands[g.Turn].Add(d.Card)
		next.Hands = hands
		next.Cards = d.Next
		next.Done = false
		return next
	}), nil
}

// TurnDone marks the current seat's turn as finished without changing any
// hand.
func TurnDone[T probdist.Numeric[T]](g GameState[T]) GameState[T] {
	next := g
	next.Done = true
	return next
}

// NextTurn advances to the seat before the current one (house is seat 0,
// so seats are played in decreasing index order), or to TerminalTurn once
// the house's turn has finished. The done flag resets: a freshly-advanced
// turn hasn't had any action taken yet.
//
// Precondition: g.Done. NextTurn itself doesn't enforce this (it's called
// from pure Map stages that only ever reach it immediately after
// TurnDone); NextTurnChecked is available where the precondition needs
// enforcing at a boundary.
func NextTurn[T probdist.Numeric[T]](g GameState[T]) GameState[T] {
	next := g
	if g.Turn == HouseSeat {
		next.Turn = TerminalTurn
	} else {
		next.Turn = g.Turn - 1
	}
	next.Done = false
	return next
}

// NextTurnChecked is NextTurn with its precondition enforced.
func NextTurnChecked[T probdist.Numeric[T]](g GameState[T]) (GameState[T], error) {
	if !g.Done {
		return GameState[T]{}, fmt.Errorf("%w: nextTurn requires the current turn to be done", ErrPrecondition)
	}
	return NextTurn(g), nil
}

// NewGame resets every hand to empty, preserving the shared card state.
//
// Precondition: g.Turn is the last seat and !g.Done. See NewGameChecked.
func NewGame[T probdist.Numeric[T]](g GameState[T]) GameState[T] {
	return InitGame[T](len(g.Hands), g.Cards)
}

// NewGameChecked is NewGame with its precondition enforced.
func NewGameChecked[T probdist.Numeric[T]](g GameState[T]) (GameState[T], error) {
	if g.Turn != len(g.Hands)-1 || g.Done {
		return GameState[T]{}, fmt.Errorf("%w: newGame requires turn at the last seat and not done", ErrPrecondition)
	}
	return NewGame(g), nil
}
