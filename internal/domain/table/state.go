// Package table models the turn-based game state a round of Blackjack
// passes through: a shared card state plus one hand per seat at the table
// (seat 0 is always the house), a current turn index, and whether that
// turn is finished.
package table

import (
	"fmt"
	"strings"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/hand"
	"blackjackodds/internal/domain/probdist"
)

// TerminalTurn marks a round that has finished every seat's turn.
const TerminalTurn = -1

// HouseSeat is always seat 0.
const HouseSeat = 0

// GameState is one point in a round: the shared shoe, every seat's hand,
// whose turn it is, and whether that turn is done. It is immutable; every
// driver in this package returns a new value (or a distribution of new
// values) rather than mutating its receiver.
type GameState[T probdist.Numeric[T]] struct {
	Cards cards.CardState[T]
	Hands []hand.Hand
	Turn  int
	Done  bool
}

// CurrentHand returns the hand belonging to the seat whose turn it is.
func (g GameState[T]) CurrentHand() hand.Hand {
	return g.Hands[g.Turn]
}

// Terminal reports whether every seat has finished its turn.
func (g GameState[T]) Terminal() bool {
	return g.Turn == TerminalTurn
}

// Key canonicalizes the state for distribution merging: two states are the
// same outcome only if the shoe, every hand, the turn pointer and the done
// flag all agree.
func (g GameState[T]) Key() string {
	var sb strings.Builder
	sb.WriteString(g.Cards.Key())
	for _, h := range g.Hands {
		sb.WriteByte('/')
		sb.WriteString(h.Key())
	}
	fmt.Fprintf(&sb, "|%d|%t", g.Turn, g.Done)
	return sb.String()
}

// InitGame builds a fresh state with totalHands empty hands (seat 0 is the
// house), turn pointed at the last seat, and not done — the starting point
// dealNewRound expects.
func InitGame[T probdist.Numeric[T]](totalHands int, cs cards.CardState[T]) GameState[T] {
	hands := make([]hand.Hand, totalHands)
	for i := range hands {
		hands[i] = hand.Empty()
	}
	return GameState[T]{Cards: cs, Hands: hands, Turn: len(hands) - 1, Done: false}
}
