package cards

import "blackjackodds/internal/domain/probdist"

// CardState is the card-counting abstraction consumed by the table driver.
// Implementations are immutable: Draw/DrawCard return the post-draw state as
// part of each outcome rather than mutating the receiver.
type CardState[T probdist.Numeric[T]] interface {
	// Draw returns the distribution over the next card face and the
	// resulting state, weighted by the counting model's belief about what
	// remains in the shoe.
	Draw(sp probdist.Space[T]) (probdist.Dist[T, Draw[T]], error)
	// DrawCard forces the next card to be v, returning the certain
	// (probability-1) distribution over the resulting state, or
	// ErrExhaustedFace if the model believes no such card remains.
	DrawCard(sp probdist.Space[T], v int) (probdist.Dist[T, Draw[T]], error)
	// Key canonicalizes the state for distribution merging.
	Key() string
}

// Draw is the outcome of a single card draw: the face that came up and the
// card state afterward.
type Draw[T probdist.Numeric[T]] struct {
	Card int
	Next CardState[T]
}

// Key canonicalizes a Draw outcome for Dist merging.
func (d Draw[T]) Key() string {
	return string(rune('0'+d.Card)) + "@" + d.Next.Key()
}
