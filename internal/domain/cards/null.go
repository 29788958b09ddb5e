package cards

import (
	"fmt"

	"blackjackodds/internal/domain/probdist"
)

// Null is the no-counting model: every draw sees the full infinite-shoe
// per-face frequency (4/13 for a ten-valued card, 1/13 for every other
// face), regardless of history. It never tracks what has been dealt, so
// Draw always returns the same ten outcomes (one per face) and DrawCard never
// exhausts a face.
type Null[T probdist.Numeric[T]] struct{}

func (n Null[T]) Draw(sp probdist.Space[T]) (probdist.Dist[T, Draw[T]], error) {
	var zero T
	entries := make([]probdist.Entry[T, Draw[T]], 0, NumFaces)
	for face := 0; face < NumFaces; face++ {
		num := int64(1)
		if face == Ten {
			num = 4
		}
		entries = append(entries, probdist.Entry[T, Draw[T]]{
			Item: Draw[T]{Card: face, Next: n},
			Prob: zero.FromRatio(num, 13),
		})
	}
	return probdist.New(sp, entries...)
}

func (n Null[T]) DrawCard(sp probdist.Space[T], v int) (probdist.Dist[T, Draw[T]], error) {
	if v < 0 || v >= NumFaces {
		return probdist.Dist[T, Draw[T]]{}, fmt.Errorf("cards: face %d out of range", v)
	}
	var zero T
	return probdist.New(sp, probdist.Entry[T, Draw[T]]{Item: Draw[T]{Card: v, Next: n}, Prob: zero.One()})
}

func (n Null[T]) Key() string { return "N" }
