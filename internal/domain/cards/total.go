package cards

import (
	"fmt"

	"blackjackodds/internal/domain/probdist"
)

// Total tracks the exact remaining count of every individual face across a
// shoe of Decks 52-card decks. This is the highest-fidelity counting model:
// Draw's weights are exact remaining-card frequencies, and a face that has
// run out is genuinely exhausted.
type Total[T probdist.Numeric[T]] struct {
	Decks int
	Drawn [NumFaces]int
}

// NewTotal builds a fresh, unshuffled-count Total over the given number of
// decks.
func NewTotal[T probdist.Numeric[T]](decks int) Total[T] {
	return Total[T]{Decks: decks}
}

func (t Total[T]) faceTotal(face int) int {
	if face == Ten {
		return 16 * t.Decks
	}
	return 4 * t.Decks
}

func (t Total[T]) remaining(face int) int {
	return t.faceTotal(face) - t.Drawn[face]
}

func (t Total[T]) totalRemaining() int {
	sum := 0
	for face := 0; face < NumFaces; face++ {
		sum += t.remaining(face)
	}
	return sum
}

func (t Total[T]) Draw(sp probdist.Space[T]) (probdist.Dist[T, Draw[T]], error) {
	rem := t.totalRemaining()
	var zero T
	var entries []probdist.Entry[T, Draw[T]]
	for face := 0; face < NumFaces; face++ {
		r := t.remaining(face)
		if r <= 0 {
			continue
		}
		next := t
		next.Drawn[face]++
		entries = append(entries, probdist.Entry[T, Draw[T]]{
			Item: Draw[T]{Card: face, Next: next},
			Prob: zero.FromRatio(int64(r), int64(rem)),
		})
	}
	return probdist.New(sp, entries...)
}

func (t Total[T]) DrawCard(sp probdist.Space[T], v int) (probdist.Dist[T, Draw[T]], error) {
	if v < 0 || v >= NumFaces {
		return probdist.Dist[T, Draw[T]]{}, fmt.Errorf("cards: face %d out of range", v)
	}
	if t.remaining(v) <= 0 {
		return probdist.Dist[T, Draw[T]]{}, fmt.Errorf("%w: face %d", ErrExhaustedFace, v)
	}
	next := t
	next.Drawn[v]++
	var zero T
	return probdist.New(sp, probdist.Entry[T, Draw[T]]{Item: Draw[T]{Card: v, Next: next}, Prob: zero.One()})
}

func (t Total[T]) Key() string {
	return fmt.Sprintf("T%d:%v", t.Decks, t.Drawn)
}
