package cards

import (
	"fmt"

	"blackjackodds/internal/domain/probdist"
)

// PartialAJHL tracks only four buckets — tens, aces, low (2-5), high (6-9)
// — rather than thirteen individual ranks. This is the counting model
// behind hi-lo-style systems: Draw assumes, within the low and high
// buckets, that each of the four member faces is equally likely, so a
// player who only tracks "how many low cards are left" can still price a
// deal.
type PartialAJHL[T probdist.Numeric[T]] struct {
	Decks                                 int
	TensDrawn, AcesDrawn, LowDrawn, HighDrawn int
}

// NewPartialAJHL builds a fresh bucketed count over the given number of
// decks.
func NewPartialAJHL[T probdist.Numeric[T]](decks int) PartialAJHL[T] {
	return PartialAJHL[T]{Decks: decks}
}

func (p PartialAJHL[T]) bucketTotal(b int) int {
	switch b {
	case bucketTens:
		return 16 * p.Decks
	case bucketAces:
		return 4 * p.Decks
	case bucketLow, bucketHigh:
		return 16 * p.Decks
	default:
		return 0
	}
}

func (p PartialAJHL[T]) bucketDrawn(b int) int {
	switch b {
	case bucketTens:
		return p.TensDrawn
	case bucketAces:
		return p.AcesDrawn
	case bucketLow:
		return p.LowDrawn
	case bucketHigh:
		return p.HighDrawn
	default:
		return 0
	}
}

func (p PartialAJHL[T]) bucketRemaining(b int) int {
	return p.bucketTotal(b) - p.bucketDrawn(b)
}

func (p PartialAJHL[T]) incremented(b int) PartialAJHL[T] {
	next := p
	switch b {
	case bucketTens:
		next.TensDrawn++
	case bucketAces:
		next.AcesDrawn++
	case bucketLow:
		next.LowDrawn++
	case bucketHigh:
		next.HighDrawn++
	}
	return next
}

var bucketMembers = map[int][]int{
	bucketTens: {Ten},
	bucketAces: {Ace},
	bucketLow:  {2, 3, 4, 5},
	bucketHigh: {6, 7, 8, 9},
}

func (p PartialAJHL[T]) Draw(sp probdist.Space[T]) (probdist.Dist[T, Draw[T]], error) {
	total := 0
	for b := bucketTens; b <= bucketHigh; b++ {
		total += p.bucketRemaining(b)
	}
	var zero T
	var entries []probdist.Entry[T, Draw[T]]
	for b := bucketTens; b <= bucketHigh; b++ {
		rem := p.bucketRemaining(b)
		if rem <= 0 {
			continue
		}
		members := bucketMembers[b]
		next := p.incremented(b)
		for _, face := range members {
			entries = append(entries, probdist.Entry[T, Draw[T]]{
				Item: Draw[T]{Card: face, Next: next},
				Prob: zero.FromRatio(int64(rem), int64(total)*int64(len(members))),
			})
		}
	}
	return probdist.New(sp, entries...)
}

func (p PartialAJHL[T]) DrawCard(sp probdist.Space[T], v int) (probdist.Dist[T, Draw[T]], error) {
	if v < 0 || v >= NumFaces {
		return probdist.Dist[T, Draw[T]]{}, fmt.Errorf("cards: face %d out of range", v)
	}
	b := bucketOf(v)
	if p.bucketRemaining(b) <= 0 {
		return probdist.Dist[T, Draw[T]]{}, fmt.Errorf("%w: face %d (bucket %d)", ErrExhaustedFace, v, b)
	}
	next := p.incremented(b)
	var zero T
	return probdist.New(sp, probdist.Entry[T, Draw[T]]{Item: Draw[T]{Card: v, Next: next}, Prob: zero.One()})
}

func (p PartialAJHL[T]) Key() string {
	return fmt.Sprintf("P%d:%d:%d:%d:%d", p.Decks, p.TensDrawn, p.AcesDrawn, p.LowDrawn, p.HighDrawn)
}
