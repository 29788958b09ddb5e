package rules

import (
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/table"
)

// H17 is the house policy that hits a soft 17: the house draws on any
// total of 16 or below, and also on a soft 17, standing only on a hard 17
// or better.
func H17[T probdist.Numeric[T]](sp probdist.Space[T], g table.GameState[T]) (probdist.Dist[T, table.GameState[T]], error) {
	if g.Done {
		return probdist.Inject[T, table.GameState[T]](g), nil
	}
	h := g.CurrentHand()
	if h.Value() <= 16 || h.IsA17() {
		return table.Hit(sp, g, nil)
	}
	return probdist.Inject[T, table.GameState[T]](table.TurnDone(g)), nil
}

// S17 is the house policy that stands on any 17, soft or hard.
func S17[T probdist.Numeric[T]](sp probdist.Space[T], g table.GameState[T]) (probdist.Dist[T, table.GameState[T]], error) {
	if g.Done {
		return probdist.Inject[T, table.GameState[T]](g), nil
	}
	h := g.CurrentHand()
	if h.Value() <= 16 {
		return table.Hit(sp, g, nil)
	}
	return probdist.Inject[T, table.GameState[T]](table.TurnDone(g)), nil
}
