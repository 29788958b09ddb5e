package table

import (
	"fmt"

	"blackjackodds/internal/domain/probdist"
)

// Step is a turn policy: given the current state, it returns the
// distribution over next states. House policies (h17/s17) and the
// engine's own "deal one more card" probe are both Steps.
type Step[T probdist.Numeric[T]] func(probdist.Space[T], GameState[T]) (probdist.Dist[T, GameState[T]], error)

// PlayUntilDone repeatedly binds step into d until every branch is marked
// done. step is responsible for eventually returning a done state (the
// house policies and table.Hit already do, since Hit no-ops into TurnDone
// once a hand can no longer hit).
func PlayUntilDone[T probdist.Numeric[T]](sp probdist.Space[T], d probdist.Dist[T, GameState[T]], step func(GameState[T]) (probdist.Dist[T, GameState[T]], error)) (probdist.Dist[T, GameState[T]], error) {
	cur := d
	for {
		allDone := true
		for _, e := range cur.Entries() {
			if !e.Item.Done {
				allDone = false
				break
			}
		}
		if allDone {
			return cur, nil
		}
		next, err := probdist.Bind(sp, cur, step)
		if err != nil {
			return probdist.Dist[T, GameState[T]]{}, err
		}
		cur = next
	}
}

// ExecRound plays seats r, r-1, ..., 0 to completion in turn order, each
// seat i driven by steps[i], advancing the turn pointer between seats.
func ExecRound[T probdist.Numeric[T]](sp probdist.Space[T], d probdist.Dist[T, GameState[T]], steps []Step[T], r int) (probdist.Dist[T, GameState[T]], error) {
	cur := d
	for i := r; i >= 0; i-- {
		if i >= len(steps) {
			return probdist.Dist[T, GameState[T]]{}, fmt.Errorf("table: no step configured for seat %d", i)
		}
		step := steps[i]
		next, err := PlayUntilDone(sp, cur, func(g GameState[T]) (probdist.Dist[T, GameState[T]], error) {
			return step(sp, g)
		})
		if err != nil {
			return probdist.Dist[T, GameState[T]]{}, err
		}
		cur = probdist.Map(next, NextTurn[T])
	}
	return cur, nil
}

// DealNewRound resets every hand (via NewGame) and then deals two cards to
// every seat in round-robin order, house last: seat numHands-1, ...,
// seat 0, then the same sequence again. forced supplies cards in that deal
// order; once exhausted, remaining deals are drawn per the shared card
// state. Once dealing finishes, the turn pointer is left at the last seat,
// ready for ExecRound to begin play.
func DealNewRound[T probdist.Numeric[T]](sp probdist.Space[T], d probdist.Dist[T, GameState[T]], forced []int) (probdist.Dist[T, GameState[T]], error) {
	cur := probdist.Map(d, NewGame[T])

	numHands := 0
	if entries := cur.Entries(); len(entries) > 0 {
		numHands = len(entries[0].Item.Hands)
	}

	var order []int
	for round := 0; round < 2; round++ {
		for seat := numHands - 1; seat >= 0; seat-- {
			order = append(order, seat)
		}
	}

	queue := append([]int(nil), forced...)
	for _, seat := range order {
		var v *int
		if len(queue) > 0 {
			vv := queue[0]
			queue = queue[1:]
			v = &vv
		}
		next, err := probdist.Bind(sp, cur, func(g GameState[T]) (probdist.Dist[T, GameState[T]], error) {
			g.Turn = seat
			g.Done = false
			return Hit(sp, g, v)
		})
		if err != nil {
			return probdist.Dist[T, GameState[T]]{}, err
		}
		cur = next
	}

	return probdist.Map(cur, func(g GameState[T]) GameState[T] {
		g.Turn = numHands - 1
		g.Done = false
		return g
	}), nil
}
