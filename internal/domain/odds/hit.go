package odds

import (
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/table"
)

// evaluateHit computes the expected value of hitting once. Without approx2h
// the player takes exactly one card and then stands: payout ends the
// player's turn and only drives the house policy to completion, so no
// further player hits are considered. In approx2h mode, depth is bounded to
// a second hit: hands
// that must stop after the first hit (bust or natural-value cutoff) are
// paid directly, and hands that can still continue are priced as the
// better of stopping there (pay_ho) or taking one more card (pay_hoh),
// weighted by how much mass reached each branch.
func (oc *OddsCalculator[T]) evaluateHit(gsd0 probdist.Dist[T, table.GameState[T]], payout func(probdist.Dist[T, table.GameState[T]]) (T, error)) (T, error) {
	var zero T

	hit1, err := probdist.Bind(oc.Space, gsd0, func(g table.GameState[T]) (probdist.Dist[T, table.GameState[T]], error) {
		return table.Hit(oc.Space, g, nil)
	})
	if err != nil {
		return zero, err
	}

	if !oc.Approx2h {
		return payout(hit1)
	}

	canHit := func(g table.GameState[T]) bool { return g.CurrentHand().CanHit() }
	mustStop := func(g table.GameState[T]) bool { return !canHit(g) }

	pStop, stopDist := probdist.Given(hit1, mustStop)
	pCont, contDist := probdist.Given(hit1, canHit)

	var payHN T
	if stopDist != nil {
		v, err := payout(*stopDist)
		if err != nil {
			return zero, err
		}
		payHN = v
	}

	var best T
	if contDist != nil {
		payHO, err := payout(*contDist)
		if err != nil {
			return zero, err
		}
		hit2, err := probdist.Bind(oc.Space, *contDist, func(g table.GameState[T]) (probdist.Dist[T, table.GameState[T]], error) {
			return table.Hit(oc.Space, g, nil)
		})
		if err != nil {
			return zero, err
		}
		payHOH, err := payout(hit2)
		if err != nil {
			return zero, err
		}
		best = payHO
		if payHOH.Cmp(payHO) > 0 {
			best = payHOH
		}
	}

	return payHN.Mul(pStop).Add(best.Mul(pCont)), nil
}
