package rules

import (
	"blackjackodds/internal/domain/hand"
	"blackjackodds/internal/domain/probdist"
)

// payoffCascade evaluates the standard Blackjack resolution order: player
// bust loses outright; player natural beats anything but a push against a
// house natural; a house bust pays out (unless housePush flags the
// house hand as a push rather than a loss, Blackjack Switch's push-on-22
// rule); a house natural beats anything but another natural; otherwise the
// higher hand value wins and equal values push.
//
// naturalPayNum/naturalPayDen is the bonus paid on an uncontested natural
// (3:2 in standard Blackjack, 1:1 in Switch and the video variant).
func payoffCascade[T probdist.Numeric[T]](house, player hand.Hand, naturalPayNum, naturalPayDen int64, housePush func(hand.Hand) bool) T {
	var zero T
	switch {
	case player.IsBust():
		return zero.FromRatio(-1, 1)
	case player.IsNat():
		if house.IsNat() {
			return zero.FromRatio(0, 1)
		}
		return zero.FromRatio(naturalPayNum, naturalPayDen)
	case house.IsBust():
		if housePush != nil && housePush(house) {
			return zero.FromRatio(0, 1)
		}
		return zero.FromRatio(1, 1)
	case house.IsNat():
		return zero.FromRatio(-1, 1)
	default:
		pv, hv := player.Value(), house.Value()
		switch {
		case pv == hv:
			return zero.FromRatio(0, 1)
		case pv > hv:
			return zero.FromRatio(1, 1)
		default:
			return zero.FromRatio(-1, 1)
		}
	}
}

// PayStandard is the payoff cascade for standard Blackjack (BJ): 3:2 on an
// uncontested natural, plain win/lose/push otherwise.
func PayStandard[T probdist.Numeric[T]](house, player hand.Hand) T {
	return payoffCascade[T](house, player, 3, 2, nil)
}

// PaySwitch is the payoff cascade for Blackjack Switch (BJS): naturals pay
// even money, and a house hand that busts at exactly 22 pushes against
// every non-natural, non-bust player hand instead of losing.
func PaySwitch[T probdist.Numeric[T]](house, player hand.Hand) T {
	return payoffCascade[T](house, player, 1, 1, func(h hand.Hand) bool { return h.Is22() })
}

// PayVideo is the payoff cascade for the video variant (BJV): even-money
// naturals, no 22-push exception.
func PayVideo[T probdist.Numeric[T]](house, player hand.Hand) T {
	return payoffCascade[T](house, player, 1, 1, nil)
}
