package rules

import "blackjackodds/internal/domain/probdist"

// BJ builds the standard Blackjack rule set: H17, 8-deck shoe, every
// action legal.
func BJ[T probdist.Numeric[T]]() Rule[T] {
	return Rule[T]{
		Name:  "BJ",
		Pay:   PayStandard[T],
		House: H17[T],
		Actions: map[Action]bool{
			ActionStand: true, ActionHit: true, ActionDouble: true,
			ActionSplit: true, ActionSurrender: true,
		},
		DefaultDecks: 8,
	}
}

// BJS builds the Blackjack Switch rule set: H17, 8-deck shoe, even-money
// naturals, push-on-house-22. Surrender is not offered.
func BJS[T probdist.Numeric[T]]() Rule[T] {
	return Rule[T]{
		Name:  "BJS",
		Pay:   PaySwitch[T],
		House: H17[T],
		Actions: map[Action]bool{
			ActionStand: true, ActionHit: true, ActionDouble: true,
			ActionSplit: true, ActionSurrender: false,
		},
		DefaultDecks: 8,
	}
}

// BJV builds the video-machine variant: S17, two-deck shoe, no surrender,
// no double, no split — the cabinet only ever offers hit or stand.
func BJV[T probdist.Numeric[T]]() Rule[T] {
	return Rule[T]{
		Name:  "BJV",
		Pay:   PayVideo[T],
		House: S17[T],
		Actions: map[Action]bool{
			ActionStand: true, ActionHit: true, ActionDouble: false,
			ActionSplit: false, ActionSurrender: false,
		},
		DefaultDecks: 2,
	}
}
