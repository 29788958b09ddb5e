package odds

import "blackjackodds/internal/domain/cards"

// OpeningHand names one row of the table-iteration catalog: a player's
// starting two cards.
type OpeningHand struct {
	Label string
	PC0   int
	PC1   int
}

// HouseUpCards lists the column order printTable iterates: 2..9, then
// ten-valued, then ace.
func HouseUpCards() []int {
	return []int{2, 3, 4, 5, 6, 7, 8, 9, cards.Ten, cards.Ace}
}

func faceLabel(face int) string {
	switch face {
	case cards.Ten:
		return "J"
	case cards.Ace:
		return "A"
	default:
		return string(rune('0' + face))
	}
}

// Catalog builds the fixed set of opening hands printTable evaluates: every
// (Ace, x) for x descending from ten-valued through 2, every (ten-valued,
// x) for x from 9 down to 2, every (2, x) for x from 9 down to 3, and every
// pair (x, x) for x in {Ace, ten-valued, 9..2}.
func Catalog() []OpeningHand {
	descendingFromTen := []int{cards.Ten, 9, 8, 7, 6, 5, 4, 3, 2}

	var hands []OpeningHand
	for _, x := range descendingFromTen {
		hands = append(hands, OpeningHand{Label: "A-" + faceLabel(x), PC0: cards.Ace, PC1: x})
	}
	for _, x := range []int{9, 8, 7, 6, 5, 4, 3, 2} {
		hands = append(hands, OpeningHand{Label: "J-" + faceLabel(x), PC0: cards.Ten, PC1: x})
	}
	for _, x := range []int{9, 8, 7, 6, 5, 4, 3} {
		hands = append(hands, OpeningHand{Label: "2-" + faceLabel(x), PC0: 2, PC1: x})
	}
	for _, x := range []int{cards.Ace, cards.Ten, 9, 8, 7, 6, 5, 4, 3, 2} {
		hands = append(hands, OpeningHand{Label: faceLabel(x) + "-" + faceLabel(x), PC0: x, PC1: x})
	}
	return hands
}
