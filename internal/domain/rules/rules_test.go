package rules

import (
	"testing"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/hand"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/table"
)

func TestPayStandardNaturalBonus(t *testing.T) {
	house := hand.Empty().Add(9).Add(9)
	player := hand.Empty().Add(aceFace()).Add(tenFace())
	got := PayStandard[probdist.Rational](house, player)
	if got.Cmp(probdist.NewRational(3, 2)) != 0 {
		t.Fatalf("want 3:2 natural payout, got %v", got)
	}
}

func TestPayStandardNaturalVsNaturalPushes(t *testing.T) {
	house := hand.Empty().Add(aceFace()).Add(tenFace())
	player := hand.Empty().Add(aceFace()).Add(tenFace())
	got := PayStandard[probdist.Rational](house, player)
	if got.Sign() != 0 {
		t.Fatalf("want push, got %v", got)
	}
}

func TestPaySwitchHouse22Pushes(t *testing.T) {
	house := hand.Empty().Add(8).Add(8).Add(6) // 22, bust but push under Switch
	player := hand.Empty().Add(9).Add(9)       // 18, not a natural
	got := PaySwitch[probdist.Rational](house, player)
	if got.Sign() != 0 {
		t.Fatalf("want push on house-22 bust, got %v", got)
	}
}

func TestPayVideoNo22Exception(t *testing.T) {
	house := hand.Empty().Add(8).Add(8).Add(6) // 22
	player := hand.Empty().Add(9).Add(9)
	got := PayVideo[probdist.Rational](house, player)
	if got.Cmp(probdist.NewRational(1, 1)) != 0 {
		t.Fatalf("want plain win on house bust, got %v", got)
	}
}

func TestPlayerBustAlwaysLoses(t *testing.T) {
	house := hand.Empty().Add(8).Add(8).Add(6) // house also busts at 22
	player := hand.Empty().Add(9).Add(9).Add(9)
	got := PayStandard[probdist.Rational](house, player)
	if got.Cmp(probdist.NewRational(-1, 1)) != 0 {
		t.Fatalf("player bust must lose regardless of house outcome, got %v", got)
	}
}

func aceFace() int { return 1 }
func tenFace() int { return 0 }

// softSeventeenTable builds a two-seat GameState with the house (seat 0)
// holding a soft 17 (ace + 6) and it being the house's turn to act — the
// exact situation H17 and S17 disagree on.
func softSeventeenTable() table.GameState[probdist.Rational] {
	house := hand.Empty().Add(aceFace()).Add(6)
	player := hand.Empty().Add(9).Add(9)
	return table.GameState[probdist.Rational]{
		Cards: cards.Null[probdist.Rational]{},
		Hands: []hand.Hand{house, player},
		Turn:  table.HouseSeat,
		Done:  false,
	}
}

func TestBJSUsesH17HousePolicy(t *testing.T) {
	g := softSeventeenTable()
	sp := probdist.NewSpace[probdist.Rational]()

	dist, err := BJS[probdist.Rational]().House(sp, g)
	if err != nil {
		t.Fatalf("House: %v", err)
	}

	// H17 hits a soft 17: the house draws, so every outcome still has the
	// turn open and a different (larger) hand than the one dealt in.
	if dist.Len() <= 1 {
		t.Fatalf("want multiple drawn outcomes from hitting a soft 17, got %d", dist.Len())
	}
	for _, e := range dist.Entries() {
		if e.Item.Done {
			t.Fatalf("want turn still open after a hit, got Done=true for %q", e.Item.Key())
		}
		if e.Item.Hands[table.HouseSeat].Key() == g.Hands[table.HouseSeat].Key() {
			t.Fatalf("want the house hand to have grown, got an unchanged hand %q", e.Item.Key())
		}
	}
}

func TestBJVUsesS17HousePolicy(t *testing.T) {
	g := softSeventeenTable()
	sp := probdist.NewSpace[probdist.Rational]()

	dist, err := BJV[probdist.Rational]().House(sp, g)
	if err != nil {
		t.Fatalf("House: %v", err)
	}

	// S17 stands on any 17, soft or hard: a single certain outcome, turn
	// done, house hand untouched.
	if dist.Len() != 1 {
		t.Fatalf("want exactly one outcome from standing, got %d", dist.Len())
	}
	entry := dist.Entries()[0]
	if !entry.Item.Done {
		t.Fatalf("want the turn marked done after standing")
	}
	if entry.Item.Hands[table.HouseSeat].Key() != g.Hands[table.HouseSeat].Key() {
		t.Fatalf("want the house hand unchanged, got %q", entry.Item.Hands[table.HouseSeat].Key())
	}
}

func TestBJVRestrictsActionsAndDeckCount(t *testing.T) {
	rule := BJV[probdist.Rational]()
	if rule.Actions[ActionDouble] {
		t.Fatalf("BJV must not offer double")
	}
	if rule.Actions[ActionSplit] {
		t.Fatalf("BJV must not offer split")
	}
	if !rule.Actions[ActionHit] || !rule.Actions[ActionStand] {
		t.Fatalf("BJV must offer both hit and stand")
	}
	if rule.DefaultDecks != 2 {
		t.Fatalf("want BJV.DefaultDecks == 2, got %d", rule.DefaultDecks)
	}
}

func TestBJSOffersNoSurrenderOverEightDecks(t *testing.T) {
	rule := BJS[probdist.Rational]()
	if rule.Actions[ActionSurrender] {
		t.Fatalf("BJS must not offer surrender")
	}
	if rule.DefaultDecks != 8 {
		t.Fatalf("want BJS.DefaultDecks == 8, got %d", rule.DefaultDecks)
	}
}
