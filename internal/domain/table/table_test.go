package table

import (
	"testing"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/probdist"
)

func TestDealNewRoundDealsTwoCardsPerSeat(t *testing.T) {
	sp := probdist.NewSpace[probdist.Rational]()
	cs := cards.NewTotal[probdist.Rational](6)
	init := InitGame[probdist.Rational](2, cs)
	d, err := DealNewRound(sp, probdist.Inject[probdist.Rational, GameState[probdist.Rational]](init), []int{1, 0, 9})
	if err != nil {
		t.Fatalf("dealNewRound: %v", err)
	}
	for _, e := range d.Entries() {
		g := e.Item
		if g.Hands[HouseSeat].CardsDealt() != 2 {
			t.Fatalf("want house dealt 2 cards, got %d", g.Hands[HouseSeat].CardsDealt())
		}
		if g.Hands[1].CardsDealt() != 2 {
			t.Fatalf("want player dealt 2 cards, got %d", g.Hands[1].CardsDealt())
		}
		if g.Turn != 1 {
			t.Fatalf("want turn left at last seat (1), got %d", g.Turn)
		}
	}
}

func TestDealNewRoundForcedCardsMaterializeNatural(t *testing.T) {
	sp := probdist.NewSpace[probdist.Rational]()
	cs := cards.NewTotal[probdist.Rational](6)
	init := InitGame[probdist.Rational](2, cs)
	// deal order starts at the last seat (the player) and descends to the
	// house, twice: player, house, player, house. forced = [ace, houseUp,
	// ten, houseHole] makes the player's two cards an ace and a ten.
	d, err := DealNewRound(sp, probdist.Inject[probdist.Rational, GameState[probdist.Rational]](init), []int{1, 9, 0, 9})
	if err != nil {
		t.Fatalf("dealNewRound: %v", err)
	}
	entries := d.Entries()
	if len(entries) != 1 {
		t.Fatalf("want single deterministic branch with all four cards forced, got %d", len(entries))
	}
	if !entries[0].Item.Hands[1].IsNat() {
		t.Fatal("want player hand to be a natural (ace, ten)")
	}
}

func TestExecRoundResolvesHouseToCompletion(t *testing.T) {
	sp := probdist.NewSpace[probdist.Rational]()
	cs := cards.NewTotal[probdist.Rational](6)
	init := InitGame[probdist.Rational](2, cs)
	d, err := DealNewRound(sp, probdist.Inject[probdist.Rational, GameState[probdist.Rational]](init), []int{9, 2, 6, 9})
	if err != nil {
		t.Fatalf("dealNewRound: %v", err)
	}
	// advance past the player's turn without acting (stand), then let the
	// house play to completion via a simple s17 policy.
	d = probdist.Map(d, func(g GameState[probdist.Rational]) GameState[probdist.Rational] {
		return NextTurn(TurnDone(g))
	})
	s17 := Step[probdist.Rational](func(sp probdist.Space[probdist.Rational], g GameState[probdist.Rational]) (probdist.Dist[probdist.Rational, GameState[probdist.Rational]], error) {
		if g.Done {
			return probdist.Inject[probdist.Rational, GameState[probdist.Rational]](g), nil
		}
		if g.CurrentHand().Value() < 17 {
			return Hit(sp, g, nil)
		}
		return probdist.Inject[probdist.Rational, GameState[probdist.Rational]](TurnDone(g)), nil
	})
	final, err := ExecRound(sp, d, []Step[probdist.Rational]{s17}, 0)
	if err != nil {
		t.Fatalf("execRound: %v", err)
	}
	for _, e := range final.Entries() {
		if !e.Item.Terminal() {
			t.Fatalf("want terminal turn after execRound, got turn=%d", e.Item.Turn)
		}
		if e.Item.Hands[HouseSeat].Value() < 17 && !e.Item.Hands[HouseSeat].IsBust() {
			t.Fatalf("want house to stop at 17+ or bust, got %v", e.Item.Hands[HouseSeat])
		}
	}
}

func TestNextTurnCheckedEnforcesPrecondition(t *testing.T) {
	sp := probdist.NewSpace[probdist.Rational]()
	cs := cards.NewTotal[probdist.Rational](6)
	g := InitGame[probdist.Rational](2, cs)
	_ = sp
	if _, err := NextTurnChecked(g); err == nil {
		t.Fatal("want precondition error for nextTurn on a not-done state")
	}
}

func TestNewGameCheckedEnforcesPrecondition(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	g := InitGame[probdist.Rational](2, cs)
	g.Turn = 0
	if _, err := NewGameChecked(g); err == nil {
		t.Fatal("want precondition error for newGame when turn isn't the last seat")
	}
}
