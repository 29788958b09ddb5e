package odds

import (
	"testing"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
)

func intPtr(v int) *int { return &v }

func TestStandingOnPlayerNaturalIsBest(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	rule := rules.BJ[probdist.Rational]()
	oc := New[probdist.Rational](cs, rule, false)
	results, err := oc.CalculateOdds(cards.Ace, 9, intPtr(cards.Ten))
	if err != nil {
		t.Fatalf("calculateOdds: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("want at least one result")
	}
	best := results[0]
	if best.Action != rules.ActionStand {
		t.Fatalf("want stand best on a natural, got %s", best.Action)
	}
	if best.Value.Cmp(probdist.NewRational(3, 2)) != 0 {
		t.Fatalf("want natural EV 3/2, got %v", best.Value)
	}
}

func TestHardEighteenHitIsNeverBest(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	rule := rules.BJ[probdist.Rational]()
	oc := New[probdist.Rational](cs, rule, false)
	results, err := oc.CalculateOdds(9, 6, intPtr(9))
	if err != nil {
		t.Fatalf("calculateOdds: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("want results")
	}
	if results[0].Action == rules.ActionHit {
		t.Fatalf("want hard 18 against a weak house card to never prefer hit, got best=%s", results[0].Action)
	}
}

func TestSplitEqualsTwiceBestSubAction(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	rule := rules.BJ[probdist.Rational]()
	oc := New[probdist.Rational](cs, rule, false)
	results, err := oc.CalculateOdds(8, 6, intPtr(8))
	if err != nil {
		t.Fatalf("calculateOdds: %v", err)
	}
	var splitVal *probdist.Rational
	for _, r := range results {
		if r.Action == rules.ActionSplit {
			v := r.Value
			splitVal = &v
		}
	}
	if splitVal == nil {
		t.Fatal("want a split action for a pair of 8s")
	}
	sub, err := oc.CalculateOdds(8, 6, nil)
	if err != nil {
		t.Fatalf("sub calculateOdds: %v", err)
	}
	if len(sub) == 0 {
		t.Fatal("want sub-results")
	}
	want := sub[0].Value.Add(sub[0].Value)
	if splitVal.Cmp(want) != 0 {
		t.Fatalf("want split EV == twice the best sub-action EV (%v), got %v", want, *splitVal)
	}
}

func TestDoubleEqualsTwiceHit(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	rule := rules.BJ[probdist.Rational]()
	oc := New[probdist.Rational](cs, rule, false)
	results, err := oc.CalculateOdds(5, 6, intPtr(6))
	if err != nil {
		t.Fatalf("calculateOdds: %v", err)
	}
	var hitVal, doubleVal *probdist.Rational
	for _, r := range results {
		switch r.Action {
		case rules.ActionHit:
			v := r.Value
			hitVal = &v
		case rules.ActionDouble:
			v := r.Value
			doubleVal = &v
		}
	}
	if hitVal == nil || doubleVal == nil {
		t.Fatal("want both hit and double results")
	}
	if doubleVal.Cmp(hitVal.Add(*hitVal)) != 0 {
		t.Fatalf("want double == 2x hit, got double=%v hit=%v", *doubleVal, *hitVal)
	}
}

func TestApprox2hStaysWithinExactSignConsensus(t *testing.T) {
	cs := cards.NewTotal[probdist.Rational](6)
	rule := rules.BJ[probdist.Rational]()
	exact := New[probdist.Rational](cs, rule, false)
	approx := New[probdist.Rational](cs, rule, true)

	exactResults, err := exact.CalculateOdds(6, cards.Ten, intPtr(5))
	if err != nil {
		t.Fatalf("exact calculateOdds: %v", err)
	}
	approxResults, err := approx.CalculateOdds(6, cards.Ten, intPtr(5))
	if err != nil {
		t.Fatalf("approx calculateOdds: %v", err)
	}
	if len(exactResults) == 0 || len(approxResults) == 0 {
		t.Fatal("want results from both calculators")
	}
	if exactResults[0].Value.Sign() != approxResults[0].Value.Sign() {
		t.Fatalf("want best-action EVs to agree in sign, got exact=%v approx=%v", exactResults[0].Value, approxResults[0].Value)
	}
}

func TestCatalogAndHouseUpCardsCounts(t *testing.T) {
	if got := len(HouseUpCards()); got != 10 {
		t.Fatalf("want 10 house up-cards, got %d", got)
	}
	catalog := Catalog()
	if len(catalog) == 0 {
		t.Fatal("want a non-empty catalog")
	}
}
