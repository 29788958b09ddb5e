// Package odds computes, for a given opening hand, house up-card and rule
// set, the expected value of every legal action — the central deliverable
// of the engine.
package odds

import (
	"sort"

	"github.com/google/uuid"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/hand"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
	"blackjackodds/internal/domain/table"
)

// ActionValue pairs a legal action with its expected value, in descending
// order of value once returned from CalculateOdds.
type ActionValue[T probdist.Numeric[T]] struct {
	Action rules.Action
	Value  T
}

// OddsCalculator evaluates table cells for one rule set, one card-counting
// model, and one numeric backend. Approx2h switches the hit evaluation
// between a single hit followed by standing and the bounded
// two-card-lookahead approximation described in the engine's design notes.
type OddsCalculator[T probdist.Numeric[T]] struct {
	InitCards cards.CardState[T]
	Rule      rules.Rule[T]
	Approx2h  bool
	Space     probdist.Space[T]
	Logger    RunLogger
	RunID     uuid.UUID
}

// New builds an OddsCalculator over the given shoe model and rule set.
func New[T probdist.Numeric[T]](cs cards.CardState[T], rule rules.Rule[T], approx2h bool) *OddsCalculator[T] {
	return &OddsCalculator[T]{
		InitCards: cs,
		Rule:      rule,
		Approx2h:  approx2h,
		Space:     probdist.NewSpace[T](),
		RunID:     uuid.New(),
	}
}

// SetLogger attaches logger to this calculator. When logger additionally
// implements PruneLogger, its LogPrune method is wired into oc.Space so
// every branch probdist.Bind prunes below EventTolerance is reported too;
// otherwise any previously wired prune hook is cleared.
func (oc *OddsCalculator[T]) SetLogger(logger RunLogger) {
	oc.Logger = logger
	if pl, ok := logger.(PruneLogger); ok {
		oc.Space.OnPrune = func(_ string, prob float64) {
			pl.LogPrune(oc.RunID, prob)
		}
		return
	}
	oc.Space.OnPrune = nil
}

// CalculateOdds evaluates every legal action for a player holding pc0 (and,
// when known, pc1) against house up-card hc, returning results sorted from
// best to worst expected value. When pc1 is nil the second card is dealt
// per the shoe rather than forced — the shape CalculateOdds uses
// internally to evaluate a split.
func (oc *OddsCalculator[T]) CalculateOdds(pc0, hc int, pc1 *int) ([]ActionValue[T], error) {
	forced := []int{pc0, hc}
	if pc1 != nil {
		forced = append(forced, *pc1)
	}

	init := table.InitGame[T](2, oc.InitCards)
	gsd0, err := table.DealNewRound(oc.Space, probdist.Inject[T, table.GameState[T]](init), forced)
	if err != nil {
		return nil, err
	}

	payout := func(d probdist.Dist[T, table.GameState[T]]) (T, error) {
		advanced := probdist.Map(d, func(g table.GameState[T]) table.GameState[T] {
			return table.NextTurn(table.TurnDone(g))
		})
		final, err := table.ExecRound(oc.Space, advanced, []table.Step[T]{oc.Rule.House}, 0)
		if err != nil {
			var zero T
			return zero, err
		}
		return probdist.Expect(final, func(g table.GameState[T]) T {
			return oc.Rule.Pay(g.Hands[table.HouseSeat], g.Hands[1])
		}), nil
	}

	var zero T
	var results []ActionValue[T]

	if oc.Rule.Allows(rules.ActionSurrender) {
		results = append(results, ActionValue[T]{rules.ActionSurrender, zero.FromRatio(-1, 2)})
	}

	standVal, err := payout(gsd0)
	if err != nil {
		return nil, err
	}
	if oc.Rule.Allows(rules.ActionStand) {
		results = append(results, ActionValue[T]{rules.ActionStand, standVal})
	}

	hitAdmissible := true
	if pc1 != nil {
		p0 := hand.Empty().Add(pc0).Add(*pc1)
		hitAdmissible = p0.CanHit()
	}

	var hitVal T
	haveHit := false
	if oc.Rule.Allows(rules.ActionHit) && hitAdmissible {
		hitVal, err = oc.evaluateHit(gsd0, payout)
		if err != nil {
			return nil, err
		}
		haveHit = true
		results = append(results, ActionValue[T]{rules.ActionHit, hitVal})
	}

	if oc.Rule.Allows(rules.ActionDouble) && haveHit {
		results = append(results, ActionValue[T]{rules.ActionDouble, hitVal.Add(hitVal)})
	}

	if oc.Rule.Allows(rules.ActionSplit) && pc1 != nil && *pc1 == pc0 {
		sub, err := oc.CalculateOdds(pc0, hc, nil)
		if err != nil {
			return nil, err
		}
		if len(sub) > 0 {
			best := sub[0].Value
			results = append(results, ActionValue[T]{rules.ActionSplit, best.Add(best)})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Value.Cmp(results[j].Value) > 0
	})

	if oc.Logger != nil {
		summaries := make([]ActionValueSummary, len(results))
		for i, r := range results {
			summaries[i] = ActionValueSummary{Action: r.Action, Value: r.Value.Float64()}
		}
		oc.Logger.LogCell(oc.RunID, oc.Rule.Name, pc0, hc, pc1, summaries)
	}

	return results, nil
}
