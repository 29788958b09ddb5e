package application

import (
	"fmt"
	"math"

	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
	"blackjackodds/internal/domain/table"
)

// CrossCheckResult reports a Monte Carlo cross-check of one action's
// expected value against the exact engine's own calculation.
type CrossCheckResult struct {
	Action      rules.Action
	ExactValue  float64
	SampledMean float64
	StdError    float64
	CIHalfWidth float64 // 95% confidence half-width
	Trials      int
	Pass        bool
}

// MonteCarloCrossCheck independently estimates action's expected value for
// the cell (pc0, hc, pc1) by repeated random simulation, and compares it
// against calculateOdds's exact value within epsilon (widened by the
// sampling confidence interval). This never replaces the exact
// calculation — it exists only to catch an engine regression that an exact
// calculation, run against itself, could never reveal.
func MonteCarloCrossCheck(cfg Config, pc0, hc int, pc1 *int, action rules.Action, trials int, epsilon float64) (CrossCheckResult, error) {
	oc, err := BuildFloat64(cfg)
	if err != nil {
		return CrossCheckResult{}, err
	}

	results, err := oc.CalculateOdds(pc0, hc, pc1)
	if err != nil {
		return CrossCheckResult{}, err
	}
	var exact float64
	found := false
	for _, r := range results {
		if r.Action == action {
			exact = r.Value.Float64()
			found = true
		}
	}
	if !found {
		return CrossCheckResult{}, fmt.Errorf("application: action %q is not legal for this cell", action)
	}

	if action == rules.ActionSurrender {
		// Surrender's value is a rule constant, not shoe-dependent; there
		// is nothing to sample.
		return CrossCheckResult{Action: action, ExactValue: exact, SampledMean: exact, Trials: 0, Pass: true}, nil
	}

	extraHits := 0
	switch action {
	case rules.ActionStand:
		extraHits = 0
	case rules.ActionHit, rules.ActionDouble:
		extraHits = 1
	default:
		return CrossCheckResult{}, fmt.Errorf("application: cross-check does not simulate action %q directly (split recurses; cross-check its sub-cell instead)", action)
	}

	forced := []int{pc0, hc}
	if pc1 != nil {
		forced = append(forced, *pc1)
	}
	init := table.InitGame[probdist.Float64Prob](2, oc.InitCards)
	gsd0, err := table.DealNewRound(oc.Space, probdist.Inject[probdist.Float64Prob, table.GameState[probdist.Float64Prob]](init), forced)
	if err != nil {
		return CrossCheckResult{}, err
	}

	sum, sumSq := 0.0, 0.0
	for i := 0; i < trials; i++ {
		v, err := simulateOnePath(oc.Space, gsd0, oc.Rule, extraHits)
		if err != nil {
			return CrossCheckResult{}, err
		}
		f := v.Float64()
		if action == rules.ActionDouble {
			f *= 2
		}
		sum += f
		sumSq += f * f
	}
	mean := sum / float64(trials)
	variance := sumSq/float64(trials) - mean*mean
	if variance < 0 {
		variance = 0
	}
	stderr := math.Sqrt(variance / float64(trials))
	ci := 1.96 * stderr

	return CrossCheckResult{
		Action:      action,
		ExactValue:  exact,
		SampledMean: mean,
		StdError:    stderr,
		CIHalfWidth: ci,
		Trials:      trials,
		Pass:        math.Abs(mean-exact) <= epsilon+ci,
	}, nil
}

// simulateOnePath samples a single playthrough from gsd0: extraHits more
// hits (each sampled, not enumerated), the player standing, then the house
// playing to completion under rule's house policy, returning the sampled
// payoff.
func simulateOnePath[T probdist.Numeric[T]](sp probdist.Space[T], gsd0 probdist.Dist[T, table.GameState[T]], rule rules.Rule[T], extraHits int) (T, error) {
	g := sampleOutcome(gsd0)
	for i := 0; i < extraHits; i++ {
		d, err := table.Hit(sp, g, nil)
		if err != nil {
			var zero T
			return zero, err
		}
		g = sampleOutcome(d)
	}

	g = table.NextTurn(table.TurnDone(g))
	for !g.Done {
		d, err := rule.House(sp, g)
		if err != nil {
			var zero T
			return zero, err
		}
		g = sampleOutcome(d)
	}
	return rule.Pay(g.Hands[table.HouseSeat], g.Hands[1]), nil
}
