// Package application wires the domain engine to the outside world:
// building a run from configuration, cross-checking its results by
// simulation, and sweeping the full table catalog with a worker pool.
package application

import (
	"fmt"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/odds"
	"blackjackodds/internal/domain/probdist"
	"blackjackodds/internal/domain/rules"
)

// CountingModel names the shoe abstraction to use.
type CountingModel string

const (
	CountingNull        CountingModel = "null"
	CountingTotal       CountingModel = "total"
	CountingPartialAJHL CountingModel = "partial-ajhl"
)

// RuleName names one of the three built-in Blackjack variants.
type RuleName string

const (
	RuleBJ  RuleName = "BJ"
	RuleBJS RuleName = "BJS"
	RuleBJV RuleName = "BJV"
)

// Config collects everything needed to build an OddsCalculator[T]: which
// rule, which counting model, how many decks, whether to use the bounded
// two-hit approximation, and the two tolerance knobs the probability
// engine is configured with. It's a plain constructor-built value, not a
// config-file-driven framework — the teacher never reaches for
// spf13/viper, and a single offline calculation has nothing to persist.
//
// SpaceTolerance/EventTolerance left at 0 mean "use the backend's own
// default": exact (0) for BuildRational, and a small non-zero float
// default for BuildFloat64, since floating-point probabilities can never
// satisfy a zero space tolerance (spec.md's rationals-vs-doubles
// invariant) — only an explicit positive value overrides that default.
type Config struct {
	Rule     RuleName
	Counting CountingModel
	Decks    int
	Approx2h bool

	SpaceTolerance float64
	EventTolerance float64
}

// Sane non-zero defaults for the float64 backend: small enough that a
// legitimately unlikely branch (the rarest single-card draw is roughly
// 1/312 for a deep multi-deck shoe) is never mistaken for floating-point
// noise, large enough to absorb the roughly 1e-13-1e-16-scale drift a
// chain of double-precision binds accumulates over a full hand.
const (
	defaultFloat64SpaceTolerance = 1e-6
	defaultFloat64EventTolerance = 1e-12
)

// DefaultConfig returns a Config with the space/event tolerances at their
// spec defaults (0, meaning exact for the rational backend, or
// BuildFloat64's sane non-zero default for the float64 backend) and no
// deck count override (0 means "use the rule's default deck count").
func DefaultConfig(rule RuleName, counting CountingModel) Config {
	return Config{Rule: rule, Counting: counting}
}

// BuildRational constructs the exact-rational OddsCalculator this Config
// describes.
func BuildRational(cfg Config) (*odds.OddsCalculator[probdist.Rational], error) {
	rule, decks, err := resolveRule[probdist.Rational](cfg)
	if err != nil {
		return nil, err
	}
	cs, err := resolveCardState[probdist.Rational](cfg.Counting, decks)
	if err != nil {
		return nil, err
	}
	oc := odds.New[probdist.Rational](cs, rule, cfg.Approx2h)
	oc.Space = probdist.Space[probdist.Rational]{
		SpaceTolerance: probdist.NewRational(int64(cfg.SpaceTolerance*1e9), int64(1e9)),
		EventTolerance: probdist.NewRational(int64(cfg.EventTolerance*1e9), int64(1e9)),
	}
	return oc, nil
}

// BuildFloat64 constructs the fast, approximate-backend OddsCalculator
// this Config describes — the backend the Monte Carlo cross-check and
// table sweeps default to for speed. A zero SpaceTolerance/EventTolerance
// is never passed through to the float64 backend as-is: IEEE-754 draws
// already drift past an exact zero tolerance within a couple of binds, so
// a non-positive value here falls back to a small sane default instead of
// silently shipping a backend that fails its own mass-closure check.
func BuildFloat64(cfg Config) (*odds.OddsCalculator[probdist.Float64Prob], error) {
	rule, decks, err := resolveRule[probdist.Float64Prob](cfg)
	if err != nil {
		return nil, err
	}
	cs, err := resolveCardState[probdist.Float64Prob](cfg.Counting, decks)
	if err != nil {
		return nil, err
	}
	spaceTolerance := cfg.SpaceTolerance
	if spaceTolerance <= 0 {
		spaceTolerance = defaultFloat64SpaceTolerance
	}
	eventTolerance := cfg.EventTolerance
	if eventTolerance <= 0 {
		eventTolerance = defaultFloat64EventTolerance
	}
	oc := odds.New[probdist.Float64Prob](cs, rule, cfg.Approx2h)
	oc.Space = probdist.Space[probdist.Float64Prob]{
		SpaceTolerance: probdist.Float64Prob(spaceTolerance),
		EventTolerance: probdist.Float64Prob(eventTolerance),
	}
	return oc, nil
}

func resolveRule[T probdist.Numeric[T]](cfg Config) (rules.Rule[T], int, error) {
	var rule rules.Rule[T]
	switch cfg.Rule {
	case RuleBJ:
		rule = rules.BJ[T]()
	case RuleBJS:
		rule = rules.BJS[T]()
	case RuleBJV:
		rule = rules.BJV[T]()
	default:
		return rules.Rule[T]{}, 0, fmt.Errorf("application: unknown rule %q", cfg.Rule)
	}
	decks := cfg.Decks
	if decks <= 0 {
		decks = rule.DefaultDecks
	}
	return rule, decks, nil
}

func resolveCardState[T probdist.Numeric[T]](model CountingModel, decks int) (cards.CardState[T], error) {
	switch model {
	case CountingNull:
		return cards.Null[T]{}, nil
	case CountingTotal:
		return cards.NewTotal[T](decks), nil
	case CountingPartialAJHL:
		return cards.NewPartialAJHL[T](decks), nil
	default:
		return nil, fmt.Errorf("application: unknown counting model %q", model)
	}
}
