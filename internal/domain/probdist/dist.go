package probdist

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrProbabilitySpace is returned when a distribution fails to normalize:
// total mass drifts outside the configured space tolerance, or an outcome
// carries a negative weight. Callers that see this wrapped in an error chain
// have hit a bug in the engine, not a user-facing input problem.
var ErrProbabilitySpace = errors.New("probdist: probability space invariant violated")

// Keyed identifies outcomes so that Dist can merge duplicate outcomes and
// establish a canonical, deterministic iteration order. Key needn't be
// semantically meaningful; any injective-enough string will do, and any
// total order over it is acceptable.
type Keyed interface {
	Key() string
}

// Entry pairs one outcome with its probability weight.
type Entry[T Numeric[T], I Keyed] struct {
	Item I
	Prob T
}

// Dist is an immutable probability distribution over outcomes of type I,
// weighted in T. Entries are kept merged (one per distinct Key) and sorted
// by Key for deterministic iteration.
type Dist[T Numeric[T], I Keyed] struct {
	entries []Entry[T, I]
}

// Space configures the tolerances a probability engine applies when
// validating and pruning distributions. These are deliberately fields on a
// value threaded explicitly through calls, not package-level globals: two
// callers in the same process (say, an exact-rational top-level odds
// calculation and a float64 Monte Carlo cross-check) may legitimately want
// different tolerances. The zero value demands exact mass (tolerance 0),
// appropriate for the Rational backend.
type Space[T Numeric[T]] struct {
	// SpaceTolerance bounds how far total mass may drift from 1 before a
	// constructed distribution is rejected as invalid.
	SpaceTolerance T
	// EventTolerance is the minimum probability mass an outcome must carry
	// to survive a Bind; branches below it are pruned before recursing,
	// bounding otherwise-unbounded event trees (see approx2h lookahead).
	EventTolerance T
	// OnPrune, when non-nil, is called with the dropped outcome's key and
	// probability every time Bind prunes a branch below EventTolerance.
	// Kept as a plain func rather than an interface or package dependency
	// so probdist never has to import a logging package; callers that want
	// pruning observability (see internal/infrastructure/telemetry) wire
	// this themselves.
	OnPrune func(key string, prob float64)
}

// NewSpace returns a Space demanding exact mass and pruning nothing.
func NewSpace[T Numeric[T]]() Space[T] {
	return Space[T]{}
}

// Entries returns a defensive copy of the distribution's outcome/weight
// pairs in canonical (Key-sorted) order.
func (d Dist[T, I]) Entries() []Entry[T, I] {
	out := make([]Entry[T, I], len(d.entries))
	copy(out, d.entries)
	return out
}

// Len reports the number of distinct outcomes.
func (d Dist[T, I]) Len() int { return len(d.entries) }

func mergeEntries[T Numeric[T], I Keyed](entries []Entry[T, I]) []Entry[T, I] {
	byKey := make(map[string]*Entry[T, I], len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		k := e.Item.Key()
		if existing, ok := byKey[k]; ok {
			existing.Prob = existing.Prob.Add(e.Prob)
			continue
		}
		cp := e
		byKey[k] = &cp
		order = append(order, k)
	}
	sort.Strings(order)
	out := make([]Entry[T, I], 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// newValidated merges duplicate outcomes, rejects negative weights, and
// checks total mass against sp.SpaceTolerance.
func newValidated[T Numeric[T], I Keyed](sp Space[T], entries []Entry[T, I]) (Dist[T, I], error) {
	merged := mergeEntries(entries)
	var sum T
	for _, e := range merged {
		if e.Prob.Sign() < 0 {
			return Dist[T, I]{}, fmt.Errorf("%w: negative weight %v for outcome %q", ErrProbabilitySpace, e.Prob.Float64(), e.Item.Key())
		}
		sum = sum.Add(e.Prob)
	}
	var one T
	one = one.One()
	diff := math.Abs(sum.Sub(one).Float64())
	if diff > sp.SpaceTolerance.Float64() {
		return Dist[T, I]{}, fmt.Errorf("%w: total mass %v deviates from 1 by %v (tolerance %v)", ErrProbabilitySpace, sum.Float64(), diff, sp.SpaceTolerance.Float64())
	}
	return Dist[T, I]{entries: merged}, nil
}

// New validates and constructs a distribution from raw entries. Most
// callers reach a Dist via Inject/Bind/Map instead; New is exported for
// card-state draw() implementations that build a distribution directly.
func New[T Numeric[T], I Keyed](sp Space[T], entries ...Entry[T, I]) (Dist[T, I], error) {
	return newValidated(sp, entries)
}

// Inject builds the certain distribution: item I with probability 1. Mass
// is exact by construction, so no Space/validation is required.
func Inject[T Numeric[T], I Keyed](item I) Dist[T, I] {
	var zero T
	return Dist[T, I]{entries: []Entry[T, I]{{Item: item, Prob: zero.One()}}}
}

// Bind threads each outcome of d through f, weighting f's sub-distribution
// by d's outcome probability, merging duplicate resulting outcomes, and
// validating the result against sp. Outcomes below sp.EventTolerance are
// pruned before f is even called, bounding otherwise-unbounded recursion in
// callers like the approximate two-hit lookahead.
func Bind[T Numeric[T], I Keyed, J Keyed](sp Space[T], d Dist[T, I], f func(I) (Dist[T, J], error)) (Dist[T, J], error) {
	var out []Entry[T, J]
	for _, e := range d.entries {
		if e.Prob.Float64() < sp.EventTolerance.Float64() {
			if sp.OnPrune != nil {
				sp.OnPrune(e.Item.Key(), e.Prob.Float64())
			}
			continue
		}
		sub, err := f(e.Item)
		if err != nil {
			return Dist[T, J]{}, err
		}
		for _, se := range sub.entries {
			out = append(out, Entry[T, J]{Item: se.Item, Prob: e.Prob.Mul(se.Prob)})
		}
	}
	return newValidated(sp, out)
}

// Map transforms every outcome with g, preserving weights, and merges any
// outcomes g collapses together. Mass is preserved exactly, so no
// revalidation against a Space is needed.
func Map[T Numeric[T], I Keyed, J Keyed](d Dist[T, I], g func(I) J) Dist[T, J] {
	out := make([]Entry[T, J], 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, Entry[T, J]{Item: g(e.Item), Prob: e.Prob})
	}
	return Dist[T, J]{entries: mergeEntries(out)}
}

// Given conditions d on pred, returning the matched probability mass and,
// when that mass is nonzero, the renormalized conditional distribution. A
// nil *Dist indicates pred matched nothing.
func Given[T Numeric[T], I Keyed](d Dist[T, I], pred func(I) bool) (T, *Dist[T, I]) {
	var mass T
	var matched []Entry[T, I]
	for _, e := range d.entries {
		if pred(e.Item) {
			mass = mass.Add(e.Prob)
			matched = append(matched, e)
		}
	}
	if mass.Sign() == 0 {
		return mass, nil
	}
	inv := mass.Inv()
	out := make([]Entry[T, I], len(matched))
	for i, e := range matched {
		copyE := e
		copyE.Prob = e.Prob.Mul(inv)
		out[i] = copyE
	}
	res := Dist[T, I]{entries: out}
	return mass, &res
}

// Filter drops outcomes pred rejects and renormalizes the rest. Returns nil
// when pred rejects everything.
func Filter[T Numeric[T], I Keyed](d Dist[T, I], pred func(I) bool) *Dist[T, I] {
	_, res := Given(d, pred)
	return res
}

// Expect computes the weighted average of g over d's outcomes: the
// distribution's expectation of g.
func Expect[T Numeric[T], I Keyed](d Dist[T, I], g func(I) T) T {
	var acc T
	for _, e := range d.entries {
		acc = acc.Add(e.Prob.Mul(g(e.Item)))
	}
	return acc
}
