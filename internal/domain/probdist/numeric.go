// Package probdist implements a small probability-distribution monad used
// throughout the Blackjack engine: a Dist[T, I] pairs outcomes of type I with
// weights of type T and supports injection, binding, mapping, conditioning
// and expectation, the same handful of combinators the teacher reached for
// package-level pure functions on its domain value types.
package probdist

// Numeric is the constraint a probability weight type must satisfy. Two
// concrete implementations are provided: Rational (exact, math/big.Rat
// backed) and Float64Prob (fast, approximate). Both are zero-value-usable:
// the Go zero value of each type represents the number zero.
type Numeric[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Cmp(T) int
	Sign() int
	Float64() float64
	// One returns the multiplicative identity. Called on a zero value
	// (e.g. `var z T; z.One()`) so implementations must not depend on
	// receiver state.
	One() T
	// FromRatio builds the exact value num/den in T's representation.
	FromRatio(num, den int64) T
	// Inv returns the multiplicative inverse. Only called on nonzero
	// values (renormalization after conditioning on nonzero mass).
	Inv() T
}
