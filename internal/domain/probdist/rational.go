package probdist

import "math/big"

// Rational is an exact probability weight backed by math/big.Rat. The zero
// value is the exact number zero (no big.Rat allocation needed until the
// first arithmetic operation).
type Rational struct {
	r *big.Rat
}

// NewRational builds the exact fraction num/den.
func NewRational(num, den int64) Rational {
	return Rational{big.NewRat(num, den)}
}

func (x Rational) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

func (x Rational) Add(y Rational) Rational {
	return Rational{new(big.Rat).Add(x.val(), y.val())}
}

func (x Rational) Sub(y Rational) Rational {
	return Rational{new(big.Rat).Sub(x.val(), y.val())}
}

func (x Rational) Mul(y Rational) Rational {
	return Rational{new(big.Rat).Mul(x.val(), y.val())}
}

func (x Rational) Cmp(y Rational) int {
	return x.val().Cmp(y.val())
}

func (x Rational) Sign() int {
	return x.val().Sign()
}

func (x Rational) Float64() float64 {
	f, _ := x.val().Float64()
	return f
}

func (x Rational) One() Rational {
	return NewRational(1, 1)
}

func (x Rational) FromRatio(num, den int64) Rational {
	return NewRational(num, den)
}

func (x Rational) Inv() Rational {
	return Rational{new(big.Rat).Inv(x.val())}
}

// String renders the exact fraction, e.g. "3/2" or "-1".
func (x Rational) String() string {
	return x.val().RatString()
}
