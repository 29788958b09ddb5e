package probdist

// Float64Prob is a fast, approximate probability weight backed by float64.
// Its zero value is the number zero.
type Float64Prob float64

func (x Float64Prob) Add(y Float64Prob) Float64Prob { return x + y }
func (x Float64Prob) Sub(y Float64Prob) Float64Prob { return x - y }
func (x Float64Prob) Mul(y Float64Prob) Float64Prob { return x * y }

func (x Float64Prob) Cmp(y Float64Prob) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Float64Prob) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func (x Float64Prob) Float64() float64 { return float64(x) }
func (x Float64Prob) One() Float64Prob { return 1 }

func (x Float64Prob) FromRatio(num, den int64) Float64Prob {
	return Float64Prob(float64(num) / float64(den))
}

func (x Float64Prob) Inv() Float64Prob { return 1 / x }
