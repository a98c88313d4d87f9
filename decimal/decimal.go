// Package decimal is the exact-arithmetic layer of hsize. All magnitude math
// in the formatter, parser and unit resolver goes through it instead of native
// float64, so chained operations like 1500/1024 never accumulate binary
// rounding drift. Division by zero yields a NaN sentinel rather than a panic.
package decimal

import (
	"math"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"
)

// Rounding selects how Round resolves discarded fraction digits.
type Rounding int

const (
	// RoundHalfUp rounds ties toward positive infinity, matching native
	// Math.round conventions: 2.5 -> 3, -1.5 -> -1, -2.5 -> -2.
	RoundHalfUp Rounding = iota
	RoundFloor
	RoundCeil
	RoundTrunc
)

var half = decimal.New(5, -1)

// Dec is an immutable decimal value. The zero value is 0.
type Dec struct {
	d   decimal.Decimal
	nan bool
}

// NaN returns the not-a-number sentinel.
func NaN() Dec { return Dec{nan: true} }

// IsNaN reports whether x is the NaN sentinel.
func (x Dec) IsNaN() bool { return x.nan }

// FromFloat converts a float64. Non-finite inputs map to the NaN sentinel.
func FromFloat(f float64) Dec {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN()
	}
	return Dec{d: decimal.NewFromFloat(f)}
}

// FromInt converts an int64.
func FromInt(i int64) Dec { return Dec{d: decimal.NewFromInt(i)} }

// FromBigInt converts a big integer without precision loss.
func FromBigInt(v *big.Int) Dec {
	return Dec{d: decimal.NewFromBigInt(v, 0)}
}

// FromString parses a decimal literal, including exponent notation ("1.5e3").
func FromString(s string) (Dec, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NaN(), err
	}
	return Dec{d: d}, nil
}

func (x Dec) Add(y Dec) Dec {
	if x.nan || y.nan {
		return NaN()
	}
	return Dec{d: x.d.Add(y.d)}
}

func (x Dec) Sub(y Dec) Dec {
	if x.nan || y.nan {
		return NaN()
	}
	return Dec{d: x.d.Sub(y.d)}
}

func (x Dec) Mul(y Dec) Dec {
	if x.nan || y.nan {
		return NaN()
	}
	return Dec{d: x.d.Mul(y.d)}
}

// Div returns x/y, or the NaN sentinel when y is zero.
func (x Dec) Div(y Dec) Dec {
	if x.nan || y.nan || y.d.IsZero() {
		return NaN()
	}
	return Dec{d: x.d.DivRound(y.d, divPrecision)}
}

// divPrecision bounds quotient digits well past anything float64 can carry.
const divPrecision = 34

func (x Dec) Abs() Dec {
	if x.nan {
		return x
	}
	return Dec{d: x.d.Abs()}
}

func (x Dec) Neg() Dec {
	if x.nan {
		return x
	}
	return Dec{d: x.d.Neg()}
}

// Cmp compares x and y: -1 if x < y, 0 if equal, +1 if x > y.
// Comparison against the NaN sentinel is undefined; callers check IsNaN first.
func (x Dec) Cmp(y Dec) int { return x.d.Cmp(y.d) }

// Sign returns -1, 0 or +1.
func (x Dec) Sign() int { return x.d.Sign() }

// Round rounds x to the given number of fraction digits under mode.
func (x Dec) Round(places int32, mode Rounding) Dec {
	if x.nan {
		return x
	}
	switch mode {
	case RoundFloor:
		return Dec{d: x.d.RoundFloor(places)}
	case RoundCeil:
		return Dec{d: x.d.RoundCeil(places)}
	case RoundTrunc:
		return Dec{d: x.d.Truncate(places)}
	default:
		// floor(x*10^p + 0.5) / 10^p: half-up with ties toward +inf.
		return Dec{d: x.d.Shift(places).Add(half).Floor().Shift(-places)}
	}
}

// Float64 converts to a float64. ok is false for the NaN sentinel and for
// magnitudes that overflow the finite float64 range.
func (x Dec) Float64() (f float64, ok bool) {
	if x.nan {
		return math.NaN(), false
	}
	f, _ = x.d.Float64()
	if math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}

// String renders the value with trailing fraction zeros trimmed.
func (x Dec) String() string {
	if x.nan {
		return "NaN"
	}
	return x.d.String()
}

// StringFixed renders the value with exactly places fraction digits.
func (x Dec) StringFixed(places int32) string {
	if x.nan {
		return "NaN"
	}
	return x.d.StringFixed(places)
}

type powKey struct {
	base, exp int
}

var powCache sync.Map // powKey -> decimal.Decimal

// Pow returns base^exp as an exact integer. Results are memoized; the size
// tables only ever ask for base 1000 or 1024 with exponents 0 through 8, so
// the cache stays tiny.
func Pow(base, exp int) Dec {
	key := powKey{base, exp}
	if v, ok := powCache.Load(key); ok {
		return Dec{d: v.(decimal.Decimal)}
	}
	d := decimal.NewFromInt(1)
	b := decimal.NewFromInt(int64(base))
	for i := 0; i < exp; i++ {
		d = d.Mul(b)
	}
	powCache.Store(key, d)
	return Dec{d: d}
}
