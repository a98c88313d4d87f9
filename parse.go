package hsize

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/DobroslavRadosavljevic/hsize/decimal"
	"github.com/DobroslavRadosavljevic/hsize/internal/localenum"
)

// maxSafeInt is the largest integer float64 represents exactly (2^53-1).
var maxSafeInt = new(big.Int).SetUint64(1<<53 - 1)

// Parse interprets a human-readable size string as a byte count. On failure
// the returned value is NaN alongside the error, so best-effort callers can
// filter on either.
func Parse(s string, opts ParseOptions) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), fmt.Errorf("%w", ErrEmptyInput)
	}
	norm := s
	if opts.Locale != "" {
		norm = localenum.NormalizeNumber(norm, opts.Locale)
	}
	m := BytePattern.FindStringSubmatch(norm)
	if m == nil {
		return math.NaN(), fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	numTok, unitTok := m[1], m[2]
	if opts.Locale == "" {
		// Without a locale a comma reads as the decimal point.
		numTok = strings.Replace(numTok, ",", ".", 1)
	}
	value, err := decimal.FromString(numTok)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}

	var t tier
	if opts.Units != nil {
		t, err = opts.Units.resolve(unitTok)
	} else {
		t, err = resolveUnit(unitTok, opts.PreferSI)
	}
	if err != nil {
		return math.NaN(), fmt.Errorf("parsing %q: %w", s, err)
	}

	bytes := value.Mul(decimal.Pow(t.base, t.exp))
	if t.bit || opts.Bits {
		bytes = bytes.Div(decimal.FromInt(8))
	}
	f, ok := bytes.Float64()
	if !ok {
		return math.NaN(), fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return f, nil
}

// ParseFloat passes a numeric input through, rejecting NaN and infinities.
func ParseFloat(f float64, opts ParseOptions) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrInvalidInput, f)
	}
	return f, nil
}

// ParseBigInt passes a big-integer input through. Magnitudes beyond
// ±(2^53-1) lose precision when narrowed to float64: Strict reports that as
// an error, otherwise the narrowed best effort is returned after a warning.
func ParseBigInt(v *big.Int, opts ParseOptions) (float64, error) {
	if v.CmpAbs(maxSafeInt) > 0 {
		if opts.Strict {
			return math.NaN(), fmt.Errorf("%w: %s", ErrPrecisionLoss, v)
		}
		opts.logger().Warnf("hsize: narrowing %s to float64 loses precision", v)
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f, nil
}
