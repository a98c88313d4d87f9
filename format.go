package hsize

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DobroslavRadosavljevic/hsize/decimal"
	"github.com/DobroslavRadosavljevic/hsize/internal/localenum"
)

// Details is the structured result of a format call.
type Details struct {
	// Bytes is the input byte count, with -0 collapsed to 0.
	Bytes float64 `json:"bytes"`
	// Value is the rounded display value in the selected tier.
	Value float64 `json:"value"`
	// Unit is the short symbol, e.g. "KiB".
	Unit string `json:"unit"`
	// LongUnit is the long form, e.g. "kibibytes".
	LongUnit string `json:"longUnit"`
	// Exponent is the selected tier in [0, 8].
	Exponent int `json:"exponent"`
}

// Format renders a byte count as a human-readable string.
func Format(bytes float64, opts FormatOptions) (string, error) {
	_, s, err := format(bytes, opts)
	return s, err
}

// FormatDetails renders a byte count and returns the structured result.
func FormatDetails(bytes float64, opts FormatOptions) (Details, error) {
	d, _, err := format(bytes, opts)
	return d, err
}

// FormatBigInt renders a big-integer byte count. Magnitudes beyond ±(2^53-1)
// are narrowed to float64 with a warning through Log; the numeric value is
// well-formed, only its trailing digits are in question.
func FormatBigInt(v *big.Int, opts FormatOptions) (string, error) {
	if v.CmpAbs(maxSafeInt) > 0 {
		Log.Warnf("hsize: narrowing %s to float64 loses precision", v)
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return Format(f, opts)
}

func format(bytes float64, opts FormatOptions) (Details, string, error) {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return Details{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, bytes)
	}
	decimals := defaultDecimals
	if opts.Decimals != nil {
		decimals = *opts.Decimals
	}
	if decimals < 0 {
		return Details{}, "", fmt.Errorf("%w: decimals %d", ErrInvalidOption, decimals)
	}
	if opts.FixedWidth < 0 {
		return Details{}, "", fmt.Errorf("%w: fixed width %d", ErrInvalidOption, opts.FixedWidth)
	}

	base := opts.System.base()
	maxExp := maxExponent
	if opts.Units != nil {
		base = opts.Units.base
		maxExp = opts.Units.maxExp()
	}

	if bytes == 0 {
		bytes = 0 // collapse -0
	}
	neg := bytes < 0
	abs := decimal.FromFloat(math.Abs(bytes))

	bits := opts.Bits
	forced := true
	var exp int
	switch {
	case opts.Unit != "":
		e, isBit, err := lookupDisplayUnit(opts.System, opts.Units, opts.Unit)
		if err != nil {
			return Details{}, "", err
		}
		if isBit {
			bits = true
		}
		exp = e
	case opts.Exponent != nil:
		e := *opts.Exponent
		if e < 0 || e > maxExponent {
			return Details{}, "", fmt.Errorf("%w: exponent %d outside [0, %d]", ErrInvalidOption, e, maxExponent)
		}
		if e > maxExp {
			e = maxExp
		}
		exp = e
	default:
		exp = tierFor(abs, base, maxExp)
		forced = false
	}

	value := abs.Div(decimal.Pow(base, exp))
	if bits {
		value = value.Mul(decimal.FromInt(8))
		if !forced && exp < maxExp && value.Cmp(decimal.FromInt(int64(base))) >= 0 {
			exp++
			value = value.Div(decimal.FromInt(int64(base)))
		}
	}

	rounded := value.Round(int32(decimals), opts.Rounding)
	if neg {
		rounded = rounded.Neg()
	}
	roundedF, _ := rounded.Float64()

	plural := rounded.Abs().Cmp(decimal.FromInt(1)) != 0
	var unitStr, longStr string
	if opts.Units != nil {
		unitStr = opts.Units.symbol(exp)
		longStr = opts.Units.long(exp, plural)
	} else {
		unitStr = symbolFor(opts.System, exp, bits)
		longStr = longFor(opts.System, exp, bits, plural)
	}
	det := Details{Bytes: bytes, Value: roundedF, Unit: unitStr, LongUnit: longStr, Exponent: exp}

	minFrac := 0
	if opts.Pad {
		minFrac = decimals
	}
	if opts.MinFractionDigits > minFrac {
		minFrac = opts.MinFractionDigits
	}
	maxFrac := decimals
	if minFrac > maxFrac {
		maxFrac = minFrac
	}

	var valueStr string
	rendered := false
	if opts.Locale != "" {
		// Unsupported locales degrade silently to the plain renderer;
		// locale formatting is presentation, not correctness.
		if s, ok := localenum.Render(opts.Locale, roundedF, minFrac, maxFrac); ok {
			valueStr = s
			rendered = true
		}
	}
	if !rendered {
		valueStr = padFraction(rounded.String(), minFrac)
	}
	if opts.Signed && rounded.Sign() > 0 {
		valueStr = "+" + valueStr
	}

	spacer := " "
	switch {
	case opts.Spacer != nil:
		spacer = *opts.Spacer
	case opts.NoSpace:
		spacer = ""
	case opts.NonBreakingSpace:
		spacer = " "
	}

	displayUnit := unitStr
	if opts.LongForm {
		displayUnit = longStr
	}

	var out string
	if opts.Template != "" {
		out = strings.NewReplacer(
			"{value}", valueStr,
			"{unit}", unitStr,
			"{longUnit}", longStr,
			"{bytes}", strconv.FormatFloat(bytes, 'f', -1, 64),
			"{exponent}", strconv.Itoa(exp),
		).Replace(opts.Template)
	} else {
		out = valueStr + spacer + displayUnit
	}
	if w := opts.FixedWidth; w > 0 {
		if n := utf8.RuneCountInString(out); n < w {
			out = strings.Repeat(" ", w-n) + out
		}
	}
	return det, out, nil
}

// lookupDisplayUnit maps a forced unit symbol to its tier within the output
// system. Exact-case hits win so "Kib" (bits) is not folded into "KiB".
func lookupDisplayUnit(system System, table *UnitTable, unit string) (exp int, bit bool, err error) {
	if table != nil {
		t, err := table.resolve(unit)
		if err != nil {
			return 0, false, err
		}
		return t.exp, false, nil
	}
	for _, bits := range []bool{false, true} {
		for e := 0; e <= maxExponent; e++ {
			if symbolFor(system, e, bits) == unit {
				return e, bits, nil
			}
		}
	}
	for _, bits := range []bool{false, true} {
		for e := 0; e <= maxExponent; e++ {
			if strings.EqualFold(symbolFor(system, e, bits), unit) {
				return e, bits, nil
			}
		}
	}
	return 0, false, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// padFraction extends the fraction part of a plain decimal string to at
// least minFrac digits.
func padFraction(s string, minFrac int) string {
	if minFrac <= 0 {
		return s
	}
	frac := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = len(s) - i - 1
	} else {
		s += "."
	}
	if frac < minFrac {
		s += strings.Repeat("0", minFrac-frac)
	}
	return s
}
