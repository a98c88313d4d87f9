package hsize

import (
	"github.com/DobroslavRadosavljevic/hsize/decimal"
	"github.com/DobroslavRadosavljevic/hsize/log"
)

// Log receives non-fatal diagnostics, currently only big-integer narrowing
// warnings. Swap in log.NewNop() to silence.
var Log log.Logger = log.NewStd()

// defaultDecimals is the fraction-digit budget used when Decimals is nil.
const defaultDecimals = 2

// FormatOptions configures Format and FormatDetails. The zero value renders
// IEC units with up to two decimals, a plain space, half-up rounding and
// automatic tier selection. Pointer fields distinguish "unset" from a zero
// value the caller actually asked for.
type FormatOptions struct {
	// System selects the output unit convention.
	System System
	// Bits renders bit units instead of byte units, carrying into the next
	// tier when the scaled value reaches it (128 bytes -> "1 Kib").
	Bits bool
	// Decimals is the maximum number of fraction digits; nil means 2.
	// Trailing zeros are trimmed unless Pad or MinFractionDigits keeps them.
	Decimals *int
	// Rounding picks the rounding mode applied to the display value.
	Rounding decimal.Rounding
	// Signed prefixes positive non-zero values with "+".
	Signed bool
	// NoSpace joins value and unit with no separator.
	NoSpace bool
	// NonBreakingSpace separates value and unit with U+00A0.
	NonBreakingSpace bool
	// Spacer overrides the separator entirely when non-nil.
	Spacer *string
	// Locale renders the number for a BCP 47 locale. Unknown locales fall
	// back silently to the plain renderer.
	Locale string
	// LongForm writes "kibibytes" instead of "KiB", singular exactly at 1.
	LongForm bool
	// Template substitutes {value}, {unit}, {longUnit}, {bytes} and
	// {exponent} instead of the default "value unit" composition. Unknown
	// tokens pass through untouched.
	Template string
	// FixedWidth left-pads the composed string with spaces up to this rune
	// count. Longer strings are never truncated.
	FixedWidth int
	// Pad keeps exactly Decimals fraction digits instead of trimming.
	Pad bool
	// MinFractionDigits keeps at least this many fraction digits.
	MinFractionDigits int
	// Unit forces a specific unit of the selected system (or custom table),
	// overriding Exponent and automatic selection.
	Unit string
	// Exponent forces a unit tier in [0, 8]; nil selects automatically.
	Exponent *int
	// Units replaces the built-in systems with a custom unit table.
	Units *UnitTable
}

// ParseOptions configures Parse, ParseFloat and ParseBigInt.
type ParseOptions struct {
	// PreferSI reads ambiguous units ("KB", "MB") as 1000-based. The default
	// keeps the widespread binary interpretation. Unambiguous units ("kB",
	// "KiB") are never affected.
	PreferSI bool
	// Bits treats the parsed value as bits, dividing by 8.
	Bits bool
	// Strict makes big-integer precision loss an error instead of a warning.
	Strict bool
	// Locale interprets group and decimal separators for a BCP 47 locale.
	Locale string
	// Units replaces the built-in systems with a custom unit table.
	Units *UnitTable
	// Logger overrides the package Log for this call.
	Logger log.Logger
}

func (o ParseOptions) logger() log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Log
}
