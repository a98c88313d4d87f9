package hsize

import (
	"regexp"
	"strconv"
	"strings"
)

// The single-value pattern: optional sign, integer or decimal part with a
// dot or comma separator, optional exponent, optional unit token. Long-form
// names come before the short alternation so "megabytes" is captured whole.
const sizeExpr = `([-+]?(?:\d+(?:[.,]\d*)?|[.,]\d+)(?:e[-+]?\d+)?)` +
	`(?:\s*((?:kilo|mega|giga|tera|peta|exa|zetta|yotta|kibi|mebi|gibi|tebi|pebi|exbi|zebi|yobi)?(?:bytes?|bits?|octets?)|[kmgtpezy]?i?[bo]))?`

// BytePattern matches a single byte-size value. Exposed read-only for
// external validators; do not mutate.
var BytePattern = regexp.MustCompile(`(?i)^` + sizeExpr + `$`)

// GlobalBytePattern is the unanchored sweep variant of BytePattern.
var GlobalBytePattern = regexp.MustCompile(`(?i)` + sizeExpr)

// Match is one byte-size occurrence found in scanned text. Offsets index the
// scanned string; Input is the exact matched slice.
type Match struct {
	// Value is the numeric literal as written, before unit scaling.
	Value float64 `json:"value"`
	// Unit is the unit token as written; empty for plain numbers.
	Unit string `json:"unit"`
	// Bytes is the parsed byte count of the whole match.
	Bytes float64 `json:"bytes"`
	// Input is text[Start:End].
	Input string `json:"input"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Extract scans free text for byte-size occurrences, left to right and
// non-overlapping. Extraction is best effort over uncontrolled text: a match
// that fails to parse is dropped, and Extract never returns an error.
func Extract(text string) []Match {
	idx := GlobalBytePattern.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		start, end := m[0], m[1]
		raw := text[start:end]
		numTok := text[m[2]:m[3]]
		unitTok := ""
		if m[4] >= 0 {
			unitTok = text[m[4]:m[5]]
		}
		value, err := strconv.ParseFloat(strings.Replace(numTok, ",", ".", 1), 64)
		if err != nil {
			continue
		}
		bytes, err := Parse(raw, ParseOptions{})
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			Value: value,
			Unit:  unitTok,
			Bytes: bytes,
			Input: raw,
			Start: start,
			End:   end,
		})
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}
