// Package localenum renders and normalizes numbers for BCP 47 locales. It
// keeps a bounded LRU of message printers; printers are immutable, so a lost
// race on insertion just builds a duplicate-but-equivalent printer.
package localenum

import (
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const cacheSize = 64

var printers, _ = lru.New[string, *message.Printer](cacheSize)

func printerFor(tag language.Tag) *message.Printer {
	key := tag.String()
	if p, ok := printers.Get(key); ok {
		return p
	}
	p := message.NewPrinter(tag)
	printers.Add(key, p)
	return p
}

// Render formats v for the given locale with the requested fraction-digit
// bounds. ok is false when the locale string cannot be parsed, in which case
// the caller falls back to its plain renderer.
func Render(locale string, v float64, minFrac, maxFrac int) (s string, ok bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	p := printerFor(tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac),
	)), true
}

// Separators reports the group and decimal separators the locale renders
// with, probed from a sample rendering. group is 0 when the locale does not
// group digits in the sample.
func Separators(locale string) (group, dec rune, ok bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0, 0, false
	}
	p := printerFor(tag)
	sample := p.Sprint(number.Decimal(1234567.89,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	var seps []rune
	for _, r := range sample {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	if len(seps) == 0 {
		return 0, 0, true
	}
	dec = seps[len(seps)-1]
	if len(seps) > 1 {
		group = seps[0]
	}
	return group, dec, true
}

// NormalizeNumber rewrites a locale-formatted numeric string into the plain
// form the byte-size pattern expects: group separators removed, the locale's
// decimal separator replaced with a dot.
func NormalizeNumber(s, locale string) string {
	group, dec, ok := Separators(locale)
	if !ok {
		return s
	}
	if group != 0 {
		s = strings.ReplaceAll(s, string(group), "")
	}
	if dec != 0 && dec != '.' {
		s = strings.ReplaceAll(s, string(dec), ".")
	}
	return s
}
