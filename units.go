package hsize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DobroslavRadosavljevic/hsize/decimal"
)

// System selects the unit convention used when formatting. The zero value is
// IEC (binary, unambiguous), which is also what the parser assumes for
// ambiguous unit strings unless told otherwise.
type System int

const (
	// IEC is the binary system with the "i" marker: KiB, MiB (base 1024).
	IEC System = iota
	// SI is the decimal system: kB, MB (base 1000).
	SI
	// JEDEC is the legacy binary system with SI-style names: KB, MB (base 1024).
	JEDEC
	// French is the decimal octet system: ko, Mo (base 1000).
	French
)

// ParseSystem maps a config/flag string to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iec", "":
		return IEC, nil
	case "si", "metric":
		return SI, nil
	case "jedec":
		return JEDEC, nil
	case "french", "octet":
		return French, nil
	}
	return IEC, fmt.Errorf("%w: system %q (valid: si|iec|jedec|french)", ErrInvalidOption, s)
}

func (s System) String() string {
	switch s {
	case SI:
		return "si"
	case JEDEC:
		return "jedec"
	case French:
		return "french"
	default:
		return "iec"
	}
}

func (s System) base() int {
	if s == SI || s == French {
		return 1000
	}
	return 1024
}

// maxExponent is the top tier of the built-in tables (yotta/yobi).
const maxExponent = 8

// tier locates a unit: base^exp bytes (or bits).
type tier struct {
	exp  int
	base int
	bit  bool
}

var (
	siBytes     = [9]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	siBits      = [9]string{"b", "kb", "mb", "gb", "tb", "pb", "eb", "zb", "yb"}
	iecBytes    = [9]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
	iecBits     = [9]string{"b", "Kib", "Mib", "Gib", "Tib", "Pib", "Eib", "Zib", "Yib"}
	jedecBytes  = [9]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	jedecBits   = [9]string{"b", "Kb", "Mb", "Gb", "Tb", "Pb", "Eb", "Zb", "Yb"}
	frenchBytes = [9]string{"o", "ko", "Mo", "Go", "To", "Po", "Eo", "Zo", "Yo"}

	siPrefixes  = [8]string{"kilo", "mega", "giga", "tera", "peta", "exa", "zetta", "yotta"}
	iecPrefixes = [8]string{"kibi", "mebi", "gibi", "tebi", "pebi", "exbi", "zebi", "yobi"}
)

func symbolFor(system System, exp int, bit bool) string {
	switch system {
	case SI:
		if bit {
			return siBits[exp]
		}
		return siBytes[exp]
	case JEDEC:
		if bit {
			return jedecBits[exp]
		}
		return jedecBytes[exp]
	case French:
		if bit {
			return siBits[exp]
		}
		return frenchBytes[exp]
	default:
		if bit {
			return iecBits[exp]
		}
		return iecBytes[exp]
	}
}

func longFor(system System, exp int, bit, plural bool) string {
	stem := "byte"
	switch {
	case bit:
		stem = "bit"
	case system == French:
		stem = "octet"
	}
	if plural {
		stem += "s"
	}
	if exp == 0 {
		return stem
	}
	if system == IEC {
		return iecPrefixes[exp-1] + stem
	}
	return siPrefixes[exp-1] + stem
}

// prefixExps maps a lowercase prefix letter to its tier.
var prefixExps = map[byte]int{
	'k': 1, 'm': 2, 'g': 3, 't': 4, 'p': 5, 'e': 6, 'z': 7, 'y': 8,
}

var (
	// Uppercase prefix, no "i" marker: the JEDEC-style ambiguous case whose
	// base comes from configuration, not the string.
	ambiguousUnitRE = regexp.MustCompile(`^[KMGTPEZY][Bb]$`)
	// Any prefixed short token; used after the exact tables miss.
	prefixedUnitRE = regexp.MustCompile(`^([kmgtpezyKMGTPEZY])([iI]?)([bBoO])$`)
)

// symbolIndex holds exact-case short symbols; nameIndex holds lowercase long
// names. Built once at package init, read-only afterwards.
var (
	symbolIndex = buildSymbolIndex()
	nameIndex   = buildNameIndex()
)

func buildSymbolIndex() map[string]tier {
	idx := make(map[string]tier)
	add := func(symbols [9]string, base int, bit bool) {
		for exp, sym := range symbols {
			if _, ok := idx[sym]; !ok {
				idx[sym] = tier{exp: exp, base: base, bit: bit}
			}
		}
	}
	add(iecBytes, 1024, false)
	add(iecBits, 1024, true)
	add(siBytes, 1000, false)
	add(siBits, 1000, true)
	add(frenchBytes, 1000, false)
	// Bare "b" reads as bytes; bitness needs a prefix or the word "bit".
	idx["b"] = tier{exp: 0, base: 1024}
	idx["O"] = tier{exp: 0, base: 1000}
	// JEDEC symbols are the ambiguous ones; they never reach the index
	// because ambiguousUnitRE intercepts them first.
	return idx
}

func buildNameIndex() map[string]tier {
	idx := make(map[string]tier)
	add := func(name string, t tier) {
		idx[name] = t
		idx[name+"s"] = t
	}
	add("byte", tier{exp: 0, base: 1024})
	add("octet", tier{exp: 0, base: 1000})
	add("bit", tier{exp: 0, base: 1024, bit: true})
	for exp := 1; exp <= maxExponent; exp++ {
		si, iec := siPrefixes[exp-1], iecPrefixes[exp-1]
		add(si+"byte", tier{exp: exp, base: 1000})
		add(si+"octet", tier{exp: exp, base: 1000})
		add(si+"bit", tier{exp: exp, base: 1000, bit: true})
		add(iec+"byte", tier{exp: exp, base: 1024})
		add(iec+"bit", tier{exp: exp, base: 1024, bit: true})
	}
	return idx
}

// resolveUnit turns a unit token into a tier. The decision table, in order:
//
//  1. empty token: plain bytes;
//  2. uppercase prefix without "i" ("KB", "Kb"): base from preferSI
//     (default binary);
//  3. exact symbol or long-name table hit ("KiB", "kb", "Mo", "kibibytes");
//  4. otherwise an "i" anywhere forces 1024, a lowercase prefix forces 1000,
//     an octet suffix forces 1000; trailing lowercase "b" after a prefix
//     means bits.
//
// Anything else is an unknown unit.
func resolveUnit(token string, preferSI bool) (tier, error) {
	if token == "" {
		return tier{exp: 0, base: 1024}, nil
	}
	if ambiguousUnitRE.MatchString(token) {
		base := 1024
		if preferSI {
			base = 1000
		}
		return tier{
			exp:  prefixExps[token[0]|0x20],
			base: base,
			bit:  token[1] == 'b',
		}, nil
	}
	if t, ok := symbolIndex[token]; ok {
		return t, nil
	}
	if t, ok := nameIndex[strings.ToLower(token)]; ok {
		return t, nil
	}
	if m := prefixedUnitRE.FindStringSubmatch(token); m != nil {
		prefix, marker, suffix := m[1][0], m[2], m[3][0]
		base := 1000
		switch {
		case marker != "":
			base = 1024
		case suffix == 'o' || suffix == 'O':
			base = 1000
		case prefix >= 'A' && prefix <= 'Z' && !preferSI:
			base = 1024
		}
		return tier{
			exp:  prefixExps[prefix|0x20],
			base: base,
			bit:  suffix == 'b',
		}, nil
	}
	return tier{}, fmt.Errorf("%w: %q", ErrUnknownUnit, token)
}

// tierFor picks the largest exponent in [0, maxExp] whose tier does not
// exceed abs. Zero and sub-unit magnitudes land on tier 0.
func tierFor(abs decimal.Dec, base, maxExp int) int {
	e := maxExp
	for e > 0 && decimal.Pow(base, e).Cmp(abs) > 0 {
		e--
	}
	return e
}

// CustomUnit is one tier of a caller-supplied unit table.
type CustomUnit struct {
	Symbol   string
	Singular string
	Plural   string
}

// UnitTable is an ordered set of custom units sharing one base. Tier n is
// base^n bytes; values beyond the last tier clamp to it. Lookup by symbol or
// name is case-insensitive. Read-only after construction.
type UnitTable struct {
	base  int
	units []CustomUnit
	index map[string]int
}

// NewUnitTable builds a custom unit table. base must be at least 2 and at
// least one unit is required.
func NewUnitTable(base int, units ...CustomUnit) (*UnitTable, error) {
	if base < 2 {
		return nil, fmt.Errorf("%w: unit table base %d", ErrInvalidOption, base)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("%w: unit table needs at least one unit", ErrInvalidOption)
	}
	idx := make(map[string]int)
	for i, u := range units {
		for _, key := range []string{u.Symbol, u.Singular, u.Plural} {
			if key == "" {
				continue
			}
			key = strings.ToLower(key)
			if _, ok := idx[key]; !ok {
				idx[key] = i
			}
		}
	}
	return &UnitTable{base: base, units: append([]CustomUnit(nil), units...), index: idx}, nil
}

func (t *UnitTable) maxExp() int { return len(t.units) - 1 }

func (t *UnitTable) resolve(token string) (tier, error) {
	if token == "" {
		return tier{exp: 0, base: t.base}, nil
	}
	i, ok := t.index[strings.ToLower(token)]
	if !ok {
		return tier{}, fmt.Errorf("%w: %q", ErrUnknownUnit, token)
	}
	return tier{exp: i, base: t.base}, nil
}

func (t *UnitTable) symbol(exp int) string { return t.units[exp].Symbol }

func (t *UnitTable) long(exp int, plural bool) string {
	if plural && t.units[exp].Plural != "" {
		return t.units[exp].Plural
	}
	if t.units[exp].Singular != "" {
		return t.units[exp].Singular
	}
	return t.units[exp].Symbol
}
