package localenum

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name             string
		locale           string
		v                float64
		minFrac, maxFrac int
		want             string
	}{
		{name: "english grouping", locale: "en", v: 1234.5, maxFrac: 2, want: "1,234.5"},
		{name: "german comma", locale: "de", v: 1.5, maxFrac: 2, want: "1,5"},
		{name: "min fraction pads", locale: "en", v: 1, minFrac: 2, maxFrac: 2, want: "1.00"},
		{name: "max fraction rounds", locale: "en", v: 1.239, maxFrac: 2, want: "1.24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Render(tt.locale, tt.v, tt.minFrac, tt.maxFrac)
			if !ok {
				t.Fatalf("Render(%q) not ok", tt.locale)
			}
			if got != tt.want {
				t.Errorf("Render(%q, %v) = %q, want %q", tt.locale, tt.v, got, tt.want)
			}
		})
	}

	if _, ok := Render("!!", 1, 0, 2); ok {
		t.Error("Render with unparseable locale reported ok")
	}
}

func TestSeparators(t *testing.T) {
	tests := []struct {
		locale     string
		group, dec rune
	}{
		{locale: "en", group: ',', dec: '.'},
		{locale: "de", group: '.', dec: ','},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			group, dec, ok := Separators(tt.locale)
			if !ok {
				t.Fatalf("Separators(%q) not ok", tt.locale)
			}
			if group != tt.group || dec != tt.dec {
				t.Errorf("Separators(%q) = %q, %q, want %q, %q", tt.locale, group, dec, tt.group, tt.dec)
			}
		})
	}

	if _, _, ok := Separators("!!"); ok {
		t.Error("Separators with unparseable locale reported ok")
	}
}

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		locale string
		want   string
	}{
		{name: "german grouped", in: "1.234,5", locale: "de", want: "1234.5"},
		{name: "english grouped", in: "1,234.5", locale: "en", want: "1234.5"},
		{name: "plain passthrough", in: "42", locale: "en", want: "42"},
		{name: "bad locale untouched", in: "1.234,5", locale: "!!", want: "1.234,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNumber(tt.in, tt.locale); got != tt.want {
				t.Errorf("NormalizeNumber(%q, %q) = %q, want %q", tt.in, tt.locale, got, tt.want)
			}
		})
	}
}
