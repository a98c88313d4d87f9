package decimal

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		places int32
		mode   Rounding
		want   string
	}{
		{name: "half up positive tie", input: "1.5", places: 0, mode: RoundHalfUp, want: "2"},
		{name: "half up positive tie odd", input: "2.5", places: 0, mode: RoundHalfUp, want: "3"},
		{name: "half up negative tie", input: "-1.5", places: 0, mode: RoundHalfUp, want: "-1"},
		{name: "half up negative tie odd", input: "-2.5", places: 0, mode: RoundHalfUp, want: "-2"},
		{name: "half up below tie", input: "1.4", places: 0, mode: RoundHalfUp, want: "1"},
		{name: "half up above tie", input: "-1.6", places: 0, mode: RoundHalfUp, want: "-2"},
		{name: "half up two places", input: "1.005", places: 2, mode: RoundHalfUp, want: "1.01"},
		{name: "half up trims", input: "1.004", places: 2, mode: RoundHalfUp, want: "1"},
		{name: "floor positive", input: "1.29", places: 1, mode: RoundFloor, want: "1.2"},
		{name: "floor negative", input: "-1.21", places: 1, mode: RoundFloor, want: "-1.3"},
		{name: "ceil positive", input: "1.21", places: 1, mode: RoundCeil, want: "1.3"},
		{name: "ceil negative", input: "-1.29", places: 1, mode: RoundCeil, want: "-1.2"},
		{name: "trunc positive", input: "1.29", places: 1, mode: RoundTrunc, want: "1.2"},
		{name: "trunc negative", input: "-1.29", places: 1, mode: RoundTrunc, want: "-1.2"},
		{name: "integer unchanged", input: "42", places: 2, mode: RoundHalfUp, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromString(tt.input)
			if err != nil {
				t.Fatalf("FromString(%q) error: %v", tt.input, err)
			}
			got := d.Round(tt.places, tt.mode).String()
			if got != tt.want {
				t.Errorf("Round(%s, %d, %v) = %q, want %q", tt.input, tt.places, tt.mode, got, tt.want)
			}
		})
	}
}

func TestPowExact(t *testing.T) {
	tests := []struct {
		base, exp int
		want      string
	}{
		{1024, 0, "1"},
		{1024, 1, "1024"},
		{1024, 2, "1048576"},
		{1024, 8, "1208925819614629174706176"},
		{1000, 1, "1000"},
		{1000, 8, "1000000000000000000000000"},
	}

	for _, tt := range tests {
		if got := Pow(tt.base, tt.exp).String(); got != tt.want {
			t.Errorf("Pow(%d, %d) = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
		// Hit the memoized path too.
		if got := Pow(tt.base, tt.exp).String(); got != tt.want {
			t.Errorf("Pow(%d, %d) cached = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	q := FromInt(1).Div(FromInt(0))
	if !q.IsNaN() {
		t.Errorf("1/0 = %v, want NaN sentinel", q)
	}
	if _, ok := q.Float64(); ok {
		t.Error("Float64 of NaN sentinel reported ok")
	}
}

func TestNaNPropagates(t *testing.T) {
	n := NaN()
	for name, got := range map[string]Dec{
		"add": n.Add(FromInt(1)),
		"sub": FromInt(1).Sub(n),
		"mul": n.Mul(n),
		"div": FromInt(1).Div(n),
		"neg": n.Neg(),
		"abs": n.Abs(),
	} {
		if !got.IsNaN() {
			t.Errorf("%s: NaN did not propagate", name)
		}
	}
}

func TestFromFloatNonFinite(t *testing.T) {
	if !FromFloat(math.Inf(1)).IsNaN() {
		t.Error("FromFloat(+Inf) is not the NaN sentinel")
	}
	if !FromFloat(math.NaN()).IsNaN() {
		t.Error("FromFloat(NaN) is not the NaN sentinel")
	}
}

func TestFloat64Overflow(t *testing.T) {
	d, err := FromString("1e309")
	if err != nil {
		t.Fatalf("FromString(1e309) error: %v", err)
	}
	if _, ok := d.Float64(); ok {
		t.Error("Float64 of 1e309 reported ok, want overflow")
	}
}

func TestDivisionExactness(t *testing.T) {
	// 1536/1024 must be exactly 1.5, with no binary drift even when chained.
	v := FromInt(1536)
	for i := 0; i < 100; i++ {
		v = v.Div(FromInt(1024)).Mul(FromInt(1024))
	}
	if got := v.Div(FromInt(1024)).String(); got != "1.5" {
		t.Errorf("chained 1536/1024 = %q, want 1.5", got)
	}
}
