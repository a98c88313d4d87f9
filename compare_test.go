package hsize

import (
	"errors"
	"testing"
)

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "greater", a: "1 KiB", b: "1000 B", want: 1},
		{name: "less", a: "1 MB", b: "2 MB", want: -1},
		{name: "equal across notations", a: "1 kB", b: "1000", want: 0},
		{name: "equal across systems", a: "1 KiB", b: "1024 B", want: 0},
		{name: "negative versus positive", a: "-1 KiB", b: "1 B", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cmp(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cmp(%q, %q) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Cmp(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if _, err := Cmp("garbage", "1 KiB"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Cmp(garbage) error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := Cmp("1 KiB", ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Cmp with empty operand error = %v, want %v", err, ErrEmptyInput)
	}
}

func TestGtLt(t *testing.T) {
	gt, err := Gt("2 KiB", "1 KiB")
	if err != nil {
		t.Fatal(err)
	}
	if !gt {
		t.Error("Gt(2 KiB, 1 KiB) = false, want true")
	}

	lt, err := Lt("1 KiB", "1 MiB")
	if err != nil {
		t.Fatal(err)
	}
	if !lt {
		t.Error("Lt(1 KiB, 1 MiB) = false, want true")
	}

	eq, err := Gt("1 KiB", "1024 B")
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("Gt(1 KiB, 1024 B) = true, want false")
	}
}
