package hsize

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Match
	}{
		{
			name:  "single size",
			input: "Size: 1 KiB",
			want: []Match{
				{Value: 1, Unit: "KiB", Bytes: 1024, Input: "1 KiB", Start: 6, End: 11},
			},
		},
		{
			name:  "multiple sizes in order",
			input: "ship 2 files of 1 GiB and 512 MB",
			want: []Match{
				{Value: 2, Bytes: 2, Input: "2", Start: 5, End: 6},
				{Value: 1, Unit: "GiB", Bytes: 1 << 30, Input: "1 GiB", Start: 16, End: 21},
				{Value: 512, Unit: "MB", Bytes: 512 << 20, Input: "512 MB", Start: 26, End: 32},
			},
		},
		{
			name:  "long unit name",
			input: "downloaded 2 megabytes so far",
			want: []Match{
				{Value: 2, Unit: "megabytes", Bytes: 2_000_000, Input: "2 megabytes", Start: 11, End: 22},
			},
		},
		{
			name:  "negative and decimal",
			input: "delta -1.5 KiB",
			want: []Match{
				{Value: -1.5, Unit: "KiB", Bytes: -1536, Input: "-1.5 KiB", Start: 6, End: 14},
			},
		},
		{
			name:  "no digits",
			input: "nothing to see here",
			want:  nil,
		},
		{
			name:  "overflow dropped",
			input: "1e309 bytes",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSpans(t *testing.T) {
	input := "between 1 KiB and 2 KiB"
	for _, m := range Extract(input) {
		if input[m.Start:m.End] != m.Input {
			t.Errorf("span [%d:%d] = %q, want %q", m.Start, m.End, input[m.Start:m.End], m.Input)
		}
	}
}
