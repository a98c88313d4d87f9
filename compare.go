package hsize

// Cmp parses both sizes and compares their byte counts: -1 if a < b, 0 if
// equal, +1 if a > b.
func Cmp(a, b string) (int, error) {
	av, err := Parse(a, ParseOptions{})
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b, ParseOptions{})
	if err != nil {
		return 0, err
	}
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

// Gt reports whether size a is strictly larger than size b.
func Gt(a, b string) (bool, error) {
	c, err := Cmp(a, b)
	return c > 0, err
}

// Lt reports whether size a is strictly smaller than size b.
func Lt(a, b string) (bool, error) {
	c, err := Cmp(a, b)
	return c < 0, err
}
