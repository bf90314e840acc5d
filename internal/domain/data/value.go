package data

import "strings"

// AsFloat converts a numeric cell value to float64.
// Returns false for anything that is not an int, int64 or float64.
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AsInt64 converts a numeric cell value to int64 when it is a whole number.
func AsInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

// Compare orders two cell values of compatible kinds.
// Returns -1, 0 or 1 and true when the values are comparable:
// numbers compare numerically (int and float mix freely), strings
// lexicographically, bools with false < true. NULL sorts before any
// non-NULL value. Returns false for incompatible kinds.
func Compare(a, b interface{}) (int, bool) {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0, true
		case a == nil:
			return -1, true
		default:
			return 1, true
		}
	}

	if af, aok := AsFloat(a); aok {
		bf, bok := AsFloat(b)
		if !bok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}

	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case ab == bb:
			return 0, true
		case !ab:
			return -1, true
		default:
			return 1, true
		}
	}

	return 0, false
}

// Equal reports whether two cell values are equal under Compare semantics.
// Incomparable kinds are never equal.
func Equal(a, b interface{}) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}
