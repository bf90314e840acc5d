package data_test

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/domain/data"
)

// TestCompare_MixedNumerics tests that int and float cells compare
// numerically regardless of representation.
func TestCompare_MixedNumerics(t *testing.T) {
	cases := []struct {
		a, b interface{}
		want int
	}{
		{int64(2), 2.0, 0},
		{int64(2), 2.5, -1},
		{3.5, int64(3), 1},
		{int(7), int64(7), 0},
	}
	for _, tc := range cases {
		got, ok := data.Compare(tc.a, tc.b)
		if !ok || got != tc.want {
			t.Errorf("Compare(%v, %v) = %d,%v, want %d", tc.a, tc.b, got, ok, tc.want)
		}
	}
}

// TestCompare_NullOrdering tests that NULL sorts before everything.
func TestCompare_NullOrdering(t *testing.T) {
	if c, ok := data.Compare(nil, int64(0)); !ok || c != -1 {
		t.Errorf("NULL vs 0: got %d,%v", c, ok)
	}
	if c, ok := data.Compare("x", nil); !ok || c != 1 {
		t.Errorf("'x' vs NULL: got %d,%v", c, ok)
	}
	if c, ok := data.Compare(nil, nil); !ok || c != 0 {
		t.Errorf("NULL vs NULL: got %d,%v", c, ok)
	}
}

// TestCompare_IncompatibleKinds tests that strings never compare
// against numbers.
func TestCompare_IncompatibleKinds(t *testing.T) {
	if _, ok := data.Compare("10", int64(10)); ok {
		t.Error("string vs int must not be comparable")
	}
	if _, ok := data.Compare(true, "true"); ok {
		t.Error("bool vs string must not be comparable")
	}
}

// TestRow_CopyIsIndependent tests that a copied row does not alias
// the original.
func TestRow_CopyIsIndependent(t *testing.T) {
	row := data.Row{"id": int64(1), "name": "Alice"}
	cp := row.Copy()
	cp["name"] = "Bob"

	if row["name"] != "Alice" {
		t.Errorf("copy mutated the original: %v", row["name"])
	}
}

// TestRow_IsNull tests NULL detection for nil cells and missing columns.
func TestRow_IsNull(t *testing.T) {
	row := data.Row{"bonus": nil, "salary": int64(1)}

	if !row.IsNull("bonus") {
		t.Error("nil cell should be NULL")
	}
	if !row.IsNull("missing") {
		t.Error("missing column should count as NULL")
	}
	if row.IsNull("salary") {
		t.Error("salary is not NULL")
	}
}
