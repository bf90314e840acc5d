package assist_test

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/assist"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		query string
		want  assist.StatementKind
	}{
		{"SELECT * FROM employees", assist.KindSelect},
		{"  select id from t", assist.KindSelect},
		{"INSERT INTO t VALUES (1)", assist.KindInsert},
		{"UPDATE t SET a = 1", assist.KindUpdate},
		{"DELETE FROM t", assist.KindDelete},
		{"CREATE TABLE t (id INT)", assist.KindCreate},
		{"DROP TABLE t", assist.KindDrop},
		{"EXPLAIN SELECT 1", assist.KindUnknown},
	}
	for _, tc := range cases {
		if got := assist.DetectKind(tc.query); got != tc.want {
			t.Errorf("DetectKind(%q) = %s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestMissingKeywords(t *testing.T) {
	query := "SELECT dept, COUNT(*) FROM employees GROUP BY dept"

	missing := assist.MissingKeywords(query, []string{"SELECT", "GROUP BY", "HAVING"})
	if len(missing) != 1 || missing[0] != "HAVING" {
		t.Errorf("expected only HAVING missing, got %v", missing)
	}

	if got := assist.MissingKeywords(query, []string{"select", "from"}); got != nil {
		t.Errorf("keyword check should be case-insensitive, got %v", got)
	}
}

func TestTables(t *testing.T) {
	query := "SELECT * FROM employees JOIN orders ON employees.id = orders.employee_id"

	tables := assist.Tables(query)
	if len(tables) != 2 || tables[0] != "employees" || tables[1] != "orders" {
		t.Errorf("expected [employees orders], got %v", tables)
	}
}

func TestAssessComplexity(t *testing.T) {
	cases := []struct {
		query string
		want  assist.Complexity
	}{
		{"SELECT * FROM t", assist.ComplexitySimple},
		{"SELECT * FROM a JOIN b ORDER BY x", assist.ComplexityIntermediate},
		{"SELECT RANK() OVER (ORDER BY x) FROM t GROUP BY y", assist.ComplexityComplex},
	}
	for _, tc := range cases {
		if got := assist.AssessComplexity(tc.query); got != tc.want {
			t.Errorf("AssessComplexity(%q) = %s, want %s", tc.query, got, tc.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	suggestions := assist.Suggestions("SELECT * FROM t")
	if len(suggestions) != 3 {
		t.Errorf("expected star, where and limit hints, got %v", suggestions)
	}

	suggestions = assist.Suggestions("SELECT id FROM t WHERE id = 1 LIMIT 10")
	if len(suggestions) != 0 {
		t.Errorf("expected no hints, got %v", suggestions)
	}
}
