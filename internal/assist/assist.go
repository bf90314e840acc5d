// Package assist provides the practice-lab helpers: keyword hints,
// statement-kind detection and a rough complexity label for free-text
// SQL the learner types. All of it is heuristic, substring-level
// teaching feedback. It never parses SQL and must never be used as
// grading logic.
package assist

import (
	"regexp"
	"sort"
	"strings"
)

// StatementKind labels what kind of statement a query looks like.
type StatementKind string

const (
	KindSelect  StatementKind = "SELECT"
	KindInsert  StatementKind = "INSERT"
	KindUpdate  StatementKind = "UPDATE"
	KindDelete  StatementKind = "DELETE"
	KindCreate  StatementKind = "CREATE"
	KindAlter   StatementKind = "ALTER"
	KindDrop    StatementKind = "DROP"
	KindUnknown StatementKind = "UNKNOWN"
)

// Complexity labels roughly how involved a query is.
type Complexity string

const (
	ComplexitySimple       Complexity = "Simple"
	ComplexityIntermediate Complexity = "Intermediate"
	ComplexityComplex      Complexity = "Complex"
)

// DetectKind determines the statement kind from the leading keyword.
func DetectKind(query string) StatementKind {
	upper := strings.ToUpper(strings.TrimSpace(query))
	for _, kind := range []StatementKind{KindSelect, KindInsert, KindUpdate, KindDelete, KindCreate, KindAlter, KindDrop} {
		if strings.HasPrefix(upper, string(kind)) {
			return kind
		}
	}
	return KindUnknown
}

// MissingKeywords returns the expected keywords absent from the
// query, case-insensitively. An empty result means every expected
// keyword appears somewhere, which says nothing about whether the
// query is correct; it is only an encouragement hint.
func MissingKeywords(query string, expected []string) []string {
	upper := strings.ToUpper(query)
	var missing []string
	for _, keyword := range expected {
		if !strings.Contains(upper, strings.ToUpper(keyword)) {
			missing = append(missing, keyword)
		}
	}
	return missing
}

var tablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)FROM\s+(\w+)`),
	regexp.MustCompile(`(?i)JOIN\s+(\w+)`),
	regexp.MustCompile(`(?i)UPDATE\s+(\w+)`),
	regexp.MustCompile(`(?i)INSERT\s+INTO\s+(\w+)`),
	regexp.MustCompile(`(?i)DELETE\s+FROM\s+(\w+)`),
}

// Tables extracts the table names a query mentions, sorted and
// deduplicated. Regex-level extraction, good enough for the data
// explorer sidebar.
func Tables(query string) []string {
	seen := make(map[string]struct{})
	for _, pattern := range tablePatterns {
		for _, m := range pattern.FindAllStringSubmatch(query, -1) {
			seen[strings.ToLower(m[1])] = struct{}{}
		}
	}
	tables := make([]string, 0, len(seen))
	for name := range seen {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables
}

// AssessComplexity scores the query by the constructs it uses.
func AssessComplexity(query string) Complexity {
	upper := strings.ToUpper(query)
	score := 0
	if strings.Contains(upper, "JOIN") {
		score += 2
	}
	if strings.Contains(upper, "(") {
		score += 3
	}
	if strings.Contains(upper, "OVER") {
		score += 4
	}
	if strings.Contains(upper, "WITH") {
		score += 3
	}
	if strings.Contains(upper, "UNION") {
		score += 2
	}
	if strings.Contains(upper, "GROUP BY") {
		score++
	}
	if strings.Contains(upper, "ORDER BY") {
		score++
	}

	switch {
	case score <= 2:
		return ComplexitySimple
	case score <= 5:
		return ComplexityIntermediate
	default:
		return ComplexityComplex
	}
}

// Suggestions generates the advisory notes the editor page shows next
// to a query. Purely informative.
func Suggestions(query string) []string {
	upper := strings.ToUpper(query)
	var out []string

	if strings.Contains(upper, "SELECT *") {
		out = append(out, "Consider specifying column names instead of SELECT *")
	}
	if strings.Contains(upper, "SELECT") && !strings.Contains(upper, "WHERE") {
		out = append(out, "Consider adding a WHERE clause to filter results")
	}
	if strings.Contains(upper, "SELECT") && !strings.Contains(upper, "LIMIT") {
		out = append(out, "Consider adding a LIMIT clause for large datasets")
	}
	if strings.Count(upper, "JOIN") > 3 {
		out = append(out, "Multiple JOINs detected - consider restructuring the query")
	}
	return out
}
