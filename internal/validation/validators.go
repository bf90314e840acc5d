package validation

import (
	"fmt"
	"time"
)

// ValidateDate validates a date string in YYYY-MM-DD format. Date
// cells and date literals are plain strings everywhere else; this is
// the only place their shape is checked.
func ValidateDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD (e.g., '2024-01-13')")
	}
	return nil
}
