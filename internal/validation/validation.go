// Package validation holds the pure field-format predicates shared by the
// services. Presence checks live with the DTO binding tags; these cover the
// formats binding cannot express.
package validation

import "regexp"

var (
	phonePattern   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	numericPattern = regexp.MustCompile(`^[0-9]+$`)
)

// IsValidPhone reports whether s is exactly ten ASCII digits with a leading
// digit in 6-9.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsNumeric reports whether s is a non-empty string of ASCII digits.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}
