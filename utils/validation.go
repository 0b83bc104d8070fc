// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{5,15}$`)

// ValidatePhone accepts local or international numbers of 5 to 15 digits,
// ignoring spaces, dashes and parentheses.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(CleanPhone(phone))
}

func CleanPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}
