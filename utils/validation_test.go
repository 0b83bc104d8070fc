package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	for _, phone := range []string{"13800138000", "+86 138 0013 8000", "(021) 5555-1234", "12345"} {
		assert.True(t, ValidatePhone(phone), phone)
	}
	for _, phone := range []string{"", "1234", "phone", "+", "1234567890123456", "138x0013"} {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04", s)
		return t
	}
	assert.Equal(t, 0, DaysBetween(day("2024-06-10 23:59"), day("2024-06-10 00:01")))
	assert.Equal(t, 1, DaysBetween(day("2024-06-10 23:59"), day("2024-06-11 00:01")))
	assert.Equal(t, 7, DaysBetween(day("2024-12-28 08:00"), day("2025-01-04 08:00")))
	assert.Equal(t, -2, DaysBetween(day("2024-03-01 00:00"), day("2024-02-28 00:00")))
}
