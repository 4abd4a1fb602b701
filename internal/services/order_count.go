package services

import (
	"route-time-service/internal/domain"
	"strconv"
	"strings"
	"unicode"
)

// ParseOrderCount turns free-form input into an order count.
//
// Leading whitespace is skipped and the leading integer is taken, so "12abc"
// is 12 and "3.9" is 3. Input without digits, negative values and values
// above domain.MaxOrderCount all become 0.
func ParseOrderCount(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 || n > domain.MaxOrderCount {
		return 0
	}
	return n
}
