package domain

import (
	"strconv"
	"strings"
)

// ParseClock parses an "HH:MM" 24-hour time into minutes since midnight.
// The hour may be written with one digit; minutes always take two. Hours run 0-23 and
// minutes 0-59, so "24:00" and "12:60" are rejected.
func ParseClock(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) < 1 || len(h) > 2 || len(m) != 2 || !allDigits(h) || !allDigits(m) {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
