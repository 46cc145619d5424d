package util

import "strconv"

// ParseLimit interprets a limit query parameter. A value that parses to a
// non-negative integer caps the result count; anything else (missing,
// non-numeric, negative) means no cap.
func ParseLimit(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
