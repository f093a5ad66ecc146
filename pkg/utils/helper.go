package utils

import "strconv"

// ParseInt converts a query value to a positive int, falling back to
// defaultValue on empty, malformed, or non-positive input.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
