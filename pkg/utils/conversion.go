package utils

import (
	"strconv"
	"strings"
)

// StringToUint64 parses an ID taken from a URL parameter. Returns 0 when the
// value is not a positive integer.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(strings.TrimSpace(str), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// StringToInt parses a query value, falling back to def when empty or invalid.
func StringToInt(str string, def int) int {
	if str == "" {
		return def
	}
	val, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return def
	}
	return val
}
