package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer path id
func ParseID(raw string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
