// Package parse implements the loose operand parsing shared by both front
// ends: the longest leading numeric prefix of the input is taken, so "10abc"
// parses as 10. Surrounding whitespace is ignored.
package parse

import (
	"strconv"
	"strings"
)

// Float parses the leading numeric prefix of s. It reports false when no
// numeric prefix exists at all.
func Float(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < n && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	end := i

	// Optional exponent; only consumed when it is complete ("1e" stays 1).
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < n && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
