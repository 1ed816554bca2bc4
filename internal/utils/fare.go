package utils

import (
	"strconv"
	"strings"
)

// NormalizeFare pulls every digit out of a stored fare ("INR 1,200", "₹ 850")
// and reads them as one integer. No digits, or a run too long for int64, gives 0.
//
// Digits are concatenated in order regardless of what separates them, so
// "Rs 1 night 2" reads as 12. Decimal fares are not understood either:
// "499.50" reads as 49950.
func NormalizeFare(raw string) int64 {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FareInRange reports whether fare lies in [min, max]. An inverted range matches nothing.
func FareInRange(fare, min, max int64) bool {
	return fare >= min && fare <= max
}
