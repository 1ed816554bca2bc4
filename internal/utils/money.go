package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRating renders a star rating with two decimals.
func FormatRating(stars float64) string {
	return fmt.Sprintf("%.2f", stars)
}

// FormatRupee renders an integer fare with thousand separators, e.g. "₹1,200".
func FormatRupee(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}

// FormatINR is FormatRupee for outputs without the rupee glyph (PDF core fonts).
func FormatINR(amount int64) string {
	if amount < 0 {
		return "-INR " + formatThousand(-amount)
	}
	return "INR " + formatThousand(amount)
}
