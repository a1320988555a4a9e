// Package currency handles display formatting of amounts kept in integer
// minor units (cents), so no float arithmetic ever touches a price.
package currency

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units.
type Money int64

var nonNumeric = regexp.MustCompile(`[^0-9.-]+`)

// Format renders cents as a USD display string, e.g. 123456 -> "$1,234.56".
func Format(m Money) string {

	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}

	dollars := int64(m) / 100
	cents := int64(m) % 100

	return fmt.Sprintf("%s$%s.%02d", sign, group(dollars), cents)
}

// Parse reads a display string back into cents, rounding to the nearest cent.
// Anything that is not a digit, dot or minus sign is stripped first.
func Parse(value string) (Money, error) {

	cleaned := nonNumeric.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in %q", value)
	}

	number, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	return Money(math.Round(number * 100)), nil
}

// group inserts thousands separators into a non-negative integer.
func group(n int64) string {

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
