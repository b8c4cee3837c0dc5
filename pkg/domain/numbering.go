package domain

import (
	"fmt"
	"strings"
)

// Official document number prefixes.
const (
	PrefixBill  = "LR" // legislative record
	PrefixCase  = "CR" // court record
	PrefixOrder = "EO" // executive order
)

// GenerateNumber formats an official document number, e.g. "EO-2024-007".
// Sequence numbers are per-collection global counters, not per-year: when the
// year rolls over the printed year changes but the sequence keeps counting.
func GenerateNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// ToRoman converts n to subtractive-notation Roman numerals. The symbol table
// covers 1..3999; out-of-range values are clamped to the nearest
// representable value (non-positive input yields the empty string) so the
// conversion stays deterministic.
func ToRoman(n int) string {
	if n <= 0 {
		return ""
	}
	if n > 3999 {
		n = 3999
	}
	var b strings.Builder
	for i, v := range romanValues {
		for n >= v {
			b.WriteString(romanSymbols[i])
			n -= v
		}
	}
	return b.String()
}
