package attendance

import "strconv"

var ordinals = [...]string{"الأول", "الثاني", "الثالث", "الرابع", "الخامس", "السادس"}

// Ordinal renders a grade or class number as its ordinal word.
// Numbers without a word render as plain decimals.
func Ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return strconv.Itoa(n)
}
