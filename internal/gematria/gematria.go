// Package gematria computes Hebrew gematria values using the
// Mispar Gadol convention: final-form letters score the same as
// their base letter.
package gematria

import "strings"

// Hebrew letter block. U+05D0–U+05EA is contiguous and contains the
// 22 base letters plus the 5 final forms. The combining marks for
// niqqud and ta'amim (U+0591–U+05C7) sit below this range and are
// dropped by normalization like every other non-letter rune.
const (
	firstLetter = 'א' // א
	lastLetter  = 'ת' // ת
)

// letterValues is the canonical Mispar Gadol table. Initialized once,
// read-only after that.
var letterValues = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5,
	'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50,
	'ס': 60, 'ע': 70, 'פ': 80, 'צ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,

	// final forms
	'ך': 20, 'ם': 40, 'ן': 50, 'ף': 80, 'ץ': 90,
}

// LetterValue is one letter of a normalized word with its value.
type LetterValue struct {
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

func isHebrewLetter(r rune) bool {
	return r >= firstLetter && r <= lastLetter
}

// Normalize strips vowel points, cantillation marks and every
// non-Hebrew-letter rune, keeping the 27 consonantal letters in their
// original order. It never fails; the result may be empty.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isHebrewLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value returns the Mispar Gadol sum of s. Input does not need to be
// normalized; anything outside the letter table contributes 0. The
// empty string scores 0.
func Value(s string) int {
	sum := 0
	for _, r := range s {
		sum += letterValues[r]
	}
	return sum
}

// Breakdown returns one (letter, value) pair per letter of the
// normalized form of s, in order. The values always sum to Value(s).
func Breakdown(s string) []LetterValue {
	normalized := Normalize(s)
	out := make([]LetterValue, 0, len(normalized)/2)
	for _, r := range normalized {
		out = append(out, LetterValue{Letter: string(r), Value: letterValues[r]})
	}
	return out
}
