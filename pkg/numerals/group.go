package numerals

import (
	"errors"
	"strings"
)

// ErrNotANumber is returned by Group when the input contains anything other
// than digits of a single script (and an optional leading minus sign).
var ErrNotANumber = errors.New("numerals: input is not a number")

// Group inserts commas following the Nepali (lakh/crore) convention: the last
// three digits form one group, every group before it has two digits.
//
//	Group("12345678")  // "1,23,45,678"
//	Group("१२३४५६७")   // "१२,३४,५६७" (digits keep their script)
//
// The input must be a bare integer in ASCII or Devanagari digits, optionally
// signed. Mixed scripts are rejected.
func Group(s string) (string, error) {
	if s == "" {
		return "", ErrNotANumber
	}

	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	if body == "" {
		return "", ErrNotANumber
	}

	digits := []rune(body)
	ascii, devanagari := 0, 0
	for _, r := range digits {
		switch {
		case isASCIIDigit(r):
			ascii++
		case isDevanagariDigit(r):
			devanagari++
		default:
			return "", ErrNotANumber
		}
	}
	if ascii > 0 && devanagari > 0 {
		return "", ErrNotANumber
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	// Positions of the separators, counted from the right: after 3 digits,
	// then after every further 2.
	n := len(digits)
	for i, r := range digits {
		b.WriteRune(r)
		rem := n - i - 1
		if rem == 0 {
			continue
		}
		if rem == 3 || (rem > 3 && (rem-3)%2 == 0) {
			b.WriteByte(',')
		}
	}
	return b.String(), nil
}
