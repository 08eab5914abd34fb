package numerals

import "strconv"

// Devanagari digit zero. The ten digits ०..९ occupy the contiguous range
// U+0966..U+096F, so both directions are plain offsets.
const devanagariZero = '०'

func isASCIIDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isDevanagariDigit(r rune) bool { return r >= devanagariZero && r <= devanagariZero+9 }

// ToNepali replaces every ASCII digit in s with the corresponding Devanagari
// digit. All other runes are passed through unchanged.
func ToNepali(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if isASCIIDigit(r) {
			r = devanagariZero + (r - '0')
		}
		out = append(out, r)
	}
	return string(out)
}

// ToEnglish replaces every Devanagari digit in s with the corresponding ASCII
// digit. All other runes are passed through unchanged.
func ToEnglish(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if isDevanagariDigit(r) {
			r = '0' + (r - devanagariZero)
		}
		out = append(out, r)
	}
	return string(out)
}

// FormatInt renders n in Devanagari digits (with a leading ASCII minus sign for
// negative values, matching how signed numbers are written in Nepali text).
func FormatInt(n int64) string {
	return ToNepali(strconv.FormatInt(n, 10))
}

// IsNepali reports whether s consists entirely of Devanagari digits.
// The empty string is not a number, so IsNepali("") is false.
func IsNepali(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDevanagariDigit(r) {
			return false
		}
	}
	return true
}
