/*
Package numerals converts between ASCII and Devanagari digits and formats numbers
the Nepali way.

Transliteration is rune-by-rune: digits are mapped, every other rune passes through
unchanged. That makes the functions safe on mixed content such as "Ward १२" or
formatted amounts.

	numerals.ToNepali("2078")       // "२०७८"
	numerals.ToEnglish("१२३")       // "123"
	numerals.Group("12345678")      // "1,23,45,678" (lakh/crore grouping)
*/
package numerals
