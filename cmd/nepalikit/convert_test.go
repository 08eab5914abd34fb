package main

import "testing"

func TestDetectCalendar(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2078-09-01", "bs"},
		{"२०७८-०९-०१", "bs"},
		{"2100-12-30", "bs"},
		{"1974-12-31", "ad"},
		{"1918-04-13", "ad"},
		// Overlapping years lean Bikram Sambat.
		{"2015-04-25", "bs"},
		{"2044-01-01", "bs"},
		{"notadate", "bs"},
	}
	for _, tt := range tests {
		if got := detectCalendar(tt.date); got != tt.want {
			t.Errorf("detectCalendar(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
