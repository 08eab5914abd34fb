package bsdate

import (
	"fmt"
	"time"
)

// Month is a month of the Bikram Sambat year, Baishakh (1) through Chaitra (12).
type Month int

const (
	Baishakh Month = 1 + iota
	Jestha
	Ashadh
	Shrawan
	Bhadra
	Ashwin
	Kartik
	Mangsir
	Poush
	Magh
	Falgun
	Chaitra
)

var monthNamesEnglish = [...]string{
	"Baishakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
	"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
}

var monthNamesNepali = [...]string{
	"वैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
	"कात्तिक", "मंसिर", "पुस", "माघ", "फागुन", "चैत",
}

// String returns the romanized month name, or "%!Month(n)" if m is out of range.
func (m Month) String() string {
	if m < Baishakh || m > Chaitra {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNamesEnglish[m-1]
}

// Nepali returns the Devanagari month name, or "" if m is out of range.
func (m Month) Nepali() string {
	if m < Baishakh || m > Chaitra {
		return ""
	}
	return monthNamesNepali[m-1]
}

var weekdayNamesNepali = [...]string{
	"आइतबार", "सोमबार", "मङ्गलबार", "बुधबार", "बिहीबार", "शुक्रबार", "शनिबार",
}

// WeekdayNepali returns the Devanagari name of w (Sunday through Saturday).
func WeekdayNepali(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return ""
	}
	return weekdayNamesNepali[w]
}
