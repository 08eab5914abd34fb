package bsdate

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nepalikit/nepalikit/pkg/numerals"
)

// ErrOutOfRange reports a date outside the span covered by the calendar table.
var ErrOutOfRange = errors.New("bsdate: date out of supported range")

// anchor pins BS 1975-01-01 to its Gregorian equivalent, a Saturday.
var anchor = time.Date(1918, time.April, 13, 0, 0, 0, 0, time.UTC)

// Kathmandu is Nepal time (UTC+05:45). It is the IANA Asia/Kathmandu zone when
// the host has zoneinfo and a fixed offset otherwise.
var Kathmandu = loadKathmandu()

func loadKathmandu() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kathmandu"); err == nil {
		return loc
	}
	return time.FixedZone("+0545", 5*3600+45*60)
}

// Date is a calendar date in Bikram Sambat. The zero value is not a usable
// date; construct values with New, Parse, FromTime, FromTimestamp or Today.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the date year/month/day, validating every field against the
// calendar table. The error is a *FieldError naming the offending field.
func New(year int, month Month, day int) (Date, error) {
	dim, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > dim {
		return Date{}, &FieldError{Field: "day", Value: day, Min: 1, Max: dim}
	}
	return Date{year: year, month: month, day: day}, nil
}

// Parse reads a date in YYYY-MM-DD form. Devanagari digits are accepted.
func Parse(s string) (Date, error) {
	parts := strings.Split(numerals.ToEnglish(strings.TrimSpace(s)), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("bsdate: parse %q: want YYYY-MM-DD", s)
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Date{}, fmt.Errorf("bsdate: parse %q: want YYYY-MM-DD", s)
	}
	return New(y, Month(m), d)
}

// FromTime converts the civil date carried by t, in t's own location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	g := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return fromOffset(int(g.Sub(anchor) / (24 * time.Hour)))
}

// FromTimestamp converts a Unix timestamp to the BS date it falls on in Nepal.
func FromTimestamp(sec int64) (Date, error) {
	return FromTime(time.Unix(sec, 0).In(Kathmandu))
}

// Today returns the current date in Nepal.
func Today() (Date, error) {
	return FromTimestamp(time.Now().Unix())
}

// Year returns the BS year.
func (d Date) Year() int { return d.year }

// Month returns the BS month.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Time returns midnight of d in Nepal time.
func (d Date) Time() time.Time {
	g := anchor.AddDate(0, 0, d.offset())
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, Kathmandu)
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((int(time.Saturday) + d.offset()) % 7)
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) (Date, error) {
	return fromOffset(d.offset() + n)
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int {
	return d.offset() - o.offset()
}

// WithYear returns d with the year replaced, revalidating the result.
func (d Date) WithYear(year int) (Date, error) { return New(year, d.month, d.day) }

// WithMonth returns d with the month replaced, revalidating the result.
func (d Date) WithMonth(month Month) (Date, error) { return New(d.year, month, d.day) }

// WithDay returns d with the day replaced, revalidating the result.
func (d Date) WithDay(day int) (Date, error) { return New(d.year, d.month, day) }

// Equal reports whether d and o are the same date.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d falls after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Compare orders d against o: -1 if earlier, 0 if equal, +1 if later.
func (d Date) Compare(o Date) int {
	if d.year != o.year {
		if d.year < o.year {
			return -1
		}
		return 1
	}
	if d.month != o.month {
		if d.month < o.month {
			return -1
		}
		return 1
	}
	if d.day != o.day {
		if d.day < o.day {
			return -1
		}
		return 1
	}
	return 0
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// StringNepali renders d as YYYY-MM-DD in Devanagari digits.
func (d Date) StringNepali() string {
	return numerals.ToNepali(d.String())
}

// Format renders d with the romanized month name, e.g. "Poush 1, 2078".
func (d Date) Format() string {
	return fmt.Sprintf("%s %d, %d", d.month, d.day, d.year)
}

// FormatNepali renders d with Devanagari month name and digits,
// e.g. "पुस १, २०७८".
func (d Date) FormatNepali() string {
	return fmt.Sprintf("%s %s, %s",
		d.month.Nepali(),
		numerals.FormatInt(int64(d.day)),
		numerals.FormatInt(int64(d.year)))
}

// MarshalText encodes d as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes and validates a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// offset is the number of days from BS MinYear-01-01 to d.
func (d Date) offset() int {
	yi := d.year - MinYear
	off := yearStart[yi]
	for m := 0; m < int(d.month)-1; m++ {
		off += monthDays[yi][m]
	}
	return off + d.day - 1
}

func fromOffset(off int) (Date, error) {
	if off < 0 || off >= yearStart[len(yearStart)-1] {
		return Date{}, ErrOutOfRange
	}
	yi := sort.Search(len(monthDays), func(i int) bool { return yearStart[i+1] > off })
	rem := off - yearStart[yi]
	m := 0
	for rem >= monthDays[yi][m] {
		rem -= monthDays[yi][m]
		m++
	}
	return Date{year: MinYear + yi, month: Month(m + 1), day: rem + 1}, nil
}
