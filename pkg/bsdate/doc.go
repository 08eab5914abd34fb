/*
Package bsdate implements calendar dates in Bikram Sambat (BS), the official
calendar of Nepal.

BS is a solar calendar whose month lengths vary year by year and do not follow a
closed formula, so the package carries a per-year table covering BS 1975 through
2100 (AD 1918–2044). Dates outside that range are rejected.

The Date type is an immutable value. Construction always validates against the
calendar table:

	d, err := bsdate.New(2078, 9, 1) // Poush 1, 2078
	if err != nil {
		// field out of range for that year/month
	}
	fmt.Println(d)            // 2078-09-01
	fmt.Println(d.Format())   // Poush 1, 2078

Conversion to and from Gregorian dates is exact day arithmetic against the
reference point BS 1975-01-01 == AD 1918-04-13:

	g := time.Date(2021, time.December, 16, 0, 0, 0, 0, time.UTC)
	d, _ := bsdate.FromTime(g) // 2078-09-01

Today is evaluated in Nepal time (UTC+05:45); see Today and FromTimestamp.
*/
package bsdate
