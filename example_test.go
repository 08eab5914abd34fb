package nepalikit_test

import (
	"fmt"
	"log"
	"time"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/geo"
	"github.com/nepalikit/nepalikit/pkg/numerals"
)

// Example_convertDate converts a Gregorian date to Bikram Sambat and back.
func Example_convertDate() {
	// 1. Convert a Gregorian date (here 2015-04-25, the Gorkha earthquake)
	d, err := bsdate.FromTime(time.Date(2015, time.April, 25, 0, 0, 0, 0, time.UTC))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s (%s)\n", d, d.Weekday())

	// 2. Round-trip back to Gregorian
	fmt.Println(d.Time().Format("2006-01-02"))

	// 3. Render with the Devanagari month name and digits
	fmt.Println(d.FormatNepali())
	// Output:
	// 2072-01-12 (Saturday)
	// 2015-04-25
	// वैशाख १२, २०७२
}

// Example_formatNumbers transliterates and groups digit strings.
func Example_formatNumbers() {
	// Digits convert per rune, so mixed text passes through unchanged.
	fmt.Println(numerals.ToNepali("2082"))
	fmt.Println(numerals.FormatInt(753))

	// Grouping follows the lakh/crore convention, not western thousands.
	grouped, err := numerals.Group("123456789")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(grouped)

	fmt.Println(numerals.IsNepali("२०८२"))
	// Output:
	// २०८२
	// ७५३
	// 12,34,56,789
	// true
}

// Example_searchPlaces finds a misspelled place and walks its hierarchy.
func Example_searchPlaces() {
	// 1. Fuzzy search tolerates typos ("Bhimdatta" missing a t)
	matches, err := geo.Search("bhimdata")
	if err != nil {
		log.Fatal(err)
	}
	best := matches[0]
	fmt.Printf("%s (score %d)\n", best.NameEN, best.Score)

	// 2. Resolve the full administrative chain above the match
	h, err := geo.HierarchyOf(best.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s > %s > %s\n",
		h.Province.Name(geo.LangEnglish),
		h.District.Name(geo.LangEnglish),
		h.Municipality.Name(geo.LangEnglish))
	fmt.Printf("%d wards\n", len(h.Municipality.Wards()))
	// Output:
	// Bhimdatta Municipality (score 89)
	// Sudurpashchim Province > Kanchanpur > Bhimdatta Municipality
	// 19 wards
}
