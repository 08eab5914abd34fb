/*
Package nepalikit is a toolkit for working with Nepali data: Bikram Sambat calendar
dates, Devanagari numerals, and the administrative geography of Nepal (provinces,
districts, municipalities and wards).

The toolkit is a plain Go library first. The subpackages are independent and free of
I/O, so they can be embedded in any application. The repository also ships a CLI and
two server adapters (HTTP and MCP) built on the same packages.

# Packages

  - pkg/bsdate: the Bikram Sambat Date type, calendar table (BS 1975–2100),
    conversion to and from Gregorian dates, arithmetic and formatting.
  - pkg/numerals: transliteration between ASCII and Devanagari digits, and Nepali
    (lakh/crore) digit grouping.
  - pkg/geo: localized lookups over the provinces, districts and municipalities of
    Nepal, ward enumeration, hierarchy resolution and fuzzy place search.
  - pkg/ports: small interfaces (such as the result cache) implemented by the
    adapters under pkg/adapters.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/nepalikit/nepalikit/pkg/bsdate"
		"github.com/nepalikit/nepalikit/pkg/geo"
	)

	func main() {
		today, err := bsdate.Today()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(today) // e.g. 2082-05-09

		d, err := geo.DistrictByName("Kailali")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(d.NameEN, d.HeadquarterEN)
	}

# Data

Calendar and geography datasets are embedded in the library, so binaries are
self-contained. Entity IDs are stable upstream registry IDs and never change between
data releases.
*/
package nepalikit
