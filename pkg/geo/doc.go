/*
Package geo provides lookups over the federal administrative divisions of
Nepal: seven provinces, seventy-seven districts and their municipalities with
ward counts.

The datasets are embedded in the package, so lookups never touch the network
or the filesystem. Provinces and districts are complete; municipality coverage
grows with data releases and currently spans the metropolitan and
sub-metropolitan cities plus all local units of the fully covered districts.
Entity IDs are the nationwide local-unit registry IDs and are stable across
releases.

Names and headquarters are localized; pass LangEnglish or LangNepali to the
Name and Headquarter accessors. Exact lookups go through the ByID and ByName
functions, approximate ones through Search:

	d, err := geo.DistrictByName("Kailali")
	matches, err := geo.Search("bhimdatta")

Search scores candidates with a token-sort Levenshtein ratio and drops
everything below its threshold (80 by default).
*/
package geo
