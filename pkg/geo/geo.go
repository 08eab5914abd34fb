package geo

import "errors"

// Language selects which localization of a name to return.
type Language string

const (
	LangEnglish Language = "en"
	LangNepali  Language = "np"
)

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool { return l == LangEnglish || l == LangNepali }

var (
	// ErrNotFound is returned by exact lookups that match nothing.
	ErrNotFound = errors.New("geo: not found")
	// ErrNoMatch is returned by Search when nothing clears the threshold.
	ErrNoMatch = errors.New("geo: no match above threshold")
	// ErrEmptyQuery is returned by Search for a blank query.
	ErrEmptyQuery = errors.New("geo: empty query")
)

// Province is one of the seven federal provinces.
type Province struct {
	ID            int    `json:"id"`
	NameEN        string `json:"name_en"`
	NameNP        string `json:"name_np"`
	HeadquarterEN string `json:"headquarter_en"`
	HeadquarterNP string `json:"headquarter_np"`
}

// Name returns the province name in l, defaulting to English.
func (p Province) Name(l Language) string {
	if l == LangNepali {
		return p.NameNP
	}
	return p.NameEN
}

// Headquarter returns the provincial headquarters in l, defaulting to English.
func (p Province) Headquarter(l Language) string {
	if l == LangNepali {
		return p.HeadquarterNP
	}
	return p.HeadquarterEN
}

// District is one of the seventy-seven districts.
type District struct {
	ID            int    `json:"id"`
	ProvinceID    int    `json:"province_id"`
	NameEN        string `json:"name_en"`
	NameNP        string `json:"name_np"`
	HeadquarterEN string `json:"headquarter_en"`
	HeadquarterNP string `json:"headquarter_np"`
}

// Name returns the district name in l, defaulting to English.
func (d District) Name(l Language) string {
	if l == LangNepali {
		return d.NameNP
	}
	return d.NameEN
}

// Headquarter returns the district headquarters in l, defaulting to English.
func (d District) Headquarter(l Language) string {
	if l == LangNepali {
		return d.HeadquarterNP
	}
	return d.HeadquarterEN
}

// Municipality is a local unit: a metropolitan city, sub-metropolitan city,
// municipality or rural municipality. The full designation is part of the name.
type Municipality struct {
	ID         int    `json:"id"`
	DistrictID int    `json:"district_id"`
	NameEN     string `json:"name_en"`
	NameNP     string `json:"name_np"`
	WardCount  int    `json:"ward_count"`
}

// Name returns the municipality name in l, defaulting to English.
func (m Municipality) Name(l Language) string {
	if l == LangNepali {
		return m.NameNP
	}
	return m.NameEN
}

// Wards enumerates the municipality's ward numbers, 1 through WardCount.
func (m Municipality) Wards() []int {
	wards := make([]int, m.WardCount)
	for i := range wards {
		wards[i] = i + 1
	}
	return wards
}

// Hierarchy is the full administrative chain above a municipality.
type Hierarchy struct {
	Province     Province     `json:"province"`
	District     District     `json:"district"`
	Municipality Municipality `json:"municipality"`
}
