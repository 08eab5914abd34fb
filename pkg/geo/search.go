package geo

import (
	"sort"
	"strings"

	"github.com/nepalikit/nepalikit/internal/fuzzy"
)

// Kind identifies which register a search match came from.
type Kind string

const (
	KindProvince     Kind = "province"
	KindDistrict     Kind = "district"
	KindMunicipality Kind = "municipality"
)

// Match is one scored search result. Score is 0 through 100.
type Match struct {
	Kind   Kind   `json:"kind"`
	ID     int    `json:"id"`
	NameEN string `json:"name_en"`
	NameNP string `json:"name_np"`
	Score  int    `json:"score"`
}

const (
	// DefaultThreshold is the minimum score a candidate must reach.
	DefaultThreshold = 80
	// DefaultLimit caps how many matches Search returns.
	DefaultLimit = 5
)

type searchConfig struct {
	threshold int
	limit     int
	kinds     map[Kind]bool // nil means all
}

// SearchOption adjusts how Search filters and ranks candidates.
type SearchOption func(*searchConfig)

// WithThreshold overrides the minimum score, 0 through 100.
func WithThreshold(n int) SearchOption {
	return func(c *searchConfig) { c.threshold = n }
}

// WithLimit overrides the match cap. Zero or negative lifts the cap.
func WithLimit(n int) SearchOption {
	return func(c *searchConfig) { c.limit = n }
}

// WithKinds restricts the search to the given registers.
func WithKinds(kinds ...Kind) SearchOption {
	return func(c *searchConfig) {
		c.kinds = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			c.kinds[k] = true
		}
	}
}

// designations are trimmed from candidate names before scoring so that bare
// place names ("bhimdatta", "koshi") rate against the name proper rather than
// the full official designation. Longer designations come first because
// trimming stops at the first hit.
var designations = []string{
	" sub-metropolitan city",
	" metropolitan city",
	" rural municipality",
	" municipality",
	" province",
	" उपमहानगरपालिका",
	" महानगरपालिका",
	" गाउँपालिका",
	" नगरपालिका",
	" प्रदेश",
}

func trimDesignation(name string) string {
	folded := strings.ToLower(name)
	for _, s := range designations {
		if strings.HasSuffix(folded, s) {
			return name[:len(folded)-len(s)]
		}
	}
	return name
}

// Search ranks provinces, districts and municipalities against query using a
// token-sort Levenshtein ratio over both localizations, with and without the
// official designation. Results come back ordered by score, then register,
// then ID. Nothing above the threshold yields ErrNoMatch.
func Search(query string, opts ...SearchOption) ([]Match, error) {
	cfg := searchConfig{threshold: DefaultThreshold, limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := fuzzy.Normalize(query)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	d := load()
	var matches []Match
	if cfg.wants(KindProvince) {
		for _, p := range d.provinces {
			if score := scoreNames(q, p.NameEN, p.NameNP); score >= cfg.threshold {
				matches = append(matches, Match{Kind: KindProvince, ID: p.ID, NameEN: p.NameEN, NameNP: p.NameNP, Score: score})
			}
		}
	}
	if cfg.wants(KindDistrict) {
		for _, dist := range d.districts {
			if score := scoreNames(q, dist.NameEN, dist.NameNP); score >= cfg.threshold {
				matches = append(matches, Match{Kind: KindDistrict, ID: dist.ID, NameEN: dist.NameEN, NameNP: dist.NameNP, Score: score})
			}
		}
	}
	if cfg.wants(KindMunicipality) {
		for _, m := range d.municipalities {
			if score := scoreNames(q, m.NameEN, m.NameNP); score >= cfg.threshold {
				matches = append(matches, Match{Kind: KindMunicipality, ID: m.ID, NameEN: m.NameEN, NameNP: m.NameNP, Score: score})
			}
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Kind != matches[j].Kind {
			return kindRank(matches[i].Kind) < kindRank(matches[j].Kind)
		}
		return matches[i].ID < matches[j].ID
	})
	if cfg.limit > 0 && len(matches) > cfg.limit {
		matches = matches[:cfg.limit]
	}
	return matches, nil
}

func (c *searchConfig) wants(k Kind) bool {
	return c.kinds == nil || c.kinds[k]
}

func kindRank(k Kind) int {
	switch k {
	case KindProvince:
		return 0
	case KindDistrict:
		return 1
	default:
		return 2
	}
}

func scoreNames(q string, names ...string) int {
	best := 0
	for _, name := range names {
		if s := fuzzy.TokenSortRatio(q, name); s > best {
			best = s
		}
		if trimmed := trimDesignation(name); trimmed != name {
			if s := fuzzy.TokenSortRatio(q, trimmed); s > best {
				best = s
			}
		}
	}
	return best
}
