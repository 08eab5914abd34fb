package geo

import (
	"errors"
	"testing"
)

func TestSearchExact(t *testing.T) {
	matches, err := Search("bhimdatta")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if matches[0].Kind != KindMunicipality || matches[0].ID != 732 || matches[0].Score != 100 {
		t.Errorf("Search(bhimdatta)[0] = %+v", matches[0])
	}
}

func TestSearchRanksDistrictBeforeMunicipality(t *testing.T) {
	matches, err := Search("kathmandu")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) < 2 {
		t.Fatalf("Search(kathmandu) = %d matches, want at least 2", len(matches))
	}
	if matches[0].Kind != KindDistrict || matches[0].ID != 27 {
		t.Errorf("first match = %+v, want district 27", matches[0])
	}
	if matches[1].Kind != KindMunicipality || matches[1].ID != 307 {
		t.Errorf("second match = %+v, want municipality 307", matches[1])
	}
}

func TestSearchTypoToleration(t *testing.T) {
	matches, err := Search("madesh")
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Kind != KindProvince || matches[0].ID != 2 {
		t.Errorf("Search(madesh)[0] = %+v, want Madhesh Province", matches[0])
	}
	if matches[0].Score >= 100 || matches[0].Score < DefaultThreshold {
		t.Errorf("typo score = %d, want within [%d, 100)", matches[0].Score, DefaultThreshold)
	}
}

func TestSearchDevanagari(t *testing.T) {
	matches, err := Search("भीमदत्त")
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].ID != 732 || matches[0].Score != 100 {
		t.Errorf("Search(भीमदत्त)[0] = %+v", matches[0])
	}
}

func TestSearchDuplicateNamesOrderByID(t *testing.T) {
	matches, err := Search("godawari", WithKinds(KindMunicipality))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search(godawari) = %d matches, want 2", len(matches))
	}
	if matches[0].ID != 332 || matches[1].ID != 746 {
		t.Errorf("Search(godawari) IDs = %d, %d; want 332, 746", matches[0].ID, matches[1].ID)
	}
}

func TestSearchKindsFilter(t *testing.T) {
	matches, err := Search("kathmandu", WithKinds(KindMunicipality))
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.Kind != KindMunicipality {
			t.Errorf("unexpected kind %s in filtered search", m.Kind)
		}
	}
	if matches[0].ID != 307 {
		t.Errorf("filtered first match = %+v", matches[0])
	}
}

func TestSearchLimit(t *testing.T) {
	matches, err := Search("mahakali", WithLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("WithLimit(1) returned %d matches", len(matches))
	}
	if matches[0].ID != 714 {
		t.Errorf("capped match = %+v, want municipality 714", matches[0])
	}
}

func TestSearchThreshold(t *testing.T) {
	// "lalit" against "Lalitpur" misses the default threshold but clears a
	// relaxed one.
	if _, err := Search("lalit"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Search(lalit): got %v, want ErrNoMatch", err)
	}
	matches, err := Search("lalit", WithThreshold(60))
	if err != nil {
		t.Fatal(err)
	}
	if matches[0].Kind != KindDistrict || matches[0].ID != 29 {
		t.Errorf("relaxed Search(lalit)[0] = %+v", matches[0])
	}
}

func TestSearchNoMatch(t *testing.T) {
	if _, err := Search("zzzzzz"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Search(zzzzzz): got %v, want ErrNoMatch", err)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   "} {
		if _, err := Search(q); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q): got %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestTrimDesignation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bhimdatta Municipality", "Bhimdatta"},
		{"Itahari Sub-Metropolitan City", "Itahari"},
		{"Kathmandu Metropolitan City", "Kathmandu"},
		{"Hatuwagadhi Rural Municipality", "Hatuwagadhi"},
		{"Koshi Province", "Koshi"},
		{"भीमदत्त नगरपालिका", "भीमदत्त"},
		{"इटहरी उपमहानगरपालिका", "इटहरी"},
		{"कोशी प्रदेश", "कोशी"},
		{"Kailali", "Kailali"},
	}
	for _, tt := range tests {
		if got := trimDesignation(tt.in); got != tt.want {
			t.Errorf("trimDesignation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
