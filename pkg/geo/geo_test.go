package geo

import (
	"errors"
	"sort"
	"testing"
)

func TestDatasetValid(t *testing.T) {
	d, err := loadDataset()
	if err != nil {
		t.Fatalf("loadDataset: %v", err)
	}
	if got := len(d.provinces); got != 7 {
		t.Errorf("provinces = %d, want 7", got)
	}
	if got := len(d.districts); got != 77 {
		t.Errorf("districts = %d, want 77", got)
	}
	if got := len(d.municipalities); got < 90 {
		t.Errorf("municipalities = %d, want at least 90", got)
	}
	if !sort.SliceIsSorted(d.municipalities, func(i, j int) bool {
		return d.municipalities[i].ID < d.municipalities[j].ID
	}) {
		t.Error("municipalities not sorted by ID")
	}
}

func TestProvincePins(t *testing.T) {
	p, err := ProvinceByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if p.NameEN != "Koshi Province" || p.NameNP != "कोशी प्रदेश" {
		t.Errorf("province 1 = %q / %q", p.NameEN, p.NameNP)
	}
	if p.Name(LangNepali) != "कोशी प्रदेश" || p.Name(LangEnglish) != "Koshi Province" {
		t.Error("localized Name broken")
	}

	p, err = ProvinceByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if p.NameEN != "Sudurpashchim Province" {
		t.Errorf("province 7 = %q", p.NameEN)
	}
	if p.Headquarter(LangEnglish) != "Godawari" {
		t.Errorf("province 7 headquarters = %q", p.Headquarter(LangEnglish))
	}

	if got := len(Provinces()); got != 7 {
		t.Errorf("Provinces() = %d entries", got)
	}
}

func TestDistrictPins(t *testing.T) {
	d, err := DistrictByID(77)
	if err != nil {
		t.Fatal(err)
	}
	if d.NameEN != "Kailali" || d.HeadquarterEN != "Dhangadhi" || d.ProvinceID != 7 {
		t.Errorf("district 77 = %+v", d)
	}

	d, err = DistrictByID(76)
	if err != nil {
		t.Fatal(err)
	}
	if d.NameEN != "Kanchanpur" {
		t.Errorf("district 76 = %q", d.NameEN)
	}

	koshi, err := DistrictsByProvince(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(koshi) != 14 {
		t.Errorf("Koshi districts = %d, want 14", len(koshi))
	}
	far, err := DistrictsByProvince(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(far) != 9 {
		t.Errorf("Sudurpashchim districts = %d, want 9", len(far))
	}
}

func TestMunicipalityPins(t *testing.T) {
	m, err := MunicipalityByID(732)
	if err != nil {
		t.Fatal(err)
	}
	if m.NameEN != "Bhimdatta Municipality" || m.DistrictID != 76 || m.WardCount != 19 {
		t.Errorf("municipality 732 = %+v", m)
	}

	kanchanpur, err := MunicipalitiesByDistrict(76)
	if err != nil {
		t.Fatal(err)
	}
	if len(kanchanpur) != 9 {
		t.Errorf("Kanchanpur municipalities = %d, want 9", len(kanchanpur))
	}

	bhojpur, err := MunicipalitiesByDistrict(1)
	if err != nil {
		t.Fatal(err)
	}
	names := make(map[string]bool, len(bhojpur))
	for _, m := range bhojpur {
		names[m.NameEN] = true
	}
	if !names["Bhojpur Municipality"] || !names["Hatuwagadhi Rural Municipality"] {
		t.Errorf("Bhojpur district units missing expected names: %v", names)
	}
}

func TestByName(t *testing.T) {
	if _, err := DistrictByName("Kailali"); err != nil {
		t.Errorf("DistrictByName(Kailali): %v", err)
	}
	if _, err := DistrictByName("  kailali "); err != nil {
		t.Errorf("DistrictByName folded: %v", err)
	}
	d, err := DistrictByName("कैलाली")
	if err != nil {
		t.Fatalf("DistrictByName nepali: %v", err)
	}
	if d.ID != 77 {
		t.Errorf("DistrictByName(कैलाली).ID = %d", d.ID)
	}

	p, err := ProvinceByName("koshi province")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != 1 {
		t.Errorf("ProvinceByName(koshi province).ID = %d", p.ID)
	}

	// Mahakali Municipality exists in Darchula (714) and Kanchanpur (735);
	// exact name lookup resolves to the lowest ID.
	m, err := MunicipalityByName("Mahakali Municipality")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != 714 {
		t.Errorf("duplicate name resolved to %d, want 714", m.ID)
	}

	if _, err := DistrictByName("Atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DistrictByName(Atlantis): got %v, want ErrNotFound", err)
	}
}

func TestWards(t *testing.T) {
	wards, err := Wards(734)
	if err != nil {
		t.Fatal(err)
	}
	if len(wards) != 10 || wards[0] != 1 || wards[9] != 10 {
		t.Errorf("Wards(734) = %v", wards)
	}
	if _, err := Wards(99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Wards(99999): got %v, want ErrNotFound", err)
	}
}

func TestHierarchy(t *testing.T) {
	h, err := HierarchyOf(732)
	if err != nil {
		t.Fatal(err)
	}
	if h.Province.ID != 7 || h.District.ID != 76 || h.Municipality.ID != 732 {
		t.Errorf("HierarchyOf(732) = %d/%d/%d", h.Province.ID, h.District.ID, h.Municipality.ID)
	}

	p, err := ProvinceOfDistrict(27)
	if err != nil {
		t.Fatal(err)
	}
	if p.NameEN != "Bagmati Province" {
		t.Errorf("ProvinceOfDistrict(27) = %q", p.NameEN)
	}

	d, err := DistrictOfMunicipality(307)
	if err != nil {
		t.Fatal(err)
	}
	if d.NameEN != "Kathmandu" {
		t.Errorf("DistrictOfMunicipality(307) = %q", d.NameEN)
	}
}

func TestParentMustExist(t *testing.T) {
	if _, err := DistrictsByProvince(8); !errors.Is(err, ErrNotFound) {
		t.Errorf("DistrictsByProvince(8): got %v, want ErrNotFound", err)
	}
	if _, err := MunicipalitiesByDistrict(100); !errors.Is(err, ErrNotFound) {
		t.Errorf("MunicipalitiesByDistrict(100): got %v, want ErrNotFound", err)
	}

	// Covered district with no municipality data yet returns an empty slice,
	// not an error.
	ms, err := MunicipalitiesByDistrict(40) // Manang
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 0 {
		t.Errorf("Manang municipalities = %v, want none in current dataset", ms)
	}
}
