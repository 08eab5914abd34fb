package geo

import "fmt"

// Provinces returns all seven provinces ordered by ID.
func Provinces() []Province {
	d := load()
	return append([]Province(nil), d.provinces...)
}

// ProvinceByID returns the province with the given ID.
func ProvinceByID(id int) (Province, error) {
	d := load()
	i, ok := d.provinceByID[id]
	if !ok {
		return Province{}, fmt.Errorf("province %d: %w", id, ErrNotFound)
	}
	return d.provinces[i], nil
}

// ProvinceByName returns the province whose English or Nepali name matches,
// ignoring case and surrounding whitespace.
func ProvinceByName(name string) (Province, error) {
	d := load()
	i, ok := d.provinceByName[foldName(name)]
	if !ok {
		return Province{}, fmt.Errorf("province %q: %w", name, ErrNotFound)
	}
	return d.provinces[i], nil
}

// Districts returns all seventy-seven districts ordered by ID.
func Districts() []District {
	d := load()
	return append([]District(nil), d.districts...)
}

// DistrictByID returns the district with the given ID.
func DistrictByID(id int) (District, error) {
	d := load()
	i, ok := d.districtByID[id]
	if !ok {
		return District{}, fmt.Errorf("district %d: %w", id, ErrNotFound)
	}
	return d.districts[i], nil
}

// DistrictByName returns the district whose English or Nepali name matches,
// ignoring case and surrounding whitespace.
func DistrictByName(name string) (District, error) {
	d := load()
	i, ok := d.districtByName[foldName(name)]
	if !ok {
		return District{}, fmt.Errorf("district %q: %w", name, ErrNotFound)
	}
	return d.districts[i], nil
}

// DistrictsByProvince returns the districts of a province ordered by ID.
// The province itself must exist.
func DistrictsByProvince(provinceID int) ([]District, error) {
	d := load()
	if _, ok := d.provinceByID[provinceID]; !ok {
		return nil, fmt.Errorf("province %d: %w", provinceID, ErrNotFound)
	}
	idxs := d.districtsOfProvince[provinceID]
	out := make([]District, len(idxs))
	for n, i := range idxs {
		out[n] = d.districts[i]
	}
	return out, nil
}

// Municipalities returns every municipality in the dataset ordered by ID.
func Municipalities() []Municipality {
	d := load()
	return append([]Municipality(nil), d.municipalities...)
}

// MunicipalityByID returns the municipality with the given ID.
func MunicipalityByID(id int) (Municipality, error) {
	d := load()
	i, ok := d.municipalityByID[id]
	if !ok {
		return Municipality{}, fmt.Errorf("municipality %d: %w", id, ErrNotFound)
	}
	return d.municipalities[i], nil
}

// MunicipalityByName returns the municipality whose English or Nepali name
// matches, ignoring case and surrounding whitespace. Names repeat across
// districts; the lowest ID wins, the rest stay reachable by ID or Search.
func MunicipalityByName(name string) (Municipality, error) {
	d := load()
	i, ok := d.municipalityByName[foldName(name)]
	if !ok {
		return Municipality{}, fmt.Errorf("municipality %q: %w", name, ErrNotFound)
	}
	return d.municipalities[i], nil
}

// MunicipalitiesByDistrict returns the known municipalities of a district
// ordered by ID. The district itself must exist; an empty slice means the
// dataset does not cover that district yet.
func MunicipalitiesByDistrict(districtID int) ([]Municipality, error) {
	d := load()
	if _, ok := d.districtByID[districtID]; !ok {
		return nil, fmt.Errorf("district %d: %w", districtID, ErrNotFound)
	}
	idxs := d.municipalitiesOfDistrict[districtID]
	out := make([]Municipality, len(idxs))
	for n, i := range idxs {
		out[n] = d.municipalities[i]
	}
	return out, nil
}

// Wards enumerates the ward numbers of a municipality.
func Wards(municipalityID int) ([]int, error) {
	m, err := MunicipalityByID(municipalityID)
	if err != nil {
		return nil, err
	}
	return m.Wards(), nil
}

// ProvinceOfDistrict resolves the province a district belongs to.
func ProvinceOfDistrict(districtID int) (Province, error) {
	dist, err := DistrictByID(districtID)
	if err != nil {
		return Province{}, err
	}
	return ProvinceByID(dist.ProvinceID)
}

// DistrictOfMunicipality resolves the district a municipality belongs to.
func DistrictOfMunicipality(municipalityID int) (District, error) {
	m, err := MunicipalityByID(municipalityID)
	if err != nil {
		return District{}, err
	}
	return DistrictByID(m.DistrictID)
}

// HierarchyOf resolves the full chain municipality -> district -> province.
func HierarchyOf(municipalityID int) (Hierarchy, error) {
	m, err := MunicipalityByID(municipalityID)
	if err != nil {
		return Hierarchy{}, err
	}
	dist, err := DistrictByID(m.DistrictID)
	if err != nil {
		return Hierarchy{}, err
	}
	p, err := ProvinceByID(dist.ProvinceID)
	if err != nil {
		return Hierarchy{}, err
	}
	return Hierarchy{Province: p, District: dist, Municipality: m}, nil
}
