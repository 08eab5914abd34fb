package geo

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed data/provinces.json data/districts.json data/municipalities.json
var dataFS embed.FS

// dataset holds the decoded records plus lookup indexes. It is loaded once and
// never mutated afterwards.
type dataset struct {
	provinces      []Province
	districts      []District
	municipalities []Municipality

	provinceByID     map[int]int // id -> index
	districtByID     map[int]int
	municipalityByID map[int]int

	provinceByName     map[string]int // folded name -> index, first ID wins
	districtByName     map[string]int
	municipalityByName map[string]int

	districtsOfProvince      map[int][]int
	municipalitiesOfDistrict map[int][]int
}

var (
	loadOnce sync.Once
	loaded   *dataset
)

// load decodes and indexes the embedded datasets. The data is fixed at build
// time, so a failure here is a broken release and panics.
func load() *dataset {
	loadOnce.Do(func() {
		d, err := loadDataset()
		if err != nil {
			panic(fmt.Sprintf("geo: embedded dataset: %v", err))
		}
		loaded = d
	})
	return loaded
}

func loadDataset() (*dataset, error) {
	d := &dataset{
		provinceByID:             make(map[int]int),
		districtByID:             make(map[int]int),
		municipalityByID:         make(map[int]int),
		provinceByName:           make(map[string]int),
		districtByName:           make(map[string]int),
		municipalityByName:       make(map[string]int),
		districtsOfProvince:      make(map[int][]int),
		municipalitiesOfDistrict: make(map[int][]int),
	}
	if err := decodeInto(&d.provinces, "data/provinces.json"); err != nil {
		return nil, err
	}
	if err := decodeInto(&d.districts, "data/districts.json"); err != nil {
		return nil, err
	}
	if err := decodeInto(&d.municipalities, "data/municipalities.json"); err != nil {
		return nil, err
	}

	sort.Slice(d.provinces, func(i, j int) bool { return d.provinces[i].ID < d.provinces[j].ID })
	sort.Slice(d.districts, func(i, j int) bool { return d.districts[i].ID < d.districts[j].ID })
	sort.Slice(d.municipalities, func(i, j int) bool { return d.municipalities[i].ID < d.municipalities[j].ID })

	for i, p := range d.provinces {
		d.provinceByID[p.ID] = i
		indexName(d.provinceByName, p.NameEN, i)
		indexName(d.provinceByName, p.NameNP, i)
	}
	for i, dist := range d.districts {
		d.districtByID[dist.ID] = i
		indexName(d.districtByName, dist.NameEN, i)
		indexName(d.districtByName, dist.NameNP, i)
		d.districtsOfProvince[dist.ProvinceID] = append(d.districtsOfProvince[dist.ProvinceID], i)
	}
	for i, m := range d.municipalities {
		d.municipalityByID[m.ID] = i
		indexName(d.municipalityByName, m.NameEN, i)
		indexName(d.municipalityByName, m.NameNP, i)
		d.municipalitiesOfDistrict[m.DistrictID] = append(d.municipalitiesOfDistrict[m.DistrictID], i)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeInto(v any, name string) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// indexName records the first entity carrying a given folded name. Local-unit
// names repeat across districts (several Madis, two Godawaris), so later
// duplicates are reachable by ID and Search but not by exact name.
func indexName(idx map[string]int, name string, i int) {
	key := foldName(name)
	if _, ok := idx[key]; !ok {
		idx[key] = i
	}
}

func foldName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// validate checks referential integrity and the fixed federal shape.
func (d *dataset) validate() error {
	if n := len(d.provinces); n != 7 {
		return fmt.Errorf("got %d provinces, want 7", n)
	}
	if n := len(d.districts); n != 77 {
		return fmt.Errorf("got %d districts, want 77", n)
	}
	if len(d.provinceByID) != len(d.provinces) {
		return fmt.Errorf("duplicate province IDs")
	}
	if len(d.districtByID) != len(d.districts) {
		return fmt.Errorf("duplicate district IDs")
	}
	if len(d.municipalityByID) != len(d.municipalities) {
		return fmt.Errorf("duplicate municipality IDs")
	}
	for _, p := range d.provinces {
		if p.ID < 1 || p.NameEN == "" || p.NameNP == "" || p.HeadquarterEN == "" || p.HeadquarterNP == "" {
			return fmt.Errorf("province %d: incomplete record", p.ID)
		}
	}
	for _, dist := range d.districts {
		if dist.ID < 1 || dist.NameEN == "" || dist.NameNP == "" || dist.HeadquarterEN == "" || dist.HeadquarterNP == "" {
			return fmt.Errorf("district %d: incomplete record", dist.ID)
		}
		if _, ok := d.provinceByID[dist.ProvinceID]; !ok {
			return fmt.Errorf("district %d (%s): unknown province %d", dist.ID, dist.NameEN, dist.ProvinceID)
		}
	}
	for _, m := range d.municipalities {
		if m.ID < 1 || m.NameEN == "" || m.NameNP == "" {
			return fmt.Errorf("municipality %d: incomplete record", m.ID)
		}
		if m.WardCount < 1 {
			return fmt.Errorf("municipality %d (%s): ward count %d", m.ID, m.NameEN, m.WardCount)
		}
		if _, ok := d.districtByID[m.DistrictID]; !ok {
			return fmt.Errorf("municipality %d (%s): unknown district %d", m.ID, m.NameEN, m.DistrictID)
		}
	}
	return nil
}
