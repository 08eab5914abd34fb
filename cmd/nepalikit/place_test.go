package main

import (
	"strings"
	"testing"

	"github.com/nepalikit/nepalikit/pkg/geo"
)

func TestPlaceMarkdownProvince(t *testing.T) {
	md, err := placeMarkdown(geo.Match{Kind: geo.KindProvince, ID: 2})
	if err != nil {
		t.Fatalf("placeMarkdown: %v", err)
	}
	for _, want := range []string{
		"# Madhesh Province (मधेश प्रदेश)",
		"- **Headquarter:** Janakpur (जनकपुर)",
		"- **Districts:** 8",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestPlaceMarkdownMunicipality(t *testing.T) {
	md, err := placeMarkdown(geo.Match{Kind: geo.KindMunicipality, ID: 732})
	if err != nil {
		t.Fatalf("placeMarkdown: %v", err)
	}
	for _, want := range []string{
		"# Bhimdatta Municipality (भीमदत्त नगरपालिका)",
		"- **District:** Kanchanpur",
		"- **Province:** Sudurpashchim Province",
		"- **Wards:** 19",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestPlaceMarkdownUnknownKind(t *testing.T) {
	if _, err := placeMarkdown(geo.Match{Kind: "village", ID: 1}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestWriteMatchTreeMunicipality(t *testing.T) {
	var b strings.Builder
	if err := writeMatchTree(&b, geo.Match{Kind: geo.KindMunicipality, ID: 732}); err != nil {
		t.Fatalf("writeMatchTree: %v", err)
	}

	want := "Sudurpashchim Province (सुदूरपश्चिम प्रदेश)\n" +
		"  Kanchanpur (कञ्चनपुर)\n" +
		"    Bhimdatta Municipality, 19 wards\n"
	if b.String() != want {
		t.Errorf("tree = %q, want %q", b.String(), want)
	}
}

func TestWriteMatchTreeDistrictWithoutUnits(t *testing.T) {
	// Manang has no covered local units in the dataset.
	var b strings.Builder
	if err := writeMatchTree(&b, geo.Match{Kind: geo.KindDistrict, ID: 40}); err != nil {
		t.Fatalf("writeMatchTree: %v", err)
	}

	if got := b.String(); got != "  Manang (मनाङ)\n" {
		t.Errorf("tree = %q", got)
	}
}

func TestResolveBest(t *testing.T) {
	m, err := resolveBest("kanchanpur")
	if err != nil {
		t.Fatalf("resolveBest: %v", err)
	}
	if m.Kind != geo.KindDistrict || m.ID != 76 {
		t.Errorf("best match = %+v, want district 76", m)
	}
}
