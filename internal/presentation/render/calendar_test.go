package render_test

import (
	"strings"
	"testing"

	"github.com/nepalikit/nepalikit/internal/presentation/render"
	"github.com/nepalikit/nepalikit/pkg/bsdate"
)

func TestMonthGrid(t *testing.T) {
	// Poush 2078 has 30 days and begins on a Thursday.
	got, err := render.MonthGrid(2078, bsdate.Poush, render.CalendarOptions{})
	if err != nil {
		t.Fatalf("MonthGrid returned error: %v", err)
	}

	want := strings.Join([]string{
		"     Poush 2078",
		"Su Mo Tu We Th Fr Sa",
		"             1  2  3",
		" 4  5  6  7  8  9 10",
		"11 12 13 14 15 16 17",
		"18 19 20 21 22 23 24",
		"25 26 27 28 29 30",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("MonthGrid(2078, Poush) = \n%q\nwant\n%q", got, want)
	}
}

func TestMonthGridFirstWeek(t *testing.T) {
	// Baishakh 2082 begins on a Monday.
	got, err := render.MonthGrid(2082, bsdate.Baishakh, render.CalendarOptions{})
	if err != nil {
		t.Fatalf("MonthGrid returned error: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected grid shape:\n%s", got)
	}
	if lines[2] != "    1  2  3  4  5  6" {
		t.Errorf("first week = %q, want %q", lines[2], "    1  2  3  4  5  6")
	}
}

func TestMonthGridNepali(t *testing.T) {
	got, err := render.MonthGrid(2078, bsdate.Poush, render.CalendarOptions{Nepali: true})
	if err != nil {
		t.Fatalf("MonthGrid returned error: %v", err)
	}
	for _, want := range []string{"पुस २०७८", "आ  सो", " १  २  ३", "३०"} {
		if !strings.Contains(got, want) {
			t.Errorf("grid missing %q:\n%s", want, got)
		}
	}
}

func TestMonthGridBadMonth(t *testing.T) {
	if _, err := render.MonthGrid(2078, bsdate.Month(13), render.CalendarOptions{}); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := render.MonthGrid(1900, bsdate.Poush, render.CalendarOptions{}); err == nil {
		t.Error("expected error for year outside the table")
	}
}
