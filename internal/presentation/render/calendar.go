package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/numerals"
)

// Seven two-cell day columns separated by single spaces.
const gridWidth = 20

// CalendarOptions tunes MonthGrid output.
type CalendarOptions struct {
	// Nepali switches headings and day numbers to Devanagari.
	Nepali bool
	// Highlight marks one day in reverse video. The zero Date disables it.
	Highlight bsdate.Date
}

// MonthGrid renders a cal(1)-style page for one Bikram Sambat month.
// Weeks run Sunday through Saturday.
func MonthGrid(year int, month bsdate.Month, opts CalendarOptions) (string, error) {
	days, err := bsdate.DaysInMonth(year, month)
	if err != nil {
		return "", err
	}
	first, err := bsdate.New(year, month, 1)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(centerTitle(monthTitle(year, month, opts.Nepali)))
	b.WriteByte('\n')
	if opts.Nepali {
		b.WriteString("आ  सो मं बु बि शु श")
	} else {
		b.WriteString("Su Mo Tu We Th Fr Sa")
	}
	b.WriteByte('\n')

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= days; day++ {
		b.WriteString(dayCell(year, month, day, opts))
		col++
		if day == days {
			break
		}
		if col == 7 {
			b.WriteByte('\n')
			col = 0
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
	return b.String(), nil
}

func monthTitle(year int, month bsdate.Month, nepali bool) string {
	if nepali {
		return month.Nepali() + " " + numerals.ToNepali(strconv.Itoa(year))
	}
	return fmt.Sprintf("%s %d", month, year)
}

func centerTitle(title string) string {
	pad := (gridWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + title
}

func dayCell(year int, month bsdate.Month, day int, opts CalendarOptions) string {
	cell := fmt.Sprintf("%2d", day)
	if opts.Nepali {
		cell = numerals.ToNepali(cell)
	}
	if d, err := bsdate.New(year, month, day); err == nil && d.Equal(opts.Highlight) {
		return termenv.String(cell).Reverse().String()
	}
	return cell
}
