package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nepalikit/nepalikit/internal/presentation/render"
	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/numerals"
	"github.com/spf13/cobra"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar [year month]",
	Short: "Print a Bikram Sambat month as a calendar grid",
	Long: `Prints the given Bikram Sambat month as a weekday grid. Without arguments
the current month is printed and today's cell is highlighted.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		nepali, _ := cmd.Flags().GetBool("nepali")

		if len(args) == 1 {
			fmt.Println("Error: provide both year and month, or neither")
			os.Exit(1)
		}

		today, err := bsdate.Today()
		if err != nil {
			fmt.Printf("Error resolving today: %v\n", err)
			os.Exit(1)
		}

		year, month := today.Year(), today.Month()
		if len(args) == 2 {
			year, err = strconv.Atoi(numerals.ToEnglish(args[0]))
			if err != nil {
				fmt.Println("Error: year must be a number")
				os.Exit(1)
			}
			m, err := strconv.Atoi(numerals.ToEnglish(args[1]))
			if err != nil {
				fmt.Println("Error: month must be a number")
				os.Exit(1)
			}
			month = bsdate.Month(m)
		}

		opts := render.CalendarOptions{Nepali: nepali}
		if year == today.Year() && month == today.Month() {
			opts.Highlight = today
		}

		grid, err := render.MonthGrid(year, month, opts)
		if err != nil {
			fmt.Printf("Error rendering month: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(grid)
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().BoolP("nepali", "n", false, "Print month, weekdays and days in Devanagari")
}
