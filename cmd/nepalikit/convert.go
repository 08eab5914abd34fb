package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/numerals"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <date>",
	Short: "Convert a date between Bikram Sambat and Gregorian",
	Long: `Converts a YYYY-MM-DD date in either direction. Devanagari digits are
accepted. The direction is inferred from the year: years below 1975 are
Gregorian, everything else is treated as Bikram Sambat. Years where both
calendars overlap default to Bikram Sambat; pass --from to force a direction.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		nepali, _ := cmd.Flags().GetBool("nepali")
		jsonMode, _ := cmd.Flags().GetBool("json")

		if from == "" {
			from = detectCalendar(args[0])
		}

		switch from {
		case "bs":
			d, err := bsdate.Parse(args[0])
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				os.Exit(1)
			}
			printConversion(conversion{
				From:          d.String(),
				Direction:     "bs_to_ad",
				Result:        d.Time().Format("2006-01-02"),
				Weekday:       d.Weekday().String(),
				WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
			}, nepali, jsonMode)
		case "ad":
			t, err := time.Parse("2006-01-02", numerals.ToEnglish(args[0]))
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				os.Exit(1)
			}
			d, err := bsdate.FromTime(t)
			if err != nil {
				fmt.Printf("Error converting date: %v\n", err)
				os.Exit(1)
			}
			printConversion(conversion{
				From:          t.Format("2006-01-02"),
				Direction:     "ad_to_bs",
				Result:        d.String(),
				ResultNepali:  d.StringNepali(),
				Weekday:       d.Weekday().String(),
				WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
			}, nepali, jsonMode)
		default:
			fmt.Printf("Error: unknown calendar %q, expected 'bs' or 'ad'\n", from)
			os.Exit(1)
		}
	},
}

type conversion struct {
	From          string `json:"from"`
	Direction     string `json:"direction"`
	Result        string `json:"result"`
	ResultNepali  string `json:"result_np,omitempty"`
	Weekday       string `json:"weekday"`
	WeekdayNepali string `json:"weekday_np"`
}

// detectCalendar infers the source calendar from the year. The Bikram Sambat
// table starts at 1975, so smaller years can only be Gregorian. Overlapping
// years lean Bikram Sambat, matching what a Nepali caller most likely means.
func detectCalendar(date string) string {
	year, _, found := strings.Cut(numerals.ToEnglish(date), "-")
	if !found {
		return "bs"
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return "bs"
	}
	if y < bsdate.MinYear {
		return "ad"
	}
	return "bs"
}

func printConversion(c conversion, nepali, jsonMode bool) {
	if jsonMode {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling conversion: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if nepali && c.ResultNepali != "" {
		fmt.Printf("%s, %s\n", c.WeekdayNepali, c.ResultNepali)
		return
	}
	fmt.Printf("%s, %s\n", c.Weekday, c.Result)
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Source calendar: 'bs' or 'ad' (default: inferred from the year)")
	convertCmd.Flags().BoolP("nepali", "n", false, "Print the result in Devanagari (ad to bs only)")
	convertCmd.Flags().Bool("json", false, "Print as JSON")
}
