package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/spf13/cobra"
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's date in Bikram Sambat",
	Long:  `Prints today's Bikram Sambat date using Nepal Time (UTC+05:45).`,
	Run: func(cmd *cobra.Command, args []string) {
		nepali, _ := cmd.Flags().GetBool("nepali")
		jsonMode, _ := cmd.Flags().GetBool("json")

		today, err := bsdate.Today()
		if err != nil {
			fmt.Printf("Error resolving today: %v\n", err)
			os.Exit(1)
		}

		if jsonMode {
			data, err := json.MarshalIndent(map[string]string{
				"bs":         today.String(),
				"bs_np":      today.StringNepali(),
				"ad":         today.Time().Format("2006-01-02"),
				"weekday":    today.Weekday().String(),
				"weekday_np": bsdate.WeekdayNepali(today.Weekday()),
			}, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling date: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		if nepali {
			fmt.Printf("%s, %s\n", bsdate.WeekdayNepali(today.Weekday()), today.FormatNepali())
			return
		}
		fmt.Printf("%s, %s\n", today.Weekday(), today.Format())
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)

	todayCmd.Flags().BoolP("nepali", "n", false, "Print in Devanagari")
	todayCmd.Flags().Bool("json", false, "Print as JSON")

	// Make 'today' the default when no subcommand is given.
	rootCmd.Run = todayCmd.Run
}
