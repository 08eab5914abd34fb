package main

import (
	"fmt"
	"os"

	"github.com/nepalikit/nepalikit/pkg/numerals"
	"github.com/spf13/cobra"
)

// digitsCmd represents the digits command
var digitsCmd = &cobra.Command{
	Use:   "digits <value>",
	Short: "Transliterate digits between ASCII and Devanagari",
	Long: `Rewrites the digits of the given value into the target script. Non-digit
characters pass through unchanged. With --group the result is grouped
Nepali-style: the last three digits, then pairs (12345678 becomes 1,23,45,678).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		to, _ := cmd.Flags().GetString("to")
		group, _ := cmd.Flags().GetBool("group")

		var result string
		switch to {
		case "ne":
			result = numerals.ToNepali(args[0])
		case "en":
			result = numerals.ToEnglish(args[0])
		default:
			fmt.Printf("Error: unknown script %q, expected 'ne' or 'en'\n", to)
			os.Exit(1)
		}

		if group {
			grouped, err := numerals.Group(result)
			if err != nil {
				fmt.Printf("Error grouping digits: %v\n", err)
				os.Exit(1)
			}
			result = grouped
		}

		fmt.Println(result)
	},
}

func init() {
	rootCmd.AddCommand(digitsCmd)

	digitsCmd.Flags().String("to", "ne", "Target script: 'ne' or 'en'")
	digitsCmd.Flags().BoolP("group", "g", false, "Group the result Nepali-style")
}
