package main

import (
	"fmt"
	"strings"

	"github.com/nepalikit/nepalikit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nepalikit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nepalikit version %s\n", strings.TrimSpace(nepalikit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
