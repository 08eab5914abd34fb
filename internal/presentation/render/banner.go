package render

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the nepalikit ASCII art banner.
// The gradient runs crimson to blue, after the flag.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String("                         _ _   _    _ _").Foreground(p.Color("#dc143c"))
	s2 := termenv.String("  _ __   ___ _ __   __ _| (_) | | _(_) |_").Foreground(p.Color("#c52a52"))
	s3 := termenv.String(" | '_ \\ / _ \\ '_ \\ / _` | | | | |/ / | __|").Foreground(p.Color("#a43f68"))
	s4 := termenv.String(" | | | |  __/ |_) | (_| | | | |   <| | |_").Foreground(p.Color("#7f4f7e"))
	s5 := termenv.String(" |_| |_|\\___| .__/ \\__,_|_|_| |_|\\_\\_|\\__|").Foreground(p.Color("#545c8b"))
	s6 := termenv.String("            |_|").Foreground(p.Color("#003893"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	if version != "" {
		fmt.Println(termenv.String("            v" + version).Foreground(p.Color("#6b7280")))
	}
	fmt.Println()
}
