package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nepalikit/nepalikit/internal/presentation/graph"
	"github.com/nepalikit/nepalikit/internal/presentation/render"
	"github.com/nepalikit/nepalikit/pkg/geo"
	"github.com/spf13/cobra"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Look up Nepal's provinces, districts and municipalities",
	Long:  `Search and inspect the federal administrative divisions.`,
}

var placeSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search places by name",
	Long:  `Scores every province, district and municipality against the query, in both English and Nepali, and lists the best matches.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind, _ := cmd.Flags().GetString("type")
		threshold, _ := cmd.Flags().GetInt("threshold")
		limit, _ := cmd.Flags().GetInt("limit")
		jsonMode, _ := cmd.Flags().GetBool("json")

		var opts []geo.SearchOption
		if kind != "" {
			switch k := geo.Kind(kind); k {
			case geo.KindProvince, geo.KindDistrict, geo.KindMunicipality:
				opts = append(opts, geo.WithKinds(k))
			default:
				fmt.Printf("Error: unknown type %q\n", kind)
				os.Exit(1)
			}
		}
		if threshold > 0 {
			opts = append(opts, geo.WithThreshold(threshold))
		}
		if limit > 0 {
			opts = append(opts, geo.WithLimit(limit))
		}

		matches, err := geo.Search(args[0], opts...)
		if errors.Is(err, geo.ErrNoMatch) {
			fmt.Println("No matches found.")
			return
		}
		if err != nil {
			fmt.Printf("Error searching: %v\n", err)
			os.Exit(1)
		}

		if jsonMode {
			data, err := json.MarshalIndent(matches, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling matches: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		for _, m := range matches {
			fmt.Printf("%3d  %-13s %s (%s)\n", m.Score, m.Kind, m.NameEN, m.NameNP)
		}
	},
}

var placeShowCmd = &cobra.Command{
	Use:   "show <query>",
	Short: "Show details for the best matching place",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := resolveBest(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		md, err := placeMarkdown(m)
		if err != nil {
			fmt.Printf("Error describing place: %v\n", err)
			os.Exit(1)
		}
		printMarkdown(md)
	},
}

var placeTreeCmd = &cobra.Command{
	Use:   "tree [query]",
	Short: "Print the administrative hierarchy as a tree",
	Long: `Prints provinces, their districts and the covered local units as an
indented tree. With a query only the best matching subtree is printed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var b strings.Builder

		if len(args) == 0 {
			for _, p := range geo.Provinces() {
				writeProvinceTree(&b, p)
			}
			fmt.Print(b.String())
			return
		}

		m, err := resolveBest(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := writeMatchTree(&b, m); err != nil {
			fmt.Printf("Error building tree: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(b.String())
	},
}

var placeGraphCmd = &cobra.Command{
	Use:   "graph [query]",
	Short: "Export the hierarchy as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the administrative hierarchy.
Without a query the whole country is drawn; with a query only the best
matching subtree, with the match highlighted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Print(graph.Mermaid(graph.CountryNodes(), ""))
			return
		}

		m, err := resolveBest(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		nodes, highlight, err := graph.SubtreeNodes(m)
		if err != nil {
			fmt.Printf("Error building graph: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.Mermaid(nodes, highlight))
	},
}

// resolveBest returns the single best match for query.
func resolveBest(query string) (geo.Match, error) {
	matches, err := geo.Search(query, geo.WithLimit(1))
	if err != nil {
		return geo.Match{}, err
	}
	return matches[0], nil
}

// placeMarkdown builds the detail card for a match. Counts reflect the
// bundled dataset.
func placeMarkdown(m geo.Match) (string, error) {
	var b strings.Builder
	switch m.Kind {
	case geo.KindProvince:
		p, err := geo.ProvinceByID(m.ID)
		if err != nil {
			return "", err
		}
		districts, err := geo.DistrictsByProvince(p.ID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "# %s (%s)\n\n", p.NameEN, p.NameNP)
		fmt.Fprintf(&b, "- **Headquarter:** %s (%s)\n", p.HeadquarterEN, p.HeadquarterNP)
		fmt.Fprintf(&b, "- **Districts:** %d\n", len(districts))
	case geo.KindDistrict:
		d, err := geo.DistrictByID(m.ID)
		if err != nil {
			return "", err
		}
		p, err := geo.ProvinceByID(d.ProvinceID)
		if err != nil {
			return "", err
		}
		munis, err := geo.MunicipalitiesByDistrict(d.ID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "# %s (%s)\n\n", d.NameEN, d.NameNP)
		fmt.Fprintf(&b, "- **Province:** %s\n", p.NameEN)
		fmt.Fprintf(&b, "- **Headquarter:** %s (%s)\n", d.HeadquarterEN, d.HeadquarterNP)
		if len(munis) > 0 {
			fmt.Fprintf(&b, "- **Local units:** %d\n", len(munis))
		}
	case geo.KindMunicipality:
		h, err := geo.HierarchyOf(m.ID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "# %s (%s)\n\n", h.Municipality.NameEN, h.Municipality.NameNP)
		fmt.Fprintf(&b, "- **District:** %s\n", h.District.NameEN)
		fmt.Fprintf(&b, "- **Province:** %s\n", h.Province.NameEN)
		fmt.Fprintf(&b, "- **Wards:** %d\n", h.Municipality.WardCount)
	default:
		return "", fmt.Errorf("unknown kind %q", m.Kind)
	}
	return b.String(), nil
}

func writeProvinceTree(b *strings.Builder, p geo.Province) {
	fmt.Fprintf(b, "%s (%s)\n", p.NameEN, p.NameNP)
	districts, err := geo.DistrictsByProvince(p.ID)
	if err != nil {
		return
	}
	for _, d := range districts {
		writeDistrictTree(b, d)
	}
}

func writeDistrictTree(b *strings.Builder, d geo.District) {
	fmt.Fprintf(b, "  %s (%s)\n", d.NameEN, d.NameNP)
	munis, err := geo.MunicipalitiesByDistrict(d.ID)
	if err != nil {
		return
	}
	for _, m := range munis {
		fmt.Fprintf(b, "    %s, %d wards\n", m.NameEN, m.WardCount)
	}
}

func writeMatchTree(b *strings.Builder, m geo.Match) error {
	switch m.Kind {
	case geo.KindProvince:
		p, err := geo.ProvinceByID(m.ID)
		if err != nil {
			return err
		}
		writeProvinceTree(b, p)
	case geo.KindDistrict:
		d, err := geo.DistrictByID(m.ID)
		if err != nil {
			return err
		}
		writeDistrictTree(b, d)
	case geo.KindMunicipality:
		h, err := geo.HierarchyOf(m.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s (%s)\n", h.Province.NameEN, h.Province.NameNP)
		fmt.Fprintf(b, "  %s (%s)\n", h.District.NameEN, h.District.NameNP)
		fmt.Fprintf(b, "    %s, %d wards\n", h.Municipality.NameEN, h.Municipality.WardCount)
	default:
		return fmt.Errorf("unknown kind %q", m.Kind)
	}
	return nil
}

// printMarkdown renders through glamour on a terminal and falls back to the
// raw markdown when output is piped.
func printMarkdown(md string) {
	if render.IsTerminal() {
		if out, err := render.NewMarkdown()(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func init() {
	rootCmd.AddCommand(placeCmd)
	placeCmd.AddCommand(placeSearchCmd)
	placeCmd.AddCommand(placeShowCmd)
	placeCmd.AddCommand(placeTreeCmd)
	placeCmd.AddCommand(placeGraphCmd)

	placeSearchCmd.Flags().String("type", "", "Restrict matches to 'province', 'district' or 'municipality'")
	placeSearchCmd.Flags().Int("threshold", 0, "Minimum match score, 0 through 100 (default 80)")
	placeSearchCmd.Flags().Int("limit", 0, "Maximum number of matches (default 5)")
	placeSearchCmd.Flags().Bool("json", false, "Print matches as JSON")
}
