package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/geo"
	"github.com/nepalikit/nepalikit/pkg/numerals"
)

// TodayResult aligns with the HTTP adapter's today schema and provides a
// unified structure across adapters.
type TodayResult struct {
	BS              string `json:"bs" jsonschema_description:"Today in Bikram Sambat, YYYY-MM-DD"`
	BSNepali        string `json:"bs_np" jsonschema_description:"Today in Bikram Sambat, Devanagari digits"`
	AD              string `json:"ad" jsonschema_description:"Today in the Gregorian calendar, YYYY-MM-DD"`
	Formatted       string `json:"formatted" jsonschema_description:"Long form with the English month name"`
	FormattedNepali string `json:"formatted_np" jsonschema_description:"Long form in Devanagari"`
	Weekday         string `json:"weekday" jsonschema_description:"English weekday name"`
	WeekdayNepali   string `json:"weekday_np" jsonschema_description:"Nepali weekday name"`
}

// ConversionResult is the output of the convert_date tool.
type ConversionResult struct {
	From          string `json:"from" jsonschema_description:"The parsed input date"`
	Direction     string `json:"direction" jsonschema_description:"Either bs_to_ad or ad_to_bs"`
	Result        string `json:"result" jsonschema_description:"The converted date, YYYY-MM-DD"`
	ResultNepali  string `json:"result_np,omitempty" jsonschema_description:"Converted date in Devanagari digits (ad_to_bs only)"`
	Weekday       string `json:"weekday" jsonschema_description:"English weekday name"`
	WeekdayNepali string `json:"weekday_np" jsonschema_description:"Nepali weekday name"`
}

// PlaceMatches is the output of the lookup_place tool.
type PlaceMatches struct {
	Query   string      `json:"query" jsonschema_description:"The query that was searched"`
	Matches []geo.Match `json:"matches" jsonschema_description:"Scored matches, best first"`
}

// NumeralResult is the output of the transliterate_number tool.
type NumeralResult struct {
	Value  string `json:"value" jsonschema_description:"The input digits"`
	To     string `json:"to" jsonschema_description:"Target script, ne or en"`
	Result string `json:"result" jsonschema_description:"The transliterated digits"`
}

// Tool argument structs, decoded from the raw argument map via mapstructure.

type convertArgs struct {
	Date string `mapstructure:"date"`
	To   string `mapstructure:"to"`
}

type lookupArgs struct {
	Query     string `mapstructure:"query"`
	Type      string `mapstructure:"type"`
	Threshold int    `mapstructure:"threshold"`
	Limit     int    `mapstructure:"limit"`
}

type hierarchyArgs struct {
	MunicipalityID int `mapstructure:"municipality_id"`
}

type numeralArgs struct {
	Value string `mapstructure:"value"`
	To    string `mapstructure:"to"`
	Group bool   `mapstructure:"group"`
}

func (s *Server) registerTools() {
	// TOOL: today_bs
	todayTool := mcp.NewTool("today_bs",
		mcp.WithDescription("Get today's date in Bikram Sambat, with the Gregorian equivalent and weekday in both languages."),
		mcp.WithOutputSchema[TodayResult](),
	)
	s.mcpServer.AddTool(todayTool, mcp.NewStructuredToolHandler(s.handleToday))

	// TOOL: convert_date
	convertTool := mcp.NewTool("convert_date",
		mcp.WithDescription("Convert a date between Bikram Sambat and the Gregorian calendar. Devanagari digits are accepted."),
		mcp.WithString("date", mcp.Required(), mcp.Description("The date to convert, YYYY-MM-DD")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Target calendar: 'ad' to convert BS input, 'bs' to convert AD input")),
		mcp.WithOutputSchema[ConversionResult](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))

	// TOOL: lookup_place
	lookupTool := mcp.NewTool("lookup_place",
		mcp.WithDescription("Fuzzy-search Nepal's provinces, districts and municipalities by name, in English or Nepali."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Place name to search for")),
		mcp.WithString("type", mcp.Description("Restrict matches to 'province', 'district' or 'municipality' (optional)")),
		mcp.WithNumber("threshold", mcp.Description("Minimum match score, 0 through 100 (optional, default 80)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of matches (optional, default 5)")),
		mcp.WithOutputSchema[PlaceMatches](),
	)
	s.mcpServer.AddTool(lookupTool, mcp.NewStructuredToolHandler(s.handleLookup))

	// TOOL: place_hierarchy
	hierarchyTool := mcp.NewTool("place_hierarchy",
		mcp.WithDescription("Resolve a municipality ID to its full province, district and municipality chain."),
		mcp.WithNumber("municipality_id", mcp.Required(), mcp.Description("Municipality registry ID")),
		mcp.WithOutputSchema[geo.Hierarchy](),
	)
	s.mcpServer.AddTool(hierarchyTool, mcp.NewStructuredToolHandler(s.handleHierarchy))

	// TOOL: transliterate_number
	numeralTool := mcp.NewTool("transliterate_number",
		mcp.WithDescription("Transliterate digits between ASCII and Devanagari, optionally applying Nepali lakh/crore grouping."),
		mcp.WithString("value", mcp.Required(), mcp.Description("The digits to transliterate")),
		mcp.WithString("to", mcp.Description("Target script: 'ne' (default) or 'en'")),
		mcp.WithBoolean("group", mcp.Description("Group the result Nepali-style, e.g. 1,23,45,678")),
		mcp.WithOutputSchema[NumeralResult](),
	)
	s.mcpServer.AddTool(numeralTool, mcp.NewStructuredToolHandler(s.handleNumeral))
}

// Handler methods for structured tools

func (s *Server) handleToday(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TodayResult, error) {
	today, err := bsdate.Today()
	if err != nil {
		return TodayResult{}, fmt.Errorf("today failed: %w", err)
	}

	return TodayResult{
		BS:              today.String(),
		BSNepali:        today.StringNepali(),
		AD:              today.Time().Format("2006-01-02"),
		Formatted:       today.Format(),
		FormattedNepali: today.FormatNepali(),
		Weekday:         today.Weekday().String(),
		WeekdayNepali:   bsdate.WeekdayNepali(today.Weekday()),
	}, nil
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConversionResult, error) {
	var a convertArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return ConversionResult{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	switch a.To {
	case "ad":
		d, err := bsdate.Parse(a.Date)
		if err != nil {
			return ConversionResult{}, fmt.Errorf("convert failed: %w", err)
		}
		return ConversionResult{
			From:          d.String(),
			Direction:     "bs_to_ad",
			Result:        d.Time().Format("2006-01-02"),
			Weekday:       d.Weekday().String(),
			WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
		}, nil
	case "bs":
		t, err := time.Parse("2006-01-02", numerals.ToEnglish(a.Date))
		if err != nil {
			return ConversionResult{}, fmt.Errorf("convert failed: %w", err)
		}
		d, err := bsdate.FromTime(t)
		if err != nil {
			return ConversionResult{}, fmt.Errorf("convert failed: %w", err)
		}
		return ConversionResult{
			From:          t.Format("2006-01-02"),
			Direction:     "ad_to_bs",
			Result:        d.String(),
			ResultNepali:  d.StringNepali(),
			Weekday:       d.Weekday().String(),
			WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
		}, nil
	default:
		return ConversionResult{}, fmt.Errorf("unknown target calendar %q, expected 'bs' or 'ad'", a.To)
	}
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlaceMatches, error) {
	var a lookupArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return PlaceMatches{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	var opts []geo.SearchOption
	if a.Type != "" {
		switch k := geo.Kind(a.Type); k {
		case geo.KindProvince, geo.KindDistrict, geo.KindMunicipality:
			opts = append(opts, geo.WithKinds(k))
		default:
			return PlaceMatches{}, fmt.Errorf("unknown type %q", a.Type)
		}
	}
	if a.Threshold > 0 {
		opts = append(opts, geo.WithThreshold(a.Threshold))
	}
	if a.Limit > 0 {
		opts = append(opts, geo.WithLimit(a.Limit))
	}

	matches, err := geo.Search(a.Query, opts...)
	switch {
	case errors.Is(err, geo.ErrNoMatch):
		matches = []geo.Match{}
	case err != nil:
		return PlaceMatches{}, fmt.Errorf("search failed: %w", err)
	}

	return PlaceMatches{Query: a.Query, Matches: matches}, nil
}

func (s *Server) handleHierarchy(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (geo.Hierarchy, error) {
	var a hierarchyArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return geo.Hierarchy{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	h, err := geo.HierarchyOf(a.MunicipalityID)
	if err != nil {
		return geo.Hierarchy{}, fmt.Errorf("hierarchy failed: %w", err)
	}
	return h, nil
}

func (s *Server) handleNumeral(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (NumeralResult, error) {
	var a numeralArgs
	if err := mapstructure.Decode(args, &a); err != nil {
		return NumeralResult{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	to := a.To
	if to == "" {
		to = "ne"
	}

	var result string
	switch to {
	case "ne":
		result = numerals.ToNepali(a.Value)
	case "en":
		result = numerals.ToEnglish(a.Value)
	default:
		return NumeralResult{}, fmt.Errorf("unknown script %q, expected 'ne' or 'en'", to)
	}

	if a.Group {
		grouped, err := numerals.Group(result)
		if err != nil {
			return NumeralResult{}, fmt.Errorf("group failed: %w", err)
		}
		result = grouped
	}

	return NumeralResult{Value: a.Value, To: to, Result: result}, nil
}
