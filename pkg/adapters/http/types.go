package http

import "github.com/nepalikit/nepalikit/pkg/geo"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TodayResponse reports the current date in both calendars and scripts.
type TodayResponse struct {
	BS              string `json:"bs"`
	BSNepali        string `json:"bs_nepali"`
	AD              string `json:"ad"`
	Formatted       string `json:"formatted"`
	FormattedNepali string `json:"formatted_nepali"`
	Weekday         string `json:"weekday"`
	WeekdayNepali   string `json:"weekday_nepali"`
}

// ConversionResponse reports one calendar conversion.
// ResultNepali is only set when the result is a Bikram Sambat date.
type ConversionResponse struct {
	From          string `json:"from"`
	Direction     string `json:"direction"`
	Result        string `json:"result"`
	ResultNepali  string `json:"result_nepali,omitempty"`
	Weekday       string `json:"weekday"`
	WeekdayNepali string `json:"weekday_nepali"`
}

// CalendarMonthResponse describes one Bikram Sambat month.
type CalendarMonthResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Name         string `json:"name"`
	NameNepali   string `json:"name_nepali"`
	Days         int    `json:"days"`
	FirstWeekday string `json:"first_weekday"`
	StartsAD     string `json:"starts_ad"`
}

// WardsResponse lists the ward numbers of one municipality.
type WardsResponse struct {
	MunicipalityID int   `json:"municipality_id"`
	Wards          []int `json:"wards"`
}

// SearchResponse wraps ranked search hits. Matches is empty, never null,
// when nothing clears the threshold.
type SearchResponse struct {
	Query   string      `json:"query"`
	Matches []geo.Match `json:"matches"`
}

// NumeralsResponse reports a digit transliteration.
type NumeralsResponse struct {
	Value  string `json:"value"`
	To     string `json:"to"`
	Result string `json:"result"`
}
