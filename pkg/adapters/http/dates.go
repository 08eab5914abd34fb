package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/numerals"
)

// GetToday handles the GET /api/v1/today request.
func (s *Server) GetToday(w http.ResponseWriter, r *http.Request) {
	today, err := bsdate.Today()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		s.logger.Error("Today failed", "error", err)
		return
	}

	s.respondJSON(w, http.StatusOK, TodayResponse{
		BS:              today.String(),
		BSNepali:        today.StringNepali(),
		AD:              today.Time().Format("2006-01-02"),
		Formatted:       today.Format(),
		FormattedNepali: today.FormatNepali(),
		Weekday:         today.Weekday().String(),
		WeekdayNepali:   bsdate.WeekdayNepali(today.Weekday()),
	})
}

// ConvertParams holds the bound query for GET /api/v1/convert.
type ConvertParams struct {
	Date string `json:"date"`
	To   string `json:"to"`
}

// ConvertDate handles the GET /api/v1/convert request.
func (s *Server) ConvertDate(w http.ResponseWriter, r *http.Request) {
	var params ConvertParams
	if err := runtime.BindQueryParameter("form", true, true, "date", r.URL.Query(), &params.Date); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "to", r.URL.Query(), &params.To); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch params.To {
	case "ad":
		d, err := bsdate.Parse(params.Date)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondJSON(w, http.StatusOK, ConversionResponse{
			From:          d.String(),
			Direction:     "bs_to_ad",
			Result:        d.Time().Format("2006-01-02"),
			Weekday:       d.Weekday().String(),
			WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
		})
	case "bs":
		t, err := time.Parse("2006-01-02", numerals.ToEnglish(params.Date))
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		d, err := bsdate.FromTime(t)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.respondJSON(w, http.StatusOK, ConversionResponse{
			From:          t.Format("2006-01-02"),
			Direction:     "ad_to_bs",
			Result:        d.String(),
			ResultNepali:  d.StringNepali(),
			Weekday:       d.Weekday().String(),
			WeekdayNepali: bsdate.WeekdayNepali(d.Weekday()),
		})
	default:
		s.respondError(w, http.StatusBadRequest, `query parameter "to" must be "bs" or "ad"`)
	}
}

// GetCalendarMonth handles the GET /api/v1/calendar/{year}/{month} request.
func (s *Server) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "month must be an integer")
		return
	}

	month := bsdate.Month(monthNum)
	days, err := bsdate.DaysInMonth(year, month)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	first, err := bsdate.New(year, month, 1)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, CalendarMonthResponse{
		Year:         year,
		Month:        monthNum,
		Name:         month.String(),
		NameNepali:   month.Nepali(),
		Days:         days,
		FirstWeekday: first.Weekday().String(),
		StartsAD:     first.Time().Format("2006-01-02"),
	})
}

// NumeralsParams holds the bound query for GET /api/v1/numerals.
type NumeralsParams struct {
	Value string  `json:"value"`
	To    *string `json:"to,omitempty"`
	Group *bool   `json:"group,omitempty"`
}

// TransliterateNumerals handles the GET /api/v1/numerals request.
func (s *Server) TransliterateNumerals(w http.ResponseWriter, r *http.Request) {
	var params NumeralsParams
	if err := runtime.BindQueryParameter("form", true, true, "value", r.URL.Query(), &params.Value); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", r.URL.Query(), &params.To); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "group", r.URL.Query(), &params.Group); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	to := "ne"
	if params.To != nil {
		to = *params.To
	}

	var result string
	switch to {
	case "ne":
		result = numerals.ToNepali(params.Value)
	case "en":
		result = numerals.ToEnglish(params.Value)
	default:
		s.respondError(w, http.StatusBadRequest, `query parameter "to" must be "ne" or "en"`)
		return
	}

	if params.Group != nil && *params.Group {
		grouped, err := numerals.Group(result)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		result = grouped
	}

	s.respondJSON(w, http.StatusOK, NumeralsResponse{Value: params.Value, To: to, Result: result})
}
