package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalikit/nepalikit/pkg/bsdate"
	"github.com/nepalikit/nepalikit/pkg/geo"
)

func TestHandleToday(t *testing.T) {
	s := NewServer()

	res, err := s.handleToday(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)

	d, err := bsdate.Parse(res.BS)
	require.NoError(t, err)
	assert.Equal(t, d.Time().Format("2006-01-02"), res.AD)
	assert.Equal(t, d.Weekday().String(), res.Weekday)
	assert.NotEmpty(t, res.BSNepali)
	assert.NotEmpty(t, res.FormattedNepali)
	assert.NotEmpty(t, res.WeekdayNepali)
}

func TestHandleConvert(t *testing.T) {
	s := NewServer()

	toAD, err := s.handleConvert(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"date": "2078-09-01",
		"to":   "ad",
	})
	require.NoError(t, err)
	assert.Equal(t, "2078-09-01", toAD.From)
	assert.Equal(t, "bs_to_ad", toAD.Direction)
	assert.Equal(t, "2021-12-16", toAD.Result)
	assert.Equal(t, "Thursday", toAD.Weekday)
	assert.Equal(t, "बिहीबार", toAD.WeekdayNepali)

	toBS, err := s.handleConvert(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"date": "2015-04-25",
		"to":   "bs",
	})
	require.NoError(t, err)
	assert.Equal(t, "ad_to_bs", toBS.Direction)
	assert.Equal(t, "2072-01-12", toBS.Result)
	assert.Equal(t, "२०७२-०१-१२", toBS.ResultNepali)
	assert.Equal(t, "Saturday", toBS.Weekday)
}

func TestHandleConvertDevanagariInput(t *testing.T) {
	s := NewServer()

	res, err := s.handleConvert(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"date": "२०७८-०९-०१",
		"to":   "ad",
	})
	require.NoError(t, err)
	assert.Equal(t, "2021-12-16", res.Result)
}

func TestHandleConvertErrors(t *testing.T) {
	s := NewServer()

	for name, args := range map[string]map[string]interface{}{
		"missing target":  {"date": "2078-09-01"},
		"unknown target":  {"date": "2078-09-01", "to": "islamic"},
		"malformed date":  {"date": "notadate", "to": "ad"},
		"year before era": {"date": "1900-01-01", "to": "ad"},
		"ad out of range": {"date": "1800-01-01", "to": "bs"},
	} {
		_, err := s.handleConvert(context.Background(), mcp.CallToolRequest{}, args)
		assert.Error(t, err, name)
	}
}

func TestHandleLookup(t *testing.T) {
	s := NewServer()

	res, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"query": "bhimdatta",
	})
	require.NoError(t, err)
	assert.Equal(t, "bhimdatta", res.Query)
	require.NotEmpty(t, res.Matches)
	assert.Equal(t, geo.KindMunicipality, res.Matches[0].Kind)
	assert.Equal(t, 732, res.Matches[0].ID)
	assert.Equal(t, 100, res.Matches[0].Score)
}

func TestHandleLookupNumericArgs(t *testing.T) {
	// JSON-RPC numbers arrive as float64 and must narrow to int cleanly.
	s := NewServer()

	res, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"query": "godawari",
		"type":  "municipality",
		"limit": float64(1),
	})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, geo.KindMunicipality, res.Matches[0].Kind)
}

func TestHandleLookupNoMatch(t *testing.T) {
	s := NewServer()

	res, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"query": "atlantis",
	})
	require.NoError(t, err)
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Matches)
}

func TestHandleLookupErrors(t *testing.T) {
	s := NewServer()

	_, err := s.handleLookup(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"query": "x",
		"type":  "village",
	})
	assert.ErrorContains(t, err, "unknown type")

	_, err = s.handleLookup(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"query": "   ",
	})
	assert.Error(t, err)
}

func TestHandleHierarchy(t *testing.T) {
	s := NewServer()

	h, err := s.handleHierarchy(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"municipality_id": float64(732),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sudurpashchim Province", h.Province.NameEN)
	assert.Equal(t, "Kanchanpur", h.District.NameEN)
	assert.Equal(t, "Bhimdatta Municipality", h.Municipality.NameEN)
}

func TestHandleHierarchyNotFound(t *testing.T) {
	s := NewServer()

	_, err := s.handleHierarchy(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"municipality_id": float64(99999),
	})
	assert.Error(t, err)
}

func TestHandleNumeral(t *testing.T) {
	s := NewServer()

	tests := []struct {
		name string
		args map[string]interface{}
		want NumeralResult
	}{
		{
			name: "default nepali",
			args: map[string]interface{}{"value": "2078"},
			want: NumeralResult{Value: "2078", To: "ne", Result: "२०७८"},
		},
		{
			name: "to english",
			args: map[string]interface{}{"value": "२०७८", "to": "en"},
			want: NumeralResult{Value: "२०७८", To: "en", Result: "2078"},
		},
		{
			name: "grouped english",
			args: map[string]interface{}{"value": "12345678", "to": "en", "group": true},
			want: NumeralResult{Value: "12345678", To: "en", Result: "1,23,45,678"},
		},
		{
			name: "grouped nepali",
			args: map[string]interface{}{"value": "12345678", "group": true},
			want: NumeralResult{Value: "12345678", To: "ne", Result: "१,२३,४५,६७८"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.handleNumeral(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleNumeralErrors(t *testing.T) {
	s := NewServer()

	_, err := s.handleNumeral(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"value": "12",
		"to":    "roman",
	})
	assert.ErrorContains(t, err, "unknown script")

	_, err = s.handleNumeral(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"value": "12.5",
		"group": true,
	})
	assert.Error(t, err)
}

func TestToolRegistration(t *testing.T) {
	s := NewServer()

	resp := s.mcpServer.HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{"today_bs", "convert_date", "lookup_place", "place_hierarchy", "transliterate_number"} {
		assert.Contains(t, string(raw), name)
	}
}

func TestProvincesResource(t *testing.T) {
	s := NewServer()

	resp := s.mcpServer.HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"resources/read","params":{"uri":"nepalikit://provinces"}}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Koshi Province")
	assert.Contains(t, string(raw), "Janakpur")
}
