package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NexusBoard/internal/model"
	"NexusBoard/internal/prefs"
	"NexusBoard/internal/recorder"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	p, err := prefs.NewManager(filepath.Join(t.TempDir(), "prefs.json"), 50)
	require.NoError(t, err)
	return New(p, recorder.NewNoopRecorder())
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestListModules(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/modules", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Modules []model.ModuleDef `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Modules, 13)
}

func TestComputeModule(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/modules/loan", map[string]interface{}{
		"values": map[string]float64{"amount": 120000, "annualRate": 0, "months": 12},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.ModuleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "EMI Summary", result.Headline)

	rec = doJSON(t, s, http.MethodPost, "/api/modules/nope", map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComputeModuleSavesValues(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/modules/tax", map[string]interface{}{
		"values": map[string]float64{"monthlySalary": 50000},
		"save":   true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	values, ok := s.prefs.ModuleValues(model.ModuleTax)
	require.True(t, ok)
	assert.Equal(t, 50000.0, values["monthlySalary"])
}

func TestParseEndpoint(t *testing.T) {
	csv := "Date,Close,Volume\n2025-01-02,101,5200\n2025-01-01,100,5000\n2025-01-01,99,4900\n"
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/stock/parse", map[string]string{"text": csv})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.ParseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Series, 2)
	assert.Equal(t, "2025-01-01", result.Series[0].Date)
	assert.Equal(t, 99.0, result.Series[0].Close) // last occurrence wins
	assert.Equal(t, 1, result.Meta.DuplicatesRemoved)
	assert.True(t, result.Meta.Sorted)
}

func TestAnalyzeEndpoint(t *testing.T) {
	series := make([]model.SeriesPoint, 0, 10)
	closes := []float64{99, 99, 99, 99, 99, 101, 101, 101, 101, 101}
	for i, c := range closes {
		series = append(series, model.SeriesPoint{Date: fmt.Sprintf("2025-01-%02d", i+1), Close: c, Volume: 1000})
	}

	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/stock/analyze", map[string]interface{}{
		"symbol": "ACME",
		"series": series,
		"fundamentals": model.Fundamentals{
			LastTradingPrice: 101, Volume: 1000, MarketCap: 6e10,
			PERatio: 15, DividendPct: 3, EPS: 8, Sector: "Bank",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.TrendUp, result.Trend)
	assert.NotEmpty(t, result.Reasons)
}

func TestAnalyzeRejectsBadAppetite(t *testing.T) {
	appetite := 150
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/stock/analyze", map[string]interface{}{
		"symbol":        "ACME",
		"series":        []model.SeriesPoint{{Date: "2025-01-01", Close: 100, Volume: 1}},
		"risk_appetite": appetite,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExportRequiresFundamentals(t *testing.T) {
	s := newTestServer(t)
	series := []model.SeriesPoint{{Date: "2025-01-01", Close: 100, Volume: 5000}}

	rec := doJSON(t, s, http.MethodPost, "/api/stock/export", map[string]interface{}{
		"symbol":       "ACME",
		"series":       series,
		"fundamentals": model.Fundamentals{LastTradingPrice: 100},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "fundamentals")

	rec = doJSON(t, s, http.MethodPost, "/api/stock/export", map[string]interface{}{
		"symbol": "ACME",
		"series": series,
		"fundamentals": model.Fundamentals{
			LastTradingPrice: 100, Volume: 5000, MarketCap: 6e10,
			PERatio: 15, DividendPct: 3, EPS: 8, Sector: "Bank",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "# summary")
	assert.Contains(t, rec.Body.String(), "# series")
	assert.Contains(t, rec.Body.String(), "2025-01-01,100,5000")
}

func TestPrefsRoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/prefs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state model.PrefsState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "en", state.Language)

	lang := "bn"
	onboarded := true
	rec = doJSON(t, s, http.MethodPut, "/api/prefs", prefsUpdateRequest{Language: &lang, Onboarded: &onboarded})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "bn", state.Language)
	assert.True(t, state.Onboarded)

	bad := "fr"
	rec = doJSON(t, s, http.MethodPut, "/api/prefs", prefsUpdateRequest{Language: &bad})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
