package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"NexusBoard/internal/exporter"
	"NexusBoard/internal/ingest"
	"NexusBoard/internal/model"
	"NexusBoard/internal/modules"
	"NexusBoard/internal/recorder"
	"NexusBoard/internal/strategy"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleListModules(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{"modules": modules.Definitions()})
}

type computeModuleRequest struct {
	Values map[string]float64 `json:"values"`
	Save   bool               `json:"save,omitempty"`
}

func (s *Server) handleComputeModule(w http.ResponseWriter, r *http.Request) {
	id := model.ModuleID(chi.URLParam(r, "id"))

	var req computeModuleRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	result, err := modules.Compute(id, req.Values)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}

	if req.Save {
		s.prefs.SaveModuleValues(id, req.Values)
	}
	if err := s.recorder.RecordModuleRun(&recorder.ModuleRun{
		RunID:     uuid.NewString(),
		ModuleID:  id,
		Headline:  result.Headline,
		RiskScore: result.RiskScore,
	}); err != nil {
		log.Printf("[WARN] failed to record module run: %v", err)
	}

	render.JSON(w, r, result)
}

type parseRequest struct {
	Text    string               `json:"text"`
	Mapping *model.ColumnMapping `json:"mapping,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}
	render.JSON(w, r, ingest.ParseAndClean(req.Text, req.Mapping))
}

type analyzeRequest struct {
	Symbol       string              `json:"symbol"`
	Series       []model.SeriesPoint `json:"series"`
	Fundamentals model.Fundamentals  `json:"fundamentals"`
	RiskAppetite *int                `json:"risk_appetite,omitempty" validate:"omitempty,gte=0,lte=100"`
	IssueCount   int                 `json:"issue_count,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		unprocessable(w, r, fmt.Sprintf("validation failed: %v", err))
		return
	}

	appetite := s.prefs.GetState().RiskAppetite
	if req.RiskAppetite != nil {
		appetite = *req.RiskAppetite
	}

	result := strategy.Evaluate(req.Series, req.Fundamentals, appetite)

	s.recordAnalysis(req.Symbol, &result, len(req.Series), req.IssueCount)
	render.JSON(w, r, result)
}

type exportRequest struct {
	Symbol       string              `json:"symbol" validate:"required"`
	Series       []model.SeriesPoint `json:"series" validate:"required,min=1"`
	Fundamentals *model.Fundamentals `json:"fundamentals" validate:"required"`
	RiskAppetite *int                `json:"risk_appetite,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		unprocessable(w, r, fmt.Sprintf("validation failed: %v", err))
		return
	}
	if err := exporter.ValidateFundamentals(req.Fundamentals); err != nil {
		unprocessable(w, r, err.Error())
		return
	}

	appetite := s.prefs.GetState().RiskAppetite
	if req.RiskAppetite != nil {
		appetite = *req.RiskAppetite
	}
	result := strategy.Evaluate(req.Series, *req.Fundamentals, appetite)

	body := exporter.ExportCSV(req.Symbol, req.Series, req.Fundamentals, &result)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.Symbol+"_analysis.csv"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("[WARN] failed to write export body: %v", err)
	}
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.prefs.GetState())
}

type prefsUpdateRequest struct {
	Language     *string `json:"language,omitempty"`
	Onboarded    *bool   `json:"onboarded,omitempty"`
	RiskAppetite *int    `json:"risk_appetite,omitempty"`
}

func (s *Server) handlePutPrefs(w http.ResponseWriter, r *http.Request) {
	var req prefsUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid request body")
		return
	}

	if req.Language != nil {
		if err := s.prefs.SetLanguage(*req.Language); err != nil {
			unprocessable(w, r, err.Error())
			return
		}
	}
	if req.RiskAppetite != nil {
		if err := s.prefs.SetRiskAppetite(*req.RiskAppetite); err != nil {
			unprocessable(w, r, err.Error())
			return
		}
	}
	if req.Onboarded != nil {
		s.prefs.SetOnboarded(*req.Onboarded)
	}

	render.JSON(w, r, s.prefs.GetState())
}

func (s *Server) recordAnalysis(symbol string, res *model.AnalysisResult, points, issues int) {
	snap := &recorder.AnalysisSnapshot{
		RunID:      uuid.NewString(),
		Symbol:     symbol,
		Profile:    res.Profile,
		Result:     res,
		PointCount: points,
		IssueCount: issues,
	}
	if err := s.recorder.RecordAnalysis(snap); err != nil {
		log.Printf("[WARN] failed to record analysis: %v", err)
	}
}
