package recorder

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"NexusBoard/internal/model"
)

func TestSQLiteRecorderRoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer r.Close()

	runID := uuid.NewString()
	snap := &AnalysisSnapshot{
		RunID:   runID,
		Symbol:  "ACME",
		Profile: model.ProfileBalanced,
		Result: &model.AnalysisResult{
			Trend:      model.TrendUp,
			MAShort:    104,
			MALong:     102,
			Volatility: 0.01,
			Risk:       model.RiskMedium,
			Score:      60,
			Action:     model.ActionBuy,
			Confidence: 72,
			Reasons:    []string{"Short-term average above long-term average."},
			Profile:    model.ProfileBalanced,
		},
		PointCount: 10,
		IssueCount: 1,
	}
	if err := r.RecordAnalysis(snap); err != nil {
		t.Fatalf("RecordAnalysis: %v", err)
	}
	if err := r.RecordModuleRun(&ModuleRun{
		RunID:     runID,
		ModuleID:  model.ModuleTax,
		Headline:  "Tax Summary",
		RiskScore: 12,
	}); err != nil {
		t.Fatalf("RecordModuleRun: %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_snapshots WHERE run_id = ?`, runID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("analysis rows = %d, want 1", count)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM module_runs WHERE run_id = ?`, runID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("module rows = %d, want 1", count)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatal(err)
	}
	r.Close()

	again, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	again.Close()
}
