package recorder

import "NexusBoard/internal/model"

// AnalysisSnapshot holds all data for one stock analysis record.
type AnalysisSnapshot struct {
	RunID      string
	Symbol     string
	Profile    model.Profile
	Result     *model.AnalysisResult
	PointCount int
	IssueCount int
}

// ModuleRun records one calculator module execution.
type ModuleRun struct {
	RunID     string
	ModuleID  model.ModuleID
	Headline  string
	RiskScore float64
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordAnalysis(snap *AnalysisSnapshot) error
	RecordModuleRun(run *ModuleRun) error
	Close() error
}
