package scheduler

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"NexusBoard/internal/exporter"
	"NexusBoard/internal/ingest"
	"NexusBoard/internal/model"
	"NexusBoard/internal/prefs"
	"NexusBoard/internal/recorder"
	"NexusBoard/internal/strategy"
)

// Scheduler re-analyzes a watched CSV file on a cron spec. Each run
// replaces the previous result wholesale.
type Scheduler struct {
	Cron         *cron.Cron
	Prefs        *prefs.Manager
	Recorder     recorder.Recorder
	Symbol       string
	File         string
	Fundamentals *model.Fundamentals
}

// NewScheduler creates a Scheduler watching one CSV file.
func NewScheduler(p *prefs.Manager, rec recorder.Recorder, symbol, file string, f *model.Fundamentals) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Prefs:        p,
		Recorder:     rec,
		Symbol:       symbol,
		File:         file,
		Fundamentals: f,
	}
}

// Register adds the watch task on the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Printf("[INFO] watch scheduler started: %s", s.File)
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}

// RunNow executes the watch task immediately (for manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.watchTask()
}

func (s *Scheduler) watchTask() {
	log.Printf("[INFO] re-reading %s", s.File)
	data, err := os.ReadFile(s.File)
	if err != nil {
		log.Printf("[ERROR] watch read: %v", err)
		return
	}

	parsed := ingest.ParseAndClean(string(data), nil)
	for _, msg := range ingest.SummarizeIssues(parsed.Issues, 5) {
		log.Printf("[WARN] %s", msg)
	}
	if len(parsed.Series) == 0 {
		log.Printf("[ERROR] watch: no usable rows in %s", s.File)
		return
	}

	var f model.Fundamentals
	if s.Fundamentals != nil {
		f = *s.Fundamentals
	}
	appetite := s.Prefs.GetState().RiskAppetite
	result := strategy.Evaluate(parsed.Series, f, appetite)

	fmt.Println(exporter.FormatAnalysisReport(s.Symbol, s.Fundamentals, &result, parsed.Issues))

	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisSnapshot{
		RunID:      uuid.NewString(),
		Symbol:     s.Symbol,
		Profile:    result.Profile,
		Result:     &result,
		PointCount: len(parsed.Series),
		IssueCount: len(parsed.Issues),
	}); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}
}
