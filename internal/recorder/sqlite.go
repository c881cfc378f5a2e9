package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			run_id       TEXT NOT NULL,
			symbol       TEXT,
			profile      TEXT,
			trend        TEXT,
			risk         TEXT,
			action       TEXT,
			score        INTEGER,
			confidence   INTEGER,
			ma_short     REAL,
			ma_long      REAL,
			volatility   REAL,
			point_count  INTEGER,
			issue_count  INTEGER,
			reasons      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS module_runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			run_id     TEXT NOT NULL,
			module_id  TEXT NOT NULL,
			headline   TEXT,
			risk_score REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_module_ts ON module_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(snap *AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := snap.Result
	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, run_id, symbol, profile, trend, risk, action,
		 score, confidence, ma_short, ma_long, volatility,
		 point_count, issue_count, reasons)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.RunID, snap.Symbol, string(snap.Profile),
		string(res.Trend), string(res.Risk), string(res.Action),
		res.Score, res.Confidence, res.MAShort, res.MALong, res.Volatility,
		snap.PointCount, snap.IssueCount, strings.Join(res.Reasons, "; "),
	)
	return err
}

func (r *SQLiteRecorder) RecordModuleRun(run *ModuleRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO module_runs
		(timestamp, run_id, module_id, headline, risk_score)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), run.RunID, string(run.ModuleID),
		run.Headline, run.RiskScore,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
