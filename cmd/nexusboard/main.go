package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"NexusBoard/internal/config"
	"NexusBoard/internal/exporter"
	"NexusBoard/internal/ingest"
	"NexusBoard/internal/model"
	"NexusBoard/internal/prefs"
	"NexusBoard/internal/recorder"
	"NexusBoard/internal/scheduler"
	"NexusBoard/internal/server"
	"NexusBoard/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := loadConfig()

	switch os.Args[1] {
	case "analyze":
		runAnalyze(cfg, os.Args[2:])
	case "serve":
		runServe(cfg)
	case "watch":
		runWatch(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: nexusboard <command> [flags]

commands:
  analyze   parse a CSV file and print the analysis report
  serve     run the dashboard JSON API
  watch     re-analyze a CSV file on a cron schedule`)
}

func loadConfig() *config.Config {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	strategy.ApplyThresholdOverrides(cfg.Analysis.Thresholds)
	return cfg
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755); err != nil {
		log.Printf("[WARN] create data dir: %v", err)
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

func openPrefs(cfg *config.Config) *prefs.Manager {
	if err := os.MkdirAll(filepath.Dir(cfg.Prefs.StateFile), 0755); err != nil {
		log.Printf("[WARN] create data dir: %v", err)
	}
	pm, err := prefs.NewManager(cfg.Prefs.StateFile, cfg.Analysis.RiskAppetite)
	if err != nil {
		log.Fatalf("[FATAL] init prefs manager: %v", err)
	}
	return pm
}

type fundamentalFlags struct {
	price  *float64
	volume *float64
	mcap   *float64
	pe     *float64
	div    *float64
	eps    *float64
	sector *string
}

func addFundamentalFlags(fs *flag.FlagSet) *fundamentalFlags {
	return &fundamentalFlags{
		price:  fs.Float64("price", 0, "last trading price"),
		volume: fs.Float64("volume", 0, "trading volume"),
		mcap:   fs.Float64("mcap", 0, "market capitalization"),
		pe:     fs.Float64("pe", 0, "P/E ratio"),
		div:    fs.Float64("dividend", 0, "dividend percent"),
		eps:    fs.Float64("eps", 0, "earnings per share"),
		sector: fs.String("sector", "", "sector name"),
	}
}

func (f *fundamentalFlags) build() model.Fundamentals {
	return model.Fundamentals{
		LastTradingPrice: *f.price,
		Volume:           *f.volume,
		MarketCap:        *f.mcap,
		PERatio:          *f.pe,
		DividendPct:      *f.div,
		EPS:              *f.eps,
		Sector:           *f.sector,
	}
}

func runAnalyze(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "CSV file to analyze")
	symbol := fs.String("symbol", "STOCK", "symbol label for the report")
	appetite := fs.Int("appetite", cfg.Analysis.RiskAppetite, "risk appetite 0-100")
	exportPath := fs.String("export", "", "write the two-section CSV export to this path")
	ff := addFundamentalFlags(fs)
	fs.Parse(args)

	if *file == "" {
		log.Fatal("[FATAL] analyze: -file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("[FATAL] read %s: %v", *file, err)
	}

	parsed := ingest.ParseAndClean(string(data), nil)
	for _, msg := range ingest.SummarizeIssues(parsed.Issues, 10) {
		log.Printf("[WARN] %s", msg)
	}

	fundamentals := ff.build()
	result := strategy.Evaluate(parsed.Series, fundamentals, *appetite)
	fmt.Println(exporter.FormatAnalysisReport(*symbol, &fundamentals, &result, parsed.Issues))

	rec := openRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordAnalysis(&recorder.AnalysisSnapshot{
		RunID:      uuid.NewString(),
		Symbol:     *symbol,
		Profile:    result.Profile,
		Result:     &result,
		PointCount: len(parsed.Series),
		IssueCount: len(parsed.Issues),
	}); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}

	if *exportPath != "" {
		if err := exporter.ValidateFundamentals(&fundamentals); err != nil {
			log.Fatalf("[FATAL] export: %v", err)
		}
		body := exporter.ExportCSV(*symbol, parsed.Series, &fundamentals, &result)
		if err := os.WriteFile(*exportPath, []byte(body), 0644); err != nil {
			log.Fatalf("[FATAL] write export: %v", err)
		}
		log.Printf("[INFO] export written: %s", *exportPath)
	}
}

func runServe(cfg *config.Config) {
	log.Println("[INFO] NexusBoard starting...")

	rec := openRecorder(cfg)
	defer rec.Close()
	pm := openPrefs(cfg)

	srv := server.New(pm, rec)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		log.Fatalf("[FATAL] server: %v", err)
	}
}

func runWatch(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	file := fs.String("file", cfg.Watch.File, "CSV file to watch")
	symbol := fs.String("symbol", "STOCK", "symbol label for the report")
	spec := fs.String("cron", cfg.Watch.Cron, "cron spec")
	ff := addFundamentalFlags(fs)
	fs.Parse(args)

	if *file == "" {
		log.Fatal("[FATAL] watch: -file is required (flag or watch.file in config)")
	}

	rec := openRecorder(cfg)
	defer rec.Close()
	pm := openPrefs(cfg)

	fundamentals := ff.build()
	sched := scheduler.NewScheduler(pm, rec, *symbol, *file, &fundamentals)
	if err := sched.Register(*spec); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, analyzing now")
		go sched.RunNow()
	}

	log.Println("[INFO] NexusBoard watch is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] NexusBoard stopped")
}
