package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/chemflow/pkg/engine"
	"github.com/dd0wney/chemflow/pkg/graph"
	"github.com/dd0wney/chemflow/pkg/logging"
	"github.com/dd0wney/chemflow/pkg/metrics"
	"github.com/dd0wney/chemflow/pkg/source"
)

// FileConfig is the on-disk configuration. Flags override file values.
type FileConfig struct {
	Input    string        `yaml:"input"`
	Store    string        `yaml:"store"`
	Postgres string        `yaml:"postgres_dsn"`
	Engine   engine.Config `yaml:"engine"`
}

func main() {
	var (
		configFile    = flag.String("config", "", "YAML configuration file")
		input         = flag.String("input", "", "Entry dump to process (.jsonl, .jsonl.sz)")
		storeKind     = flag.String("store", "", "Edge store backend: memory or postgres")
		postgresDSN   = flag.String("postgres-dsn", "", "PostgreSQL connection string")
		minConfidence = flag.Float64("min-confidence", -1, "Confidence floor for written edges")
		clusterFilter = flag.String("cluster", "", "Restrict the run to one cluster key")
		elementFilter = flag.String("element", "", "Restrict the run to formulas containing an element")
		workers       = flag.Int("workers", 0, "Classification workers (0 = per CPU)")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := FileConfig{Store: "memory"}
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	// Environment wins over the file, flags over both.
	if v := os.Getenv("CHEMFLOW_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv("CHEMFLOW_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("CHEMFLOW_POSTGRES_DSN"); v != "" {
		cfg.Postgres = v
	}

	// Flags win over the file.
	if *input != "" {
		cfg.Input = *input
	}
	if *storeKind != "" {
		cfg.Store = *storeKind
	}
	if *postgresDSN != "" {
		cfg.Postgres = *postgresDSN
	}
	if *minConfidence >= 0 {
		cfg.Engine.MinConfidence = *minConfidence
	}
	if *clusterFilter != "" {
		cfg.Engine.ClusterFilter = *clusterFilter
	}
	if *elementFilter != "" {
		cfg.Engine.ElementFilter = *elementFilter
	}
	if *workers > 0 {
		cfg.Engine.Workers = *workers
	}

	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "Usage: chemflow -input entries.jsonl [-store memory|postgres] [-config chemflow.yaml]")
		os.Exit(1)
	}

	level := logging.InfoLevel
	if *verbose {
		level = logging.DebugLevel
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	if err := run(&cfg, logger); err != nil {
		logger.Error("run failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(cfg *FileConfig, logger logging.Logger) error {
	started := time.Now()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := metrics.DefaultRegistry()

	ingestStart := time.Now()
	entries, report, err := source.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	registry.RecordIngest(report.Accepted, report.Rejected, 0, time.Since(ingestStart))

	logger.Info("dump loaded",
		logging.Path(cfg.Input),
		logging.Int("accepted", report.Accepted),
		logging.Int("rejected", report.Rejected),
	)
	for _, readErr := range report.Errors {
		logger.Warn("rejected entry", logging.Error(readErr))
	}

	eng, err := engine.New(store, cfg.Engine, logger, registry)
	if err != nil {
		return err
	}

	runReport, err := eng.Run(ctx, entries)
	if err != nil {
		return err
	}

	logger.Info("inference complete",
		logging.RunID(runReport.RunID),
		logging.Int("entries", runReport.Entries),
		logging.Int("clusters", runReport.Clusters),
		logging.Int("candidates", runReport.CandidatesConsidered),
		logging.Int("edges_upserted", runReport.EdgesUpserted),
		logging.Int("edges_failed", len(runReport.EdgesFailed)),
		logging.Duration("duration", runReport.Duration),
	)
	for _, failed := range runReport.EdgesFailed {
		logger.Warn("edge not written",
			logging.String("edge", failed.Edge.Key().String()),
			logging.Error(failed.Reason),
		)
	}

	registry.UpdateSystemMetrics(started)
	return nil
}

func openStore(ctx context.Context, cfg *FileConfig, logger logging.Logger) (graph.EdgeStore, func(), error) {
	switch cfg.Store {
	case "memory":
		store := graph.NewMemoryStore()
		return store, store.Close, nil
	case "postgres":
		if cfg.Postgres == "" {
			return nil, nil, fmt.Errorf("postgres store requires a connection string")
		}
		store, err := graph.NewPGStore(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to postgres store")
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

func loadConfig(path string, cfg *FileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
