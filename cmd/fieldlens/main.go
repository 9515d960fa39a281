package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/async"
	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/entity"
	"github.com/jide-lab/fieldlens/internal/export"
	"github.com/jide-lab/fieldlens/internal/llm"
	"github.com/jide-lab/fieldlens/internal/llm/hf"
	"github.com/jide-lab/fieldlens/internal/pipeline"
	repo "github.com/jide-lab/fieldlens/internal/repository"
	"github.com/jide-lab/fieldlens/internal/rules"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem       = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir         = flag.String("dir", "", "directory of .txt documents to process (required)")
		typeStr     = flag.String("type", "invoice", "document type (invoice|receipt)")
		strategyStr = flag.String("strategy", "rules", "extraction strategy (rules|model)")
		modelName   = flag.String("model", "", "QA model name (model strategy only)")
		out         = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr     = flag.String("from", "", "from date YYYY-MM-DD")
		toStr       = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	docType, ok := constants.ParseDocumentType(*typeStr)
	if !ok {
		printError("Error: unsupported --type %q\n", *typeStr)
		os.Exit(1)
	}
	strategy, ok := constants.ParseStrategy(*strategyStr)
	if !ok {
		printError("Error: unsupported --strategy %q\n", *strategyStr)
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "extractions.xlsx")
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ":memory:"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Open job store
	db, err := repo.Open(ctx, repo.Config{
		Driver:      cfg.Database.Driver,
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := repo.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	jobsRepo := repo.NewExtractionJobRepository(db, cfg.Database.Driver, logger)

	// Wire extractor factories
	rulesFactory := rules.NewFactory()
	resolver := hf.NewResolver(hf.Config{
		BaseURL: cfg.QA.BaseURL,
		APIKey:  cfg.QA.APIKey,
		Timeout: cfg.QA.Timeout,
	}, logger)
	qaModel := *modelName
	if qaModel == "" {
		qaModel = cfg.QA.Model
	}
	modelFactory := llm.NewFactory(qaModel, resolver, llm.WithLogger(logger))

	processor := pipeline.NewProcessor(logger, jobsRepo, rulesFactory, modelFactory)

	// Collect .txt documents
	var docs []entity.Document
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read document", "path", path, "error", err)
			return nil
		}
		docs = append(docs, entity.Document{
			Name: filepath.Base(path),
			Type: docType,
			Text: string(b),
		})
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("documents collected", "dir", *dir, "count", len(docs))

	// Process concurrently, then drain
	queue := async.NewQueue(processor, logger,
		async.WithWorkers(cfg.Batch.Workers),
		async.WithQueueSize(cfg.Batch.QueueSize),
		async.WithJobTimeout(cfg.Batch.JobTimeout),
	)
	for _, doc := range docs {
		_ = queue.Enqueue(ctx, async.Job{
			Doc:         doc,
			Strategy:    strategy,
			SubmittedAt: time.Now().UTC(),
		})
	}
	queue.Shutdown(ctx)

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(jobsRepo, logger)
	xlsxBytes, err := exportService.ExportJobsXLSX(ctx, &docType, from, to)
	if err != nil {
		logger.Error("failed to export jobs", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"documents", len(docs),
		"strategy", strategy,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents: %d\n", len(docs))
	fmt.Printf("- Strategy: %s\n", strategy)
	fmt.Printf("- Output: %s\n", *out)
}
