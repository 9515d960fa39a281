package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/extract"
	"github.com/jide-lab/fieldlens/internal/llm"
	"github.com/jide-lab/fieldlens/internal/llm/hf"
	"github.com/jide-lab/fieldlens/internal/rules"
)

// Debug runner: extract one document and print the result as JSON.
func main() {
	var (
		file        = flag.String("file", "", "path to a .txt document (required)")
		typeStr     = flag.String("type", "invoice", "document type (invoice|receipt)")
		strategyStr = flag.String("strategy", "rules", "extraction strategy (rules|model)")
		modelName   = flag.String("model", "", "QA model name (model strategy only)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		os.Exit(1)
	}
	b, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("failed to read document", "path", *file, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()

	var factory extract.Factory
	switch *strategyStr {
	case "rules", "regex", "pattern":
		factory = rules.NewFactory()
	case "model", "ml", "qa":
		resolver := hf.NewResolver(hf.Config{
			BaseURL: cfg.QA.BaseURL,
			APIKey:  cfg.QA.APIKey,
			Timeout: cfg.QA.Timeout,
		}, logger)
		qaModel := *modelName
		if qaModel == "" {
			qaModel = cfg.QA.Model
		}
		factory = llm.NewFactory(qaModel, resolver, llm.WithLogger(logger))
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported --strategy %q\n", *strategyStr)
		os.Exit(1)
	}

	extractor, err := factory.CreateExtractorFromString(*typeStr)
	if err != nil {
		logger.Error("failed to create extractor", "type", *typeStr, "error", err)
		os.Exit(1)
	}

	ctx := common.WithDocumentName(context.Background(), filepath.Base(*file))
	result := extractor.Extract(ctx, string(b))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
