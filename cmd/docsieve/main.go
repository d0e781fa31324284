package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/docsieve/docsieve"
	"github.com/docsieve/docsieve/internal/config"
	"github.com/docsieve/docsieve/pipeline"
)

func main() {
	_ = godotenv.Load()

	var (
		outlinePath = flag.String("outline", "", "extract the outline of a single document and print it as JSON")
		inputDir    = flag.String("input", "", "directory of collection directories to process")
		outputDir   = flag.String("output", "output", "directory for generated records")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	switch {
	case *outlinePath != "":
		if err := printOutline(*outlinePath); err != nil {
			log.Error("outline failed", "file", *outlinePath, "error", err)
			os.Exit(1)
		}
	case *inputDir != "":
		if err := processCollections(log, *inputDir, *outputDir); err != nil {
			log.Error("processing failed", "error", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printOutline(path string) error {
	outline, err := docsieve.Open(path).Outline()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(outline)
}

// processCollections runs every collection directory under inputDir: a
// directory holding an input.json and the documents it names. Each
// collection yields per-document outline records and a merged ranked
// output record under outputDir.
func processCollections(log *slog.Logger, inputDir, outputDir string) error {
	cfg := config.Load()
	runner := pipeline.NewRunnerWithConfig(pipeline.Config{
		Workers:   cfg.WorkerCount,
		MaxRanked: cfg.MaxRanked,
		Logger:    log,
	})

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		collectionDir := filepath.Join(inputDir, entry.Name())
		inputPath := filepath.Join(collectionDir, "input.json")
		if _, err := os.Stat(inputPath); err != nil {
			continue
		}

		log.Info("processing collection", "collection", entry.Name())
		if err := processCollection(log, runner, collectionDir, inputPath, filepath.Join(outputDir, entry.Name())); err != nil {
			log.Error("collection failed", "collection", entry.Name(), "error", err)
			continue
		}
		processed++
	}

	if processed == 0 {
		return fmt.Errorf("no collections found under %s", inputDir)
	}
	return nil
}

func processCollection(log *slog.Logger, runner *pipeline.Runner, dir, inputPath, outDir string) error {
	input, err := pipeline.LoadInput(inputPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	output, results, err := runner.ProcessCollection(context.Background(), input, dir)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Err != nil {
			log.Warn("document skipped", "document", result.Name, "error", result.Err)
			continue
		}
		stem := strings.TrimSuffix(result.Name, filepath.Ext(result.Name))
		outlinePath := filepath.Join(outDir, stem+".json")
		if err := pipeline.WriteOutline(outlinePath, result.Outline); err != nil {
			log.Warn("failed to write outline", "document", result.Name, "error", err)
		}
	}

	return pipeline.WriteOutput(filepath.Join(outDir, "output.json"), output)
}
