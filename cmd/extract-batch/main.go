package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/async"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/export"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
	"github.com/hajime-ito/catalog-extractor/internal/pipeline"
	repo "github.com/hajime-ito/catalog-extractor/internal/repository"
	"github.com/hajime-ito/catalog-extractor/internal/transcribe"
	"github.com/hajime-ito/catalog-extractor/internal/transcribe/openai"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath    = flag.String("db", "./catalog.db", "SQLite database path")
		dir       = flag.String("dir", "", "directory of catalog documents to process (required)")
		out       = flag.String("out", "", "output file path (defaults next to --dir)")
		formatStr = flag.String("format", "xlsx", "export format: csv or xlsx")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	format := export.Format(*formatStr)
	if format != export.FormatCSV && format != export.FormatXLSX {
		printError("Error: --format must be csv or xlsx\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "catalog."+string(format))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	path := *dbPath
	if *inmem {
		path = ":memory:"
	}
	entc, err := repo.OpenSQLite(ctx, path, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	filesRepo := repo.NewUploadFileRepository(entc, logger)
	jobsRepo := repo.NewConversionJobRepository(entc, logger)
	recordsRepo := repo.NewExtractedRecordRepository(entc, logger)

	vision := openai.NewClient(openai.Config{
		APIKey:      cfg.Vision.APIKey,
		BaseURL:     cfg.Vision.BaseURL,
		Model:       cfg.Vision.Model,
		Temperature: cfg.Vision.Temperature,
		MaxTokens:   cfg.Vision.MaxTokens,
		Timeout:     cfg.Vision.Timeout,
	}, logger)
	if cfg.Vision.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, image and PDF files will fail; spreadsheets still work")
	}
	excel := transcribe.NewExcelTranscriber(logger)
	pdf := transcribe.NewPDFTranscriber(vision, transcribe.ExecRunner{},
		cfg.Pipeline.PDFRenderer, cfg.Pipeline.ArtifactCacheDir,
		cfg.Pipeline.PDFRenderDPI, cfg.Pipeline.PDFMaxPages, logger)
	router := transcribe.NewRouter(vision, excel, pdf)

	ownerID := uuid.New()

	// register every supported document under --dir
	var fileIDs []uuid.UUID
	err = filepath.WalkDir(*dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := constants.NormalizeExt(filepath.Ext(p))
		fileFormat, ok := constants.FormatForExt(ext)
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		file, err := filesRepo.Create(ctx, ownerID, d.Name(), p, ext, fileFormat, info.Size())
		if err != nil {
			return err
		}
		fileIDs = append(fileIDs, file.ID)
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(fileIDs) == 0 {
		logger.Error("no supported files found", "dir", *dir)
		os.Exit(1)
	}
	logger.Info("files registered", "count", len(fileIDs), "dir", *dir)

	job, err := jobsRepo.Create(ctx, ownerID, "local batch", fileIDs)
	if err != nil {
		logger.Error("failed to create job", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(router, identity.SeedTable(),
		jobsRepo, filesRepo, recordsRepo, cfg.Pipeline.Language, logger)
	manager := async.NewManager(ctx, logger)
	if err := manager.StartJob(job.ID, func(runCtx context.Context) error {
		return processor.ProcessJob(runCtx, job.ID)
	}); err != nil {
		logger.Error("failed to start job", "error", err)
		os.Exit(1)
	}
	if err := manager.Shutdown(ctx); err != nil {
		logger.Error("job did not finish", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(recordsRepo, logger)
	data, err := exporter.Export(ctx, repo.RecordFilter{OwnerID: ownerID}, format)
	if err != nil {
		logger.Error("failed to export records", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write output", "path", *out, "error", err)
		os.Exit(1)
	}

	done, _ := jobsRepo.Get(ctx, job.ID)
	logger.Info("batch complete",
		"job_id", job.ID,
		"status", done.Status,
		"processed_files", done.ProcessedFiles,
		"output", *out)
}
