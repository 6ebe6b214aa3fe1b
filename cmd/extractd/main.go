package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/async"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/export"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
	"github.com/hajime-ito/catalog-extractor/internal/pipeline"
	repo "github.com/hajime-ito/catalog-extractor/internal/repository"
	svc "github.com/hajime-ito/catalog-extractor/internal/server"
	"github.com/hajime-ito/catalog-extractor/internal/transcribe"
	"github.com/hajime-ito/catalog-extractor/internal/transcribe/openai"
)

func main() {
	// Structured logger with variables but no time/level noise on stdout
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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
	excel := transcribe.NewExcelTranscriber(logger)
	pdf := transcribe.NewPDFTranscriber(vision, transcribe.ExecRunner{},
		cfg.Pipeline.PDFRenderer, cfg.Pipeline.ArtifactCacheDir,
		cfg.Pipeline.PDFRenderDPI, cfg.Pipeline.PDFMaxPages, logger)
	router := transcribe.NewRouter(vision, excel, pdf)

	processor := pipeline.NewProcessor(router, identity.SeedTable(),
		jobsRepo, filesRepo, recordsRepo, cfg.Pipeline.Language, logger)
	manager := async.NewManager(ctx, logger)
	exporter := export.NewService(recordsRepo, logger)

	catalogService := svc.NewCatalogService(filesRepo, jobsRepo, recordsRepo, exporter, processor, manager, logger)
	catalogpb.RegisterCatalogServiceServer(grpcServer, catalogService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("extractd listening", "addr", addr, "model", cfg.Vision.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := manager.Shutdown(shutdownCtx); err != nil {
		logger.Warn("jobs still running at shutdown", "error", err)
	}
	grpcServer.GracefulStop()
}
