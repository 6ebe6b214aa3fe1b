// Package server exposes the catalog extraction pipeline over gRPC.
package server

import (
	"log/slog"

	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/async"
	"github.com/hajime-ito/catalog-extractor/internal/export"
	"github.com/hajime-ito/catalog-extractor/internal/pipeline"
	"github.com/hajime-ito/catalog-extractor/internal/repository"
)

type CatalogService struct {
	catalogpb.UnimplementedCatalogServiceServer

	files     repository.UploadFileRepository
	jobs      repository.ConversionJobRepository
	records   repository.ExtractedRecordRepository
	exporter  *export.Service
	processor *pipeline.Processor
	manager   *async.Manager
	logger    *slog.Logger
}

func NewCatalogService(
	files repository.UploadFileRepository,
	jobs repository.ConversionJobRepository,
	records repository.ExtractedRecordRepository,
	exporter *export.Service,
	processor *pipeline.Processor,
	manager *async.Manager,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		files:     files,
		jobs:      jobs,
		records:   records,
		exporter:  exporter,
		processor: processor,
		manager:   manager,
		logger:    logger,
	}
}
