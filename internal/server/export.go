package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/export"
)

func (s *CatalogService) ExportRecords(ctx context.Context, req *catalogpb.ExportRecordsRequest) (*catalogpb.ExportRecordsResponse, error) {
	filter, err := recordFilter(req.GetOwnerId(), req.GetJobId(), req.GetStatus())
	if err != nil {
		return nil, err
	}

	format := export.Format(strings.ToLower(strings.TrimSpace(req.GetFormat())))
	if format == "" {
		format = export.FormatXLSX
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		return nil, status.Errorf(codes.InvalidArgument, "format must be csv or xlsx, got %q", req.GetFormat())
	}

	data, err := s.exporter.Export(ctx, filter, format)
	if err != nil {
		s.logger.Error("export failed", "owner_id", filter.OwnerID, "format", format, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	filename := fmt.Sprintf("catalog-%s.%s", time.Now().UTC().Format("20060102-150405"), format)
	return &catalogpb.ExportRecordsResponse{Data: data, Filename: filename}, nil
}
