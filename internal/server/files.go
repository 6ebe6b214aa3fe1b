package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hajime-ito/catalog-extractor/constants"
	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/utils"
)

func (s *CatalogService) RegisterFile(ctx context.Context, req *catalogpb.RegisterFileRequest) (*catalogpb.RegisterFileResponse, error) {
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "file_path is required")
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	format, ok := constants.FormatForExt(ext)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Error("register file stat failed", "path", path, "error", err)
		return nil, status.Errorf(codes.NotFound, "file not readable: %v", err)
	}

	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		filename = filepath.Base(path)
	}

	file, err := s.files.Create(ctx, ownerID, filename, path, ext, format, info.Size())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "register file: %v", err)
	}
	return &catalogpb.RegisterFileResponse{File: utils.ToPBFile(file)}, nil
}
