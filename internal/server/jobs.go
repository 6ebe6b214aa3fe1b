package server

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/utils"
)

func (s *CatalogService) StartConversion(ctx context.Context, req *catalogpb.StartConversionRequest) (*catalogpb.StartConversionResponse, error) {
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	if len(req.GetFileIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "file_ids is required")
	}

	fileIDs := make([]uuid.UUID, 0, len(req.GetFileIds()))
	for _, raw := range req.GetFileIds() {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid file id %q", raw)
		}
		if _, err := s.files.Get(ctx, id); err != nil {
			return nil, status.Errorf(codes.NotFound, "file %s not found", id)
		}
		fileIDs = append(fileIDs, id)
	}

	job, err := s.jobs.Create(ctx, ownerID, strings.TrimSpace(req.GetName()), fileIDs)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}

	jobID := job.ID
	if err := s.manager.StartJob(jobID, func(runCtx context.Context) error {
		return s.processor.ProcessJob(runCtx, jobID)
	}); err != nil {
		return nil, status.Errorf(codes.Internal, "start job: %v", err)
	}

	s.logger.Info("conversion started", "job_id", jobID, "owner_id", ownerID, "files", len(fileIDs))
	return &catalogpb.StartConversionResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *CatalogService) GetConversionJob(ctx context.Context, req *catalogpb.GetConversionJobRequest) (*catalogpb.GetConversionJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
	}
	return &catalogpb.GetConversionJobResponse{Job: utils.ToPBJob(job)}, nil
}

func (s *CatalogService) CancelConversion(ctx context.Context, req *catalogpb.CancelConversionRequest) (*catalogpb.CancelConversionResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	if err := s.manager.CancelJob(jobID); err != nil {
		if errors.Is(err, common.ErrJobNotRunning) {
			return nil, status.Errorf(codes.FailedPrecondition, "job %s is not running", jobID)
		}
		return nil, status.Errorf(codes.Internal, "cancel job: %v", err)
	}

	// the cancelled status lands asynchronously; report the current row
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
	}
	return &catalogpb.CancelConversionResponse{Job: utils.ToPBJob(job)}, nil
}
