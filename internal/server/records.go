package server

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hajime-ito/catalog-extractor/constants"
	catalogpb "github.com/hajime-ito/catalog-extractor/gen/proto/catalog/v1"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/repository"
	"github.com/hajime-ito/catalog-extractor/internal/utils"
)

func (s *CatalogService) ListRecords(ctx context.Context, req *catalogpb.ListRecordsRequest) (*catalogpb.ListRecordsResponse, error) {
	filter, err := recordFilter(req.GetOwnerId(), req.GetJobId(), req.GetStatus())
	if err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(req.GetFileId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "file_id must be a UUID")
		}
		filter.FileID = &id
	}
	if req.GetNeedsReviewOnly() {
		needsReview := true
		filter.NeedsReview = &needsReview
	}
	filter.Limit = int(req.GetLimit())
	filter.Offset = int(req.GetOffset())

	recs, err := s.records.List(ctx, filter)
	if err != nil {
		s.logger.Error("list records failed", "owner_id", filter.OwnerID, "error", err)
		return nil, status.Errorf(codes.Internal, "list records: %v", err)
	}
	total, err := s.records.Count(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count records: %v", err)
	}

	out := make([]*catalogpb.ExtractedRecord, len(recs))
	for i, r := range recs {
		out[i] = utils.ToPBRecord(r)
	}
	return &catalogpb.ListRecordsResponse{Records: out, Total: int32(total)}, nil
}

func (s *CatalogService) ValidateRecord(ctx context.Context, req *catalogpb.ValidateRecordRequest) (*catalogpb.ValidateRecordResponse, error) {
	recordID, err := uuid.Parse(strings.TrimSpace(req.GetRecordId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "record_id must be a UUID")
	}

	rec, err := s.records.Validate(ctx, recordID, utils.FieldsFromPB(req.GetCorrections()))
	if err != nil {
		if errors.Is(err, common.ErrRecordValidated) {
			return nil, status.Errorf(codes.FailedPrecondition, "record %s is already validated", recordID)
		}
		s.logger.Error("validate record failed", "record_id", recordID, "error", err)
		return nil, status.Errorf(codes.Internal, "validate record: %v", err)
	}
	return &catalogpb.ValidateRecordResponse{Record: utils.ToPBRecord(rec)}, nil
}

// recordFilter parses the owner/job/status triple shared by list and export.
func recordFilter(ownerRaw, jobRaw, statusRaw string) (repository.RecordFilter, error) {
	var filter repository.RecordFilter

	ownerID, err := uuid.Parse(strings.TrimSpace(ownerRaw))
	if err != nil {
		return filter, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	filter.OwnerID = ownerID

	if raw := strings.TrimSpace(jobRaw); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, status.Error(codes.InvalidArgument, "job_id must be a UUID")
		}
		filter.JobID = &id
	}
	if raw := strings.TrimSpace(statusRaw); raw != "" {
		st := constants.RecordStatus(raw)
		switch st {
		case constants.RecordStatusExtracted, constants.RecordStatusNeedsReview,
			constants.RecordStatusValidated, constants.RecordStatusFailed,
			constants.RecordStatusPendingRetry:
			filter.Status = &st
		default:
			return filter, status.Errorf(codes.InvalidArgument, "unknown status %q", raw)
		}
	}
	return filter, nil
}
