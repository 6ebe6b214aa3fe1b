package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/gen/ent"
	entjob "github.com/hajime-ito/catalog-extractor/gen/ent/conversionjob"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

type ConversionJobRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string, fileIDs []uuid.UUID) (*entity.ConversionJob, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ConversionJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetProgress(ctx context.Context, id uuid.UUID, processed int) error
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, errMsg *string) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ConversionJob, error)
}

type conversionJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewConversionJobRepository(entc *ent.Client, log *slog.Logger) ConversionJobRepository {
	return &conversionJobRepo{ent: entc, log: log}
}

func (r *conversionJobRepo) Create(ctx context.Context, ownerID uuid.UUID, name string, fileIDs []uuid.UUID) (*entity.ConversionJob, error) {
	row, err := r.ent.ConversionJob.Create().
		SetOwnerID(ownerID).
		SetName(name).
		SetFileIds(fileIDs).
		SetTotalFiles(len(fileIDs)).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("conversion_job create failed", "owner_id", ownerID, "error", err)
		return nil, err
	}
	r.log.Info("conversion_job created", "job_id", row.ID, "files", len(fileIDs))
	return toConversionJob(row), nil
}

func (r *conversionJobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ConversionJob, error) {
	row, err := r.ent.ConversionJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConversionJob(row), nil
}

func (r *conversionJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.ConversionJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("conversion_job mark processing failed", "job_id", id, "error", err)
	}
	return err
}

func (r *conversionJobRepo) SetProgress(ctx context.Context, id uuid.UUID, processed int) error {
	_, err := r.ent.ConversionJob.UpdateOneID(id).
		SetProcessedFiles(processed).
		Save(ctx)
	if err != nil {
		r.log.Error("conversion_job progress update failed", "job_id", id, "error", err)
	}
	return err
}

func (r *conversionJobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, errMsg *string) error {
	upd := r.ent.ConversionJob.UpdateOneID(id).
		SetStatus(string(status)).
		SetCompletedAt(time.Now())
	if errMsg != nil {
		upd.SetErrorMessage(*errMsg)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("conversion_job finish failed", "job_id", id, "status", status, "error", err)
		return err
	}
	r.log.Info("conversion_job finished", "job_id", id, "status", status)
	return nil
}

func (r *conversionJobRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ConversionJob, error) {
	rows, err := r.ent.ConversionJob.Query().
		Where(entjob.OwnerID(ownerID)).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ConversionJob, len(rows))
	for i, row := range rows {
		out[i] = toConversionJob(row)
	}
	return out, nil
}

func toConversionJob(e *ent.ConversionJob) *entity.ConversionJob {
	return &entity.ConversionJob{
		ID:             e.ID,
		OwnerID:        e.OwnerID,
		Name:           e.Name,
		FileIDs:        e.FileIds,
		TotalFiles:     e.TotalFiles,
		ProcessedFiles: e.ProcessedFiles,
		Status:         constants.JobStatus(e.Status),
		ErrorMessage:   e.ErrorMessage,
		StartedAt:      e.StartedAt,
		CompletedAt:    e.CompletedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
