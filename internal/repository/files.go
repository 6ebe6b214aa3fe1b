package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/gen/ent"
	entfile "github.com/hajime-ito/catalog-extractor/gen/ent/uploadfile"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

type UploadFileRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.UploadFile, error)
	Create(ctx context.Context, ownerID uuid.UUID, filename, path, ext, format string, size int64) (*entity.UploadFile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.UploadFile, error)
}

type uploadFileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUploadFileRepository(entc *ent.Client, log *slog.Logger) UploadFileRepository {
	return &uploadFileRepo{ent: entc, log: log}
}

func (r *uploadFileRepo) Get(ctx context.Context, id uuid.UUID) (*entity.UploadFile, error) {
	row, err := r.ent.UploadFile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUploadFile(row), nil
}

func (r *uploadFileRepo) Create(ctx context.Context, ownerID uuid.UUID, filename, path, ext, format string, size int64) (*entity.UploadFile, error) {
	row, err := r.ent.UploadFile.Create().
		SetOwnerID(ownerID).
		SetFilename(filename).
		SetFilePath(path).
		SetFileExt(ext).
		SetFormat(format).
		SetFileSize(int(size)).
		SetUploadedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_file create failed", "owner_id", ownerID, "filename", filename, "error", err)
		return nil, err
	}
	r.log.Info("upload_file created", "file_id", row.ID, "filename", filename, "format", format)
	return toUploadFile(row), nil
}

func (r *uploadFileRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.ent.UploadFile.UpdateOneID(id).SetStatus(status).Save(ctx)
	if err != nil {
		r.log.Error("upload_file status update failed", "file_id", id, "status", status, "error", err)
	}
	return err
}

func (r *uploadFileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.UploadFile, error) {
	rows, err := r.ent.UploadFile.Query().
		Where(entfile.OwnerID(ownerID)).
		Order(ent.Desc(entfile.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.UploadFile, len(rows))
	for i, row := range rows {
		out[i] = toUploadFile(row)
	}
	return out, nil
}

func toUploadFile(e *ent.UploadFile) *entity.UploadFile {
	return &entity.UploadFile{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Filename:   e.Filename,
		FilePath:   e.FilePath,
		FileExt:    e.FileExt,
		Format:     e.Format,
		FileSize:   int64(e.FileSize),
		Status:     e.Status,
		UploadedAt: e.UploadedAt,
	}
}
