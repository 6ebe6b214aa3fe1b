package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajime-ito/catalog-extractor/constants"
)

// ConversionJob tracks one extraction run over a set of uploaded files.
type ConversionJob struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string

	FileIDs        []uuid.UUID
	TotalFiles     int
	ProcessedFiles int

	Status       constants.JobStatus
	ErrorMessage *string

	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UploadFile is a source document registered for extraction.
type UploadFile struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Filename string
	FilePath string
	FileExt  string
	Format   string // constants.FileTypes value
	FileSize int64
	Status   string

	UploadedAt time.Time
}

// Upload file status values.
const (
	FileStatusUploaded   = "uploaded"
	FileStatusProcessing = "processing"
	FileStatusCompleted  = "completed"
	FileStatusFailed     = "failed"
)
