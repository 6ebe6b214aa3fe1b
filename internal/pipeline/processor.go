// Package pipeline drives a conversion job end to end: transcribe each
// file, split the text into product sections, resolve code identities,
// assemble records and persist them.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/assemble"
	"github.com/hajime-ito/catalog-extractor/internal/common"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/fields"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
	"github.com/hajime-ito/catalog-extractor/internal/normalize"
	"github.com/hajime-ito/catalog-extractor/internal/segment"
	"github.com/hajime-ito/catalog-extractor/internal/transcribe"
)

// JobStore is the slice of the job repository the processor needs.
type JobStore interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.ConversionJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetProgress(ctx context.Context, id uuid.UUID, processed int) error
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, errMsg *string) error
}

// FileStore is the slice of the upload-file repository the processor needs.
type FileStore interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.UploadFile, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// RecordStore persists assembled records.
type RecordStore interface {
	CreateBatch(ctx context.Context, records []entity.ExtractedRecord) error
}

type Processor struct {
	transcriber transcribe.Transcriber
	segmenter   *segment.Segmenter
	assembler   *assemble.Assembler
	table       *identity.Table
	jobs        JobStore
	files       FileStore
	records     RecordStore
	language    string
	log         *slog.Logger
}

func NewProcessor(
	transcriber transcribe.Transcriber,
	table *identity.Table,
	jobs JobStore,
	files FileStore,
	records RecordStore,
	language string,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "ja"
	}
	return &Processor{
		transcriber: transcriber,
		segmenter:   segment.NewSegmenter(logger),
		assembler:   assemble.NewAssembler(logger),
		table:       table,
		jobs:        jobs,
		files:       files,
		records:     records,
		language:    language,
		log:         logger,
	}
}

// ProcessJob runs one job to completion. Files are processed in order; a
// failing file is recorded and does not stop the rest. Cancellation is
// honored between files, never mid-file.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) error {
	start := time.Now()

	job, err := p.jobs.Get(ctx, jobID)
	if err != nil {
		return common.WrapError(err, "load job")
	}
	if err := p.jobs.MarkProcessing(ctx, jobID); err != nil {
		return common.WrapError(err, "mark job processing")
	}
	p.log.Info("pipeline.job.start", "job_id", jobID, "files", len(job.FileIDs))

	var failed int
	for i, fileID := range job.FileIDs {
		if ctx.Err() != nil {
			// the job context is dead; the status write gets its own
			msg := common.ErrJobCancelled.Error()
			if err := p.jobs.Finish(context.WithoutCancel(ctx), jobID, constants.JobStatusCancelled, &msg); err != nil {
				p.log.Error("pipeline.job.cancel_update_failed", "job_id", jobID, "error", err)
			}
			p.log.Info("pipeline.job.cancelled", "job_id", jobID, "processed", i)
			return common.ErrJobCancelled
		}

		if err := p.processFile(ctx, job, fileID); err != nil {
			failed++
		}
		if err := p.jobs.SetProgress(ctx, jobID, i+1); err != nil {
			p.log.Error("pipeline.job.progress_update_failed", "job_id", jobID, "error", err)
		}
	}

	status := constants.JobStatusCompleted
	var errMsg *string
	if failed > 0 && failed == len(job.FileIDs) {
		status = constants.JobStatusFailed
		msg := "all files failed"
		errMsg = &msg
	}
	if err := p.jobs.Finish(ctx, jobID, status, errMsg); err != nil {
		return common.WrapError(err, "finish job")
	}

	p.log.Info("pipeline.job.done",
		"job_id", jobID,
		"status", status,
		"failed_files", failed,
		"elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// processFile transcribes one file and persists its records. On error a
// failure record is stored instead, classified transient or permanent.
func (p *Processor) processFile(ctx context.Context, job *entity.ConversionJob, fileID uuid.UUID) error {
	file, err := p.files.Get(ctx, fileID)
	if err != nil {
		p.log.Error("pipeline.file.load_failed", "file_id", fileID, "error", err)
		return p.storeFailure(ctx, job, fileID, err)
	}
	if err := p.files.SetStatus(ctx, fileID, entity.FileStatusProcessing); err != nil {
		p.log.Error("pipeline.file.status_update_failed", "file_id", fileID, "error", err)
	}

	tr, err := p.transcriber.Transcribe(ctx, file.FilePath, p.language)
	if err != nil {
		p.log.Error("pipeline.file.transcribe_failed", "file_id", fileID, "error", err)
		return p.storeFailure(ctx, job, fileID, err)
	}

	records := p.buildRecords(job, fileID, tr)
	if err := p.records.CreateBatch(ctx, records); err != nil {
		p.log.Error("pipeline.file.persist_failed", "file_id", fileID, "error", err)
		return p.storeFailure(ctx, job, fileID, err)
	}

	if err := p.files.SetStatus(ctx, fileID, entity.FileStatusCompleted); err != nil {
		p.log.Error("pipeline.file.status_update_failed", "file_id", fileID, "error", err)
	}
	p.log.Info("pipeline.file.done", "file_id", fileID, "records", len(records), "method", tr.Method)
	return nil
}

// buildRecords prefers products the vision model separated itself; when
// the model returned only raw text, the segmentation cascade takes over.
func (p *Processor) buildRecords(job *entity.ConversionJob, fileID uuid.UUID, tr entity.Transcription) []entity.ExtractedRecord {
	text := normalize.Text(tr.Text)

	if len(tr.Products) > 0 {
		records := make([]entity.ExtractedRecord, 0, len(tr.Products))
		for i, product := range tr.Products {
			in := assemble.Input{
				OwnerID:      job.OwnerID,
				JobID:        &job.ID,
				SourceFileID: fileID,
				Section: entity.Section{
					Index:    i + 1,
					Total:    len(tr.Products),
					Text:     text,
					Strategy: entity.SplitEntity,
				},
				Confidence: tr.Confidence,
				RawText:    tr.Text,
			}
			records = append(records, p.assembler.FromStructured(in, product))
		}
		return records
	}

	sections := p.segmenter.Split(text)
	resolver := identity.NewResolver(p.table, p.log)
	lines := normalize.Lines(text)

	records := make([]entity.ExtractedRecord, 0, len(sections))
	for _, section := range sections {
		var res identity.Resolution
		if code := fields.SKU(section.Text); code != nil {
			res = resolver.Resolve(*code, lines)
		}
		records = append(records, p.assembler.Assemble(assemble.Input{
			OwnerID:      job.OwnerID,
			JobID:        &job.ID,
			SourceFileID: fileID,
			Section:      section,
			Confidence:   tr.Confidence,
			RawText:      tr.Text,
			Identity:     res,
		}))
	}
	return records
}

func (p *Processor) storeFailure(ctx context.Context, job *entity.ConversionJob, fileID uuid.UUID, cause error) error {
	rec := p.assembler.Failure(job.OwnerID, &job.ID, fileID, cause, transcribe.Transient(cause))
	if err := p.records.CreateBatch(ctx, []entity.ExtractedRecord{rec}); err != nil {
		p.log.Error("pipeline.failure.persist_failed", "file_id", fileID, "error", err)
	}
	if err := p.files.SetStatus(ctx, fileID, entity.FileStatusFailed); err != nil {
		p.log.Error("pipeline.file.status_update_failed", "file_id", fileID, "error", err)
	}
	return cause
}
