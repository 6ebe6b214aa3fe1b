// Package assemble turns per-section extraction results into persisted-shape
// records: it runs the extractors, applies resolver identities, derives the
// review status from confidence, and builds failure records for files whose
// transcription never produced text.
package assemble

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/fields"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
	"github.com/hajime-ito/catalog-extractor/internal/segment"
)

// sectionPreviewRunes bounds the stored section excerpt.
const sectionPreviewRunes = 300

type Assembler struct {
	log *slog.Logger
}

func NewAssembler(log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{log: log}
}

// Input carries everything needed to assemble one record.
type Input struct {
	OwnerID      uuid.UUID
	JobID        *uuid.UUID
	SourceFileID uuid.UUID

	Section    entity.Section
	Confidence float32 // transcription confidence, 0..100
	RawText    string  // full document text, stored once per record

	// Identity is the resolver outcome for the section's article code;
	// zero when the document had no code or resolution failed.
	Identity identity.Resolution
}

// Assemble extracts all fields from the section and builds the record.
// Resolver identities win over extractor output for the barcode and
// character-name fields only; every other field keeps the extractor value.
func (a *Assembler) Assemble(in Input) entity.ExtractedRecord {
	f := fields.ExtractAll(in.Section.Text)

	if in.Identity.Barcode != "" {
		f.JANCode = &in.Identity.Barcode
	}
	if in.Identity.Name != "" && f.CharacterName == nil {
		f.CharacterName = &in.Identity.Name
	}

	// Count-phrase sections share one text; the variant index is the only
	// thing distinguishing them.
	if in.Section.Strategy == entity.SplitCountPhrase && f.ProductName != nil {
		f.ProductName = variant(*f.ProductName, in.Section.Index)
	}

	status := constants.RecordStatusExtracted
	needsReview := in.Confidence < constants.NeedsReviewThreshold
	if needsReview {
		status = constants.RecordStatusNeedsReview
	}

	now := time.Now().UTC()
	rec := entity.ExtractedRecord{
		ID:                  uuid.New(),
		OwnerID:             in.OwnerID,
		ConversionJobID:     in.JobID,
		SourceFileID:        in.SourceFileID,
		Fields:              f,
		RawText:             in.RawText,
		SectionText:         preview(in.Section.Text),
		ConfidenceScore:     in.Confidence,
		Status:              status,
		NeedsReview:         needsReview,
		IsMultiProduct:      in.Section.Total > 1,
		TotalProductsInFile: max(in.Section.Total, 1),
		ProductIndex:        max(in.Section.Index, 1),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	a.log.Debug("assemble.record",
		"file_id", in.SourceFileID,
		"product_index", rec.ProductIndex,
		"status", rec.Status,
		"confidence", rec.ConfidenceScore)
	return rec
}

// FromStructured builds a record from a product payload the vision model
// returned directly, skipping the extractor pass.
func (a *Assembler) FromStructured(in Input, f entity.RecordFields) entity.ExtractedRecord {
	rec := a.Assemble(in)
	merged := f
	if merged.JANCode == nil {
		merged.JANCode = rec.Fields.JANCode
	}
	if merged.CharacterName == nil {
		merged.CharacterName = rec.Fields.CharacterName
	}
	rec.Fields = merged
	return rec
}

// Failure builds the record persisted when a file could not be transcribed
// at all. Transient causes yield pending_retry, everything else failed.
func (a *Assembler) Failure(ownerID uuid.UUID, jobID *uuid.UUID, fileID uuid.UUID, cause error, transient bool) entity.ExtractedRecord {
	status := constants.RecordStatusFailed
	if transient {
		status = constants.RecordStatusPendingRetry
	}
	msg := cause.Error()
	now := time.Now().UTC()

	a.log.Warn("assemble.failure", "file_id", fileID, "status", status, "error", msg)
	return entity.ExtractedRecord{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		ConversionJobID:     jobID,
		SourceFileID:        fileID,
		Status:              status,
		NeedsReview:         true,
		ErrorMessage:        &msg,
		TotalProductsInFile: 1,
		ProductIndex:        1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func variant(base string, index int) *string {
	v := segment.VariantLabel(base, index)
	return &v
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= sectionPreviewRunes {
		return s
	}
	return string(r[:sectionPreviewRunes]) + "..."
}
