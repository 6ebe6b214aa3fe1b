package entity

import "github.com/google/uuid"

// Transcription is the raw output of a transcription backend for one file.
type Transcription struct {
	SourceFileID uuid.UUID
	Text         string
	Confidence   float32 // 0..100
	Language     string
	Pages        int
	Method       string // "vision", "excel", "pdf"

	// Products holds structured products the vision model returned directly,
	// when the response payload included them. Empty means the caller should
	// fall back to text segmentation and field extraction.
	Products []RecordFields
}

// SplitStrategy identifies which segmenter rule produced a section.
type SplitStrategy string

const (
	SplitBarcode     SplitStrategy = "barcode"
	SplitCode        SplitStrategy = "code"
	SplitTable       SplitStrategy = "table"
	SplitEntity      SplitStrategy = "entity"
	SplitCountPhrase SplitStrategy = "count_phrase"
	SplitSingle      SplitStrategy = "single"
)

// Section is one per-product slice of a normalized transcription.
type Section struct {
	Index    int // 1-based
	Total    int
	Text     string
	Strategy SplitStrategy
}
