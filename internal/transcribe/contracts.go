// Package transcribe turns source documents (catalog images, spreadsheets,
// PDFs) into raw text transcriptions for the extraction pipeline.
package transcribe

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// Transcriber reads one document and returns its transcription.
type Transcriber interface {
	Transcribe(ctx context.Context, path string, language string) (entity.Transcription, error)
}

// Router dispatches a file to the transcriber for its format.
type Router struct {
	image Transcriber
	excel Transcriber
	pdf   Transcriber
}

func NewRouter(image, excel, pdf Transcriber) *Router {
	return &Router{image: image, excel: excel, pdf: pdf}
}

// Transcribe routes by file extension.
func (r *Router) Transcribe(ctx context.Context, path string, language string) (entity.Transcription, error) {
	format, ok := constants.FormatForExt(filepath.Ext(path))
	if !ok {
		return entity.Transcription{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	switch format {
	case "IMAGE":
		return r.image.Transcribe(ctx, path, language)
	case "EXCEL":
		return r.excel.Transcribe(ctx, path, language)
	case "PDF":
		return r.pdf.Transcribe(ctx, path, language)
	default:
		return entity.Transcription{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
