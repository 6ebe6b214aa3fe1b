// Package export renders extracted records into the fixed marketplace
// upload layout, as CSV or as an XLSX workbook.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/repository"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Service produces export bytes from the record store.
type Service struct {
	records repository.ExtractedRecordRepository
	logger  *slog.Logger
}

func NewService(records repository.ExtractedRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// Export renders every record matching the filter, in list order.
func (s *Service) Export(ctx context.Context, filter repository.RecordFilter, format Format) ([]byte, error) {
	start := time.Now()

	recs, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	var out []byte
	switch format {
	case FormatCSV:
		out, err = renderCSV(recs)
	case FormatXLSX:
		out, err = renderXLSX(recs)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.ok",
		"owner_id", filter.OwnerID.String(),
		"format", format,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func renderCSV(recs []*entity.ExtractedRecord) ([]byte, error) {
	var buf bytes.Buffer
	// UTF-8 BOM so Excel on Windows opens Japanese headers correctly
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.Write(headers()); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if err := w.Write(rowValues(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(recs []*entity.ExtractedRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	for i, h := range headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for rowIdx, r := range recs {
		for colIdx, v := range rowValues(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // product name
	_ = f.SetColWidth(sheet, "B", "C", 18) // codes
	_ = f.SetColWidth(sheet, "U", "U", 60) // description

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
