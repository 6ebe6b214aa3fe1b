package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/repository"
)

type stubRecords struct {
	repository.ExtractedRecordRepository
	records []*entity.ExtractedRecord
}

func (s *stubRecords) List(_ context.Context, _ repository.RecordFilter) ([]*entity.ExtractedRecord, error) {
	return s.records, nil
}

func sampleRecords() []*entity.ExtractedRecord {
	name := "ポケットモンスター コインバンク ピカチュウ"
	sku := "ST-03CB"
	jan := "4970381804220"
	price := 1100.0
	origin := "日本"
	return []*entity.ExtractedRecord{
		{
			ID:      uuid.New(),
			OwnerID: uuid.New(),
			Fields: entity.RecordFields{
				ProductName: &name,
				SKU:         &sku,
				JANCode:     &jan,
				Price:       &price,
				Origin:      &origin,
			},
			Status:              constants.RecordStatusExtracted,
			ConfidenceScore:     92,
			ProductIndex:        1,
			TotalProductsInFile: 2,
		},
		{
			ID:                  uuid.New(),
			OwnerID:             uuid.New(),
			Status:              constants.RecordStatusNeedsReview,
			ConfidenceScore:     65,
			ProductIndex:        2,
			TotalProductsInFile: 2,
		},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewService(&stubRecords{records: sampleRecords()}, nil)
	out, err := svc.Export(context.Background(), repository.RecordFilter{}, FormatCSV)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, []byte("\xEF\xBB\xBF")), "csv carries a BOM")
	rows, err := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(out, []byte("\xEF\xBB\xBF"))))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "商品名", rows[0][0])
	assert.Equal(t, "JANコード", rows[0][2])
	assert.Equal(t, "ポケットモンスター コインバンク ピカチュウ", rows[1][0])
	assert.Equal(t, "4970381804220", rows[1][2])
	assert.Equal(t, "1100", rows[1][6])
	assert.Equal(t, "1/2", rows[1][len(rows[1])-1])
	assert.Equal(t, "needs_review", rows[2][len(rows[0])-3])
	assert.Equal(t, "", rows[2][0], "missing fields export as empty cells")
}

func TestExportXLSX(t *testing.T) {
	svc := NewService(&stubRecords{records: sampleRecords()}, nil)
	out, err := svc.Export(context.Background(), repository.RecordFilter{}, FormatXLSX)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	a1, err := wb.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "商品名", a1)
	a2, err := wb.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "ポケットモンスター コインバンク ピカチュウ", a2)
	c2, err := wb.GetCellValue("Sheet1", "C2")
	require.NoError(t, err)
	assert.Equal(t, "4970381804220", c2)
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewService(&stubRecords{}, nil)
	_, err := svc.Export(context.Background(), repository.RecordFilter{}, Format("pdf"))
	assert.Error(t, err)
}
