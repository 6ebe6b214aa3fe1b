package transcribe

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue("Sheet1", ref, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, wb.SaveAs(path))
	return path
}

func TestExcelTranscribe(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"商品コード", "商品名", "JANコード", "希望小売価格"},
		{"EN-1361", "ぬいぐるみ ピカチュウ", "4970381806521", "1980"},
		{"", "", "", ""},
		{"EN-1362", "ぬいぐるみ イーブイ", "4970381806538", "1980"},
	})

	tr, err := NewExcelTranscriber(nil).Transcribe(context.Background(), path, "ja")
	require.NoError(t, err)
	assert.Contains(t, tr.Text, "EN-1361 | ぬいぐるみ ピカチュウ | 4970381806521 | 1980")
	assert.Contains(t, tr.Text, "EN-1362")
	assert.NotContains(t, tr.Text, "\n\n", "empty rows are skipped")
	assert.Equal(t, float32(excelConfidence), tr.Confidence)
	assert.Equal(t, "excel", tr.Method)
}

func TestExcelTranscribeMissingFile(t *testing.T) {
	_, err := NewExcelTranscriber(nil).Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), "ja")
	assert.Error(t, err)
}
