package assemble

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajime-ito/catalog-extractor/constants"
	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/identity"
)

func singleSection(text string) entity.Section {
	return entity.Section{Index: 1, Total: 1, Text: text, Strategy: entity.SplitSingle}
}

func TestAssembleExtractedStatus(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(Input{
		OwnerID:      uuid.New(),
		SourceFileID: uuid.New(),
		Section:      singleSection("商品名：ピカチュウ コインバンク\n価格: ¥1,100"),
		Confidence:   92,
	})

	assert.Equal(t, constants.RecordStatusExtracted, rec.Status)
	assert.False(t, rec.NeedsReview)
	assert.Equal(t, 1, rec.ProductIndex)
	assert.Equal(t, 1, rec.TotalProductsInFile)
	assert.False(t, rec.IsMultiProduct)
	require.NotNil(t, rec.Fields.Price)
	assert.Equal(t, float64(1100), *rec.Fields.Price)
}

func TestAssembleLowConfidenceNeedsReview(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(Input{
		OwnerID:      uuid.New(),
		SourceFileID: uuid.New(),
		Section:      singleSection("商品名：ぬいぐるみ"),
		Confidence:   65,
	})

	assert.Equal(t, constants.RecordStatusNeedsReview, rec.Status)
	assert.True(t, rec.NeedsReview)
}

func TestAssembleResolverWinsBarcode(t *testing.T) {
	a := NewAssembler(nil)
	// Section text carries a different (misread) barcode; the resolver's
	// identity must win.
	rec := a.Assemble(Input{
		OwnerID:      uuid.New(),
		SourceFileID: uuid.New(),
		Section:      singleSection("ST-03CB コインバンク\nJANコード：4970381111111"),
		Confidence:   90,
		Identity:     identity.Resolution{Barcode: "4970381804220", Name: "ピカチュウ"},
	})

	require.NotNil(t, rec.Fields.JANCode)
	assert.Equal(t, "4970381804220", *rec.Fields.JANCode)
	require.NotNil(t, rec.Fields.CharacterName)
	assert.Equal(t, "ピカチュウ", *rec.Fields.CharacterName)
}

func TestAssembleMultiProductMetadata(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(Input{
		OwnerID:      uuid.New(),
		SourceFileID: uuid.New(),
		Section: entity.Section{
			Index: 3, Total: 5,
			Text:     "トレーディング缶バッジ 全5種類",
			Strategy: entity.SplitCountPhrase,
		},
		Confidence: 88,
	})

	assert.True(t, rec.IsMultiProduct)
	assert.Equal(t, 3, rec.ProductIndex)
	assert.Equal(t, 5, rec.TotalProductsInFile)
	require.NotNil(t, rec.Fields.ProductName)
	assert.Contains(t, *rec.Fields.ProductName, "タイプ3")
}

func TestFailureRecordStatuses(t *testing.T) {
	a := NewAssembler(nil)
	owner, file := uuid.New(), uuid.New()

	perm := a.Failure(owner, nil, file, errors.New("unsupported image payload"), false)
	assert.Equal(t, constants.RecordStatusFailed, perm.Status)
	require.NotNil(t, perm.ErrorMessage)
	assert.Equal(t, "unsupported image payload", *perm.ErrorMessage)

	trans := a.Failure(owner, nil, file, errors.New("rate limited"), true)
	assert.Equal(t, constants.RecordStatusPendingRetry, trans.Status)
}

func TestFromStructuredPrefersModelFields(t *testing.T) {
	a := NewAssembler(nil)
	name := "ピカチュウ コインバンク"
	payload := entity.RecordFields{ProductName: &name}

	rec := a.FromStructured(Input{
		OwnerID:      uuid.New(),
		SourceFileID: uuid.New(),
		Section:      singleSection("JANコード：4970381804220"),
		Confidence:   95,
	}, payload)

	require.NotNil(t, rec.Fields.ProductName)
	assert.Equal(t, name, *rec.Fields.ProductName)
	// Extractor-found barcode backfills the payload gap.
	require.NotNil(t, rec.Fields.JANCode)
	assert.Equal(t, "4970381804220", *rec.Fields.JANCode)
}
