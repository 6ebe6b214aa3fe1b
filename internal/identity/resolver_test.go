package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable([]Entry{
		{Code: "ST-03CB", Barcode: "4970381804220"},
		{Code: "ST-03CB", Barcode: "4970381804213"},
	})
	require.Error(t, err)

	_, err = NewTable([]Entry{
		{Code: "ST-03CB", Barcode: "4970381804220"},
		{Code: "ST-04CB", Barcode: "4970381804220"},
	})
	require.Error(t, err)
}

func TestSeedTableRoundTrip(t *testing.T) {
	table := SeedTable()
	require.Equal(t, len(SeedEntries), table.Len())

	for _, e := range SeedEntries {
		barcode, ok := table.BarcodeForCode(e.Code)
		require.True(t, ok, e.Code)
		code, ok := table.CodeForBarcode(barcode)
		require.True(t, ok, barcode)
		assert.Equal(t, e.Code, code)
	}
}

func TestSeedTableNameLinks(t *testing.T) {
	table := SeedTable()

	name, ok := table.NameForCode("ST-03CB")
	require.True(t, ok)
	assert.Equal(t, "ピカチュウ", name)

	barcode, ok := table.BarcodeForName("ピカチュウ")
	require.True(t, ok)
	assert.Equal(t, "4970381804220", barcode)

	assert.True(t, table.Verified("ST-03CB"))
	assert.False(t, table.Verified("ST-04CB"))
}

func TestResolverTableLookup(t *testing.T) {
	r := NewResolver(SeedTable(), nil)
	got := r.Resolve("ST-03CB", nil)
	assert.Equal(t, "4970381804220", got.Barcode)
	assert.Equal(t, "ピカチュウ", got.Name)
}

func TestResolverPositionalFallback(t *testing.T) {
	table, err := NewTable([]Entry{{Code: "ST-99ZZ", Barcode: "4970381999999"}})
	require.NoError(t, err)
	r := NewResolver(table, nil)

	lines := []string{
		"ST-50AB 限定マスコット",
		"JANコード 4970381123456",
	}
	got := r.Resolve("ST-50AB", lines)
	assert.Equal(t, "4970381123456", got.Barcode)
}

func TestResolverFirstComeBarcodeOwnership(t *testing.T) {
	table, err := NewTable([]Entry{{Code: "ST-99ZZ", Barcode: "4970381999999"}})
	require.NoError(t, err)
	r := NewResolver(table, nil)

	lines := []string{
		"ST-50AB 限定マスコットA",
		"JANコード 4970381123456",
		"ST-51AB 限定マスコットB",
	}
	first := r.Resolve("ST-50AB", lines)
	require.Equal(t, "4970381123456", first.Barcode)

	// The only barcode in the window is already claimed.
	second := r.Resolve("ST-51AB", lines)
	assert.Empty(t, second.Barcode)
}

func TestResolverNameMediatedFallback(t *testing.T) {
	// Character known, barcode not in the table: the barcode printed on the
	// character's line decides.
	table, err := NewTable([]Entry{{Code: "ST-20XY", Name: "ゼニガメ"}})
	require.NoError(t, err)
	r := NewResolver(table, nil)

	lines := []string{
		"新商品のご案内",
		"ゼニガメ ぬいぐるみ 4970381555555",
	}
	got := r.Resolve("ST-20XY", lines)
	assert.Equal(t, "4970381555555", got.Barcode)
	assert.Equal(t, "ゼニガメ", got.Name)
}

func TestResolverUnresolvedStaysEmpty(t *testing.T) {
	table, err := NewTable([]Entry{{Code: "ST-99ZZ", Barcode: "4970381999999"}})
	require.NoError(t, err)
	r := NewResolver(table, nil)

	got := r.Resolve("EN-1299", []string{"キャラクタースリーブ EN-1299"})
	assert.Empty(t, got.Barcode)
	assert.Empty(t, got.Name)
}
