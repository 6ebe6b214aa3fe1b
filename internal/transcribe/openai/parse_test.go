package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReplyDirectJSON(t *testing.T) {
	tr, err := ParseReply(`{
		"raw_text": "商品名：ピカチュウ コインバンク\nJANコード：4970381804220",
		"confidence": 92,
		"products": [
			{"product_name": "ピカチュウ コインバンク", "sku": "ST-03CB", "jan_code": "4970381804220", "price": 1100}
		]
	}`)
	require.NoError(t, err)
	assert.Contains(t, tr.Text, "4970381804220")
	assert.Equal(t, float32(92), tr.Confidence)
	require.Len(t, tr.Products, 1)
	require.NotNil(t, tr.Products[0].Price)
	assert.Equal(t, float64(1100), *tr.Products[0].Price)
	require.NotNil(t, tr.Products[0].SKU)
	assert.Equal(t, "ST-03CB", *tr.Products[0].SKU)
}

func TestParseReplyFencedJSON(t *testing.T) {
	tr, err := ParseReply("Here is the transcription:\n```json\n{\"raw_text\": \"希望小売価格：1,100円\", \"confidence\": 88}\n```")
	require.NoError(t, err)
	assert.Equal(t, "希望小売価格：1,100円", tr.Text)
	assert.Equal(t, float32(88), tr.Confidence)
}

func TestParseReplyBareProductsArray(t *testing.T) {
	tr, err := ParseReply(`[{"product_name": "イーブイ コインバンク", "price": "¥1,100"}]`)
	require.NoError(t, err)
	require.Len(t, tr.Products, 1)
	require.NotNil(t, tr.Products[0].Price)
	assert.Equal(t, float64(1100), *tr.Products[0].Price)
	assert.Equal(t, float32(defaultConfidence), tr.Confidence)
}

func TestParseReplyPlainTextFallback(t *testing.T) {
	tr, err := ParseReply("商品名：モンコレ ピカチュウ\n希望小売価格：550円")
	require.NoError(t, err)
	assert.Contains(t, tr.Text, "モンコレ")
	assert.Equal(t, float32(plainTextConfidence), tr.Confidence)
	assert.Empty(t, tr.Products)
}

func TestParseReplyMissingConfidenceDefaults(t *testing.T) {
	tr, err := ParseReply(`{"raw_text": "some text"}`)
	require.NoError(t, err)
	assert.Equal(t, float32(defaultConfidence), tr.Confidence)
}

func TestParseReplyEmpty(t *testing.T) {
	_, err := ParseReply("   ")
	assert.Error(t, err)
}

func TestParseReplySkipsEmptyProducts(t *testing.T) {
	tr, err := ParseReply(`{"raw_text": "x", "products": [{}, {"product_name": "フォッコ コインバンク"}]}`)
	require.NoError(t, err)
	require.Len(t, tr.Products, 1)
	assert.Equal(t, "フォッコ コインバンク", *tr.Products[0].ProductName)
}

func TestParseReplyStringPriceVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"yen symbol with comma", `"¥1,100"`, 1100},
		{"trailing en", `"550円"`, 550},
		{"plain number string", `"2800"`, 2800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ParseReply(`{"raw_text": "x", "products": [{"product_name": "p", "price": ` + tt.raw + `}]}`)
			require.NoError(t, err)
			require.Len(t, tr.Products, 1)
			require.NotNil(t, tr.Products[0].Price)
			assert.Equal(t, tt.want, *tr.Products[0].Price)
		})
	}
}
