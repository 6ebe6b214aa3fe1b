package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

func TestSplitSingleProductDocument(t *testing.T) {
	text := "手作りマスコット 限定販売\nお問い合わせは店舗までお願いします"
	got := NewSegmenter(nil).Split(text)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 1, got[0].Total)
	assert.Equal(t, entity.SplitSingle, got[0].Strategy)
	assert.Equal(t, text, got[0].Text)
}

func TestSplitByBarcodes(t *testing.T) {
	text := `商品名：マスコットA
バーコード 4512345678901
商品サイズ：約50×40×30mm
商品名：マスコットB
バーコード 4998765432109
商品サイズ：約55×45×35mm`
	got := NewSegmenter(nil).Split(text)

	require.Len(t, got, 2)
	for i, sec := range got {
		assert.Equal(t, i+1, sec.Index)
		assert.Equal(t, 2, sec.Total)
		assert.Equal(t, entity.SplitBarcode, sec.Strategy)
	}
	assert.Contains(t, got[0].Text, "4512345678901")
	assert.NotContains(t, got[0].Text, "4998765432109")
	assert.Contains(t, got[1].Text, "4998765432109")
}

func TestSplitByCodes(t *testing.T) {
	text := `キャラクタースリーブ『甘神さんちの縁結び』朝姫 (EN-1299)
希望小売価格 880円
キャラクタースリーブ『甘神さんちの縁結び』夜重 (EN-1300)
希望小売価格 880円`
	got := NewSegmenter(nil).Split(text)

	require.Len(t, got, 2)
	assert.Equal(t, entity.SplitCode, got[0].Strategy)
	assert.Contains(t, got[0].Text, "EN-1299")
	assert.Contains(t, got[1].Text, "EN-1300")
}

func TestSplitByTableRows(t *testing.T) {
	text := `商品名 | 価格 | 発売予定日
キャラクタースリーブ 朝姫 (EN-1299) | 880円
キャラクタースリーブ 夜重 (EN-1300) | 880円
キャラクタースリーブ 朝姫 (EN-1299) 再掲 | 880円`
	lines := strings.Split(text, "\n")
	secs := NewSegmenter(nil).byTableRows(lines)

	require.Len(t, secs, 2)
	assert.Contains(t, secs[0], "商品名 | 価格")
	assert.Contains(t, secs[0], "EN-1299")
	assert.Contains(t, secs[1], "EN-1300")
}

func TestSplitByCountPhrase(t *testing.T) {
	got := NewSegmenter(nil).Split("トレーディング缶バッジ 全5種類 ボックス入り")

	require.Len(t, got, 5)
	for i, sec := range got {
		assert.Equal(t, i+1, sec.Index)
		assert.Equal(t, 5, sec.Total)
		assert.Equal(t, entity.SplitCountPhrase, sec.Strategy)
	}
}

func TestSplitCountPhraseCapped(t *testing.T) {
	got := NewSegmenter(nil).Split("アクリルキーホルダー 全30種類 ランダム封入")
	assert.Len(t, got, maxCountPhraseSections)
}

func TestCountPhraseTotal(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"全5種類", 5},
		{"全12種", 12},
		{"3タイプ展開", 3},
		{"全1種類", 0},
		{"種類豊富", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countPhraseTotal(tt.text), tt.text)
	}
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "缶バッジ - タイプ3", VariantLabel("缶バッジ", 3))
}
