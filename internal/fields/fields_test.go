package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coinBankSheet = `ポケットモンスター コインバンク ピカチュウ ST-03CB
メーカー：エンスカイ
価格: ¥1,100
発売予定日：2025年1月24日
JANコード：4970381804220
商品サイズ：約107×70×61mm
対象年齢：6歳以上
入数：6個入り
素材：PVC`

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *float64
	}{
		{"yen symbol with comma", "価格: ¥1,100", floatPtr(1100)},
		{"suffix en", "単価 880円", floatPtr(880)},
		{"labeled list price", "定価：3,300", floatPtr(3300)},
		{"below minimum rejected", "¥10", nil},
		{"above maximum rejected", "¥150,000", nil},
		{"no price", "ポケモン ぬいぐるみ", nil},
		{"empty input", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestJANCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain 13 digit", "バーコード 4970381804220 下記参照", "4970381804220"},
		{"labeled", "JANコード：4970381804213", "4970381804213"},
		{"hyphenated maker prefix", "JAN: 4970381-804206", "4970381804206"},
		{"gs1 45 prefix", "4512345678901", "4512345678901"},
		{"eight digit fallback", "短縮コード：45123456", "45123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JANCode(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("none found", func(t *testing.T) {
		assert.Nil(t, JANCode("商品名のみのテキスト"))
	})
}

func TestAllJANCodesDistinctInOrder(t *testing.T) {
	text := `ST-03CB 4970381804220
ST-04CB 4970381804213
再掲 4970381804220
ST-05CB 4970381-804206`
	got := AllJANCodes(text)
	assert.Equal(t, []string{"4970381804220", "4970381804213", "4970381804206"}, got)
}

func TestSKU(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"st code", "ポケモン コインバンク ST-03CB", "ST-03CB"},
		{"en code", "キャラクタースリーブ EN-1299", "EN-1299"},
		{"labeled generic", "SKU: AB-123", "AB-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SKU(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
	assert.Nil(t, SKU("コードなし"))
}

func TestReleaseDate(t *testing.T) {
	t.Run("keyword proximity wins", func(t *testing.T) {
		got := ReleaseDate("発売予定日：2025年1月24日")
		require.NotNil(t, got)
		assert.Equal(t, "2025年1月24日", *got)
	})
	t.Run("slash format near keyword", func(t *testing.T) {
		got := ReleaseDate("発売日 2024/12/15")
		require.NotNil(t, got)
		assert.Equal(t, "2024年12月15日", *got)
	})
	t.Run("global search validates year", func(t *testing.T) {
		assert.Nil(t, ReleaseDate("1999年1月1日"))
		got := ReleaseDate("2026年3月 入荷")
		require.NotNil(t, got)
		assert.Equal(t, "2026年3月", *got)
	})
	t.Run("no date", func(t *testing.T) {
		assert.Nil(t, ReleaseDate("ぬいぐるみ 全5種"))
	})
}

func TestTargetAge(t *testing.T) {
	t.Run("labeled", func(t *testing.T) {
		got := TargetAge("対象年齢：6歳以上")
		require.NotNil(t, got)
		assert.Equal(t, "6歳以上", *got)
	})
	t.Run("numeric normalized", func(t *testing.T) {
		got := TargetAge("15歳以上推奨")
		require.NotNil(t, got)
		assert.Equal(t, "15歳以上", *got)
	})
	t.Run("franchise default", func(t *testing.T) {
		got := TargetAge("ポケモン ぬいぐるみ")
		require.NotNil(t, got)
		assert.Equal(t, "3歳以上", *got)
	})
	t.Run("implausible age ignored", func(t *testing.T) {
		assert.Nil(t, TargetAge("99歳以上"))
	})
}

func TestDimensions(t *testing.T) {
	t.Run("labeled", func(t *testing.T) {
		got := Dimensions("商品サイズ：約107×70×61mm")
		require.NotNil(t, got)
		assert.Equal(t, "約107×70×61mm", *got)
	})
	t.Run("bare triple canonicalized", func(t *testing.T) {
		got := Dimensions("本体は 107 × 70 × 61 mm です")
		require.NotNil(t, got)
		assert.Equal(t, "約107×70×61mm", *got)
	})
	t.Run("none", func(t *testing.T) {
		assert.Nil(t, Dimensions("サイズ表記なし"))
	})
}

func TestCasePackQuantity(t *testing.T) {
	t.Run("combined carton form", func(t *testing.T) {
		got := CasePackQuantity("30入 (10パック×3BOX)")
		require.NotNil(t, got)
		assert.Equal(t, 30, *got)
	})
	t.Run("labeled", func(t *testing.T) {
		got := CasePackQuantity("ケース梱入数：120")
		require.NotNil(t, got)
		assert.Equal(t, 120, *got)
	})
	t.Run("none", func(t *testing.T) {
		assert.Nil(t, CasePackQuantity("入数表記なし"))
	})
}

func TestOrigin(t *testing.T) {
	t.Run("labeled", func(t *testing.T) {
		got := Origin("原産国：中国")
		require.NotNil(t, got)
		assert.Equal(t, "中国", *got)
	})
	t.Run("manufacturing context", func(t *testing.T) {
		got := Origin("本品はベトナムで製造されています")
		require.NotNil(t, got)
		assert.Equal(t, "ベトナム", *got)
	})
	t.Run("domestic default", func(t *testing.T) {
		got := Origin("エンスカイのポケモングッズ")
		require.NotNil(t, got)
		assert.Equal(t, "日本", *got)
	})
	t.Run("none", func(t *testing.T) {
		assert.Nil(t, Origin("産地表記なし"))
	})
}

func TestExtractAllAggregatesSheet(t *testing.T) {
	f := ExtractAll(coinBankSheet)

	require.NotNil(t, f.SKU)
	assert.Equal(t, "ST-03CB", *f.SKU)
	require.NotNil(t, f.JANCode)
	assert.Equal(t, "4970381804220", *f.JANCode)
	require.NotNil(t, f.Price)
	assert.Equal(t, float64(1100), *f.Price)
	require.NotNil(t, f.ReleaseDate)
	assert.Equal(t, "2025年1月24日", *f.ReleaseDate)
	require.NotNil(t, f.TargetAge)
	assert.Equal(t, "6歳以上", *f.TargetAge)
	require.NotNil(t, f.Origin)
	assert.Equal(t, "日本", *f.Origin)
	require.NotNil(t, f.ProductName)
	assert.Contains(t, *f.ProductName, "コインバンク")
	require.NotNil(t, f.Material)
	assert.Equal(t, "PVC", *f.Material)
}

func TestExtractorsTotalOnEmptyInput(t *testing.T) {
	f := ExtractAll("")
	assert.Nil(t, f.ProductName)
	assert.Nil(t, f.SKU)
	assert.Nil(t, f.JANCode)
	assert.Nil(t, f.Price)
	assert.Nil(t, f.ReleaseDate)
	assert.Nil(t, f.Origin)
	assert.Nil(t, f.Description)
	assert.Empty(t, f.ImageURLs)
}
