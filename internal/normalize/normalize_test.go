package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDropsShortAndBlankLines(t *testing.T) {
	in := []string{"", "ab", "ポケモン サン&ムーン ぬいぐるみ", "  ", "¥"}
	got := Clean(in)
	assert.Equal(t, []string{"ポケモン サン&ムーン ぬいぐるみ"}, got)
}

func TestCleanDropsExactDuplicatesKeepingFirst(t *testing.T) {
	in := []string{
		"商品名：ピカチュウ ぬいぐるみ",
		"JANコード：4970381804220",
		"商品名：ピカチュウ ぬいぐるみ",
	}
	got := Clean(in)
	require.Len(t, got, 2)
	assert.Equal(t, "商品名：ピカチュウ ぬいぐるみ", got[0])
	assert.Equal(t, "JANコード：4970381804220", got[1])
}

func TestCleanDropsOverlongLines(t *testing.T) {
	long := strings.Repeat("あ", 201)
	got := Clean([]string{long, "発売予定日：2025年1月24日"})
	assert.Equal(t, []string{"発売予定日：2025年1月24日"}, got)
}

func TestCleanDropsRepetitionStorms(t *testing.T) {
	storm := strings.TrimSpace(strings.Repeat("ロゴ ", 12))
	mixed := "EN-1299 トレーディング缶バッジ 全5種類 ボックス入り 単価 税込 発売 予定 月 下旬 頃"
	got := Clean([]string{storm, mixed})
	assert.Equal(t, []string{mixed}, got)
}

func TestCleanIsIdempotent(t *testing.T) {
	in := Lines("商品名：イーブイ マスコット\nab\n\nJANコード：4970381804213\n商品名：イーブイ マスコット\n" +
		strings.Repeat("× ", 20))
	once := Clean(in)
	twice := Clean(once)
	assert.Equal(t, once, twice)
}

func TestTextJoinsCleanedLines(t *testing.T) {
	got := Text("商品名：ハリマロン\r\nab\r\n価格：¥1,100")
	assert.Equal(t, "商品名：ハリマロン\n価格：¥1,100", got)
}
