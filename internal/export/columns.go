package export

import (
	"fmt"
	"strings"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// column maps one output column to its value in a record. The order of
// columns below is the marketplace upload layout and must not change.
type column struct {
	header string
	value  func(r *entity.ExtractedRecord) string
}

var columns = []column{
	{"商品名", func(r *entity.ExtractedRecord) string { return str(r.Fields.ProductName) }},
	{"商品コード", func(r *entity.ExtractedRecord) string { return str(r.Fields.SKU) }},
	{"JANコード", func(r *entity.ExtractedRecord) string { return str(r.Fields.JANCode) }},
	{"キャラクター名", func(r *entity.ExtractedRecord) string { return str(r.Fields.CharacterName) }},
	{"ブランド", func(r *entity.ExtractedRecord) string { return str(r.Fields.Brand) }},
	{"メーカー", func(r *entity.ExtractedRecord) string { return str(r.Fields.Manufacturer) }},
	{"希望小売価格", func(r *entity.ExtractedRecord) string { return amount(r.Fields.Price) }},
	{"参考販売価格", func(r *entity.ExtractedRecord) string { return amount(r.Fields.ReferenceSalesPrice) }},
	{"卸価格", func(r *entity.ExtractedRecord) string { return amount(r.Fields.WholesalePrice) }},
	{"発売日", func(r *entity.ExtractedRecord) string { return str(r.Fields.ReleaseDate) }},
	{"予約締切日", func(r *entity.ExtractedRecord) string { return str(r.Fields.ReservationDeadline) }},
	{"サイズ", func(r *entity.ExtractedRecord) string { return str(r.Fields.Dimensions) }},
	{"パッケージサイズ", func(r *entity.ExtractedRecord) string { return str(r.Fields.PackageSize) }},
	{"重量", func(r *entity.ExtractedRecord) string { return str(r.Fields.Weight) }},
	{"入数", func(r *entity.ExtractedRecord) string { return str(r.Fields.QuantityPerPack) }},
	{"カートン入数", func(r *entity.ExtractedRecord) string { return count(r.Fields.CasePackQuantity) }},
	{"カテゴリ", func(r *entity.ExtractedRecord) string { return str(r.Fields.Category) }},
	{"素材", func(r *entity.ExtractedRecord) string { return str(r.Fields.Material) }},
	{"原産国", func(r *entity.ExtractedRecord) string { return str(r.Fields.Origin) }},
	{"対象年齢", func(r *entity.ExtractedRecord) string { return str(r.Fields.TargetAge) }},
	{"商品説明", func(r *entity.ExtractedRecord) string { return str(r.Fields.Description) }},
	{"画像URL", func(r *entity.ExtractedRecord) string { return strings.Join(r.Fields.ImageURLs, " ") }},
	{"ステータス", func(r *entity.ExtractedRecord) string { return string(r.Status) }},
	{"信頼度", func(r *entity.ExtractedRecord) string { return fmt.Sprintf("%.0f", r.ConfidenceScore) }},
	{"商品番号", func(r *entity.ExtractedRecord) string {
		return fmt.Sprintf("%d/%d", r.ProductIndex, r.TotalProductsInFile)
	}},
}

func headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

func rowValues(r *entity.ExtractedRecord) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.value(r)
	}
	return out
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func amount(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.0f", *p)
}

func count(p *int) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}
