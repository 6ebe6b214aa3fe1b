package fields

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	descriptionRules = []Rule{
		{Pattern: label(`商品説明`), Plausible: descLength},
		{Pattern: label(`詳細`), Plausible: descLength},
		{Pattern: regexp.MustCompile(`(?i)Description[：:\s]*([^\n\r]+)`), Plausible: descLength},
	}

	descCharacters = regexp.MustCompile(`(ピカチュウ|イーブイ|ハリマロン|フォッコ|ケロマツ|ポケモン)`)
	descItemTypes  = regexp.MustCompile(`(コインバンク|貯金箱|フィギュア|ぬいぐるみ|トレーディング|カード|グッズ)`)

	descSize     = regexp.MustCompile(`約\s*(\d+)\s*×\s*(\d+)\s*×\s*(\d+)\s*mm`)
	descMaterial = []Rule{
		{Pattern: label(`素材`), Plausible: maxRunes(50)},
		{Pattern: label(`材質`), Plausible: maxRunes(50)},
	}
	descPrice = regexp.MustCompile(`[¥￥]\s*([0-9,]+)`)
)

func descLength(v string) bool {
	n := len([]rune(v))
	return n > 10 && n < 200
}

// Description extracts or synthesizes a product description: the labeled
// text when printed, otherwise a short sentence generated from the character
// and item type, otherwise a summary of size/material/price features.
func Description(text string) *string {
	if v, ok := first(descriptionRules, text); ok {
		return str(v)
	}

	character := descCharacters.FindString(text)
	itemType := descItemTypes.FindString(text)
	switch {
	case character != "" && itemType != "":
		switch itemType {
		case "コインバンク", "貯金箱":
			return str(fmt.Sprintf("%sの可愛い貯金箱です。インテリアとしても楽しめます。", character))
		case "フィギュア":
			return str(fmt.Sprintf("%sのフィギュアです。コレクションやディスプレイに最適。", character))
		case "ぬいぐるみ":
			return str(fmt.Sprintf("%sのぬいぐるみです。柔らかく抱き心地抜群。", character))
		default:
			return str(fmt.Sprintf("%sの%sです。", character, itemType))
		}
	case character != "":
		return str(fmt.Sprintf("%s関連グッズです。", character))
	case itemType != "":
		return str(fmt.Sprintf("%sアイテムです。", itemType))
	}

	var features []string
	if m := descSize.FindStringSubmatch(text); m != nil {
		features = append(features, fmt.Sprintf("サイズ: 約%s×%s×%smm", m[1], m[2], m[3]))
	}
	if v, ok := first(descMaterial, text); ok {
		features = append(features, "素材: "+v)
	}
	if m := descPrice.FindStringSubmatch(text); m != nil {
		features = append(features, "希望小売価格: ¥"+m[1])
	}
	if len(features) > 0 {
		if len(features) > 3 {
			features = features[:3]
		}
		return str("商品の詳細情報: " + strings.Join(features, "、"))
	}
	return nil
}
