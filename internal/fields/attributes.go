package fields

import "regexp"

var (
	colorLabelRules = []Rule{
		{Pattern: label(`色`)},
		{Pattern: label(`カラー`)},
		{Pattern: regexp.MustCompile(`(?i)color[：:\s]*([^\n\r]+)`)},
	}

	colorNames = []string{
		"赤", "青", "緑", "黄", "黒", "白", "茶", "紫", "橙", "ピンク",
		"レッド", "ブルー", "グリーン", "イエロー", "ブラック", "ホワイト",
		"ゴールド", "シルバー", "メタリック", "クリア", "透明",
	}

	materialLabelRules = []Rule{
		{Pattern: label(`素材`)},
		{Pattern: label(`材質`)},
		{Pattern: regexp.MustCompile(`(?i)material[：:\s]*([^\n\r]+)`)},
	}

	materialNames = []string{
		"プラスチック", "PVC", "ABS", "金属", "メタル", "アルミ",
		"紙", "ペーパー", "布", "ファブリック", "レザー", "革",
		"ガラス", "アクリル", "ポリエステル", "木材", "ウッド",
	}

	warrantyRules = []Rule{
		{Pattern: label(`保証期間`)},
		{Pattern: label(`保証`)},
		{Pattern: regexp.MustCompile(`(?i)warranty[：:\s]*([^\n\r]+)`)},
		{Pattern: regexp.MustCompile(`(\d+\s*(?:年|ヶ月|か月)\s*保証)`)},
	}
)

// Color extracts the color: labeled forms first, then bare color names.
func Color(text string) *string {
	if v, ok := first(colorLabelRules, text); ok {
		return str(v)
	}
	for _, c := range colorNames {
		if containsAny(text, []string{c}) {
			return str(c)
		}
	}
	return nil
}

// Material extracts the material: labeled forms first, then bare names.
func Material(text string) *string {
	if v, ok := first(materialLabelRules, text); ok {
		return str(v)
	}
	for _, m := range materialNames {
		if containsAny(text, []string{m}) {
			return str(m)
		}
	}
	return nil
}

// Warranty extracts the warranty note.
func Warranty(text string) *string {
	if v, ok := first(warrantyRules, text); ok {
		return str(v)
	}
	return nil
}
