package fields

import (
	"regexp"
	"strings"
)

var (
	categoryLabelRules = []Rule{
		{Pattern: label(`カテゴリ`)},
		{Pattern: label(`分類`)},
		{Pattern: label(`ジャンル`)},
	}

	categoryKeywords = []struct {
		category string
		keywords []string
	}{
		{"フィギュア", []string{"フィギュア", "figure", "ねんどろいど"}},
		{"ゲーム", []string{"ゲーム", "game", "ソフト"}},
		{"アニメグッズ", []string{"アニメ", "キャラクター", "anime"}},
		{"本・雑誌", []string{"本", "雑誌", "book", "magazine"}},
		{"音楽", []string{"CD", "DVD", "ブルーレイ", "サウンドトラック"}},
	}

	majorCategoryRules = []Rule{
		{Pattern: labelShort(`大分類`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Main\s*Category[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Primary\s*Category[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
	}

	minorCategoryRules = []Rule{
		{Pattern: labelShort(`中分類`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Sub\s*Category[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Secondary\s*Category[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
	}

	genreRules = []Rule{
		{Pattern: labelShort(`ジャンル名称`), Plausible: maxRunes(100)},
		{Pattern: labelShort(`ジャンル`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Genre[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
	}

	classificationRules = []Rule{
		{Pattern: labelShort(`区分`), Plausible: maxRunes(50)},
		{Pattern: labelShort(`分類`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Classification[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
	}

	inStoreRules = []Rule{
		{Pattern: labelShort(`インストア`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)In[-\s]?Store[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
	}
)

// Category extracts the product category: labeled forms first, then keyword
// inference with trading merchandise split into cards vs goods.
func Category(text string) *string {
	if v, ok := first(categoryLabelRules, text); ok {
		return str(v)
	}
	if strings.Contains(text, "トレーディング") {
		if strings.Contains(text, "カード") {
			return str("トレーディングカード")
		}
		if containsAny(text, []string{"バッジ", "缶バッジ", "グッズ"}) {
			return str("トレーディンググッズ")
		}
	}
	for _, ck := range categoryKeywords {
		if containsAny(text, ck.keywords) {
			return str(ck.category)
		}
	}
	return nil
}

// MajorCategory extracts the wholesale taxonomy's top level.
func MajorCategory(text string) *string {
	if v, ok := first(majorCategoryRules, text); ok {
		return str(v)
	}
	return nil
}

// MinorCategory extracts the wholesale taxonomy's second level.
func MinorCategory(text string) *string {
	if v, ok := first(minorCategoryRules, text); ok {
		return str(v)
	}
	return nil
}

// GenreName extracts the genre label.
func GenreName(text string) *string {
	if v, ok := first(genreRules, text); ok {
		return str(v)
	}
	return nil
}

// Classification extracts the 区分 field.
func Classification(text string) *string {
	if v, ok := first(classificationRules, text); ok {
		return str(v)
	}
	return nil
}

// InStore extracts the in-store availability note.
func InStore(text string) *string {
	if v, ok := first(inStoreRules, text); ok {
		return str(v)
	}
	return nil
}
