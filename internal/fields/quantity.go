package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	quantityPerPackRules = []Rule{
		{Pattern: regexp.MustCompile(`入数[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`入り数[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`ケース入数[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`(\d+)\s*個入り`)},
		{Pattern: regexp.MustCompile(`(\d+)\s*個/ケース`)},
	}

	// 30入 (10パック×3BOX) style carton contents.
	casePackCombined = regexp.MustCompile(`(\d+)入\s*\((\d+)パック[×x](\d+)BOX\)`)

	casePackRules = []Rule{
		{Pattern: regexp.MustCompile(`ケース梱入数[：:\s]*([0-9,]+)`)},
		{Pattern: regexp.MustCompile(`ケース入数[：:\s]*([0-9,]+)`)},
		{Pattern: regexp.MustCompile(`カートン入数[：:\s]*([0-9,]+)`)},
		{Pattern: regexp.MustCompile(`(?i)Case\s*Pack\s*Quantity[：:\s]*([0-9,]+)`)},
	}

	targetAgeLabeled = regexp.MustCompile(`対象年齢[：:\s]*([^\n\r]+)`)
	targetAgeRules   = []*regexp.Regexp{
		regexp.MustCompile(`年齢[：:\s]*([0-9]+)歳?以上`),
		regexp.MustCompile(`([0-9]+)歳以上`),
		regexp.MustCompile(`(?i)Ages?[：:\s]*([0-9]+)\+?`),
		regexp.MustCompile(`([0-9]+)\+`),
		regexp.MustCompile(`([0-9]+)才以上`),
		regexp.MustCompile(`([0-9]+)才～`),
	}
	franchiseAgeHints = []string{"ポケモン", "アニメ"}
)

// QuantityPerPack extracts the units-per-pack count as printed.
func QuantityPerPack(text string) *string {
	if v, ok := first(quantityPerPackRules, text); ok {
		return str(v)
	}
	return nil
}

// CasePackQuantity extracts the units per shipping case. The combined
// "N入 (Pパック×BBOX)" form wins over labeled counts.
func CasePackQuantity(text string) *int {
	if m := casePackCombined.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n < 10000 {
			return intPtr(n)
		}
	}
	if v, ok := first(casePackRules, text); ok {
		if n, err := parseCount(v); err == nil && n > 0 && n < 10000 {
			return intPtr(n)
		}
	}
	return nil
}

// TargetAge extracts the target age, normalizing numeric forms to "N歳以上".
// Franchise merchandise with no printed age defaults to 3歳以上.
func TargetAge(text string) *string {
	if m := targetAgeLabeled.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); maxRunes(20)(v) {
			return str(v)
		}
	}
	for _, re := range targetAgeRules {
		if m := re.FindStringSubmatch(text); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil && age >= 0 && age <= 18 {
				return str(fmt.Sprintf("%d歳以上", age))
			}
		}
	}
	if containsAny(text, franchiseAgeHints) {
		return str("3歳以上")
	}
	return nil
}
