package fields

import (
	"regexp"
	"strings"
)

var (
	stCode = regexp.MustCompile(`ST-\d{2}[A-Z]{2}`)
	enCode = regexp.MustCompile(`EN-\d{3,4}[A-Z]*`)

	skuRules = []Rule{
		{Pattern: regexp.MustCompile(`(ST-\d{2}[A-Z]{2})`)},
		{Pattern: regexp.MustCompile(`(ST-\d{2}[A-Z]\d)`)},
		{Pattern: regexp.MustCompile(`品番[：:\s]*(ST-\d{2}[A-Z]{2})`)},
		{Pattern: regexp.MustCompile(`商品コード[：:\s]*(ST-\d{2}[A-Z]{2})`)},
		{Pattern: regexp.MustCompile(`(EN-\d{3,4}[A-Z]*)`)},
		{Pattern: regexp.MustCompile(`品番[：:\s]*(EN-\d{3,4}[A-Z]*)`)},
		{Pattern: regexp.MustCompile(`(?i)SKU[：:\s]*([A-Z]{2,4}-\d{2,4}[A-Z]*)`)},
		{Pattern: regexp.MustCompile(`(?i)Product\s*Code[：:\s]*([A-Z]{2,4}-\d{2,4}[A-Z]*)`)},
		{Pattern: regexp.MustCompile(`([A-Z]{2}-\d{2}[A-Z]{2})`)},
		{Pattern: regexp.MustCompile(`([A-Z]{3}-\d{3,4})`)},
	}

	productCodeRules = []Rule{
		{Pattern: regexp.MustCompile(`商品番号[：:\s]*([A-Z0-9\-]+)`), Plausible: codeLength},
		{Pattern: regexp.MustCompile(`品番[：:\s]*([A-Z0-9\-]+)`), Plausible: codeLength},
		{Pattern: regexp.MustCompile(`(?i)Product\s*(?:Code|No\.?|Number)[：:\s]*([A-Z0-9\-]+)`), Plausible: codeLength},
		{Pattern: regexp.MustCompile(`(?i)Item\s*(?:Code|No\.?|Number)[：:\s]*([A-Z0-9\-]+)`), Plausible: codeLength},
	}

	lotRules = []Rule{
		{Pattern: regexp.MustCompile(`ロット[番]?[号]?[：:\s]*([A-Z0-9\-]+)`)},
		{Pattern: regexp.MustCompile(`(?i)Lot\s*(?:No\.?|Number)[：:\s]*([A-Z0-9\-]+)`)},
		{Pattern: regexp.MustCompile(`LOT[：:\s]*([A-Z0-9\-]+)`)},
	}
)

func codeLength(v string) bool {
	n := len(v)
	return n >= 3 && n <= 30
}

// SKU extracts the maker article code. ST- and EN- families are tried first;
// a generic hyphenated code of 5..10 characters is accepted from the labeled
// rules, and the bare first ST-/EN- occurrence is the fallback.
func SKU(text string) *string {
	for _, r := range skuRules {
		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			sku := strings.ToUpper(strings.TrimSpace(m[1]))
			if len(sku) >= 5 && len(sku) <= 10 && strings.Contains(sku, "-") {
				return str(sku)
			}
		}
	}
	if m := stCode.FindString(text); m != "" {
		return str(m)
	}
	if m := enCode.FindString(text); m != "" {
		return str(m)
	}
	return nil
}

// AllSKUCodes returns distinct ST-/EN- codes in order of first appearance.
// Used by the segmenter to count products.
func AllSKUCodes(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range append(stCode.FindAllString(text, -1), enCode.FindAllString(text, -1)...) {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ProductCode extracts the labeled item number, which may differ from SKU.
func ProductCode(text string) *string {
	if v, ok := first(productCodeRules, text); ok {
		return str(v)
	}
	return nil
}

// LotNumber extracts the production lot identifier.
func LotNumber(text string) *string {
	if v, ok := first(lotRules, text); ok {
		return str(v)
	}
	return nil
}
