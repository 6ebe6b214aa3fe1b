package fields

import (
	"regexp"
	"sort"
	"strings"
)

var (
	brandNoise = []string{
		"オンラインショップ", "アニメイトカフェスタンド", "通販", "海外店舗",
		"animatecafe", "online", "shop", "store",
	}

	brandLabelRules = []Rule{
		{Pattern: label(`ブランド`)},
		{Pattern: label(`メーカー`)},
		{Pattern: regexp.MustCompile(`(?i)brand[：:\s]*([^\n\r]+)`)},
		{Pattern: label(`製造元`)},
		{Pattern: label(`発売元`)},
	}

	knownBrands = []string{
		"エンスカイ", "ENSKY", "バンダイ", "BANDAI", "タカラトミー", "TAKARA TOMY",
		"コナミ", "KONAMI", "セガ", "SEGA", "スクウェア・エニックス", "SQUARE ENIX",
		"グッドスマイルカンパニー", "Good Smile Company", "コトブキヤ", "KOTOBUKIYA",
		"メディコス", "MEDICOS", "フリュー", "FuRyu", "アルター", "ALTER",
		"アニメイト", "animate",
	}

	manufacturerRules = []Rule{
		{Pattern: label(`製造元`)},
		{Pattern: label(`発売元`)},
		{Pattern: label(`販売元`)},
		{Pattern: regexp.MustCompile(`(?i)manufacturer[：:\s]*([^\n\r]+)`)},
	}

	supplierRules = []Rule{
		{Pattern: labelShort(`仕入先`), Plausible: maxRunes(100)},
		{Pattern: labelShort(`仕入れ先`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Supplier[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Vendor[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
	}

	ipNameRules = []Rule{
		{Pattern: labelShort(`メーカー名称`), Plausible: maxRunes(100)},
		{Pattern: labelShort(`IP名`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Manufacturer\s*Name[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
	}
)

// Brand extracts the brand: labeled forms first (rejecting shop chrome),
// then known maker names, preferring the one appearing in the shortest clean
// line of context.
func Brand(text string, lines []string) *string {
	for _, r := range brandLabelRules {
		if m := r.Pattern.FindStringSubmatch(text); m != nil {
			v := strings.TrimSpace(m[1])
			if v != "" && !containsAny(v, brandNoise) && len([]rune(v)) < 50 {
				return str(v)
			}
		}
	}

	type hit struct {
		brand   string
		context int
	}
	var hits []hit
	for _, brand := range knownBrands {
		if !strings.Contains(text, brand) {
			continue
		}
		best := -1
		for _, line := range lines {
			if !strings.Contains(line, brand) || containsAny(line, brandNoise) {
				continue
			}
			if n := len([]rune(line)); n < 100 && (best < 0 || n < best) {
				best = n
			}
		}
		if best >= 0 && best < 50 {
			hits = append(hits, hit{brand, best})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].context < hits[j].context })
	return str(hits[0].brand)
}

// Manufacturer extracts the maker, falling back to the brand since catalog
// sheets usually print only one of the two.
func Manufacturer(text string, brand *string) *string {
	if v, ok := first(manufacturerRules, text); ok {
		return str(v)
	}
	return brand
}

// SupplierName extracts the wholesale supplier.
func SupplierName(text string) *string {
	if v, ok := first(supplierRules, text); ok {
		return str(v)
	}
	return nil
}

// IPName extracts the licensor (maker name) field.
func IPName(text string) *string {
	if v, ok := first(ipNameRules, text); ok {
		return str(v)
	}
	return nil
}
