package fields

import (
	"regexp"
	"strings"
)

var (
	originRules = []Rule{
		{Pattern: label(`原産地`), Plausible: maxRunes(50)},
		{Pattern: label(`原産国`), Plausible: maxRunes(50)},
		{Pattern: label(`製造国`), Plausible: maxRunes(50)},
		{Pattern: label(`生産国`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Made\s*in\s*([^\n\r]+)`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Country\s*of\s*Origin[：:\s]*([^\n\r]+)`), Plausible: maxRunes(50)},
		{Pattern: label(`生産地`), Plausible: maxRunes(50)},
	}

	countryKeywords = []string{
		"日本", "Japan", "中国", "China", "韓国", "Korea", "ベトナム", "Vietnam",
		"タイ", "Thailand", "インドネシア", "Indonesia", "マレーシア", "Malaysia",
		"アメリカ", "USA", "ドイツ", "Germany", "フランス", "France",
		"イタリア", "Italy", "イギリス", "UK", "スペイン", "Spain",
	}

	// Domestic-maker hints: sheets from these publishers rarely print an
	// origin because it is always Japan.
	domesticHints = []string{"ポケモン", "エンスカイ", "株式会社エンスカイ"}

	// Per-country manufacturing-context patterns, compiled once.
	originContexts = buildOriginContexts()

	countryOfOriginRules = []Rule{
		{Pattern: labelShort(`原産国`), Plausible: maxRunes(50)},
		{Pattern: labelShort(`製造国`), Plausible: maxRunes(50)},
		{Pattern: labelShort(`生産国`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`(?i)Country\s*of\s*Origin[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(50)},
		{Pattern: regexp.MustCompile(`Made\s*in[：:\s]*([A-Z][a-z]+)`), Plausible: maxRunes(50)},
	}
)

// Origin extracts the production origin: labeled forms, then country names
// in a manufacturing context, then the domestic default for known domestic
// publishers.
func Origin(text string) *string {
	if v, ok := first(originRules, text); ok {
		return str(strings.TrimRight(v, "：: "))
	}
	for _, oc := range originContexts {
		for _, re := range oc.patterns {
			if re.MatchString(text) {
				return str(oc.country)
			}
		}
	}
	if containsAny(text, domesticHints) {
		return str("日本")
	}
	return nil
}

type originContext struct {
	country  string
	patterns []*regexp.Regexp
}

func buildOriginContexts() []originContext {
	out := make([]originContext, 0, len(countryKeywords))
	for _, country := range countryKeywords {
		q := regexp.QuoteMeta(country)
		out = append(out, originContext{
			country: country,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(`製造.*` + q),
				regexp.MustCompile(`生産.*` + q),
				regexp.MustCompile(q + `.*製造`),
				regexp.MustCompile(q + `.*生産`),
				regexp.MustCompile(`(?i)made.*` + q),
				regexp.MustCompile(`(?i)` + q + `.*made`),
			},
		})
	}
	return out
}

// CountryOfOrigin extracts the strictly labeled origin country, without the
// contextual and default fallbacks Origin applies.
func CountryOfOrigin(text string) *string {
	if v, ok := first(countryOfOriginRules, text); ok {
		return str(v)
	}
	return nil
}
