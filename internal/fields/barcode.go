package fields

import (
	"regexp"
	"strings"
)

// makerPrefix is the GS1 company prefix that dominates this catalog corpus;
// sheets often print the article part hyphenated after it (4970381-XXXXXX).
const makerPrefix = "4970381"

var (
	jan13Rules = []*regexp.Regexp{
		regexp.MustCompile(`\b(4\d{12})\b`),
		regexp.MustCompile(`(` + makerPrefix + `\d{6})`),
		regexp.MustCompile(`(?i)JAN[コード]*[：:\s]*(4\d{12})`),
		regexp.MustCompile(`単品\s*JAN[コード]*[：:\s]*(4\d{12})`),
		regexp.MustCompile(`コード[：:\s]*(4\d{12})`),
		regexp.MustCompile(`バーコード[：:\s]*(4\d{12})`),
		regexp.MustCompile(`(\d{13})`),
	}
	janHyphenated = regexp.MustCompile(makerPrefix + `[-\s](\d{6})`)
	jan8Rules     = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{8})\b`),
		regexp.MustCompile(`短縮[コード]*[：:\s]*(\d{8})`),
		regexp.MustCompile(`8桁[コード]*[：:\s]*(\d{8})`),
	}
	janAny13    = regexp.MustCompile(`\b(\d{13})\b`)
	janStandard = regexp.MustCompile(`\b4\d{12}\b`)
)

// validJAN13 accepts 13-digit codes with a Japanese GS1 prefix.
func validJAN13(code string) bool {
	if len(code) != 13 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.HasPrefix(code, "4") ||
		strings.HasPrefix(code, "45") || strings.HasPrefix(code, "49")
}

// JANCode returns the first plausible JAN code in text: 13-digit forms first
// (including the hyphenated maker-prefix form, reconstructed), then the
// 8-digit short form, then any 13-digit number with a valid prefix.
func JANCode(text string) *string {
	for _, re := range jan13Rules {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if validJAN13(m[1]) {
				return str(m[1])
			}
		}
	}
	if m := janHyphenated.FindStringSubmatch(text); m != nil {
		return str(makerPrefix + m[1])
	}
	for _, re := range jan8Rules {
		if m := re.FindStringSubmatch(text); m != nil {
			return str(m[1])
		}
	}
	for _, m := range janAny13.FindAllStringSubmatch(text, -1) {
		if validJAN13(m[1]) {
			return str(m[1])
		}
	}
	return nil
}

// AllJANCodes returns every distinct standard-form JAN code in text, in
// order of first appearance. Hyphenated maker-prefix codes are reconstructed.
// Used by the segmenter to count products.
func AllJANCodes(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(code string) {
		if !validJAN13(code) {
			return
		}
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	for _, m := range janStandard.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range janHyphenated.FindAllStringSubmatch(text, -1) {
		add(makerPrefix + m[1])
	}
	return out
}

var (
	innerGTINRules = []Rule{
		{Pattern: regexp.MustCompile(`内箱GTIN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`内箱JAN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`(?i)Inner\s*Box\s*GTIN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`GTIN\s*内箱[：:\s]*([0-9]{13,14})`)},
	}
	outerGTINRules = []Rule{
		{Pattern: regexp.MustCompile(`外箱GTIN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`外箱JAN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`(?i)Outer\s*Box\s*GTIN[：:\s]*([0-9]{13,14})`)},
		{Pattern: regexp.MustCompile(`カートンGTIN[：:\s]*([0-9]{13,14})`)},
	}
)

// InnerBoxGTIN extracts the inner carton GTIN-13/14.
func InnerBoxGTIN(text string) *string {
	if v, ok := first(innerGTINRules, text); ok {
		return str(v)
	}
	return nil
}

// OuterBoxGTIN extracts the outer carton GTIN-13/14.
func OuterBoxGTIN(text string) *string {
	if v, ok := first(outerGTINRules, text); ok {
		return str(v)
	}
	return nil
}
