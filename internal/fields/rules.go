// Package fields extracts individual product attributes from normalized
// catalog text. Each attribute has an ordered rule table; rules are tried top
// to bottom and the first match that passes its plausibility check wins.
// Every extractor is total: it returns nil instead of failing.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule pairs a pattern with an optional plausibility check on the captured
// value. A nil Plausible accepts any match.
type Rule struct {
	Pattern   *regexp.Regexp
	Plausible func(v string) bool
}

// first returns the first captured value across the rule table that passes
// its plausibility check. The capture is group 1 when the pattern has one,
// otherwise the whole match.
func first(rules []Rule, text string) (string, bool) {
	for _, r := range rules {
		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			v := m[0]
			if len(m) > 1 && m[1] != "" {
				v = m[1]
			}
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if r.Plausible != nil && !r.Plausible(v) {
				continue
			}
			return v, true
		}
	}
	return "", false
}

// label builds the common `<label>： value` pattern. The value capture stops
// at line breaks.
func label(name string) *regexp.Regexp {
	return regexp.MustCompile(name + `[：:\s]*([^\n\r]+)`)
}

// labelShort is label with the capture also stopping at commas, for fields
// that appear inside delimited table rows.
func labelShort(name string) *regexp.Regexp {
	return regexp.MustCompile(name + `[：:\s]*([^\n\r,、]+)`)
}

func maxRunes(n int) func(string) bool {
	return func(v string) bool { return len([]rune(v)) < n }
}

func hasDigit(v string) bool {
	return strings.ContainsAny(v, "0123456789")
}

func sizeText(v string) bool {
	return maxRunes(100)(v) && hasDigit(v)
}

// parseAmount strips currency decoration and thousands separators.
func parseAmount(v string) (float64, error) {
	v = strings.NewReplacer("¥", "", "￥", "", "円", "", ",", "", " ", "").Replace(v)
	return strconv.ParseFloat(v, 64)
}

func parseCount(v string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(v, ",", ""))
}

// amountRule is a labeled money rule with an inclusive plausibility range.
func amountRule(pattern string, min, max float64) Rule {
	return Rule{
		Pattern: regexp.MustCompile(pattern),
		Plausible: func(v string) bool {
			n, err := parseAmount(v)
			return err == nil && n > min && n < max
		},
	}
}

func str(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
