package fields

import (
	"regexp"
	"sort"
	"strings"
)

// nameNoise marks lines that are shop chrome rather than product names.
var nameNoise = []string{
	"オンラインショップ", "アニメイトカフェスタンド", "通販", "海外店舗",
	"animatecafe", "online", "shop", "store", "www.", "http",
	"※", "注意", "警告", "copyright", "©", "reserved",
}

var (
	verMarkers      = []string{"ver.", "version", "vol.", "v."}
	productKeywords = []string{"限定", "セット", "パック", "ボックス", "コレクション", "シリーズ", "初回"}
	franchiseItems  = []string{"コインバンク", "フィギュア", "ぬいぐるみ", "カード"}
	characterHints  = []string{"キャラクター", "スリーブ", "甘神さん", "の縁結び"}
	tradingItems    = []string{"バッジ", "カード", "キャラ", "フィギュア"}

	countPhrase = regexp.MustCompile(`全\d+種`)

	characterNameRules = []Rule{
		{Pattern: labelShort(`キャラクター名\s*\(IP名\)`), Plausible: maxRunes(100)},
		{Pattern: labelShort(`キャラクター名`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Character\s*Name[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
	}
)

// ProductName picks the most product-name-like line by scoring candidates.
// Lines carrying an article code score highest, then franchise and trading
// phrases, version markers and variant counts; shop chrome and repetitive
// lines are excluded up front.
func ProductName(lines []string) *string {
	type candidate struct {
		line  string
		score int
	}
	var candidates []candidate

	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = pickTableCell(line)
		n := len([]rune(line))
		if n < 5 || n > 200 {
			continue
		}
		if containsAny(strings.ToLower(line), nameNoise) || containsAny(line, nameNoise) {
			continue
		}
		if isRepetitiveLine(line) {
			continue
		}

		score := 0
		if stCode.MatchString(line) {
			score += 15
		}
		if enCode.MatchString(line) {
			score += 15
		}
		if strings.Contains(line, "ポケモン") && containsAny(line, franchiseItems) {
			score += 12
		}
		if containsAny(line, characterHints) {
			score += 12
		}
		if strings.Contains(line, "トレーディング") && containsAny(line, tradingItems) {
			score += 10
		}
		if containsAny(strings.ToLower(line), verMarkers) {
			score += 8
		}
		if countPhrase.MatchString(line) {
			score += 8
		}
		for _, kw := range productKeywords {
			if strings.Contains(line, kw) {
				score += 3
			}
		}
		if n >= 10 && n <= 50 {
			score += 2
		}
		if !hasDigit(string([]rune(line)[:min(3, n)])) {
			score++
		}

		if score > 0 {
			candidates = append(candidates, candidate{line, score})
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return str(candidates[0].line)
}

// pickTableCell resolves pipe-delimited table rows to their most name-like
// cell, preferring the one carrying an article code.
func pickTableCell(line string) string {
	if !strings.Contains(line, "|") {
		return line
	}
	var parts []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return line
	}
	for _, p := range parts {
		if enCode.MatchString(p) && len([]rune(p)) > 10 {
			return p
		}
	}
	for _, p := range parts {
		if len([]rune(p)) > 10 {
			return p
		}
	}
	return parts[0]
}

// isRepetitiveLine reports whether a long line is dominated by one repeated
// word, which marks decorative or misread regions.
func isRepetitiveLine(line string) bool {
	if len([]rune(line)) < 10 {
		return false
	}
	words := strings.Fields(line)
	if len(words) <= 6 {
		return false
	}
	counts := make(map[string]int)
	for _, w := range words {
		if len([]rune(w)) > 3 {
			counts[w]++
		}
	}
	for _, c := range counts {
		if c >= 3 {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// CharacterName extracts the labeled character (IP) name.
func CharacterName(text string) *string {
	if v, ok := first(characterNameRules, text); ok {
		return str(v)
	}
	return nil
}
