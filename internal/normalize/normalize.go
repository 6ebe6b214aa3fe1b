// Package normalize cleans raw transcription text before segmentation and
// field extraction. Vision output for catalog sheets tends to repeat header
// fragments and emit token storms on decorative regions; Clean drops those
// while keeping line order stable.
package normalize

import "strings"

const (
	minLineRunes = 3
	maxLineRunes = 200

	// A line is a repetition storm when it has more than stormTokenCount
	// tokens and a single token accounts for over half of them.
	stormTokenCount = 10
	stormTokenShare = 0.5
)

// Lines splits text into trimmed lines. Empty lines are kept so callers that
// need positional context can still index into the original layout.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

// Clean applies the line filters in order: blank/short drop, exact duplicate
// drop (first occurrence wins), overlong drop, repetition-storm drop.
// Clean is pure and idempotent: Clean(Clean(x)) == Clean(x).
func Clean(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		runes := []rune(line)
		if len(runes) < minLineRunes {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		if len(runes) > maxLineRunes {
			continue
		}
		if isRepetitionStorm(line) {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}

// Text is Clean over the lines of text, rejoined with newlines.
func Text(text string) string {
	return strings.Join(Clean(Lines(text)), "\n")
}

func isRepetitionStorm(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) <= stormTokenCount {
		return false
	}
	counts := make(map[string]int, len(tokens))
	max := 0
	for _, t := range tokens {
		counts[t]++
		if counts[t] > max {
			max = counts[t]
		}
	}
	return float64(max) > stormTokenShare*float64(len(tokens))
}
