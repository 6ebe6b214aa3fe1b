// Package segment decides whether a transcription covers one product or
// several, and slices the text into per-product sections. Detectors run as an
// ordered cascade; the first one that finds two or more products wins.
package segment

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
	"github.com/hajime-ito/catalog-extractor/internal/fields"
	"github.com/hajime-ito/catalog-extractor/internal/normalize"
)

// maxCountPhraseSections caps sections synthesized from a variant-count
// phrase; a sheet claiming 全30種類 still yields at most this many records.
const maxCountPhraseSections = 10

var (
	stCode  = regexp.MustCompile(`ST-\d{2}[A-Z]{2}`)
	enCode  = regexp.MustCompile(`EN-\d+`)
	janCode = regexp.MustCompile(`\b4\d{12}\b`)

	countPhrases = []*regexp.Regexp{
		regexp.MustCompile(`全(\d+)種類`),
		regexp.MustCompile(`全(\d+)種`),
		regexp.MustCompile(`(\d+)種類`),
		regexp.MustCompile(`(\d+)タイプ`),
		regexp.MustCompile(`(\d+)バリエーション`),
	}

	tableHeaders = []string{
		"商品名", "商品コード", "JANコード", "価格", "希望小売価格",
		"発売予定日", "入数", "カートン", "パッケージ", "サイズ",
	}

	// Character vocabulary for catalogs that distinguish variants only by
	// the franchise character printed next to each one.
	characterVocab = []string{
		"ピカチュウ", "イーブイ", "ハリマロン", "フォッコ", "ケロマツ",
		"フシギダネ", "ヒトカゲ", "ゼニガメ", "チコリータ", "ヒノアラシ",
		"ワニノコ", "キモリ", "アチャモ", "ミズゴロウ", "ナエトル",
		"ヒコザル", "ポッチャマ", "ツタージャ", "ポカブ", "ミジュマル",
	}
)

type Segmenter struct {
	log *slog.Logger
}

func NewSegmenter(log *slog.Logger) *Segmenter {
	if log == nil {
		log = slog.Default()
	}
	return &Segmenter{log: log}
}

// Split runs the detector cascade over text and returns per-product
// sections. Sections carry a 1-based Index, the shared Total, and the
// strategy that produced them; a single-product document yields exactly one
// section covering the whole text.
func (s *Segmenter) Split(text string) []entity.Section {
	lines := normalize.Clean(normalize.Lines(text))

	if barcodes := fields.AllJANCodes(text); len(barcodes) >= 2 {
		s.log.Debug("segment.split", "strategy", entity.SplitBarcode, "products", len(barcodes))
		return s.byBarcodes(lines, barcodes)
	}
	if secs := s.byCodes(lines); len(secs) >= 2 {
		s.log.Debug("segment.split", "strategy", entity.SplitCode, "products", len(secs))
		return finish(secs, entity.SplitCode)
	}
	if secs := s.byTableRows(lines); len(secs) >= 2 {
		s.log.Debug("segment.split", "strategy", entity.SplitTable, "products", len(secs))
		return finish(secs, entity.SplitTable)
	}
	if secs := s.byCharacters(lines, text); len(secs) >= 2 {
		s.log.Debug("segment.split", "strategy", entity.SplitEntity, "products", len(secs))
		return finish(secs, entity.SplitEntity)
	}
	if n := countPhraseTotal(text); n >= 2 {
		if n > maxCountPhraseSections {
			n = maxCountPhraseSections
		}
		s.log.Debug("segment.split", "strategy", entity.SplitCountPhrase, "products", n)
		secs := make([]string, n)
		for i := range secs {
			secs[i] = text
		}
		return finish(secs, entity.SplitCountPhrase)
	}

	return []entity.Section{{Index: 1, Total: 1, Text: text, Strategy: entity.SplitSingle}}
}

func finish(texts []string, strategy entity.SplitStrategy) []entity.Section {
	out := make([]entity.Section, 0, len(texts))
	for i, t := range texts {
		out = append(out, entity.Section{
			Index:    i + 1,
			Total:    len(texts),
			Text:     t,
			Strategy: strategy,
		})
	}
	return out
}

// byBarcodes extracts one section per distinct barcode, bounded above by the
// previous product's code lines and below by the next one's.
func (s *Segmenter) byBarcodes(lines []string, barcodes []string) []entity.Section {
	texts := make([]string, 0, len(barcodes))
	for _, code := range barcodes {
		texts = append(texts, sectionAroundBarcode(lines, code))
	}
	return finish(texts, entity.SplitBarcode)
}

// sectionAroundBarcode slices the lines belonging to one barcode: from the
// nearest product-start marker above (article code, 商品名 label, or the line
// after another barcode, at most 10 lines up) down to the next product's
// code or a trailing size line (at most 15 lines down).
func sectionAroundBarcode(lines []string, barcode string) string {
	hyphenated := barcode[:7] + "-" + barcode[7:]
	at := -1
	for i, line := range lines {
		if strings.Contains(line, barcode) || strings.Contains(line, hyphenated) {
			at = i
			break
		}
	}
	if at < 0 {
		return strings.Join(lines, "\n")
	}

	start := at
	for i := at; i >= 0 && i > at-10; i-- {
		line := lines[i]
		if stCode.MatchString(line) || strings.Contains(line, "商品名") {
			start = i
			break
		}
		if janCode.MatchString(line) && !strings.Contains(line, barcode) {
			start = i + 1
			break
		}
	}

	end := at + 1
	for i := at + 1; i < len(lines) && i < at+15; i++ {
		line := lines[i]
		if stCode.MatchString(line) || janCode.MatchString(line) {
			end = i
			break
		}
		if strings.Contains(line, "商品サイズ") {
			end = i + 1
			break
		}
		end = i + 1
	}

	return strings.Join(lines[start:end], "\n")
}

// byCodes splits at article-code lines when two or more distinct codes
// appear. The EN- family takes priority over ST- since EN catalogs also
// print ST-like strings in footnotes.
func (s *Segmenter) byCodes(lines []string) []string {
	if len(distinctMatches(enCode, lines)) >= 2 {
		return splitAtCode(lines, enCode)
	}
	if len(distinctMatches(stCode, lines)) >= 2 {
		return splitAtCode(lines, stCode)
	}
	return nil
}

func distinctMatches(re *regexp.Regexp, lines []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, line := range lines {
		for _, m := range re.FindAllString(line, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// splitAtCode starts a new section at every line carrying a code; leading
// lines before the first code stay with the first section.
func splitAtCode(lines []string, re *regexp.Regexp) []string {
	var sections []string
	var current []string
	for _, line := range lines {
		if re.MatchString(line) && len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		sections = append(sections, strings.Join(current, "\n"))
	}
	return sections
}

// byTableRows handles tabular sheets: a header line carrying at least two
// known column labels followed by at least two identifier rows. Each data
// row is paired with the header so row sections stay self-describing.
func (s *Segmenter) byTableRows(lines []string) []string {
	headerAt := -1
	for i, line := range lines {
		hits := 0
		for _, h := range tableHeaders {
			if strings.Contains(line, h) {
				hits++
			}
		}
		if hits >= 2 {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil
	}

	header := lines[headerAt]
	seen := make(map[string]struct{})
	var sections []string
	for _, line := range lines[headerAt+1:] {
		code := enCode.FindString(line)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		sections = append(sections, header+"\n"+line)
	}
	return sections
}

// byCharacters splits around character-name occurrences when two or more
// vocabulary characters appear: a few lines of context above, the variant
// block below.
func (s *Segmenter) byCharacters(lines []string, text string) []string {
	var sections []string
	for _, character := range characterVocab {
		if !strings.Contains(text, character) {
			continue
		}
		for i, line := range lines {
			if !strings.Contains(line, character) {
				continue
			}
			start := i - 3
			if start < 0 {
				start = 0
			}
			end := i + 8
			if end > len(lines) {
				end = len(lines)
			}
			sections = append(sections, strings.Join(lines[start:end], "\n"))
			break
		}
	}
	return sections
}

// countPhraseTotal returns the variant count announced by a 全N種類-style
// phrase, or 0 when no phrase with N >= 2 is present.
func countPhraseTotal(text string) int {
	for _, re := range countPhrases {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 2 {
				return n
			}
		}
	}
	return 0
}

// VariantLabel names a synthesized count-phrase section for display.
func VariantLabel(base string, index int) string {
	return fmt.Sprintf("%s - タイプ%d", base, index)
}
