package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Years outside this window are treated as misreads (barcode fragments,
// article numbers).
const (
	minYear = 2020
	maxYear = 2030
)

// Keyword-proximity window around a release keyword, in bytes of the raw
// text: a date counts as the release date when it sits just before or after
// the keyword.
const (
	dateWindowBefore = 50
	dateWindowAfter  = 100
)

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`),
		regexp.MustCompile(`(\d{4})年(\d{1,2})月`),
		regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`),
		regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`),
	}

	releaseKeywords = []string{
		"発売予定日", "発売日", "発売予定", "発売開始日", "リリース日",
		"発売", "販売開始", "予定日", "発売時期",
	}

	reservationReleaseRules = []Rule{
		{Pattern: regexp.MustCompile(`予約解禁日[：:\s]*([0-9年月日/\-\.]+)`), Plausible: maxRunes(30)},
		{Pattern: regexp.MustCompile(`(?i)Reservation\s*Start\s*Date[：:\s]*([0-9/\-\.]+)`), Plausible: maxRunes(30)},
	}
	reservationDeadlineRules = []Rule{
		{Pattern: regexp.MustCompile(`予約締め?切り?日[：:\s]*([0-9年月日/\-\.]+)`), Plausible: maxRunes(30)},
		{Pattern: regexp.MustCompile(`(?i)Reservation\s*Deadline[：:\s]*([0-9/\-\.]+)`), Plausible: maxRunes(30)},
	}
	reservationShippingRules = []Rule{
		{Pattern: regexp.MustCompile(`予約商品発送予定日[：:\s]*([0-9年月日/\-\.]+)`), Plausible: maxRunes(30)},
		{Pattern: regexp.MustCompile(`発送予定日[：:\s]*([0-9年月日/\-\.]+)`), Plausible: maxRunes(30)},
		{Pattern: regexp.MustCompile(`(?i)Shipping\s*Date[：:\s]*([0-9/\-\.]+)`), Plausible: maxRunes(30)},
	}
)

// formatDate renders year/month/day in the canonical Japanese form.
// Day may be empty for month-precision dates.
func formatDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	if day == "" {
		return fmt.Sprintf("%s年%d月", year, m)
	}
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s年%d月%d日", year, m, d)
}

func validYearMonth(year, month string) bool {
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	return y >= minYear && y <= maxYear && m >= 1 && m <= 12
}

func findDate(text string, validate bool) *string {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if validate && !validYearMonth(m[1], m[2]) {
			continue
		}
		if len(m) == 4 {
			return str(formatDate(m[1], m[2], m[3]))
		}
		return str(formatDate(m[1], m[2], ""))
	}
	return nil
}

// ReleaseDate extracts the release date, searching around release keywords
// first and falling back to a year-validated global search. The result is
// canonicalized to YYYY年M月D日 (or YYYY年M月 for month precision).
func ReleaseDate(text string) *string {
	for _, kw := range releaseKeywords {
		idx := strings.Index(text, kw)
		if idx < 0 {
			continue
		}
		lo := idx - dateWindowBefore
		if lo < 0 {
			lo = 0
		}
		hi := idx + dateWindowAfter
		if hi > len(text) {
			hi = len(text)
		}
		if d := findDate(text[lo:hi], false); d != nil {
			return d
		}
	}
	return findDate(text, true)
}

// ReservationReleaseDate extracts the preorder open date as printed.
func ReservationReleaseDate(text string) *string {
	if v, ok := first(reservationReleaseRules, text); ok {
		return str(v)
	}
	return nil
}

// ReservationDeadline extracts the preorder cutoff date as printed.
func ReservationDeadline(text string) *string {
	if v, ok := first(reservationDeadlineRules, text); ok {
		return str(v)
	}
	return nil
}

// ReservationShippingDate extracts the preorder shipping date as printed.
func ReservationShippingDate(text string) *string {
	if v, ok := first(reservationShippingRules, text); ok {
		return str(v)
	}
	return nil
}
