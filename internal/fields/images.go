package fields

import (
	"fmt"
	"regexp"
)

const maxImageSlots = 6

var imageSlotRules = buildImageSlotRules()

func buildImageSlotRules() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, maxImageSlots)
	for i := 1; i <= maxImageSlots; i++ {
		out[i-1] = []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`画像%d[：:\s]*(https?://[^\s\n\r]+)`, i)),
			regexp.MustCompile(fmt.Sprintf(`(?i)Image\s*%d[：:\s]*(https?://[^\s\n\r]+)`, i)),
			regexp.MustCompile(fmt.Sprintf(`(?i)img%d[：:\s]*(https?://[^\s\n\r]+)`, i)),
		}
	}
	return out
}

// ImageURLs extracts numbered image URLs (画像1..画像6). Slots are scanned in
// order and gaps are skipped.
func ImageURLs(text string) []string {
	var urls []string
	for _, slot := range imageSlotRules {
		for _, re := range slot {
			if m := re.FindStringSubmatch(text); m != nil {
				urls = append(urls, m[1])
				break
			}
		}
	}
	return urls
}
