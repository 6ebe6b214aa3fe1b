package fields

import "regexp"

// Retail price bounds; catalog sheets print plenty of numbers that are not
// prices (counts, codes), so anything outside this range is rejected.
const (
	minPrice = 50
	maxPrice = 100000
)

var (
	priceRules = []Rule{
		{Pattern: regexp.MustCompile(`[¥￥]\s*([0-9,]+)`), Plausible: plausiblePrice},
		{Pattern: regexp.MustCompile(`価格[：:\s]*[¥￥]?([0-9,]+)`), Plausible: plausiblePrice},
		{Pattern: regexp.MustCompile(`値段[：:\s]*[¥￥]?([0-9,]+)`), Plausible: plausiblePrice},
		{Pattern: regexp.MustCompile(`定価[：:\s]*[¥￥]?([0-9,]+)`), Plausible: plausiblePrice},
		{Pattern: regexp.MustCompile(`税込[：:\s]*[¥￥]?([0-9,]+)`), Plausible: plausiblePrice},
		{Pattern: regexp.MustCompile(`([0-9,]+)\s*円`), Plausible: plausiblePrice},
	}

	referencePriceRules = []Rule{
		amountRule(`参考販売価格[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 1000000),
		amountRule(`希望小売価格[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 1000000),
		amountRule(`(?i)Reference\s*Price[：:\s]*[¥￥$]?\s*([0-9,]+)`, 0, 1000000),
	}

	wholesalePriceRules = []Rule{
		amountRule(`卸単価[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 1000000),
		amountRule(`卸価格[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 1000000),
		amountRule(`(?i)Wholesale\s*Price[：:\s]*[¥￥$]?\s*([0-9,]+)`, 0, 1000000),
	}

	orderAmountRules = []Rule{
		amountRule(`発注金額[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 10000000),
		amountRule(`注文金額[：:\s]*[¥￥]?\s*([0-9,]+)`, 0, 10000000),
		amountRule(`(?i)Order\s*Amount[：:\s]*[¥￥$]?\s*([0-9,]+)`, 0, 10000000),
	}

	stockRules = []Rule{
		{Pattern: regexp.MustCompile(`在庫[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`数量[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`残り[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`(?i)stock[：:\s]*(\d+)`)},
		{Pattern: regexp.MustCompile(`(?i)qty[：:\s]*(\d+)`)},
	}

	wholesaleQtyRules = []Rule{
		{Pattern: regexp.MustCompile(`卸可能数[：:\s]*([0-9,]+)`)},
		{Pattern: regexp.MustCompile(`卸し可能数[：:\s]*([0-9,]+)`)},
		{Pattern: regexp.MustCompile(`(?i)Available\s*Quantity[：:\s]*([0-9,]+)`)},
	}
)

func plausiblePrice(v string) bool {
	n, err := parseAmount(v)
	return err == nil && n >= minPrice && n <= maxPrice
}

// Price extracts the retail price as a number: "¥1,100" and "1100円" both
// yield 1100.
func Price(text string) *float64 {
	if v, ok := first(priceRules, text); ok {
		if n, err := parseAmount(v); err == nil {
			return floatPtr(n)
		}
	}
	return nil
}

// ReferenceSalesPrice extracts the suggested retail price.
func ReferenceSalesPrice(text string) *float64 {
	if v, ok := first(referencePriceRules, text); ok {
		if n, err := parseAmount(v); err == nil {
			return floatPtr(n)
		}
	}
	return nil
}

// WholesalePrice extracts the per-unit wholesale price (tax excluded).
func WholesalePrice(text string) *float64 {
	if v, ok := first(wholesalePriceRules, text); ok {
		if n, err := parseAmount(v); err == nil {
			return floatPtr(n)
		}
	}
	return nil
}

// OrderAmount extracts the order total.
func OrderAmount(text string) *float64 {
	if v, ok := first(orderAmountRules, text); ok {
		if n, err := parseAmount(v); err == nil {
			return floatPtr(n)
		}
	}
	return nil
}

// Stock extracts the stock count.
func Stock(text string) *int {
	if v, ok := first(stockRules, text); ok {
		if n, err := parseCount(v); err == nil {
			return intPtr(n)
		}
	}
	return nil
}

// WholesaleQuantity extracts the available wholesale unit count.
func WholesaleQuantity(text string) *int {
	if v, ok := first(wholesaleQtyRules, text); ok {
		if n, err := parseCount(v); err == nil && n >= 0 && n < 1000000 {
			return intPtr(n)
		}
	}
	return nil
}
