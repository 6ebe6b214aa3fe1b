package fields

import (
	"fmt"
	"regexp"
)

var (
	labeledDimensionRules = []Rule{
		{Pattern: label(`商品サイズ`), Plausible: sizeText},
		{Pattern: label(`単品サイズ`), Plausible: sizeText},
		{Pattern: label(`本体サイズ`), Plausible: sizeText},
		{Pattern: label(`製品サイズ`), Plausible: sizeText},
		{Pattern: label(`サイズ`), Plausible: sizeText},
		{Pattern: label(`寸法`), Plausible: sizeText},
		{Pattern: label(`大きさ`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Dimensions[：:\s]*([^\n\r]+)`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Size[：:\s]*([^\n\r]+)`), Plausible: sizeText},
	}

	dim3mm = regexp.MustCompile(`約?\s*(\d+)\s*[×x]\s*(\d+)\s*[×x]\s*(\d+)\s*mm`)
	dim3cm = regexp.MustCompile(`(\d+)\s*[×x]\s*(\d+)\s*[×x]\s*(\d+)\s*cm`)
	dim2mm = regexp.MustCompile(`(\d+)\s*[×x]\s*(\d+)\s*mm`)

	singleProductSizeRules = []Rule{
		{Pattern: label(`単品サイズ`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Single\s*Product\s*Size[：:\s]*([^\n\r]+)`), Plausible: sizeText},
		{Pattern: label(`個別サイズ`), Plausible: sizeText},
	}

	packageSizeRules = []Rule{
		{Pattern: label(`パッケージサイズ`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Package\s*Size[：:\s]*([^\n\r]+)`), Plausible: sizeText},
		{Pattern: label(`箱サイズ`), Plausible: sizeText},
		{Pattern: label(`外箱サイズ`), Plausible: sizeText},
	}

	innerBoxSizeRules = []Rule{
		{Pattern: label(`内箱サイズ`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Inner\s*Box\s*Size[：:\s]*([^\n\r]+)`), Plausible: sizeText},
		{Pattern: label(`ケースサイズ`), Plausible: sizeText},
	}

	cartonSizeRules = []Rule{
		{Pattern: label(`カートンサイズ`), Plausible: sizeText},
		{Pattern: regexp.MustCompile(`(?i)Carton\s*Size[：:\s]*([^\n\r]+)`), Plausible: sizeText},
		{Pattern: label(`外装サイズ`), Plausible: sizeText},
		{Pattern: label(`段ボールサイズ`), Plausible: sizeText},
	}

	packageTypeRules = []Rule{
		{Pattern: label(`パッケージ形態`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Package\s*Type[：:\s]*([^\n\r]+)`), Plausible: maxRunes(100)},
		{Pattern: label(`包装形態`), Plausible: maxRunes(100)},
		{Pattern: label(`梱包形態`), Plausible: maxRunes(100)},
		{Pattern: label(`パッケージ`), Plausible: maxRunes(100)},
	}

	protectiveFilmRules = []Rule{
		{Pattern: labelShort(`機材フィルム`), Plausible: maxRunes(100)},
		{Pattern: labelShort(`保護フィルム`), Plausible: maxRunes(100)},
		{Pattern: regexp.MustCompile(`(?i)Protective\s*Film[：:\s]*([^\n\r,、]+)`), Plausible: maxRunes(100)},
	}

	weightRules = []Rule{
		{Pattern: regexp.MustCompile(`重量[：:\s]*([0-9.]+\s*(?:kg|g|グラム|キロ))`)},
		{Pattern: regexp.MustCompile(`重さ[：:\s]*([0-9.]+\s*(?:kg|g|グラム|キロ))`)},
		{Pattern: regexp.MustCompile(`([0-9.]+\s*(?:kg|g|グラム|キロ))\b`)},
	}
)

// Dimensions extracts the product size: the labeled forms first, then bare
// W×H×D numbers which are canonicalized to 約W×H×Dmm (or cm as printed).
func Dimensions(text string) *string {
	if v, ok := first(labeledDimensionRules, text); ok {
		return str(v)
	}
	if m := dim3mm.FindStringSubmatch(text); m != nil {
		return str(fmt.Sprintf("約%s×%s×%smm", m[1], m[2], m[3]))
	}
	if m := dim3cm.FindStringSubmatch(text); m != nil {
		return str(fmt.Sprintf("約%s×%s×%scm", m[1], m[2], m[3]))
	}
	if m := dim2mm.FindStringSubmatch(text); m != nil {
		return str(fmt.Sprintf("約%s×%smm", m[1], m[2]))
	}
	return nil
}

// SingleProductSize extracts the per-unit size.
func SingleProductSize(text string) *string {
	if v, ok := first(singleProductSizeRules, text); ok {
		return str(v)
	}
	return nil
}

// PackageSize extracts the retail package size.
func PackageSize(text string) *string {
	if v, ok := first(packageSizeRules, text); ok {
		return str(v)
	}
	return nil
}

// InnerBoxSize extracts the inner carton size.
func InnerBoxSize(text string) *string {
	if v, ok := first(innerBoxSizeRules, text); ok {
		return str(v)
	}
	return nil
}

// CartonSize extracts the shipping carton size.
func CartonSize(text string) *string {
	if v, ok := first(cartonSizeRules, text); ok {
		return str(v)
	}
	return nil
}

// PackageType extracts the packaging form (blister, box, bagged).
func PackageType(text string) *string {
	if v, ok := first(packageTypeRules, text); ok {
		return str(v)
	}
	return nil
}

// ProtectiveFilm extracts the protective film note.
func ProtectiveFilm(text string) *string {
	if v, ok := first(protectiveFilmRules, text); ok {
		return str(v)
	}
	return nil
}

// Weight extracts the printed weight with its unit.
func Weight(text string) *string {
	if v, ok := first(weightRules, text); ok {
		return str(v)
	}
	return nil
}
