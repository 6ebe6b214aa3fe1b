// Package identity maintains the article-code ↔ barcode ↔ character mapping
// and resolves identities per document.
package identity

import "fmt"

// Entry is one known code identity. Unverified entries come from estimated
// catalog data and are kept so a confirmed table can replace them in place.
type Entry struct {
	Code     string
	Barcode  string
	Name     string
	Verified bool
}

// Table holds the bidirectional code/barcode mapping plus the name links.
// The two directions are kept in sync by construction: NewTable rejects
// entries that would break the bijection.
type Table struct {
	byCode        map[string]Entry
	codeByBarcode map[string]string
	barcodeByName map[string]string
}

func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		byCode:        make(map[string]Entry, len(entries)),
		codeByBarcode: make(map[string]string, len(entries)),
		barcodeByName: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("identity: entry with barcode %q missing code", e.Barcode)
		}
		if _, dup := t.byCode[e.Code]; dup {
			return nil, fmt.Errorf("identity: duplicate code %s", e.Code)
		}
		if e.Barcode != "" {
			if _, dup := t.codeByBarcode[e.Barcode]; dup {
				return nil, fmt.Errorf("identity: duplicate barcode %s", e.Barcode)
			}
			t.codeByBarcode[e.Barcode] = e.Code
			if e.Name != "" {
				t.barcodeByName[e.Name] = e.Barcode
			}
		}
		t.byCode[e.Code] = e
	}
	return t, nil
}

// BarcodeForCode returns the barcode for an article code.
func (t *Table) BarcodeForCode(code string) (string, bool) {
	e, ok := t.byCode[code]
	if !ok || e.Barcode == "" {
		return "", false
	}
	return e.Barcode, true
}

// CodeForBarcode returns the article code for a barcode.
func (t *Table) CodeForBarcode(barcode string) (string, bool) {
	code, ok := t.codeByBarcode[barcode]
	return code, ok
}

// NameForCode returns the character name for an article code.
func (t *Table) NameForCode(code string) (string, bool) {
	e, ok := t.byCode[code]
	if !ok || e.Name == "" {
		return "", false
	}
	return e.Name, true
}

// BarcodeForName returns the barcode linked to a character name.
func (t *Table) BarcodeForName(name string) (string, bool) {
	b, ok := t.barcodeByName[name]
	return b, ok
}

// Verified reports whether the code's entry is confirmed catalog data.
func (t *Table) Verified(code string) bool {
	return t.byCode[code].Verified
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.byCode) }
