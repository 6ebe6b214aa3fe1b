package identity

import (
	"log/slog"
	"regexp"
	"strings"
)

// positionalWindow is how far (in lines) the resolver looks around a code
// occurrence for an unclaimed barcode.
const positionalWindow = 10

var barcodePattern = regexp.MustCompile(`\b4\d{12}\b`)

// Resolution is the outcome of resolving one article code within a document.
// Zero values mean the corresponding fact could not be established.
type Resolution struct {
	Barcode string
	Name    string
}

// Resolver resolves code identities within a single document. Barcodes are
// claimed first-come: once a code owns a barcode, later codes cannot take it.
// A Resolver is not safe for concurrent use; create one per document.
type Resolver struct {
	table   *Table
	log     *slog.Logger
	claimed map[string]string // barcode -> owning code
}

func NewResolver(table *Table, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		table:   table,
		log:     log,
		claimed: make(map[string]string),
	}
}

// Resolve maps an article code to its barcode and character name using, in
// order: the identity table, a positional scan for an unclaimed barcode near
// the code's occurrence in lines, and the name-mediated link. An empty
// Resolution means the code stays unresolved.
func (r *Resolver) Resolve(code string, lines []string) Resolution {
	name, _ := r.table.NameForCode(code)

	if barcode, ok := r.table.BarcodeForCode(code); ok && r.claim(barcode, code) {
		r.log.Debug("identity.resolve", "code", code, "barcode", barcode, "source", "table")
		return Resolution{Barcode: barcode, Name: name}
	}

	if barcode := r.positional(code, lines); barcode != "" {
		r.log.Debug("identity.resolve", "code", code, "barcode", barcode, "source", "positional")
		return Resolution{Barcode: barcode, Name: name}
	}

	if name != "" {
		if barcode := r.nameMediated(code, name, lines); barcode != "" {
			r.log.Debug("identity.resolve", "code", code, "barcode", barcode, "source", "name")
			return Resolution{Barcode: barcode, Name: name}
		}
	}

	r.log.Debug("identity.resolve.miss", "code", code)
	return Resolution{Name: name}
}

// claim records barcode ownership; it fails when another code already owns
// the barcode.
func (r *Resolver) claim(barcode, code string) bool {
	owner, taken := r.claimed[barcode]
	if taken {
		return owner == code
	}
	r.claimed[barcode] = code
	return true
}

// nameMediated finds an unclaimed barcode on a line mentioning the code's
// character name, falling back to the table's name→barcode link.
func (r *Resolver) nameMediated(code, name string, lines []string) string {
	for _, line := range lines {
		if !strings.Contains(line, name) {
			continue
		}
		for _, barcode := range barcodePattern.FindAllString(line, -1) {
			if r.claim(barcode, code) {
				return barcode
			}
		}
	}
	if barcode, ok := r.table.BarcodeForName(name); ok && r.claim(barcode, code) {
		return barcode
	}
	return ""
}

// positional scans up to positionalWindow lines below (then above) the
// code's line for a barcode no other code has claimed.
func (r *Resolver) positional(code string, lines []string) string {
	at := -1
	for i, line := range lines {
		if strings.Contains(line, code) {
			at = i
			break
		}
	}
	if at < 0 {
		return ""
	}

	scan := func(from, to, step int) string {
		for i := from; i != to; i += step {
			if i < 0 || i >= len(lines) {
				break
			}
			for _, barcode := range barcodePattern.FindAllString(lines[i], -1) {
				if r.claim(barcode, code) {
					return barcode
				}
			}
		}
		return ""
	}

	if b := scan(at, min(len(lines), at+positionalWindow), 1); b != "" {
		return b
	}
	return scan(at-1, max(-1, at-positionalWindow-1), -1)
}
