package fulfillment

import (
	"strings"

	"github.com/google/uuid"
)

// BarcodeResolver matches an order line's free-text item/option description
// to a canonical barcode. Order feeds frequently reorder the tokens inside
// an option string ("Blue L (66-77)" vs "L (66-77) Blue"), so after the
// exact lookup the resolver retries with the first and last whitespace
// tokens rotated. All three stages run against item-name keys before any
// vendor-code fallback, so an exact match is never shadowed by a swapped
// one.
type BarcodeResolver struct{}

// NewBarcodeResolver creates a new BarcodeResolver.
func NewBarcodeResolver() *BarcodeResolver {
	return &BarcodeResolver{}
}

// Resolve returns the barcode for a line, or ok=false when no catalog entry
// matches under any stage. A miss is a per-line condition, never an error.
func (r *BarcodeResolver) Resolve(line OrderLine, catalog *Catalog) (string, bool) {
	variants := optionVariants(line.RawOptionName)

	if line.RawItemName != "" {
		for _, option := range variants {
			if key, ok := catalog.LookupByItem(line.RawItemName, option); ok {
				return key, true
			}
		}
	}
	if line.RawVendorCode != "" {
		for _, option := range variants {
			if key, ok := catalog.LookupByVendor(line.RawVendorCode, option); ok {
				return key, true
			}
		}
	}
	return "", false
}

// ResolveBatch resolves every unresolved line in the batch, returning a new
// slice with canonical keys filled in plus the IDs of lines that missed.
// Input lines are not mutated.
func (r *BarcodeResolver) ResolveBatch(lines []OrderLine, catalog *Catalog) ([]OrderLine, []uuid.UUID) {
	resolved := make([]OrderLine, len(lines))
	copy(resolved, lines)

	var misses []uuid.UUID
	for i := range resolved {
		if resolved[i].Resolved() {
			continue
		}
		key, ok := r.Resolve(resolved[i], catalog)
		if !ok {
			misses = append(misses, resolved[i].ID)
			continue
		}
		resolved[i].CanonicalKey = key
	}
	return resolved, misses
}

// optionVariants returns the option text followed by its two token
// rotations, in the order the stages must be tried.
func optionVariants(option string) [3]string {
	return [3]string{option, swapFirstToken(option), swapLastToken(option)}
}

// swapFirstToken moves the text before the first whitespace to the end:
// "Blue L (66-77)" becomes "L (66-77) Blue".
func swapFirstToken(s string) string {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s
	}
	return s[i+1:] + " " + s[:i]
}

// swapLastToken moves the text after the last whitespace to the front:
// "L (66-77) Blue" becomes "Blue L (66-77)".
func swapLastToken(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	return s[i+1:] + " " + s[:i]
}
