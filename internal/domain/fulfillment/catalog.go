package fulfillment

// CatalogEntry associates the free-text names an order feed uses for a
// variant with its canonical barcode. Reference data, read-only within a
// pass.
type CatalogEntry struct {
	RawItemName   string
	RawOptionName string
	RawVendorCode string
	CanonicalKey  string
}

type catalogKey struct {
	name   string
	option string
}

// Catalog indexes catalog entries for resolution lookups. It keeps two
// views: one keyed by item name and one keyed by vendor code, both paired
// with the option text. The first entry for a key wins; later duplicates
// are ignored.
type Catalog struct {
	byItem   map[catalogKey]string
	byVendor map[catalogKey]string
}

// NewCatalog builds the lookup views from raw catalog entries. Entries
// without a canonical key are skipped.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		byItem:   make(map[catalogKey]string, len(entries)),
		byVendor: make(map[catalogKey]string, len(entries)),
	}
	for _, e := range entries {
		if e.CanonicalKey == "" {
			continue
		}
		if e.RawItemName != "" {
			k := catalogKey{name: e.RawItemName, option: e.RawOptionName}
			if _, exists := c.byItem[k]; !exists {
				c.byItem[k] = e.CanonicalKey
			}
		}
		if e.RawVendorCode != "" {
			k := catalogKey{name: e.RawVendorCode, option: e.RawOptionName}
			if _, exists := c.byVendor[k]; !exists {
				c.byVendor[k] = e.CanonicalKey
			}
		}
	}
	return c
}

// LookupByItem finds a barcode by (item name, option text).
func (c *Catalog) LookupByItem(item, option string) (string, bool) {
	key, ok := c.byItem[catalogKey{name: item, option: option}]
	return key, ok
}

// LookupByVendor finds a barcode by (vendor code, option text).
func (c *Catalog) LookupByVendor(code, option string) (string, bool) {
	key, ok := c.byVendor[catalogKey{name: code, option: option}]
	return key, ok
}

// Len returns the number of distinct item-name keys in the catalog.
func (c *Catalog) Len() int {
	return len(c.byItem)
}
