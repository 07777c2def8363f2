// Package catalog holds the static alias to market symbol tables.
//
// Tables are registered in a fixed precedence order: regional (Indian)
// equities, US equities, commodities, forex pairs, crypto pairs. When the same
// alias appears in more than one table the first registration wins, and every
// iteration (Entries, substring matching in the resolver) follows this order.
package catalog

import (
	"strings"

	"github.com/bobmcallan/finchat/internal/models"
)

// Table is a named, ordered group of catalog entries
type Table struct {
	Name    string
	Entries []models.SymbolEntry
}

// Catalog is an immutable alias index built from ordered tables
type Catalog struct {
	entries []models.SymbolEntry
	index   map[string]int
}

// New builds a catalog from tables in precedence order. Aliases are
// lowercased and trimmed; later duplicates are dropped.
func New(tables ...Table) *Catalog {
	c := &Catalog{index: make(map[string]int)}
	for _, t := range tables {
		for _, e := range t.Entries {
			alias := strings.ToLower(strings.TrimSpace(e.Alias))
			if alias == "" {
				continue
			}
			if _, dup := c.index[alias]; dup {
				continue
			}
			e.Alias = alias
			c.index[alias] = len(c.entries)
			c.entries = append(c.entries, e)
		}
	}
	return c
}

// Lookup returns the entry registered for an exact alias
func (c *Catalog) Lookup(alias string) (models.SymbolEntry, bool) {
	i, ok := c.index[alias]
	if !ok {
		return models.SymbolEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns every entry in precedence order
func (c *Catalog) Entries() []models.SymbolEntry {
	out := make([]models.SymbolEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByClass returns the entries of one asset class in precedence order
func (c *Catalog) ByClass(class models.AssetClass) []models.SymbolEntry {
	var out []models.SymbolEntry
	for _, e := range c.entries {
		if e.AssetClass == class {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of distinct aliases
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Default returns the built-in catalog
func Default() *Catalog {
	return New(IndianStocks, USStocks, Commodities, ForexPairs, CryptoPairs)
}
