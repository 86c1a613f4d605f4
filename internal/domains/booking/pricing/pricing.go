// Package pricing computes booking totals from a pool's base price and the selected extras.
package pricing

import "poolhire/internal/domains/extra/model"

// Total returns basePrice plus the catalog price of every selected extra.
// Ids missing from the catalog contribute zero. Duplicated ids are counted each time they appear.
func Total(basePrice int64, selected []string, catalog map[string]int64) int64 {
	total := basePrice

	for _, id := range selected {
		total += catalog[id]
	}

	return total
}

// Catalog maps extra ids to their price in minor units.
func Catalog(extras []model.Extra) map[string]int64 {
	catalog := make(map[string]int64, len(extras))

	for _, extra := range extras {
		catalog[extra.ID] = extra.Price
	}

	return catalog
}
