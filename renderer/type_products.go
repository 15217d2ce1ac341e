package renderer

import "github.com/etnz/fundora"

// Products lists catalog entries, ready for display.
type Products struct {
	Entries []ProductsEntry `json:"entries"`
}

// ProductsEntry is the catalog entry of a category.
type ProductsEntry struct {
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Names    []string `json:"products"`
	Learn    []string `json:"learn"`
	// Amount is the share of the allocation going to this category, if any.
	Amount string `json:"amount,omitempty"`
}

// NewProducts creates Products from catalog entries. When a is not nil,
// entries carry the amount allocated to their category and the categories
// without allocation are skipped.
func NewProducts(entries []fundora.Products, a *fundora.Allocation) *Products {
	v := &Products{Entries: make([]ProductsEntry, 0, len(entries))}
	for _, e := range entries {
		entry := ProductsEntry{Category: e.Category.String(), Color: e.Category.Color(), Names: e.Names, Learn: e.Learn}
		if a != nil {
			s := a.Slice(e.Category)
			if !s.Amount.IsPositive() {
				continue
			}
			entry.Amount = s.Amount.Whole()
		}
		v.Entries = append(v.Entries, entry)
	}
	return v
}
