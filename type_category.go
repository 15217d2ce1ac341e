package fundora

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the six asset categories an allocation is split into.
// The numeric order is the enumeration order used everywhere: allocations,
// sums and reports always walk the categories in this order.
type Category int

const (
	GoldSilver Category = iota
	GovtSchemes
	FixedIncome
	MutualFunds
	Equities
	Crypto

	numCategories = iota
)

// Categories lists every category in enumeration order.
var Categories = [numCategories]Category{GoldSilver, GovtSchemes, FixedIncome, MutualFunds, Equities, Crypto}

var categoryNames = [numCategories]string{
	"Gold/Silver",
	"Govt Schemes",
	"Fixed Income",
	"Mutual Funds",
	"Equities",
	"Crypto",
}

// palette holds the display color of each category in charts.
var palette = [numCategories]string{
	"#FFD700",
	"#4CAF50",
	"#2196F3",
	"#FF9800",
	"#9C27B0",
	"#F44336",
}

func (c Category) valid() bool { return c >= 0 && c < numCategories }

func (c Category) String() string {
	if !c.valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Color returns the chart color of the category.
func (c Category) Color() string {
	if !c.valid() {
		return ""
	}
	return palette[c]
}

// ParseCategory parses a category name. Matching is case insensitive.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, categoryNames[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
