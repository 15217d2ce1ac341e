package fundora

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxRecommended is the number of categories recommended to a persona.
const maxRecommended = 3

var hundred = decimal.NewFromInt(100)

// Slice is the share of an allocation going to one category.
type Slice struct {
	Category Category
	Percent  Percent
	Amount   Money
}

// Allocation is a principal split across the categories for a persona.
type Allocation struct {
	Persona   Persona
	Principal Money
	// Slices are indexed by Category.
	Slices [numCategories]Slice
	// Recommended are the first categories with a positive share, in
	// category order (not sorted by amount).
	Recommended []Category
}

// Allocate splits principal across the categories according to persona p's
// row. Each amount is principal*percent/100 rounded to whole units, half away
// from zero. Amounts are rounded independently, so their sum may differ from
// the principal by a few units.
func (e *Engine) Allocate(p Persona, principal Money) (*Allocation, error) {
	row, ok := e.matrix[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPersona, p)
	}
	if principal.IsNegative() {
		return nil, fmt.Errorf("%w: principal %v is negative", ErrInvalidInput, principal.Decimal())
	}
	if principal.Currency() == "" {
		principal = M(principal.Decimal(), e.currency)
	}

	a := &Allocation{Persona: p, Principal: principal}
	for _, c := range Categories {
		pct := row[c]
		amount := principal.Mul(decimal.NewFromFloat(float64(pct)).Div(hundred)).Round()
		a.Slices[c] = Slice{Category: c, Percent: pct, Amount: amount}
		if pct > 0 && len(a.Recommended) < maxRecommended {
			a.Recommended = append(a.Recommended, c)
		}
	}
	return a, nil
}

// Slice returns the share of category c.
func (a *Allocation) Slice(c Category) Slice { return a.Slices[c] }

// Total returns the sum of the rounded amounts.
func (a *Allocation) Total() Money {
	total := M(0, a.Principal.Currency())
	for _, s := range a.Slices {
		total = total.Add(s.Amount)
	}
	return total
}

// Slack returns Total minus the principal, the rounding slack.
func (a *Allocation) Slack() Money { return a.Total().Sub(a.Principal) }

// PieSlice is a chart ready slice of a pie.
type PieSlice struct {
	Name  Category `json:"name"`
	Value Money    `json:"value"`
	Color string   `json:"color"`
}

// Pie returns the initial amounts as pie slices, skipping empty categories.
func (a *Allocation) Pie() []PieSlice {
	var amounts [numCategories]Money
	for c, s := range a.Slices {
		amounts[c] = s.Amount
	}
	return pie(amounts)
}

func pie(amounts [numCategories]Money) []PieSlice {
	var out []PieSlice
	for _, c := range Categories {
		if amounts[c].IsPositive() {
			out = append(out, PieSlice{Name: c, Value: amounts[c], Color: c.Color()})
		}
	}
	return out
}

func (a *Allocation) appendJSON(w *jsonObjectWriter) {
	var allocations jsonObjectWriter
	for _, s := range a.Slices {
		var slice jsonObjectWriter
		slice.Append("percent", s.Percent)
		slice.Append("amount", s.Amount)
		allocations.Append(s.Category.String(), &slice)
	}
	recommended := a.Recommended
	if recommended == nil {
		recommended = []Category{}
	}
	w.Append("persona", a.Persona)
	w.Append("total_investment", a.Principal)
	w.Append("currency", a.Principal.Currency())
	w.Append("allocations", &allocations)
	w.Append("recommended_categories", recommended)
	w.Append("allocation_pie_data", emptyIfNil(a.Pie()))
}

// MarshalJSON writes the categories in category order.
func (a *Allocation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	a.appendJSON(&w)
	return w.MarshalJSON()
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
