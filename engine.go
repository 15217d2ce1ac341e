package fundora

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Row is a persona's split across the categories, in percent, in category
// order. A valid row sums to exactly 100.
type Row [numCategories]Percent

// Sum returns the total of the row.
func (r Row) Sum() Percent {
	var s Percent
	for _, p := range r {
		s += p
	}
	return s
}

// Matrix maps a persona to its allocation row.
type Matrix map[Persona]Row

// Rates holds the expected annual growth rate of each category, in percent.
type Rates [numCategories]Percent

var defaultMatrix = Matrix{
	//         Gold/Silver, Govt Schemes, Fixed Income, Mutual Funds, Equities, Crypto
	Guardian: {20, 30, 35, 15, 0, 0},
	Planner:  {15, 20, 35, 20, 10, 0},
	Explorer: {10, 15, 20, 25, 25, 5},
	Hustler:  {5, 10, 15, 25, 35, 10},
	Maverick: {0, 5, 10, 20, 45, 20},
}

var defaultRates = Rates{9, 7.5, 7.5, 12, 14, 25}

// Engine allocates a principal according to an allocation matrix and
// projects the allocation with per category growth rates.
//
// An Engine is immutable once built and safe for concurrent use.
type Engine struct {
	matrix   Matrix
	rates    Rates
	currency string
}

// NewEngine validates the tables and returns an Engine working in currency.
// Every row must sum to exactly 100 with no negative share, and no rate may
// be lower than -100%.
func NewEngine(matrix Matrix, rates Rates, currency string) (*Engine, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: empty allocation matrix", ErrInvalidInput)
	}
	for p, row := range matrix {
		for _, c := range Categories {
			if row[c] < 0 {
				return nil, fmt.Errorf("%w: persona %q has a negative share of %v", ErrInvalidInput, p, c)
			}
		}
		if sum := row.Sum(); sum != 100 {
			return nil, fmt.Errorf("%w: persona %q allocates %v, want 100%%", ErrInvalidInput, p, sum)
		}
	}
	for _, c := range Categories {
		if rates[c] < -100 {
			return nil, fmt.Errorf("%w: rate of %v is below -100%%", ErrInvalidInput, c)
		}
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Engine{matrix: maps.Clone(matrix), rates: rates, currency: currency}, nil
}

var defaultEngine = mustEngine(NewEngine(defaultMatrix, defaultRates, DefaultCurrency))

func mustEngine(e *Engine, err error) *Engine {
	if err != nil {
		panic(err)
	}
	return e
}

// DefaultEngine returns the engine over the default matrix and rates, in INR.
func DefaultEngine() *Engine { return defaultEngine }

// WithCurrency returns a copy of the engine working in another currency.
func (e *Engine) WithCurrency(currency string) *Engine {
	ne := *e
	if currency != "" {
		ne.currency = currency
	}
	return &ne
}

// Currency returns the currency used for principals without one.
func (e *Engine) Currency() string { return e.currency }

// Row returns the allocation row of persona p.
func (e *Engine) Row(p Persona) (Row, bool) {
	r, ok := e.matrix[p]
	return r, ok
}

// Rate returns the annual growth rate of category c.
func (e *Engine) Rate(c Category) Percent { return e.rates[c] }

// Personas returns the personas of the matrix, from the most cautious to the
// most daring (by their equity and crypto share, then by name).
func (e *Engine) Personas() []Persona {
	risky := func(p Persona) Percent { r := e.matrix[p]; return r[Equities] + r[Crypto] }
	return slices.SortedFunc(maps.Keys(e.matrix), func(a, b Persona) int {
		if c := cmp.Compare(risky(a), risky(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// Plan allocates principal for persona p and projects it over years.
func (e *Engine) Plan(p Persona, principal Money, years int) (*Plan, error) {
	a, err := e.Allocate(p, principal)
	if err != nil {
		return nil, err
	}
	proj, err := e.Project(a, years)
	if err != nil {
		return nil, err
	}
	return &Plan{Allocation: a, Projection: proj}, nil
}
