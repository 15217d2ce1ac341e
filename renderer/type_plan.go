package renderer

import "github.com/etnz/fundora"

// Plan is an allocation and its projection, ready for display.
// Amounts are kept as fundora.Money so templates can pick their format.
type Plan struct {
	Persona   string        `json:"persona"`
	Principal fundora.Money `json:"principal"`
	Years     int           `json:"years"`
	Final     fundora.Money `json:"finalValue"`
	// CAGR is empty when it is undefined.
	CAGR        string      `json:"cagr,omitempty"`
	Slices      []PlanSlice `json:"slices"`
	Recommended []string    `json:"recommended"`
	Growth      []PlanYear  `json:"growth"`
	// Slack is the rounding difference between the amounts and the
	// principal, zero most of the time.
	Slack fundora.Money `json:"slack"`
}

// PlanSlice is one category of the plan.
type PlanSlice struct {
	Category string          `json:"category"`
	Percent  fundora.Percent `json:"percent"`
	Amount   fundora.Money   `json:"amount"`
	Rate     fundora.Percent `json:"rate"`
	Final    fundora.Money   `json:"final"`
}

// PlanYear is the projected value at the end of a year.
type PlanYear struct {
	Year  int           `json:"year"`
	Value fundora.Money `json:"value"`
}

// NewPlan creates a Plan from an engine's plan. rates returns the growth
// rate of each category.
func NewPlan(p *fundora.Plan, rates func(fundora.Category) fundora.Percent) *Plan {
	a, proj := p.Allocation, p.Projection
	last := proj.Points[len(proj.Points)-1]
	v := &Plan{
		Persona:     string(a.Persona),
		Principal:   a.Principal,
		Years:       proj.Years,
		Final:       proj.Final,
		Slices:      make([]PlanSlice, 0, len(fundora.Categories)),
		Recommended: make([]string, 0, len(a.Recommended)),
		Growth:      make([]PlanYear, 0, len(proj.Points)),
		Slack:       a.Slack(),
	}
	if cagr, err := proj.CAGR(); err == nil {
		v.CAGR = cagr.String()
	}
	for _, c := range fundora.Categories {
		s := a.Slice(c)
		v.Slices = append(v.Slices, PlanSlice{
			Category: c.String(),
			Percent:  s.Percent,
			Amount:   s.Amount,
			Rate:     rates(c),
			Final:    last.Breakdown[c],
		})
	}
	for _, c := range a.Recommended {
		v.Recommended = append(v.Recommended, c.String())
	}
	for _, pt := range proj.Series() {
		v.Growth = append(v.Growth, PlanYear{Year: pt.Year, Value: pt.Value})
	}
	return v
}
