package fundora

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultYears is the projection horizon used when none is given.
const DefaultYears = 10

// MaxYears is the longest projection horizon.
const MaxYears = 100

// YearValue is the projected portfolio at the end of a year. Year 0 is the
// initial allocation.
type YearValue struct {
	Year int
	// Total is the rounded sum of the unrounded category values.
	Total Money
	// Breakdown holds each category's rounded value, indexed by Category.
	Breakdown [numCategories]Money
}

// Point is a year/value pair for growth charts.
type Point struct {
	Year  int   `json:"year"`
	Value Money `json:"value"`
}

// Projection is the compound growth of an allocation over a number of years.
type Projection struct {
	Principal Money
	Years     int
	// Points has Years+1 entries, from year 0 to year Years.
	Points []YearValue
	// Final is the rounded total of the last year.
	Final Money
}

// Project compounds each category of a at its annual rate for years years.
//
// Category values are kept exact during the computation; only the reported
// totals and breakdowns are rounded to whole units.
func (e *Engine) Project(a *Allocation, years int) (*Projection, error) {
	if years < 1 || years > MaxYears {
		return nil, fmt.Errorf("%w: cannot project over %d years, want 1 to %d", ErrInvalidInput, years, MaxYears)
	}
	cur := a.Principal.Currency()

	var factors, values [numCategories]decimal.Decimal
	for _, c := range Categories {
		factors[c] = decimal.NewFromInt(1).Add(decimal.NewFromFloat(float64(e.rates[c])).Div(hundred))
		values[c] = a.Slices[c].Amount.Decimal()
	}

	p := &Projection{Principal: a.Principal, Years: years, Points: make([]YearValue, 0, years+1)}
	for y := 0; y <= years; y++ {
		if y > 0 {
			for _, c := range Categories {
				values[c] = values[c].Mul(factors[c])
			}
		}
		yv := YearValue{Year: y}
		total := decimal.Zero
		for _, c := range Categories {
			total = total.Add(values[c])
			yv.Breakdown[c] = M(values[c], cur).Round()
		}
		yv.Total = M(total, cur).Round()
		p.Points = append(p.Points, yv)
	}
	p.Final = p.Points[years].Total
	return p, nil
}

// CAGR returns the constant annual rate turning the principal into the final
// value, in percent rounded to two decimals. It only depends on the principal
// and the final value. It fails with ErrZeroPrincipal if the principal is
// zero.
func (p *Projection) CAGR() (Percent, error) {
	if p.Principal.IsZero() {
		return Percent(math.NaN()), ErrZeroPrincipal
	}
	ratio := p.Final.Decimal().Div(p.Principal.Decimal()).InexactFloat64()
	return Percent((math.Pow(ratio, 1/float64(p.Years)) - 1) * 100).round2(), nil
}

// Series returns the yearly totals, ready for a line chart.
func (p *Projection) Series() []Point {
	series := make([]Point, len(p.Points))
	for i, yv := range p.Points {
		series[i] = Point{Year: yv.Year, Value: yv.Total}
	}
	return series
}

// Pie returns the final category values as pie slices, skipping empty
// categories.
func (p *Projection) Pie() []PieSlice {
	return pie(p.Points[len(p.Points)-1].Breakdown)
}

func (yv YearValue) MarshalJSON() ([]byte, error) {
	var breakdown jsonObjectWriter
	for _, c := range Categories {
		breakdown.Append(c.String(), yv.Breakdown[c])
	}
	var w jsonObjectWriter
	w.Append("year", yv.Year)
	w.Append("total_value", yv.Total)
	w.Append("asset_breakdown", &breakdown)
	return w.MarshalJSON()
}

func (p *Projection) appendJSON(w *jsonObjectWriter) {
	w.Append("years", p.Years)
	w.Append("year_by_year_projection", p.Points)
	w.Append("final_value", p.Final)
	// an undefined CAGR is omitted rather than written as NaN, which JSON
	// cannot represent.
	if cagr, err := p.CAGR(); err == nil {
		w.Append("portfolio_cagr", float64(cagr))
	}
	w.Append("growth_chart_data", p.Series())
	w.Append("final_pie_data", emptyIfNil(p.Pie()))
}

func (p *Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	p.appendJSON(&w)
	return w.MarshalJSON()
}

// Plan is an allocation together with its projection.
type Plan struct {
	Allocation *Allocation
	Projection *Projection
}

// MarshalJSON flattens the allocation and the projection in a single object.
func (p *Plan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	p.Allocation.appendJSON(&w)
	p.Projection.appendJSON(&w)
	return w.MarshalJSON()
}
