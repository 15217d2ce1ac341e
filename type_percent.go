package fundora

import (
	"fmt"
	"math"
)

// Percent is a percentage, 12.5 meaning 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// round2 rounds to two decimal places, half away from zero.
func (p Percent) round2() Percent {
	return Percent(math.Round(float64(p)*100) / 100)
}
