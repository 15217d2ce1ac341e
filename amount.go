package fundora

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches a number, optionally prefixed by the rupee sign and
// followed by a scale word.
var amountPattern = regexp.MustCompile(`(?i)₹?\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(thousand|lakhs?|lacs?|crores?|million|k)?\b`)

var amountScales = map[string]int64{
	"thousand": 1_000,
	"k":        1_000,
	"lakh":     100_000,
	"lakhs":    100_000,
	"lac":      100_000,
	"lacs":     100_000,
	"million":  1_000_000,
	"crore":    10_000_000,
	"crores":   10_000_000,
}

// ParseAmount extracts the first amount from free text, like "invest 5 lakh"
// or "₹25,000". Grouping commas are ignored and scale words (thousand, k,
// lakh, crore, million) multiply the number. It reports false when the text
// holds no number.
func ParseAmount(text string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	if scale, ok := amountScales[strings.ToLower(m[2])]; ok {
		value = value.Mul(decimal.NewFromInt(scale))
	}
	return value, true
}
