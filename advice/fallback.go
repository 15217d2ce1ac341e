package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/fundora"
	"github.com/shopspring/decimal"
)

// Fallback answers from canned responses. It looks for an amount in the
// query first, then for known topics, and adapts the answer to the user's
// risk. It never fails.
type Fallback struct{}

// tiers of the amount based answers.
var (
	smallAmount  = decimal.NewFromInt(10_000)
	mediumAmount = decimal.NewFromInt(100_000)
)

func (Fallback) Advise(_ context.Context, req Request) (string, error) {
	return answer(req.Query, req.Persona), nil
}

// risk returns the risk the answer is tuned for. Words in the query take
// precedence over the persona, conservative first.
func risk(query string, p fundora.Persona) fundora.Risk {
	switch r := p.Risk(); {
	case r == fundora.RiskConservative || strings.Contains(query, "conservative"):
		return fundora.RiskConservative
	case r == fundora.RiskAggressive || strings.Contains(query, "aggressive"):
		return fundora.RiskAggressive
	default:
		return fundora.RiskBalanced
	}
}

func answer(query string, p fundora.Persona) string {
	q := strings.ToLower(query)
	r := risk(q, p)

	if amount, ok := fundora.ParseAmount(query); ok && amount.IsPositive() {
		return amountAnswer(fundora.M(amount, fundora.DefaultCurrency), r)
	}

	switch {
	case strings.Contains(q, "sip"):
		return pick(r,
			"For SIP, start with debt or hybrid funds. ₹2000/month in HDFC Corporate Bond + ₹1000 in balanced fund works well for steady growth.",
			"Balanced SIP approach: ₹2000 in Nifty Index + ₹1500 in debt fund. Simple, cost-effective, and well-diversified.",
			"SIP is perfect for equity! Try ₹3000 in Axis Bluechip + ₹2000 in Parag Parikh Flexi Cap. Start small, increase by 10% annually.")
	case strings.Contains(q, "tax") || strings.Contains(q, "80c") || strings.Contains(q, "elss"):
		return pick(r,
			"For tax saving: PPF (₹1.5L annually) + ELSS funds like Axis Long Term Equity. PPF gives guaranteed returns, ELSS offers growth potential.",
			"Balanced tax saving: ₹1L in PPF + ₹50K in ELSS funds. This gives guaranteed returns plus equity growth with tax benefits.",
			"Maximize ELSS for 80C! Try Mirae Asset Tax Saver or Axis Long Term Equity. ₹1.5L investment can save ₹46,800 in taxes (30% bracket).")
	case strings.Contains(q, "mutual fund"):
		return pick(r,
			"For conservative mutual funds: Corporate bond funds, banking PSU funds, or hybrid conservative funds. They offer better returns than FDs with moderate risk.",
			"Balanced mutual fund approach: Large-cap + mid-cap combo or balanced hybrid funds. HDFC Top 100 + Axis Midcap works well.",
			"Aggressive mutual funds: Small-cap, mid-cap, or sectoral funds. Try Axis Small Cap or SBI Small Cap for high growth potential over 5+ years.")
	case strings.Contains(q, "emergency") || strings.Contains(q, "fund"):
		return "Emergency fund should be 6-12 months of expenses in liquid investments. Use savings account + liquid funds. Keep it separate from investment goals!"
	case strings.Contains(q, "fd") || strings.Contains(q, "fixed deposit"):
		return pick(r,
			"FDs are great for guaranteed returns! Current rates: 6-7%. For better tax efficiency, consider debt mutual funds for amounts above ₹1 lakh.",
			"FDs work for short-term goals (1-3 years). For longer terms, mix FDs with mutual funds for better inflation-adjusted returns.",
			"FDs are safe but inflation-beating is tough. Consider only for emergency funds. For growth, equity mutual funds historically outperform FDs significantly.")
	}

	return pick(r,
		"As a conservative investor, focus on capital preservation. Consider FDs, PPF, and debt mutual funds. What specific amount are you looking to invest?",
		"I'd love to help with your investment query! Could you share the amount you're planning to invest and your timeline?",
		"For aggressive growth, equity mutual funds and direct stocks work well. What's your investment amount and timeline?")
}

func pick(r fundora.Risk, conservative, balanced, aggressive string) string {
	switch r {
	case fundora.RiskConservative:
		return conservative
	case fundora.RiskAggressive:
		return aggressive
	default:
		return balanced
	}
}

// part formats share of amount, rounded to whole rupees.
func part(amount fundora.Money, share float64) string {
	return amount.Mul(decimal.NewFromFloat(share)).Whole()
}

func amountAnswer(amount fundora.Money, r fundora.Risk) string {
	a := amount.Whole()
	switch v := amount.Decimal(); {
	case v.LessThan(smallAmount):
		return pick(r,
			fmt.Sprintf("For %s, start with a recurring deposit or small SIP in a debt fund. Even ₹500/month SIP can grow significantly over time.", a),
			fmt.Sprintf("%s is a great start! Try a balanced hybrid fund SIP. HDFC Balanced Advantage or ICICI Prudential Balanced Advantage are good options.", a),
			fmt.Sprintf("%s is perfect to start! Begin with a small-cap mutual fund SIP of ₹1000-2000/month. Consider Parag Parikh Flexi Cap or Axis Small Cap.", a))
	case v.LessThan(mediumAmount):
		return pick(r,
			fmt.Sprintf("For %s, consider: 60%% in FD/PPF (%s), 40%% in debt mutual funds (%s). This gives stability with some growth.", a, part(amount, 0.6), part(amount, 0.4)),
			fmt.Sprintf("For %s, go 65%% equity (%s) in index funds, 35%% debt (%s) in corporate bond funds.", a, part(amount, 0.65), part(amount, 0.35)),
			fmt.Sprintf("%s can be split: 80%% equity funds (%s), 20%% debt (%s). Try Axis Bluechip + Mirae Asset Emerging Bluechip combo.", a, part(amount, 0.8), part(amount, 0.2)))
	default:
		return pick(r,
			fmt.Sprintf("%s is substantial! Diversify: 40%% FD/PPF (%s), 35%% debt funds (%s), 25%% large-cap equity (%s). Consider ELSS for tax benefits.", a, part(amount, 0.4), part(amount, 0.35), part(amount, 0.25)),
			fmt.Sprintf("%s allows good diversification: 60%% equity mix (%s), 25%% debt (%s), 15%% gold/international (%s).", a, part(amount, 0.6), part(amount, 0.25), part(amount, 0.15)),
			fmt.Sprintf("%s offers great diversification! Try: 50%% large-cap (%s), 30%% mid/small-cap (%s), 20%% international funds (%s). Consider direct equity too.", a, part(amount, 0.5), part(amount, 0.3), part(amount, 0.2)))
	}
}
