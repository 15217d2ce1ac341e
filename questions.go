package fundora

// This file holds the static quiz tables. They are loaded once and only ever
// exposed through copies.

var defaultQuestions = []Question{
	{ID: "1", Text: "What's your primary investment timeline?", Options: options(
		"Less than 1 year",
		"1 to 3 years",
		"3 to 5 years",
		"5 to 10 years",
		"More than 10 years",
	)},
	{ID: "2", Text: "How do you currently invest your money?", Options: options(
		"Savings account only",
		"Fixed deposits, PPF, post office schemes",
		"A mix of deposits and mutual funds",
		"Mostly mutual funds and some stocks",
		"Stocks, derivatives or crypto",
	)},
	{ID: "3", Text: "How would you react if your investment lost 20% in a month?", Options: options(
		"Sell everything immediately",
		"Sell part of it to limit the damage",
		"Do nothing and wait",
		"Hold and review my strategy",
		"Buy more at the lower price",
	)},
	{ID: "4", Text: "What's your monthly investable surplus?", Options: options(
		"Less than ₹2,000",
		"₹2,000 to ₹5,000",
		"₹5,000 to ₹15,000",
		"₹15,000 to ₹50,000",
		"More than ₹50,000",
	)},
	{ID: "5", Text: "What's your primary source of investment knowledge?", Options: options(
		"I don't follow investments",
		"Family and friends",
		"Bank advisors",
		"Financial websites and basic research",
		"Market analysis, trading platforms and financial news",
	)},
	{ID: "6", Text: "If the market crashed 30%, what would you do?", Options: options(
		"Move everything to safe investments",
		"Move most of it to safe investments",
		"Hold and wait for the recovery",
		"Rebalance towards equities",
		"Invest as much extra money as I can",
	)},
	{ID: "7", Text: "What's your main goal for this money?", Options: options(
		"Keep it safe, whatever the return",
		"Beat inflation with minimal risk",
		"Steady growth with some ups and downs",
		"Grow wealth substantially",
		"Maximize returns, I accept large swings",
	)},
	{ID: "8", Text: "How many months of expenses do you keep as an emergency fund?", Options: options(
		"None",
		"Less than 3 months",
		"3 to 6 months",
		"6 to 12 months",
		"More than 12 months",
	)},
	{ID: "9", Text: "How stable is your income?", Options: options(
		"No regular income",
		"Irregular income",
		"Stable but modest",
		"Stable and growing",
		"Very stable with several sources",
	)},
	{ID: "10", Text: "How much of your portfolio would you put in a single high-risk bet?", Options: options(
		"None",
		"Up to 5%",
		"Up to 10%",
		"Up to 25%",
		"More than 25%",
	)},
}

// defaultBands are the persona bands for ten questions, scores 10 to 50.
var defaultBands = []Band{
	{
		Min: 10, Max: 17, Persona: Guardian,
		Description: "You value safety above all. Protecting your capital matters more to you than chasing returns.",
		Advice:      "Favour government schemes, fixed deposits and gold; keep a small mutual fund SIP for growth.",
	},
	{
		Min: 18, Max: 26, Persona: Planner,
		Description: "You plan carefully and accept a little risk for steady, predictable growth.",
		Advice:      "Keep most of your money in fixed income and schemes, and add hybrid or index funds gradually.",
	},
	{
		Min: 27, Max: 35, Persona: Explorer,
		Description: "You balance growth and stability and are curious about new opportunities.",
		Advice:      "Split between mutual funds and equities, keep a fixed income cushion, and try a small crypto allocation.",
	},
	{
		Min: 36, Max: 43, Persona: Hustler,
		Description: "You chase growth actively and are comfortable with market swings.",
		Advice:      "Lean on equities and equity funds, rebalance yearly, and cap speculative assets at ten percent.",
	},
	{
		Min: 44, Max: 50, Persona: Maverick,
		Description: "You are a bold risk-taker aiming for maximum long-term returns.",
		Advice:      "Concentrate on equities with a meaningful crypto share, but keep an emergency fund outside your portfolio.",
	},
}

// options builds the five lettered options of a question in A..E order.
func options(texts ...string) []Option {
	opts := make([]Option, len(texts))
	for i, t := range texts {
		opts[i] = Option{Choice: Choices[i], Text: t}
	}
	return opts
}

var defaultWeightedQuestions = []WeightedQuestion{
	{ID: "1", Text: "What's your primary investment timeline?", Options: []WeightedOption{
		{Text: "Less than 2 years (Short-term)", Weights: Weights{Conservative: 3, Balanced: 1, Aggressive: 0}},
		{Text: "2-5 years (Medium-term)", Weights: Weights{Conservative: 1, Balanced: 3, Aggressive: 1}},
		{Text: "More than 5 years (Long-term)", Weights: Weights{Conservative: 0, Balanced: 1, Aggressive: 3}},
	}},
	{ID: "2", Text: "How do you currently invest your money?", Options: []WeightedOption{
		{Text: "Fixed Deposits, PPF, Savings Account", Weights: Weights{Conservative: 3, Balanced: 0, Aggressive: 0}},
		{Text: "Mix of FDs and Mutual Funds", Weights: Weights{Conservative: 1, Balanced: 3, Aggressive: 1}},
		{Text: "Stocks, Crypto, High-risk investments", Weights: Weights{Conservative: 0, Balanced: 1, Aggressive: 3}},
	}},
	{ID: "3", Text: "How would you react if your investment loses 20% in a month?", Options: []WeightedOption{
		{Text: "I'd panic and sell immediately", Weights: Weights{Conservative: 3, Balanced: 1, Aggressive: 0}},
		{Text: "I'd be concerned but wait to see", Weights: Weights{Conservative: 1, Balanced: 3, Aggressive: 1}},
		{Text: "I'd see it as a buying opportunity", Weights: Weights{Conservative: 0, Balanced: 0, Aggressive: 3}},
	}},
	{ID: "4", Text: "What's your monthly investable surplus?", Options: []WeightedOption{
		{Text: "Less than ₹5,000", Weights: Weights{Conservative: 2, Balanced: 2, Aggressive: 1}},
		{Text: "₹5,000 - ₹25,000", Weights: Weights{Conservative: 1, Balanced: 2, Aggressive: 2}},
		{Text: "More than ₹25,000", Weights: Weights{Conservative: 0, Balanced: 1, Aggressive: 3}},
	}},
	{ID: "5", Text: "What's your primary source of investment knowledge?", Options: []WeightedOption{
		{Text: "Bank advisors, family recommendations", Weights: Weights{Conservative: 3, Balanced: 1, Aggressive: 0}},
		{Text: "Financial websites, basic research", Weights: Weights{Conservative: 1, Balanced: 3, Aggressive: 1}},
		{Text: "Market analysis, trading platforms, financial news", Weights: Weights{Conservative: 0, Balanced: 1, Aggressive: 3}},
	}},
	{ID: "6", Text: "If the market crashes 30%, what would you do?", Options: []WeightedOption{
		{Text: "Move everything to safe investments immediately", Weights: Weights{Conservative: 3, Balanced: 0, Aggressive: 0}},
		{Text: "Hold current investments and wait for recovery", Weights: Weights{Conservative: 1, Balanced: 3, Aggressive: 1}},
		{Text: "Invest more money to buy at lower prices", Weights: Weights{Conservative: 0, Balanced: 1, Aggressive: 3}},
	}},
}

// riskDescriptions describe the personas of the weighted quiz.
var riskDescriptions = map[Persona][2]string{
	Conservative: {
		"You prioritize capital preservation and guaranteed returns.",
		"Keep 60-70% in FD, PPF and debt funds and 30-40% in large-cap equity; prefer tax-saving instruments like PPF and ELSS.",
	},
	Balanced: {
		"You look for a balance between growth and stability.",
		"Aim for about 60% equity and 40% debt, mixing large-cap stability with mid-cap growth, and diversify into gold.",
	},
	Aggressive: {
		"You focus on wealth creation and high growth potential.",
		"Keep 70-80% in equity across large, mid and small caps and 20-30% in debt, over horizons of five years or more.",
	},
}
