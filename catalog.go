package fundora

import "slices"

// Products lists example products of a category and where to learn about it.
type Products struct {
	Category Category `json:"category"`
	Names    []string `json:"products"`
	Learn    []string `json:"learn"`
}

// Catalog is reference data: example products for each category.
type Catalog struct {
	entries [numCategories]Products
}

var defaultCatalog = &Catalog{entries: [numCategories]Products{
	{
		Category: GoldSilver,
		Names:    []string{"Groww Gold ETF", "Nippon Silver ETF", "Sovereign Gold Bonds"},
		Learn:    []string{"https://www.nism.ac.in/understanding-gold-etfs-and-silver-etfs/", "https://invest.gold/"},
	},
	{
		Category: GovtSchemes,
		Names:    []string{"PPF (7.1%)", "NSC (5 yrs)", "KVP (7.5%)", "Sukanya Samriddhi Account (8.2%)"},
		Learn:    []string{"https://www.indiapost.gov.in/banking-services/saving"},
	},
	{
		Category: FixedIncome,
		Names:    []string{"HDFC Bank FD (7.86%)", "Bajaj Finance 12M FD (6.6%)", "HDFC Ltd Bonds (7.7%)", "Shriram Finance Bonds (9%)"},
		Learn:    []string{"https://www.thefixedincome.com/blog/"},
	},
	{
		Category: MutualFunds,
		Names:    []string{"HDFC Liquid Fund", "ICICI Balanced Advantage Fund", "Kotak Debt Fund", "HDFC Nifty 50 ETF"},
		Learn:    []string{"https://groww.in/p/beginners-guide-mutual-funds"},
	},
	{
		Category: Equities,
		Names:    []string{"Large Cap (Top 100)", "Mid Cap (Next 150)", "Small Cap (<₹5,000 Cr)", "Penny Stocks (<₹2,000 Cr)"},
		Learn:    []string{"https://zerodha.com/varsity/chapter/the-stock-markets/"},
	},
	{
		Category: Crypto,
		Names:    []string{"Bitcoin", "Ethereum", "Solana", "Cardano", "XRP"},
		Learn:    []string{"https://academy.binance.com/en/start-here", "https://www.coinbase.com/en-gb/learn/crypto-basics"},
	},
}}

// DefaultCatalog returns the built-in product catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// Products returns a copy of the entry of category c.
func (c *Catalog) Products(cat Category) Products {
	p := c.entries[cat]
	p.Names = slices.Clone(p.Names)
	p.Learn = slices.Clone(p.Learn)
	return p
}

// All returns a copy of every entry, in category order.
func (c *Catalog) All() []Products {
	all := make([]Products, 0, numCategories)
	for _, cat := range Categories {
		all = append(all, c.Products(cat))
	}
	return all
}
