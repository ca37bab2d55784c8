package checkout

import "sort"

// Product is an entry of the fixed price list. Prices are in US cents.
type Product struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

var catalog = map[string]Product{
	"genz-roast": {
		Key:         "genz-roast",
		Name:        "😭 Chaotic Gen-Z Roast",
		Description: "Get roasted in Gen-Z slang with chaotic energy!",
		PriceCents:  299,
	},
	"gentle-roast": {
		Key:         "gentle-roast",
		Name:        "😌 Gentle Comedy Roast",
		Description: "Kind but comedic feedback on your resume",
		PriceCents:  299,
	},
	"basic-analysis": {
		Key:         "basic-analysis",
		Name:        "🎭 Bias Filters + 7-Second Analysis",
		Description: "Unlock hiring manager perspectives and deeper scan analysis",
		PriceCents:  199,
	},
	"full-analysis": {
		Key:         "full-analysis",
		Name:        "💎 Full Analysis Unlock",
		Description: "All bias filters, persona modes, industries + resume rebuilding",
		PriceCents:  799,
	},
}

// Lookup returns the product for key.
func Lookup(key string) (Product, bool) {
	p, ok := catalog[key]
	return p, ok
}

// Products lists the catalog ordered by key.
func Products() []Product {
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
