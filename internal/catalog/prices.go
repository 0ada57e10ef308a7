package catalog

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// OnlineTitlePrefix distinguishes online-course labels from live
	// program labels in the merged price map; registrations store the
	// prefixed title.
	OnlineTitlePrefix = "Online: "

	// BundleTitle is a virtual catalog entry covering all online courses.
	BundleTitle = "Online: All 3 Courses Bundle"
)

var bundlePrice = decimal.NewFromInt(35)

var nonPricePattern = regexp.MustCompile(`[^0-9.]`)

// ParsePrice extracts a decimal amount from a display price string
// ("$25", "25 USD"). Anything unparseable is treated as zero.
func ParsePrice(s string) decimal.Decimal {
	cleaned := nonPricePattern.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PricedProgram is one entry of the merged label -> price map.
type PricedProgram struct {
	Price    decimal.Decimal
	Category Category
}

// PriceMap maps exact program labels to prices and sales categories. Lookups
// are case-insensitive; labels absent from the map resolve to price zero.
type PriceMap map[string]PricedProgram

func (m PriceMap) Lookup(label string) (PricedProgram, bool) {
	p, ok := m[strings.ToLower(strings.TrimSpace(label))]
	return p, ok
}

// Price returns the program's price, or zero for an unmapped label.
// Unrecognized labels being free mirrors the production behavior for
// legacy/untracked catalog entries.
func (m PriceMap) Price(label string) decimal.Decimal {
	p, ok := m.Lookup(label)
	if !ok {
		return decimal.Zero
	}
	return p.Price
}

// Category returns the sales-ledger tag for a label; unmapped labels fall
// back to OTHER.
func (m PriceMap) Category(label string) Category {
	p, ok := m.Lookup(label)
	if !ok {
		return CategoryOther
	}
	return p.Category
}

func (m PriceMap) add(label string, price decimal.Decimal, cat Category) {
	m[strings.ToLower(strings.TrimSpace(label))] = PricedProgram{Price: price, Category: cat}
}

// BuildPriceMap merges the three paid catalogs into one label -> price map.
// Online titles get the "Online: " prefix, and the fixed-price bundle is
// always present.
func BuildPriceMap(mini []MiniProgram, other []OtherProgram, online []OnlineCourse) PriceMap {
	m := make(PriceMap, len(mini)+len(other)+len(online)+1)

	for _, p := range mini {
		m.add(p.Title, ParsePrice(p.Price), CategoryMini)
	}
	for _, p := range other {
		m.add(p.Title, ParsePrice(p.Price), CategoryOther)
	}
	for _, c := range online {
		m.add(OnlineTitlePrefix+c.Title, ParsePrice(c.Price), CategoryOnline)
	}

	m.add(BundleTitle, bundlePrice, CategoryBundle)

	return m
}
