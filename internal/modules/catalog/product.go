package catalog

import (
	"math"
	"strings"
)

// Product is the canonical, UI-ready view of a feed record. Immutable
// after Normalize; the feed is the sole source of truth and nothing in
// this app writes products back.
type Product struct {
	ID   string
	Name string

	// Up to four validated image URLs, deduplicated, slot order preserved.
	Images []string

	Platform    string
	Category    string
	Tags        string // comma separated, as the sheet stores them
	Description string

	BuyPrice      *float64 // nil means unknown; zero is a real price
	OriginalPrice *float64

	AffiliateURL string
}

func (p Product) DisplayName() string {
	if p.Name == "" {
		return "Untitled"
	}
	return p.Name
}

func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasDiscount reports whether a strikethrough price should render: both
// prices known, both strictly positive, original above buy.
func (p Product) HasDiscount() bool {
	return p.BuyPrice != nil && p.OriginalPrice != nil &&
		*p.BuyPrice > 0 && *p.OriginalPrice > 0 &&
		*p.OriginalPrice > *p.BuyPrice
}

// DiscountPercent is round((original-buy)/original*100), 0 without a discount.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - *p.BuyPrice) / *p.OriginalPrice * 100))
}

func (p Product) TagList() []string {
	parts := strings.Split(p.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
