package view

// ProductCard is the grid/list card shape shared by home, products and
// the related strip.
type ProductCard struct {
	ID              string
	Name            string
	Platform        string
	Category        string
	Images          []string // up to 4 thumbnails
	Price           string   // formatted; "—" when unknown
	OriginalPrice   string   // formatted; empty unless discounted
	HasDiscount     bool
	DiscountPercent int
	AffiliateURL    string
	DetailPath      string
}

type ProductDetail struct {
	ID              string
	Name            string
	Platform        string
	Category        string
	Description     string
	Images          []string // gallery; sliced to at most 8 by the handler
	Tags            []string
	Price           string
	OriginalPrice   string
	HasDiscount     bool
	DiscountPercent int
	AffiliateURL    string
	ShareURL        string // absolute URL of this page, for share links
}

type ProductDetailPage struct {
	Title   string
	Product ProductDetail
	Related []ProductCard
	Flash   *Flash
}

// ViewOption is one entry of the grid-density toggle.
type ViewOption struct {
	Label  string
	Mode   ViewMode
	Active bool
	Path   string
}

type CategoryButton struct {
	Label  string
	Value  string // lowercased filter value
	Active bool
	Path   string
}

type ProductsIndex struct {
	Title      string
	Query      string
	Category   string
	ViewMode   ViewMode
	Categories []CategoryButton
	ViewModes  []ViewOption
	Products   []ProductCard

	// "Showing From–To of Total products"
	Total    int
	From, To int

	Page       int
	TotalPages int
	Pages      []PageLink
	PrevPath   string
	NextPath   string

	// Error is set when the feed fetch failed; the page renders an
	// inline panel with a retry link instead of the grid.
	Error     string
	RetryPath string

	Flash *Flash
}

type PageLink struct {
	Number  int
	Path    string
	Current bool
}
