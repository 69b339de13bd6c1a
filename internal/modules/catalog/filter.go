package catalog

import "strings"

const (
	// PageSize is the fixed client-side page size.
	PageSize = 9

	// AllCategories is the sentinel that disables category filtering.
	AllCategories = "all"

	// BulkLimit caps the single list fetch the controller performs. All
	// filtering and paging happens over this window; items past the cap
	// are not visible anywhere. Known ceiling, see DESIGN.md.
	BulkLimit = 200

	// RelatedLimit caps the related-products strip on the detail page.
	RelatedLimit = 4
)

// Filter applies the category filter AND the free-text search. Category
// matches exactly (case-insensitive, "all" passes everything); the query
// matches as a substring against name, description, platform, category
// and tags; any one hit qualifies.
func Filter(items []Product, query, category string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))

	out := make([]Product, 0, len(items))
	for _, p := range items {
		pcat := strings.ToLower(p.Category)
		if cat != "" && cat != AllCategories && pcat != cat {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Product, q string) bool {
	for _, field := range []string{p.Name, p.Description, p.Platform, p.Category, p.Tags} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Categories lists distinct category labels in first-appearance order.
// Dedup is case-insensitive but the first-seen casing is what displays.
func Categories(items []Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range items {
		label := strings.TrimSpace(p.Category)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, label)
	}
	return out
}

// TotalPages is max(1, ceil(n/PageSize)). An empty result still has one page.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage forces page into [1, TotalPages(n)].
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if tp := TotalPages(n); page > tp {
		return tp
	}
	return page
}

// Paginate returns the slice for a 1-based page. The caller is expected
// to clamp; an out-of-range page comes back empty rather than panicking.
func Paginate(items []Product, page int) []Product {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageBounds gives the 1-based "Showing from–to of n" range for a page.
func PageBounds(n, page int) (from, to int) {
	if n == 0 {
		return 0, 0
	}
	from = (page-1)*PageSize + 1
	to = page * PageSize
	if to > n {
		to = n
	}
	return from, to
}

// Related picks products sharing the current product's category
// (case-insensitive), excluding the product itself, upstream order,
// capped at RelatedLimit.
func Related(items []Product, current Product) []Product {
	cat := strings.ToLower(strings.TrimSpace(current.Category))
	out := make([]Product, 0, RelatedLimit)
	for _, p := range items {
		if p.ID == current.ID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(p.Category)) != cat {
			continue
		}
		out = append(out, p)
		if len(out) == RelatedLimit {
			break
		}
	}
	return out
}
