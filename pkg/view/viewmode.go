package view

// ViewMode is the products-page display density, persisted in the URL
// (?view=). Unknown values fall back to the large grid.
type ViewMode string

const (
	ViewSmall ViewMode = "small"
	ViewLarge ViewMode = "large"
	ViewList  ViewMode = "list"
)

func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewSmall, ViewLarge, ViewList:
		return ViewMode(s)
	default:
		return ViewLarge
	}
}
