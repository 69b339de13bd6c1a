package catalog

import (
	"context"
	"sync"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Lister is the slice of the feed client the controller depends on.
type Lister interface {
	ListRecords(ctx context.Context, limit int) ([]Record, error)
}

// Controller owns the catalog page state: fetch lifecycle, the loaded
// product set, and the active filter/page selection. Filtering and
// paging never go back to the network; only Load does, and a retry is
// simply another Load over the same fetch path.
type Controller struct {
	src Lister

	mu       sync.Mutex
	state    State
	loadErr  error
	products []Product
	query    string
	category string
	page     int
	gen      int
	closed   bool
}

// ViewState is the immutable snapshot handed to presentation. Items is
// the current page slice only. Error is the display message for the
// error state; Err keeps the underlying failure so callers can map it
// to a response status.
type ViewState struct {
	State State
	Error string
	Err   error

	Items      []Product
	Categories []string

	Query    string
	Category string

	Page       int
	TotalPages int
	Total      int // filtered count
	From, To   int // 1-based bounds of the visible slice
}

func NewController(src Lister) *Controller {
	return &Controller{
		src:      src,
		state:    StateIdle,
		category: AllCategories,
		page:     1,
	}
}

// Load performs the single bulk fetch and normalizes the result. A load
// that finishes after Close, or after a newer load started, is stale and
// its result is discarded without touching state.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.state = StateLoading
	c.loadErr = nil
	c.mu.Unlock()

	records, err := c.src.ListRecords(ctx, BulkLimit)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	if err != nil {
		c.state = StateError
		c.loadErr = err
		c.products = nil
		return
	}
	items := make([]Product, 0, len(records))
	for _, r := range records {
		items = append(items, Normalize(r))
	}
	c.products = items
	c.state = StateReady
}

// SetQuery changes the free-text search and resets paging.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q == c.query {
		return
	}
	c.query = q
	c.page = 1
}

// SetCategory changes the category filter and resets paging. No refetch:
// filtering is applied over the already loaded set.
func (c *Controller) SetCategory(cat string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cat == "" {
		cat = AllCategories
	}
	if cat == c.category {
		return
	}
	c.category = cat
	c.page = 1
}

// SetPage clamps into the valid range for the current filter selection.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = ClampPage(page, len(Filter(c.products, c.query, c.category)))
}

// View assembles the snapshot for the current selection.
func (c *Controller) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := Filter(c.products, c.query, c.category)
	page := ClampPage(c.page, len(filtered))
	from, to := PageBounds(len(filtered), page)

	return ViewState{
		State:      c.state,
		Error:      errMessage(c.loadErr),
		Err:        c.loadErr,
		Items:      Paginate(filtered, page),
		Categories: Categories(c.products),
		Query:      c.query,
		Category:   c.category,
		Page:       page,
		TotalPages: TotalPages(len(filtered)),
		Total:      len(filtered),
		From:       from,
		To:         to,
	}
}

// Close tears the controller down. In-flight loads become stale and
// commit nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
