package catalog

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister counts fetches so tests can assert that filtering and
// paging never go back to the source.
type fakeLister struct {
	mu      sync.Mutex
	records []Record
	err     error
	calls   int
	block   chan struct{} // when set, ListRecords waits until it closes
	started chan struct{} // closed once a blocked fetch is in flight
}

func (f *fakeLister) ListRecords(ctx context.Context, limit int) ([]Record, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	started := f.started
	f.mu.Unlock()

	if block != nil {
		if started != nil {
			close(started)
		}
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func feedRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		cat := "Electronics"
		if i%2 == 1 {
			cat = "Kitchen"
		}
		out[i] = Record{
			"id":       strconv.Itoa(i + 1),
			"name":     "Product " + strconv.Itoa(i+1),
			"category": cat,
		}
	}
	return out
}

func TestControllerLoad(t *testing.T) {
	src := &fakeLister{records: feedRecords(3)}
	c := NewController(src)
	assert.Equal(t, StateIdle, c.State())

	c.Load(context.Background())

	v := c.View()
	assert.Equal(t, StateReady, v.State)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, AllCategories, v.Category)
	assert.Equal(t, 1, src.callCount())
}

func TestControllerLoadError(t *testing.T) {
	srcErr := errors.New("sheet unavailable")
	src := &fakeLister{err: srcErr}
	c := NewController(src)

	c.Load(context.Background())

	v := c.View()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "sheet unavailable", v.Error)
	assert.ErrorIs(t, v.Err, srcErr, "the underlying failure stays available for status mapping")
	assert.Empty(t, v.Items)
}

func TestControllerReloadAfterError(t *testing.T) {
	src := &fakeLister{err: errors.New("boom")}
	c := NewController(src)

	c.Load(context.Background())
	require.Equal(t, StateError, c.State())

	src.err = nil
	src.records = feedRecords(2)
	c.Load(context.Background())

	v := c.View()
	assert.Equal(t, StateReady, v.State)
	assert.Empty(t, v.Error)
	assert.NoError(t, v.Err)
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 2, src.callCount())
}

func TestFilteringNeverRefetches(t *testing.T) {
	src := &fakeLister{records: feedRecords(30)}
	c := NewController(src)
	c.Load(context.Background())

	c.SetPage(2)
	c.SetCategory("Kitchen")
	c.SetQuery("product")
	c.SetCategory(AllCategories)
	_ = c.View()

	assert.Equal(t, 1, src.callCount())
}

func TestFilterChangeResetsPage(t *testing.T) {
	src := &fakeLister{records: feedRecords(30)}
	c := NewController(src)
	c.Load(context.Background())

	c.SetPage(3)
	require.Equal(t, 3, c.View().Page)

	c.SetCategory("Kitchen")
	assert.Equal(t, 1, c.View().Page)

	c.SetPage(2)
	c.SetQuery("product 1")
	assert.Equal(t, 1, c.View().Page)

	// Setting the same value again must not reset.
	c.SetPage(2)
	c.SetQuery("product 1")
	c.SetCategory("Kitchen")
	assert.Equal(t, 2, c.View().Page)
}

func TestSetPageClampsToFilteredSet(t *testing.T) {
	src := &fakeLister{records: feedRecords(30)}
	c := NewController(src)
	c.Load(context.Background())

	c.SetCategory("Kitchen") // 15 items -> 2 pages
	c.SetPage(99)
	assert.Equal(t, 2, c.View().Page)

	c.SetPage(-1)
	assert.Equal(t, 1, c.View().Page)
}

func TestViewPageSlice(t *testing.T) {
	src := &fakeLister{records: feedRecords(20)}
	c := NewController(src)
	c.Load(context.Background())

	v := c.View()
	assert.Len(t, v.Items, PageSize)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 1, v.From)
	assert.Equal(t, 9, v.To)

	c.SetPage(3)
	v = c.View()
	assert.Len(t, v.Items, 2)
	assert.Equal(t, 19, v.From)
	assert.Equal(t, 20, v.To)
}

func TestCloseDiscardsInFlightLoad(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	src := &fakeLister{records: feedRecords(3), block: block, started: started}
	c := NewController(src)

	done := make(chan struct{})
	go func() {
		c.Load(context.Background())
		close(done)
	}()

	// Tear the controller down while the fetch is still in flight.
	<-started
	c.Close()
	close(block)
	<-done

	assert.Equal(t, StateLoading, c.State(), "stale result must not commit")
	assert.Empty(t, c.View().Items)
}

func TestNewerLoadWinsOverStale(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	src := &fakeLister{records: feedRecords(1), block: block, started: started}
	c := NewController(src)

	done := make(chan struct{})
	go func() {
		c.Load(context.Background())
		close(done)
	}()
	<-started

	// A second load starts before the first finishes; the first becomes
	// stale even though it completes last.
	src.mu.Lock()
	src.block = nil
	src.records = feedRecords(5)
	src.mu.Unlock()
	c.Load(context.Background())
	require.Equal(t, 5, c.View().Total)

	close(block)
	<-done
	assert.Equal(t, 5, c.View().Total)
}
