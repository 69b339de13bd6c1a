package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func jsonResponse(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestNew(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		_, err := New("   ", time.Second)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		_, err := New("not a url", time.Second)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("zero timeout falls back to default", func(t *testing.T) {
		c, err := New("http://localhost:9090/feed", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, c.timeout)
	})
}

func TestFetchProducts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "camera", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "9", r.URL.Query().Get("limit"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))

		jsonResponse(w, `{
			"status": "success", "httpStatus": 200,
			"data": {
				"count": 1, "total": 10, "page": 2, "limit": 9,
				"items": [{"id": "7", "name": "Trail Camera", "buy_price": 5499}]
			}
		}`)
	})

	page, err := c.FetchProducts(context.Background(), ListQuery{Q: "camera", Page: 2, Limit: 9})
	require.NoError(t, err)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Trail Camera", page.Items[0].Str("name"))
}

func TestFetchProductsMissingItems(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data field", `{"status": "success", "httpStatus": 200}`},
		{"data without items", `{"status": "success", "httpStatus": 200, "data": {"count": 0}}`},
		{"items not an array", `{"status": "success", "httpStatus": 200, "data": {"items": "oops"}}`},
		{"data not an object", `{"status": "success", "httpStatus": 200, "data": 42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				jsonResponse(w, tt.body)
			})

			page, err := c.FetchProducts(context.Background(), ListQuery{})
			require.NoError(t, err, "a degenerate success payload is an empty page, not an error")
			assert.NotNil(t, page.Items)
			assert.Empty(t, page.Items)
		})
	}
}

func TestFetchProductsErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, `{"status": "error", "httpStatus": 503, "message": "sheet unavailable"}`)
	})

	_, err := c.FetchProducts(context.Background(), ListQuery{})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 503, ue.HTTPStatus)
	assert.Equal(t, "sheet unavailable", ue.Message)
}

func TestFetchProductsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := c.FetchProducts(context.Background(), ListQuery{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Contains(t, te.Excerpt, "internal error")
}

func TestFetchProductsNonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})

	_, err := c.FetchProducts(context.Background(), ListQuery{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Contains(t, te.Message, "text/html")
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("x", 5000)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(long))
	})

	_, err := c.FetchProducts(context.Background(), ListQuery{})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Len(t, te.Excerpt, 400)
}

func TestTimeoutIsDistinctFromTransport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	c.timeout = 50 * time.Millisecond

	_, err := c.FetchProducts(context.Background(), ListQuery{})
	var toe *TimeoutError
	require.ErrorAs(t, err, &toe)
	assert.Equal(t, 50*time.Millisecond, toe.Timeout)

	var te *TransportError
	assert.False(t, errors.As(err, &te))
}

func TestCallerCancellationIsNotATimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.FetchProducts(ctx, ListQuery{})
	require.Error(t, err)
	var toe *TimeoutError
	assert.False(t, errors.As(err, &toe))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchProductByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id") {
		case "7":
			jsonResponse(w, `{"status": "success", "httpStatus": 200, "data": {"id": "7", "name": "Trail Camera"}}`)
		default:
			jsonResponse(w, `{"status": "success", "httpStatus": 200, "data": null}`)
		}
	})

	rec, ok, err := c.FetchProductByID(context.Background(), "7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Trail Camera", rec.Str("name"))

	// Not found is a valid return, not an error.
	rec, ok, err = c.FetchProductByID(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestListRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		jsonResponse(w, `{
			"status": "success", "httpStatus": 200,
			"data": {"count": 2, "total": 2, "page": 1, "limit": 200,
				"items": [{"id": "1"}, {"id": "2"}]}
		}`)
	})

	records, err := c.ListRecords(context.Background(), 200)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestEndpointQueryParamsAreKept(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		jsonResponse(w, `{"status": "success", "httpStatus": 200, "data": {"items": []}}`)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/feed?key=abc123", time.Second)
	require.NoError(t, err)

	_, err = c.FetchProducts(context.Background(), ListQuery{Q: "x"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotKey)
}
