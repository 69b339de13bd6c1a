package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nikk-inovates/Nivaaran/internal/modules/catalog"
)

// DefaultTimeout bounds every feed request. Exceeding it cancels the
// in-flight request and surfaces as *TimeoutError.
const DefaultTimeout = 15 * time.Second

// Client talks to the single upstream product feed. Stateless per
// invocation: no caching, no retries, every call is one GET.
type Client struct {
	endpoint string
	timeout  time.Duration
	httpc    *http.Client
}

type ListQuery struct {
	Q     string
	Page  int
	Limit int
}

// Page is one page of the upstream feed. The app paginates again
// client-side within whatever it retrieved here.
type Page struct {
	Count int
	Total int
	Page  int
	Limit int
	Items []catalog.Record
}

func New(endpoint string, timeout time.Duration) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrNotConfigured
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("feed: invalid endpoint URL: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		httpc:    &http.Client{},
	}, nil
}

// FetchProducts issues GET <url>?q=&page=&limit=. A success envelope
// whose data.items is missing or not an array degrades to an empty page
// instead of failing; hard failures come back typed.
func (c *Client) FetchProducts(ctx context.Context, q ListQuery) (Page, error) {
	params := url.Values{}
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	data, err := c.get(ctx, params)
	if err != nil {
		return Page{}, err
	}

	var payload struct {
		Count int             `json:"count"`
		Total int             `json:"total"`
		Page  int             `json:"page"`
		Limit int             `json:"limit"`
		Items json.RawMessage `json:"items"`
	}
	if len(data) == 0 || json.Unmarshal(data, &payload) != nil {
		return emptyPage(), nil
	}

	var items []catalog.Record
	if len(payload.Items) == 0 || json.Unmarshal(payload.Items, &items) != nil {
		return emptyPage(), nil
	}
	return Page{
		Count: payload.Count,
		Total: payload.Total,
		Page:  payload.Page,
		Limit: payload.Limit,
		Items: items,
	}, nil
}

// FetchProductByID issues GET <url>?id=. ok=false is the explicit
// not-found signal; it is a valid return, not an error.
func (c *Client) FetchProductByID(ctx context.Context, id string) (catalog.Record, bool, error) {
	params := url.Values{}
	params.Set("id", id)

	data, err := c.get(ctx, params)
	if err != nil {
		return nil, false, err
	}

	var rec catalog.Record
	if len(data) == 0 || string(data) == "null" {
		return nil, false, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil || len(rec) == 0 {
		return nil, false, nil
	}
	return rec, true, nil
}

// ListRecords satisfies catalog.Lister: the controller's single bulk fetch.
func (c *Client) ListRecords(ctx context.Context, limit int) ([]catalog.Record, error) {
	page, err := c.FetchProducts(ctx, ListQuery{Limit: limit})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// get performs the request and returns the envelope's data payload.
func (c *Client) get(ctx context.Context, params url.Values) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("feed: invalid endpoint URL: %w", err)
	}
	merged := u.Query()
	for k, vs := range params {
		merged[k] = vs
	}
	u.RawQuery = merged.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: c.timeout}
		}
		// Explicit cancellation (view torn down) propagates as-is so it
		// stays distinguishable from a timeout.
		return nil, fmt.Errorf("feed: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: c.timeout}
		}
		return nil, fmt.Errorf("feed: read response: %w", err)
	}

	ctype := resp.Header.Get("Content-Type")
	isJSON := strings.Contains(ctype, "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Excerpt:    excerpt(body),
		}
	}
	if !isJSON {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    "expected JSON, got " + ctype,
			Excerpt:    excerpt(body),
		}
	}

	var env struct {
		Status     string          `json:"status"`
		HTTPStatus int             `json:"httpStatus"`
		Message    string          `json:"message"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    "malformed JSON payload",
			Excerpt:    excerpt(body),
		}
	}

	// Branch on the envelope tag before trusting data.
	if env.Status == "error" {
		return nil, &UpstreamError{HTTPStatus: env.HTTPStatus, Message: env.Message}
	}
	return env.Data, nil
}

func emptyPage() Page {
	return Page{Count: 0, Total: 0, Page: 1, Limit: 0, Items: []catalog.Record{}}
}
