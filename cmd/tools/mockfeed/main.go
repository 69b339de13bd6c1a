// mockfeed serves a local stand-in for the upstream product feed so the
// site can be developed without network access. It speaks the same
// envelope the real feed does and supports q, page, limit and id.
//
// Usage:
//
//	go run ./cmd/tools/mockfeed -addr :9090
//	FEED_URL=http://localhost:9090/feed go run ./cmd/web
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type envelope struct {
	Status     string `json:"status"`
	HTTPStatus int    `json:"httpStatus"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

type listData struct {
	Count int              `json:"count"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Items []map[string]any `json:"items"`
}

func main() {
	addr := flag.String("addr", ":9090", "Listen address")
	dataFile := flag.String("data", "", "JSON file with an array of product records (optional)")
	delay := flag.Duration("delay", 0, "Artificial response delay, e.g. 20s to exercise timeouts")
	failWith := flag.String("fail", "", "Always fail: 'error' for an error envelope, 'http' for HTTP 500, 'html' for a non-JSON body")
	flag.Parse()

	items := sampleItems()
	if *dataFile != "" {
		raw, err := os.ReadFile(*dataFile)
		if err != nil {
			log.Fatalf("read data file: %v", err)
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Fatalf("parse data file: %v", err)
		}
	}

	http.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		if *delay > 0 {
			time.Sleep(*delay)
		}

		switch *failWith {
		case "error":
			writeJSON(w, http.StatusOK, envelope{
				Status: "error", HTTPStatus: 503, Message: "sheet temporarily unavailable",
			})
			return
		case "http":
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		case "html":
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html><body>maintenance</body></html>")
			return
		}

		q := r.URL.Query()

		if id := q.Get("id"); id != "" {
			for _, it := range items {
				if fmt.Sprint(it["id"]) == id {
					writeJSON(w, http.StatusOK, envelope{Status: "success", HTTPStatus: 200, Data: it})
					return
				}
			}
			writeJSON(w, http.StatusOK, envelope{Status: "success", HTTPStatus: 200, Data: nil})
			return
		}

		matched := filterItems(items, q.Get("q"))

		page := atoiDefault(q.Get("page"), 1)
		limit := atoiDefault(q.Get("limit"), len(matched))
		if limit < 1 {
			limit = len(matched)
		}
		start := (page - 1) * limit
		if start < 0 || start > len(matched) {
			start = len(matched)
		}
		end := start + limit
		if end > len(matched) {
			end = len(matched)
		}
		window := matched[start:end]

		writeJSON(w, http.StatusOK, envelope{
			Status:     "success",
			HTTPStatus: 200,
			Data: listData{
				Count: len(window),
				Total: len(matched),
				Page:  page,
				Limit: limit,
				Items: window,
			},
		})
	})

	log.Printf("mock feed listening on %s (endpoint /feed, %d items)", *addr, len(items))
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func filterItems(items []map[string]any, q string) []map[string]any {
	if q == "" {
		return items
	}
	q = strings.ToLower(q)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		for _, field := range []string{"name", "category", "tags", "platform"} {
			if v, ok := it[field].(string); ok && strings.Contains(strings.ToLower(v), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sampleItems mirrors the shape of the real sheet, including the
// misspelled fourth image column.
func sampleItems() []map[string]any {
	return []map[string]any{
		{
			"id": "1", "name": "Noise-Cancelling Headphones", "platform": "Amazon",
			"category": "Electronics", "tags": "audio, wireless, travel",
			"description":    "Over-ear headphones with 40h battery life and active noise cancellation.",
			"buy_price":      7999.0, "original_price": 12999.0,
			"first_image_url": "https://picsum.photos/seed/headphones/600/450",
			"affiliate_url":   "https://example.com/buy/1",
		},
		{
			"id": "2", "name": "Trail Camera 4K", "platform": "Flipkart",
			"category": "Outdoors", "tags": "camera, wildlife",
			"description":      "Weatherproof trail camera with night vision.",
			"buy_price":        5499.0,
			"first_image_url":  "https://picsum.photos/seed/trailcam/600/450",
			"foutrh_image_url": "https://picsum.photos/seed/trailcam4/600/450",
			"affiliate_url":    "https://example.com/buy/2",
		},
		{
			"id": "3", "name": "Standing Desk", "platform": "Amazon",
			"category": "Home & Office", "tags": "furniture, ergonomics",
			"description":      "Electric sit-stand desk, 120x60cm top.",
			"buy_price":        15999.0, "original_price": 21999.0,
			"first_image_url":  "https://picsum.photos/seed/desk/600/450",
			"second_image_url": "https://picsum.photos/seed/desk2/600/450",
			"affiliate_url":    "https://example.com/buy/3",
		},
		{
			"id": "4", "name": "Espresso Grinder", "platform": "Amazon",
			"category": "Kitchen", "tags": "coffee, espresso",
			"buy_price":       8499.0,
			"first_image_url": "https://picsum.photos/seed/grinder/600/450",
			"affiliate_url":   "https://example.com/buy/4",
		},
		{
			"id": "5", "name": "Mechanical Keyboard TKL", "platform": "Flipkart",
			"category": "Electronics", "tags": "keyboard, mechanical, gaming",
			"description":     "Hot-swappable tenkeyless board with PBT caps.",
			"buy_price":       4299.0, "original_price": 5999.0,
			"first_image_url": "https://picsum.photos/seed/keyboard/600/450",
			"affiliate_url":   "https://example.com/buy/5",
		},
	}
}
