// snapshotfeed pulls the current state of the product feed and archives
// it through the configured snapshot storage (SNAPSHOT_DRIVER=local|s3).
// Run it from cron before risky sheet edits; the site itself never reads
// snapshots back.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nikk-inovates/Nivaaran/internal/config"
	"github.com/Nikk-inovates/Nivaaran/internal/modules/feed"
	"github.com/Nikk-inovates/Nivaaran/internal/storage"
)

func main() {
	limit := flag.Int("limit", 200, "Maximum number of records to snapshot")
	timeout := flag.Duration("timeout", time.Minute, "Overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := feed.New(cfg.FeedURL, cfg.FeedTimeout)
	if err != nil {
		fail("feed client: %v", err)
	}

	page, err := client.FetchProducts(ctx, feed.ListQuery{Limit: *limit})
	if err != nil {
		fail("fetch feed: %v", err)
	}

	snapshot := struct {
		TakenAt time.Time `json:"taken_at"`
		Source  string    `json:"source"`
		Total   int       `json:"total"`
		Items   any       `json:"items"`
	}{
		TakenAt: time.Now().UTC(),
		Source:  cfg.FeedURL,
		Total:   page.Total,
		Items:   page.Items,
	}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		fail("encode snapshot: %v", err)
	}

	store, err := storage.FromEnv(ctx)
	if err != nil {
		fail("storage: %v", err)
	}

	name := "feed-" + snapshot.TakenAt.Format("20060102T150405") + ".json"
	res, err := store.Storage.Put(ctx, bytes.NewReader(body), storage.PutInput{
		Name:        name,
		ContentType: "application/json",
	})
	if err != nil {
		fail("write snapshot: %v", err)
	}

	fmt.Printf("snapshot written: driver=%s key=%s records=%d\n",
		store.Driver, res.Key, len(page.Items))
	if res.URL != "" {
		fmt.Printf("url: %s\n", res.URL)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
