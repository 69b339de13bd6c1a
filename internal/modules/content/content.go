package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nikk-inovates/Nivaaran/internal/shared/slug"
)

//go:embed data/blog.json data/categories.json
var dataFS embed.FS

// Post is an editorial blog entry. Content ships with the binary; the
// blog has no CMS behind it.
type Post struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"` // YYYY-MM-DD
	ReadTime    string `json:"readTime"`
	Category    string `json:"category"`
}

// DisplayDate renders the publish date as "Jan 2, 2006"; the raw string
// is shown if it does not parse.
func (p Post) DisplayDate() string {
	t, err := time.Parse("2006-01-02", p.PublishDate)
	if err != nil {
		return p.PublishDate
	}
	return t.Format("Jan 2, 2006")
}

// Category is one tile on the home page's "Shop by Category" section.
type Category struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// FilterValue is what goes into /products?category=.
func (c Category) FilterValue() string { return slug.FromName(c.Name) }

// Library holds all embedded editorial content, loaded once at startup.
type Library struct {
	posts      []Post
	bySlug     map[string]Post
	categories []Category
}

func Load() (*Library, error) {
	lib := &Library{bySlug: make(map[string]Post)}

	raw, err := dataFS.ReadFile("data/blog.json")
	if err != nil {
		return nil, fmt.Errorf("content: read blog.json: %w", err)
	}
	if err := json.Unmarshal(raw, &lib.posts); err != nil {
		return nil, fmt.Errorf("content: parse blog.json: %w", err)
	}
	for i := range lib.posts {
		if lib.posts[i].Slug == "" {
			lib.posts[i].Slug = slug.FromName(lib.posts[i].Title)
		}
		lib.bySlug[lib.posts[i].Slug] = lib.posts[i]
	}

	raw, err = dataFS.ReadFile("data/categories.json")
	if err != nil {
		return nil, fmt.Errorf("content: read categories.json: %w", err)
	}
	if err := json.Unmarshal(raw, &lib.categories); err != nil {
		return nil, fmt.Errorf("content: parse categories.json: %w", err)
	}

	return lib, nil
}

func (l *Library) Posts() []Post { return l.posts }

func (l *Library) PostBySlug(s string) (Post, bool) {
	p, ok := l.bySlug[s]
	return p, ok
}

func (l *Library) Categories() []Category { return l.categories }
