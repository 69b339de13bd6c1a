package view

// HomePage backs the landing page: featured strip + category tiles.
type HomePage struct {
	Title      string
	Featured   []ProductCard
	Categories []CategoryTile
	Flash      *Flash
}

type CategoryTile struct {
	Name        string
	Icon        string
	Description string
	Path        string
}

type BlogIndex struct {
	Title string
	Posts []BlogCard
	Flash *Flash
}

type BlogCard struct {
	Title    string
	Excerpt  string
	Image    string
	Author   string
	Date     string
	ReadTime string
	Category string
	Path     string
}

type BlogPostPage struct {
	Title      string
	Post       BlogCard
	Paragraphs []string
	Flash      *Flash
}

// SimplePage backs static pages (about, privacy, terms, not-found).
type SimplePage struct {
	Title   string
	Message string
	Flash   *Flash
}

// ContactPage carries form state back on validation failure.
type ContactPage struct {
	Title   string
	Name    string
	Email   string
	Message string
	Errors  map[string]string
	Flash   *Flash
}

// ErrorPage backs the shared error template.
type ErrorPage struct {
	Title     string
	Status    int
	Message   string
	RequestID string
	RetryPath string
	Flash     *Flash
}
