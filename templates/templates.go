// Package templates holds the server-rendered pages, embedded so the
// binary ships self-contained.
package templates

import (
	"embed"
	"html/template"
)

//go:embed pages/*.tmpl partials/*.tmpl
var files embed.FS

func New() (*template.Template, error) {
	return template.New("").ParseFS(files, "pages/*.tmpl", "partials/*.tmpl")
}
