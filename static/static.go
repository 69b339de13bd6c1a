// Package static embeds the site's public assets.
package static

import "embed"

//go:embed site.css placeholder.svg
var Files embed.FS
