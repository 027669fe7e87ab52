// Package static embeds the site's stylesheet.
package static

import "embed"

// Stylesheet is the name of the only asset.
const Stylesheet = "site.css"

//go:embed site.css
var FS embed.FS
