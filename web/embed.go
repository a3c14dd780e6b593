// Package web embeds the page templates and static assets so the binary
// serves the site without runtime filesystem paths.
package web

import "embed"

//go:embed templates/*.html static
var ContentFS embed.FS
