// Package templates embeds the HTML templates and stylesheet served and
// rendered by the resume service.
package templates

import "embed"

//go:embed *.html *.css
var FS embed.FS
