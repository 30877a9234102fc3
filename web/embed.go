// Package web holds the HTML templates rendered by the todo pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// ParseTemplates parses every page template. Templates are named by file
// name, e.g. "index.html".
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
