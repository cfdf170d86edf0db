package handlers

import "strings"

// PageTitle is the browser title of the single page.
const PageTitle = "Expired .tez domains"

// RenderIndexHTML fills the placeholders in the embedded page template.
func RenderIndexHTML(templateHTML, version string) string {
	html := strings.ReplaceAll(templateHTML, "{{.Title}}", PageTitle)
	return strings.ReplaceAll(html, "{{.Version}}", version)
}
