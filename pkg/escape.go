package pkg

import "strings"

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// EscapeHTML makes arbitrary text safe to embed in HTML element content
// and quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
