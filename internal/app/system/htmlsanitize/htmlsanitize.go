// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every tag and escapes what is left, so backend-supplied text
// can sit inside a template.HTML banner.
var strict = bluemonday.StrictPolicy()

// Text strips all markup from s and returns the escaped remainder.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextToHTML is Text typed for direct use in templates.
func TextToHTML(s string) template.HTML {
	return template.HTML(Text(s))
}
