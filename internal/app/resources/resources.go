// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// SharedSet is the set name the template engine requires for partials
// every page can use.
const SharedSet = "shared"

// FS holds the shell partials (layout_head, layout_foot) shared by every page.
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the shell partials with the template engine.
// Safe to call more than once; only the first call registers.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     SharedSet,
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
