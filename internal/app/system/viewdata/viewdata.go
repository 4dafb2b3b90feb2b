// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/hrmslite/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown in the navbar and page titles.
const DefaultSiteName = "HRMS Lite"

// DefaultBannerDismiss is how long a banner stays before the page script removes it.
const DefaultBannerDismiss = 3 * time.Second

// NavItem is one navbar link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	data := listData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Employees", "/"),
//	}
type BaseVM struct {
	SiteName string
	Nav      []NavItem

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string
	CSRFField template.HTML

	// One-shot banners from the previous request, and how long they stay.
	Flash     flash.Banners
	DismissMS int64
}

var (
	mu            sync.RWMutex
	siteName      = DefaultSiteName
	bannerDismiss = DefaultBannerDismiss
)

// Init sets the site name and banner dismiss delay. Call once at startup.
// Empty or non-positive values keep the defaults.
func Init(name string, dismiss time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		siteName = name
	}
	if dismiss > 0 {
		bannerDismiss = dismiss
	}
}

// NewBaseVM creates a fully populated BaseVM for a page. It consumes any
// queued flash banners, so call it once per render.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	name, dismiss := siteName, bannerDismiss
	mu.RUnlock()

	current := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    name,
		Nav:         Nav(r.URL.Path),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		CSRFToken:   csrf.Token(r),
		CSRFField:   csrf.TemplateField(r),
		Flash:       flash.Pop(w, r),
		DismissMS:   dismiss.Milliseconds(),
	}
}

// Nav builds the navbar with the section containing path marked active.
func Nav(path string) []NavItem {
	items := []NavItem{
		{Label: "Dashboard", Href: "/"},
		{Label: "Employees", Href: "/employees"},
		{Label: "Attendance", Href: "/attendance"},
	}
	for i := range items {
		href := items[i].Href
		if href == "/" {
			items[i].Active = path == "/"
			continue
		}
		items[i].Active = path == href || len(path) > len(href) && path[:len(href)+1] == href+"/"
	}
	return items
}
