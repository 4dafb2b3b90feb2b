// internal/app/system/flash/flash.go
//
// Package flash carries one-shot banners across the POST/redirect/GET hop
// in a signed cookie session.
package flash

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/hrmslite/internal/app/system/htmlsanitize"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants & globals                                                |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "hrmslite-flash"

	successKey = "flash_success"
	errorKey   = "flash_error"
)

// Store is initialised once via InitStore.
var Store *sessions.CookieStore

// sessionName is the cookie name used by Store.
var sessionName = DefaultSessionName

/*─────────────────────────────────────────────────────────────────────────────*
| Banners                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// Banners is what a page shows above its content. Both fields are already
// sanitized for direct use in templates.
type Banners struct {
	Success template.HTML
	Error   template.HTML
}

// Any reports whether there is a banner to show.
func (b Banners) Any() bool { return b.Success != "" || b.Error != "" }

// Success queues msg as the success banner for the next page render.
func Success(w http.ResponseWriter, r *http.Request, msg string) {
	add(w, r, successKey, msg)
}

// Error queues msg as the error banner for the next page render.
func Error(w http.ResponseWriter, r *http.Request, msg string) {
	add(w, r, errorKey, msg)
}

// Pop consumes any queued banners. When the store is not initialised, or
// the cookie cannot be decoded, it returns no banners.
func Pop(w http.ResponseWriter, r *http.Request) Banners {
	if Store == nil {
		return Banners{}
	}
	sess, err := Store.Get(r, sessionName)
	if err != nil {
		return Banners{}
	}
	success := last(sess.Flashes(successKey))
	failure := last(sess.Flashes(errorKey))
	if success == "" && failure == "" {
		return Banners{}
	}
	if err := sess.Save(r, w); err != nil {
		zap.L().Warn("flash session save failed", zap.Error(err))
	}
	return Banners{
		Success: htmlsanitize.TextToHTML(success),
		Error:   htmlsanitize.TextToHTML(failure),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Store setup                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// InitStore initializes the global Store. The secure flag controls the
// Secure attribute on the cookie. Use false for local http.
func InitStore(sessionKey, name string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	Store = store
	sessionName = name

	logger.Info("flash store initialized",
		zap.Bool("secure", secure),
		zap.String("cookie", name))
	return nil
}

// helpers

func add(w http.ResponseWriter, r *http.Request, key, msg string) {
	if Store == nil || msg == "" {
		return
	}
	// A tampered or stale cookie yields a fresh session and an error; the
	// fresh session is still usable.
	sess, _ := Store.Get(r, sessionName)
	sess.AddFlash(msg, key)
	if err := sess.Save(r, w); err != nil {
		zap.L().Warn("flash session save failed", zap.Error(err))
	}
}

// last returns the newest string flash, or "".
func last(vals []any) string {
	for i := len(vals) - 1; i >= 0; i-- {
		if s, ok := vals[i].(string); ok {
			return s
		}
	}
	return ""
}
