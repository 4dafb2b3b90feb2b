// internal/app/apiclient/errors.go
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx answer from the backend.
type Error struct {
	Op     string // e.g. "create employee"
	Status int
	Detail string // server-supplied "detail", may be empty
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %d %s: %s", e.Op, e.Status, http.StatusText(e.Status), e.Detail)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Message returns the server's detail for err when present, otherwise fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	return fallback
}

// parseDetail extracts "detail" from an error body. FastAPI validation
// failures carry a list of {"msg": ...} objects instead of a string.
func parseDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
