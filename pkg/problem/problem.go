// Package problem writes RFC 7807 Problem Details responses.
package problem

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const ContentType = "application/problem+json"

// Detail is an RFC 7807 problem body.
type Detail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	// RequestID echoes the X-Request-ID header of the failed request.
	RequestID string `json:"requestId,omitempty"`
}

func (d *Detail) Error() string {
	if d.Detail == "" {
		return d.Title
	}
	return fmt.Sprintf("%s: %s", d.Title, d.Detail)
}

// Write sends d, filling in the instance and request id from r.
func Write(w http.ResponseWriter, r *http.Request, d Detail) {
	if d.Type == "" {
		d.Type = "about:blank"
	}
	if d.Title == "" {
		d.Title = http.StatusText(d.Status)
	}
	if r != nil {
		if d.Instance == "" {
			d.Instance = r.URL.Path
		}
		if d.RequestID == "" {
			d.RequestID = w.Header().Get("X-Request-ID")
		}
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(d.Status)
	_ = json.NewEncoder(w).Encode(d)
}

// NotFound writes a 404 problem of the given type URI.
func NotFound(w http.ResponseWriter, r *http.Request, typ, title string) {
	Write(w, r, Detail{Type: typ, Title: title, Status: http.StatusNotFound})
}

// Internal writes a generic 500. err is logged, never sent to the client.
func Internal(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.ErrorContext(r.Context(), "internal server error", "err", err)
	Write(w, r, Detail{
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred.",
	})
}
