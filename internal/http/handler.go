package http

import (
	"encoding/json"
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHandlerFunc adapts a plain function to AppHttpHandler.
type AppHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// writeJSON encodes body with the given status. Dashboard reads are polled,
// so responses are marked uncacheable.
func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(headerCacheControl, "no-store")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
