package api

import (
	_ "embed"
	"net/http"
)

// The browser front end is a single static page that drives the JSON API
// from the client side, so it ships embedded in the binary.
//
//go:embed index.html
var indexHTML []byte

// Index handles GET / requests, serving the web interface for interactive
// prompt generation.
func (h *PromptHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		h.logger.Error("Failed to write index page", "error", err)
	}
}
