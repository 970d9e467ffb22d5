package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pharmapath/backend/internal/storage"
)

// BrochureHandler serves the company brochure download. The frontend probes
// with a HEAD request before triggering the download link, so a missing
// asset never produces a broken download.
type BrochureHandler struct {
	store    storage.Storage
	key      string
	filename string
}

// NewBrochureHandler creates a BrochureHandler for the asset at key.
func NewBrochureHandler(store storage.Storage, key string) *BrochureHandler {
	return &BrochureHandler{store: store, key: key, filename: key}
}

// Probe handles HEAD /api/brochure — the existence check.
func (h *BrochureHandler) Probe(w http.ResponseWriter, r *http.Request) {
	ok, err := h.store.Exists(r.Context(), h.key)
	if err != nil {
		slog.Error("brochure existence check failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
}

// Download handles GET /api/brochure and streams the file as an attachment.
func (h *BrochureHandler) Download(w http.ResponseWriter, r *http.Request) {
	ok, err := h.store.Exists(r.Context(), h.key)
	if err != nil {
		slog.Error("brochure existence check failed", "error", err)
		writeError(w, http.StatusInternalServerError, "download_failed")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "brochure_not_found")
		return
	}

	f, size, err := h.store.Open(r.Context(), h.key)
	if err != nil {
		slog.Error("brochure open failed", "error", err)
		writeError(w, http.StatusInternalServerError, "download_failed")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.Header().Set("Content-Disposition", `attachment; filename="`+h.filename+`"`)
	if _, err := io.Copy(w, f); err != nil {
		slog.Warn("brochure stream interrupted", "error", err)
	}
}
