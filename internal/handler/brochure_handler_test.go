package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pharmapath/backend/internal/storage"
)

const brochureKey = "pharmapath-brochure.pdf"

func brochureStore(t *testing.T, withFile bool) storage.Storage {
	t.Helper()
	dir := t.TempDir()
	if withFile {
		if err := os.WriteFile(filepath.Join(dir, brochureKey), []byte("%PDF-1.4 test"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return storage.NewLocalStorage(dir, "/assets")
}

func TestBrochureHandler_Probe_Available(t *testing.T) {
	h := NewBrochureHandler(brochureStore(t, true), brochureKey)

	req := httptest.NewRequest(http.MethodHead, "/api/brochure", nil)
	rec := httptest.NewRecorder()
	h.Probe(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBrochureHandler_Probe_Missing(t *testing.T) {
	h := NewBrochureHandler(brochureStore(t, false), brochureKey)

	req := httptest.NewRequest(http.MethodHead, "/api/brochure", nil)
	rec := httptest.NewRecorder()
	h.Probe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestBrochureHandler_Download_StreamsAttachment(t *testing.T) {
	h := NewBrochureHandler(brochureStore(t, true), brochureKey)

	req := httptest.NewRequest(http.MethodGet, "/api/brochure", nil)
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, brochureKey) {
		t.Errorf("expected attachment disposition with filename, got %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected PDF content type, got %q", got)
	}
	if rec.Body.String() != "%PDF-1.4 test" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestBrochureHandler_Download_Missing(t *testing.T) {
	h := NewBrochureHandler(brochureStore(t, false), brochureKey)

	req := httptest.NewRequest(http.MethodGet, "/api/brochure", nil)
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
