package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"webinar-server/internal/webinar"
)

// detailsViewer handles the "View Details" action
var detailsViewer webinar.DetailsViewer = webinar.NewLogDetailsViewer(nil)

// isHypermediaRequest reports whether the request came from the
// hypermedia client (partial swaps) rather than a plain browser navigation
func isHypermediaRequest(r *http.Request) bool {
	return r.Header.Get("H-Request") == "true"
}

func wantsSiren(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/vnd.siren+json") || strings.Contains(accept, "application/json")
}

// webinarsHandler serves the listing as HTML, an HTML fragment, or Siren JSON
func webinarsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Vary", "Accept, H-Request")
	catalog := currentCatalog()

	if wantsSiren(r) {
		w.Header().Set("Content-Type", "application/vnd.siren+json")
		if err := json.NewEncoder(w).Encode(toSirenWebinars(catalog)); err != nil {
			slog.ErrorContext(r.Context(), "failed to encode siren response", "error", err)
		}
		return
	}

	entry := "base"
	if isHypermediaRequest(r) {
		entry = "fragment"
	}

	version := pageVersion(catalog)
	etag := pageETag(version, entry)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	page, err := webinarsPage(r.Context(), catalog, version, entry)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to render webinars page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// parseWebinarID resolves the {id} path value against the active catalog
func parseWebinarID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid webinar ID", http.StatusBadRequest)
		return 0, false
	}
	if _, ok := currentCatalog().Get(id); !ok {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// webinarDetailsHandler handles the card's "View Details" form post
func webinarDetailsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseWebinarID(w, r)
	if !ok {
		return
	}

	detailsViewer.ViewDetails(r.Context(), id)
	detailViewsTotal.Add(1)

	if isHypermediaRequest(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/webinars#webinar-%d", id), http.StatusSeeOther)
}

// webinarQRHandler serves the PNG QR code for a webinar's share link
func webinarQRHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseWebinarID(w, r)
	if !ok {
		return
	}

	png, err := webinarQRCode(r.Context(), id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}

// adminReloadHandler swaps in a freshly loaded catalog and config
func adminReloadHandler(w http.ResponseWriter, r *http.Request) {
	c, err := reloadAll(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "reload rejected", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	slog.InfoContext(r.Context(), "catalog reloaded", "webinars", c.Len(), "version", c.Version())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "ok",
		"webinars": c.Len(),
		"version":  c.Version(),
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
