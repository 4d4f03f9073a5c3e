package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"webinar-server/internal/cache"
	"webinar-server/internal/config"
	"webinar-server/internal/webinar"
)

// setupTestServer installs catalog, a fresh memory cache and compiled
// templates, and restores the previous globals when the test ends.
func setupTestServer(t *testing.T, catalog *webinar.Catalog) http.Handler {
	t.Helper()

	prevCatalog := activeCatalog.Load()
	prevBackend, prevType, prevConfig := cacheBackend, cacheBackendType, cacheConfig
	prevViewer := detailsViewer
	prevTemplate := cachedWebinarsTemplate

	mem := cache.NewMemoryCache(100, time.Minute)
	activeCatalog.Store(catalog)
	cacheBackend = mem
	cacheBackendType = "memory"
	cacheConfig = cache.DefaultConfig()

	tmpl, err := parseWebinarsTemplate()
	if err != nil {
		t.Fatalf("parseWebinarsTemplate() failed: %v", err)
	}
	cachedWebinarsTemplate = tmpl

	t.Cleanup(func() {
		mem.Close()
		activeCatalog.Store(prevCatalog)
		cacheBackend, cacheBackendType, cacheConfig = prevBackend, prevType, prevConfig
		detailsViewer = prevViewer
		cachedWebinarsTemplate = prevTemplate
	})

	return newRouter()
}

func mustCatalog(t *testing.T, list []webinar.Webinar) *webinar.Catalog {
	t.Helper()
	c, err := webinar.NewCatalog(list)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

func doRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseHTML(t *testing.T, body []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

// useSiteConfig loads a site config file with the given JSON, the way a
// freshly started process would, and restores the previous file afterwards.
func useSiteConfig(t *testing.T, data string) {
	t.Helper()
	// Registered before Setenv so it runs after the variable is restored.
	t.Cleanup(func() { config.ReloadSiteConfig() })

	path := filepath.Join(t.TempDir(), "site.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SITE_CONFIG", path)
	if err := config.ReloadSiteConfig(); err != nil {
		t.Fatalf("ReloadSiteConfig() failed: %v", err)
	}
}
