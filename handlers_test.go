package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"webinar-server/internal/webinar"
)

func TestWebinarsPageRendersCardsInOrder(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	doc := parseHTML(t, rec.Body.Bytes())
	cards := doc.Find("article.webinar-card")
	if cards.Length() != 4 {
		t.Fatalf("got %d cards, want 4", cards.Length())
	}

	wantIDs := []string{"1", "2", "3", "4"}
	wantRegs := []string{"847 registered", "623 registered", "512 registered", "389 registered"}
	wantPopular := []bool{true, false, false, false}

	cards.Each(func(i int, card *goquery.Selection) {
		if id, _ := card.Attr("data-webinar-id"); id != wantIDs[i] {
			t.Errorf("card %d: id = %q, want %q", i, id, wantIDs[i])
		}
		if got := strings.TrimSpace(card.Find(".webinar-registrations").Text()); got != wantRegs[i] {
			t.Errorf("card %d: registrations = %q, want %q", i, got, wantRegs[i])
		}
		hasPopular := card.Find(".badge-popular").Length() == 1
		if hasPopular != wantPopular[i] {
			t.Errorf("card %d: popular badge = %v, want %v", i, hasPopular, wantPopular[i])
		}
	})
}

func TestWebinarCardContent(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	doc := parseHTML(t, rec.Body.Bytes())
	card := doc.Find("#webinar-1")

	if got := strings.TrimSpace(card.Find(".webinar-title").Text()); got != "Essential Newborn Care: First 30 Days" {
		t.Errorf("title = %q", got)
	}
	badge := card.Find(".badge-topic")
	if got := strings.TrimSpace(badge.Text()); got != "Newborn Care" {
		t.Errorf("topic badge text = %q", got)
	}
	class, _ := badge.Attr("class")
	if !strings.Contains(class, "bg-blue-100 text-blue-800 border-blue-200") {
		t.Errorf("topic badge class = %q, want blue style", class)
	}
	if got := strings.TrimSpace(card.Find(".webinar-date").Text()); got != "Monday, January 15, 2024" {
		t.Errorf("date = %q", got)
	}
	if got := strings.TrimSpace(card.Find(".webinar-time").Text()); got != "7:00 PM • 45 mins" {
		t.Errorf("time = %q", got)
	}
	if got := strings.TrimSpace(card.Find(".webinar-speaker").Text()); got != "Dr. Sumitra Meena" {
		t.Errorf("speaker = %q", got)
	}
	if !strings.Contains(card.Find(".webinar-description").Text(), "crucial first month") {
		t.Error("description missing")
	}
	if action, _ := card.Find("form.details-form").Attr("action"); action != "/webinars/1/details" {
		t.Errorf("details form action = %q", action)
	}

	sleep := doc.Find("#webinar-3 .badge-topic")
	if class, _ := sleep.Attr("class"); !strings.Contains(class, "bg-purple-100") {
		t.Errorf("sleep badge class = %q", class)
	}
}

func TestWebinarsPageHeaderAndCTA(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	doc := parseHTML(t, rec.Body.Bytes())

	if got := strings.TrimSpace(doc.Find(".page-title").Text()); !strings.Contains(got, "Live Webinars") {
		t.Errorf("page title = %q", got)
	}
	if got := doc.Find(".stat-joined").Text(); !strings.Contains(got, "2,371 Parents Joined") {
		t.Errorf("joined stat = %q", got)
	}
	if doc.Find(".cta .btn").Length() != 2 {
		t.Error("expected two call-to-action buttons")
	}
}

func TestUnknownTopicGetsDefaultStyle(t *testing.T) {
	h := setupTestServer(t, mustCatalog(t, []webinar.Webinar{
		{ID: 9, Title: "Vaccines 101", Date: "2024-02-01", Topic: "Vaccines"},
	}))

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	doc := parseHTML(t, rec.Body.Bytes())
	class, _ := doc.Find("#webinar-9 .badge-topic").Attr("class")
	if !strings.Contains(class, webinar.DefaultTopicStyle) {
		t.Errorf("badge class = %q, want default style", class)
	}
}

func TestEmptyCatalogRendersZeroCards(t *testing.T) {
	h := setupTestServer(t, mustCatalog(t, nil))

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	doc := parseHTML(t, rec.Body.Bytes())
	if n := doc.Find("article.webinar-card").Length(); n != 0 {
		t.Errorf("got %d cards, want 0", n)
	}
	if doc.Find(".empty-state").Length() != 1 {
		t.Error("expected empty state message")
	}
}

func TestWebinarsFragment(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	req := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	req.Header.Set("H-Request", "true")
	rec := doRequest(h, req)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("fragment should not contain the document wrapper")
	}
	if n := parseHTML(t, rec.Body.Bytes()).Find("article.webinar-card").Length(); n != 4 {
		t.Errorf("got %d cards in fragment, want 4", n)
	}
}

func TestWebinarsPageIsCached(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	first := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	renders := pageRendersTotal.Load()
	second := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))

	if pageRendersTotal.Load() != renders {
		t.Error("second request should be served from cache")
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached page differs from rendered page")
	}
}

func TestWebinarsPageFollowsSiteConfig(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	first := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	if got := parseHTML(t, first.Body.Bytes()).Find("h1.page-title").Text(); !strings.Contains(got, "Live Webinars") {
		t.Fatalf("heading = %q, want default", got)
	}

	// Same catalog, same cache backend, different site config.
	useSiteConfig(t, `{"page": {"heading": "Upcoming Sessions"}}`)

	second := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	got := parseHTML(t, second.Body.Bytes()).Find("h1.page-title").Text()
	if !strings.Contains(got, "Upcoming Sessions") {
		t.Errorf("heading = %q, want the new heading", got)
	}
	if first.Header().Get("ETag") == second.Header().Get("ETag") {
		t.Error("ETag should change with the site config")
	}
}

func TestPageVersionIsStable(t *testing.T) {
	a := pageVersion(webinar.DefaultCatalog())
	b := pageVersion(webinar.DefaultCatalog())
	if a != b {
		t.Errorf("pageVersion differs for identical inputs: %s vs %s", a, b)
	}
	other := pageVersion(mustCatalog(t, []webinar.Webinar{{ID: 9, Date: "2024-05-01"}}))
	if a == other {
		t.Error("pageVersion should change with the catalog")
	}
}

func TestWebinarsConditionalGet(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	first := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	req.Header.Set("If-None-Match", etag)
	rec := doRequest(h, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 carried a %d byte body", rec.Body.Len())
	}

	frag := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	frag.Header.Set("H-Request", "true")
	frag.Header.Set("If-None-Match", etag)
	rec = doRequest(h, frag)
	if rec.Code != http.StatusOK {
		t.Errorf("fragment with the full page's ETag: status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("ETag") == etag {
		t.Error("fragment and full page share an ETag")
	}

	stale := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	stale.Header.Set("If-None-Match", `"stale-base"`)
	if rec := doRequest(h, stale); rec.Code != http.StatusOK {
		t.Errorf("stale ETag: status = %d, want 200", rec.Code)
	}
}

func TestWebinarsSiren(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	req := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	req.Header.Set("Accept", "application/vnd.siren+json")
	rec := doRequest(h, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.siren+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var entity SirenEntity
	if err := json.Unmarshal(rec.Body.Bytes(), &entity); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entity.Entities) != 4 {
		t.Fatalf("got %d entities, want 4", len(entity.Entities))
	}

	first := entity.Entities[0]
	if first.Properties["formatted_date"] != "Monday, January 15, 2024" {
		t.Errorf("formatted_date = %v", first.Properties["formatted_date"])
	}
	if first.Properties["topic_style"] != "bg-blue-100 text-blue-800 border-blue-200" {
		t.Errorf("topic_style = %v", first.Properties["topic_style"])
	}
	if len(first.Actions) != 1 || first.Actions[0].Href != "/webinars/1/details" || first.Actions[0].Method != "POST" {
		t.Errorf("unexpected actions: %+v", first.Actions)
	}
}

func captureDetails(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	detailsViewer = webinar.NewLogDetailsViewer(newLogger(&buf, "info"))
	return &buf
}

func TestWebinarDetailsLogsOnce(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())
	buf := captureDetails(t)
	before := detailViewsTotal.Load()

	rec := doRequest(h, httptest.NewRequest(http.MethodPost, "/webinars/2/details", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/webinars#webinar-2" {
		t.Errorf("Location = %q", loc)
	}

	var records []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line: %v", err)
		}
		records = append(records, entry)
	}
	if len(records) != 1 {
		t.Fatalf("got %d log records, want 1", len(records))
	}
	if records[0]["msg"] != "Viewing details for webinar ID: 2" {
		t.Errorf("msg = %v", records[0]["msg"])
	}
	if records[0]["request_id"] == nil || records[0]["request_id"] == "" {
		t.Error("details record should carry the request ID")
	}
	if got := detailViewsTotal.Load() - before; got != 1 {
		t.Errorf("detail views counted %d times, want 1", got)
	}
}

func TestWebinarDetailsHypermedia(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())
	captureDetails(t)

	req := httptest.NewRequest(http.MethodPost, "/webinars/4/details", nil)
	req.Header.Set("H-Request", "true")
	rec := doRequest(h, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestWebinarDetailsErrors(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())
	buf := captureDetails(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown id", http.MethodPost, "/webinars/99/details", http.StatusNotFound},
		{"non-numeric id", http.MethodPost, "/webinars/abc/details", http.StatusBadRequest},
		{"wrong method", http.MethodGet, "/webinars/2/details", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	if buf.Len() != 0 {
		t.Errorf("rejected requests must not log details: %s", buf.String())
	}
}

func TestWebinarQRCode(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars/1/qr.png", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("body is not a PNG")
	}

	hits := cacheHitsTotal.Load()
	doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars/1/qr.png", nil))
	if cacheHitsTotal.Load() != hits+1 {
		t.Error("second QR request should hit the cache")
	}

	if rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars/42/qr.png", nil)); rec.Code != http.StatusNotFound {
		t.Errorf("unknown webinar QR status = %d, want 404", rec.Code)
	}
}

func TestRootRedirects(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/webinars" {
		t.Errorf("got %d %q, want 302 /webinars", rec.Code, rec.Header().Get("Location"))
	}
}

func TestMetricsAndHealth(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{"webinars_detail_views_total", "webinars_catalog_size{version=", "cache_hit_ratio", `cache_backend="memory"`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}

	rec = doRequest(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("health body = %q", rec.Body.String())
	}
}

func TestSecurityHeadersOnPages(t *testing.T) {
	h := setupTestServer(t, webinar.DefaultCatalog())

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/webinars", nil))
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}
