package main

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"webinar-server/internal/config"
	"webinar-server/internal/webinar"
	"webinar-server/templates"
)

// WebinarsPageData is the view model for the listing page
type WebinarsPageData struct {
	Title         string
	CanonicalURL  string
	ParentsJoined string
	Webinars      []webinar.Webinar
}

var cachedWebinarsTemplate *template.Template

var templateFuncs = template.FuncMap{
	"siteConfig": config.GetSiteConfig,
	"i18n":       config.I18n,
	"topicColor": webinar.TopicColor,
	"formatDate": webinar.DisplayDate,
}

// initTemplates compiles the page templates once at startup
func initTemplates() {
	tmpl, err := parseWebinarsTemplate()
	if err != nil {
		slog.Error("failed to compile webinars template", "error", err)
		os.Exit(1)
	}
	cachedWebinarsTemplate = tmpl
	slog.Info("templates compiled successfully")
}

// webinarsTemplateSource is every template the listing page is built from
var webinarsTemplateSource = templates.GetBaseTemplates() + templates.GetFragmentTemplate() + templates.GetWebinarsTemplate()

// templateFingerprint changes whenever the template text does, so a new
// build never reuses pages rendered by an old one
var templateFingerprint = shortHash(webinarsTemplateSource)

func parseWebinarsTemplate() (*template.Template, error) {
	return template.New("webinars").Funcs(templateFuncs).Parse(webinarsTemplateSource)
}

func shortHash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

var englishPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators ("2,371")
func formatCount(n int) string {
	return englishPrinter.Sprintf("%d", n)
}

func buildWebinarsPageData(c *webinar.Catalog) WebinarsPageData {
	site := config.GetSiteConfig()
	return WebinarsPageData{
		Title:         site.Page.Heading,
		CanonicalURL:  site.AbsoluteURL("/webinars"),
		ParentsJoined: formatCount(c.TotalRegistrations()),
		Webinars:      c.Webinars(),
	}
}

// renderWebinarsHTML executes the listing template. entry is "base" for a
// full document or "fragment" for a hypermedia partial.
func renderWebinarsHTML(c *webinar.Catalog, entry string) ([]byte, error) {
	var buf bytes.Buffer
	if err := cachedWebinarsTemplate.ExecuteTemplate(&buf, entry, buildWebinarsPageData(c)); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", entry, err)
	}
	pageRendersTotal.Add(1)
	return buf.Bytes(), nil
}

// pageVersion identifies a rendered page by everything it is built from:
// the catalog, site config, i18n strings and templates. Instances sharing
// a Redis cache derive the same version from the same inputs.
func pageVersion(c *webinar.Catalog) string {
	return shortHash(c.Version(), config.GetSiteConfig().Version(), config.I18nVersion(), templateFingerprint)
}

func pageCacheKey(version, entry string) string {
	return "page:" + version + ":" + entry
}

func pageETag(version, entry string) string {
	return fmt.Sprintf(`"%s-%s"`, version, entry)
}

// webinarsPage returns the rendered listing, from cache when possible.
// Concurrent misses for the same key share one render.
func webinarsPage(ctx context.Context, c *webinar.Catalog, version, entry string) ([]byte, error) {
	key := pageCacheKey(version, entry)
	if data, ok := cacheGet(ctx, key); ok {
		return data, nil
	}

	result, err, shared := pageRenderGroup.Do(key, func() (interface{}, error) {
		data, err := renderWebinarsHTML(c, entry)
		if err != nil {
			return nil, err
		}
		cacheSet(ctx, key, data, cacheConfig.PageTTL)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.DebugContext(ctx, "singleflight: shared page render", "key", key)
	}
	return result.([]byte), nil
}
