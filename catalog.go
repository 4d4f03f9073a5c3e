package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"webinar-server/internal/config"
	"webinar-server/internal/webinar"
)

var activeCatalog atomic.Pointer[webinar.Catalog]

// pageEntries are the page variants kept in the page cache
var pageEntries = []string{"base", "fragment"}

func currentCatalog() *webinar.Catalog {
	if c := activeCatalog.Load(); c != nil {
		return c
	}
	return webinar.DefaultCatalog()
}

// loadCatalogFromEnv loads WEBINARS_FILE, or the built-in listing when unset.
func loadCatalogFromEnv() (*webinar.Catalog, error) {
	path := os.Getenv("WEBINARS_FILE")
	if path == "" {
		slog.Info("WEBINARS_FILE not set, using built-in webinars")
		return webinar.DefaultCatalog(), nil
	}

	c, err := webinar.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded webinar catalog", "path", path, "webinars", c.Len(), "version", c.Version())
	return c, nil
}

// reloadAll re-reads the catalog, site config and i18n strings. The old
// catalog stays active if the new one fails validation. Cached pages built
// from the superseded inputs are dropped.
func reloadAll(ctx context.Context) (*webinar.Catalog, error) {
	c, err := loadCatalogFromEnv()
	if err != nil {
		return nil, fmt.Errorf("catalog reload failed: %w", err)
	}
	oldVersion := pageVersion(currentCatalog())
	activeCatalog.Store(c)

	if err := config.ReloadSiteConfig(); err != nil {
		slog.WarnContext(ctx, "site config reload failed, keeping current", "error", err)
	}
	if err := config.ReloadI18nConfig(); err != nil {
		slog.DebugContext(ctx, "i18n reload skipped", "reason", err)
	}
	catalogReloadTotal.Add(1)

	if newVersion := pageVersion(c); newVersion != oldVersion {
		for _, entry := range pageEntries {
			key := pageCacheKey(oldVersion, entry)
			if err := cacheBackend.Delete(ctx, key); err != nil {
				slog.WarnContext(ctx, "failed to drop superseded page", "key", key, "error", err)
			}
		}
	}

	return c, nil
}
