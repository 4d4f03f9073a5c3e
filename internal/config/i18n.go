package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// I18nStrings holds all localized strings
type I18nStrings map[string]string

// defaultStrings are the built-in English labels; a language file only
// needs to carry the keys it changes.
var defaultStrings = I18nStrings{
	"badge.popular":         "Popular",
	"btn.view_details":      "View Details",
	"btn.request_topic":     "Request a Topic",
	"btn.consultation":      "Schedule Consultation",
	"label.registered":      "registered",
	"label.parents_joined":  "Parents Joined",
	"label.share":           "Share",
	"msg.no_webinars":       "No webinars are scheduled right now.",
	"a11y.skip_to_main":     "Skip to main content",
	"a11y.webinar_qr":       "QR code linking to this webinar",
	"a11y.view_details_for": "View details for",
}

var (
	i18nStrings   = copyStrings(defaultStrings)
	i18nVersion   = contentVersion(defaultStrings)
	i18nMu        sync.RWMutex
	i18nConfigDir = getEnvOrDefault("I18N_CONFIG_DIR", "config/i18n")
	defaultLang   = getEnvOrDefault("I18N_DEFAULT_LANG", "en")
)

// InitI18n initializes the i18n system. Call this during startup.
func InitI18n() {
	if err := loadI18nConfig(); err != nil {
		slog.Debug("using built-in i18n strings", "reason", err)
	}
}

func loadI18nConfig() error {
	configPath := filepath.Join(i18nConfigDir, defaultLang+".json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", configPath)
		}
		return fmt.Errorf("could not read %s: %w", configPath, err)
	}

	var overrides I18nStrings
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", configPath, err)
	}

	merged := copyStrings(defaultStrings)
	for k, v := range overrides {
		merged[k] = v
	}

	i18nMu.Lock()
	i18nStrings = merged
	i18nVersion = contentVersion(merged)
	i18nMu.Unlock()

	slog.Info("loaded i18n strings", "count", len(overrides), "path", configPath)
	return nil
}

// ReloadI18nConfig reloads the i18n configuration from disk
func ReloadI18nConfig() error {
	return loadI18nConfig()
}

// I18n looks up a localized string by key
// Returns the key itself if not found (fallback behavior)
func I18n(key string) string {
	i18nMu.RLock()
	defer i18nMu.RUnlock()

	if val, ok := i18nStrings[key]; ok {
		return val
	}
	return key
}

// I18nVersion is a short hash of the active strings
func I18nVersion() string {
	i18nMu.RLock()
	defer i18nMu.RUnlock()
	return i18nVersion
}

func copyStrings(src I18nStrings) I18nStrings {
	dst := make(I18nStrings, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
