package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// SiteConfig represents the site.json configuration for head tags, site
// identity and the static copy around the webinar grid
type SiteConfig struct {
	Site  SiteIdentity `json:"site"`
	Meta  MetaConfig   `json:"meta"`
	Links LinksConfig  `json:"links"`
	Page  PageConfig   `json:"page"`

	version string
}

// SiteIdentity contains site-wide identity information
type SiteIdentity struct {
	Name        string `json:"name"`
	TitleFormat string `json:"titleFormat"` // e.g., "{title} - {siteName}"
	Description string `json:"description"`
	BaseURL     string `json:"baseURL"` // absolute origin used in share links
}

// MetaConfig contains meta tag configurations
type MetaConfig struct {
	ThemeColor string `json:"themeColor"`
}

// LinksConfig contains link tags
type LinksConfig struct {
	Favicon    string `json:"favicon"`
	Stylesheet string `json:"stylesheet"`
}

// PageConfig holds the listing page header and call-to-action copy
type PageConfig struct {
	Heading    string    `json:"heading"`
	Subtitle   string    `json:"subtitle"`
	RatingText string    `json:"ratingText"`
	CTA        CTAConfig `json:"cta"`
}

// CTAConfig is the "can't find what you're looking for" block
type CTAConfig struct {
	Heading          string `json:"heading"`
	Text             string `json:"text"`
	RequestTopicHref string `json:"requestTopicHref"`
	ConsultationHref string `json:"consultationHref"`
}

var (
	siteConfig     *SiteConfig
	siteConfigMu   sync.RWMutex
	siteConfigOnce sync.Once
)

// GetSiteConfig returns the current site configuration (thread-safe)
func GetSiteConfig() *SiteConfig {
	siteConfigOnce.Do(func() {
		siteConfigMu.Lock()
		defer siteConfigMu.Unlock()
		if siteConfig == nil {
			c, err := loadSiteConfigFromFile()
			if err != nil {
				slog.Error("invalid site config, using defaults", "error", err)
			}
			siteConfig = c
		}
	})

	siteConfigMu.RLock()
	defer siteConfigMu.RUnlock()
	return siteConfig
}

// ReloadSiteConfig reloads the configuration from file. A file that cannot
// be read or parsed leaves the current configuration in place.
func ReloadSiteConfig() error {
	newConfig, err := loadSiteConfigFromFile()
	if err != nil {
		return err
	}
	siteConfigOnce.Do(func() {})
	siteConfigMu.Lock()
	defer siteConfigMu.Unlock()
	siteConfig = newConfig
	slog.Info("site configuration reloaded", "version", newConfig.Version())
	return nil
}

// loadSiteConfigFromFile always returns a usable config. A missing file
// yields the defaults; an unreadable or malformed one yields the defaults
// plus the error.
func loadSiteConfigFromFile() (*SiteConfig, error) {
	configPath := os.Getenv("SITE_CONFIG")
	if configPath == "" {
		configPath = "config/site.json"
	}

	config := getDefaultSiteConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("site config file not found, using defaults", "path", configPath)
			return finalizeSiteConfig(config), nil
		}
		return finalizeSiteConfig(config), fmt.Errorf("could not read %s: %w", configPath, err)
	}

	// Unmarshal over the defaults so a partial file only overrides what it names
	if err := json.Unmarshal(data, config); err != nil {
		return finalizeSiteConfig(getDefaultSiteConfig()), fmt.Errorf("invalid JSON in %s: %w", configPath, err)
	}

	slog.Info("loaded site configuration", "name", config.Site.Name, "path", configPath)
	return finalizeSiteConfig(config), nil
}

// finalizeSiteConfig applies environment overrides and stamps the version
func finalizeSiteConfig(c *SiteConfig) *SiteConfig {
	if base := os.Getenv("BASE_URL"); base != "" {
		c.Site.BaseURL = base
	}
	c.Site.BaseURL = strings.TrimSuffix(c.Site.BaseURL, "/")
	c.version = contentVersion(c)
	return c
}

// Version is a short hash of the effective configuration. Two processes
// loading the same file agree on it.
func (c *SiteConfig) Version() string {
	if c.version == "" {
		return contentVersion(c)
	}
	return c.version
}

// contentVersion hashes the JSON encoding of v
func contentVersion(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// getDefaultSiteConfig returns the embedded default configuration
func getDefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Site: SiteIdentity{
			Name:        "Little Steps",
			TitleFormat: "{title} - {siteName}",
			Description: "Live webinars with pediatricians and child care specialists",
			BaseURL:     "http://localhost:8080",
		},
		Meta: MetaConfig{
			ThemeColor: "#2563eb",
		},
		Links: LinksConfig{
			Favicon:    "/static/favicon.ico",
			Stylesheet: "/static/style.css",
		},
		Page: PageConfig{
			Heading:    "Live Webinars",
			Subtitle:   "Join our expert pediatricians and child care specialists for live sessions designed to support you on your parenting journey",
			RatingText: "4.9/5 Average Rating",
			CTA: CTAConfig{
				Heading:          "Can't find what you're looking for?",
				Text:             "Our experts are here to help. Schedule a personalized consultation or request a specific topic for our next webinar.",
				RequestTopicHref: "#",
				ConsultationHref: "#",
			},
		},
	}
}

// FormatTitle formats a page title using the configured format
func (c *SiteConfig) FormatTitle(title string) string {
	result := c.Site.TitleFormat
	result = strings.ReplaceAll(result, "{title}", title)
	result = strings.ReplaceAll(result, "{siteName}", c.Site.Name)
	return result
}

// AbsoluteURL joins path onto the configured base URL
func (c *SiteConfig) AbsoluteURL(path string) string {
	return c.Site.BaseURL + path
}
