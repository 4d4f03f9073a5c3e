package webinar

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is an immutable, ordered snapshot of webinars. Order is the
// order of the source list; nothing sorts or filters it.
type Catalog struct {
	webinars []Webinar
	byID     map[int]int
	version  string
}

// NewCatalog validates list and returns a snapshot that owns a copy of it.
func NewCatalog(list []Webinar) (*Catalog, error) {
	c := &Catalog{
		webinars: make([]Webinar, len(list)),
		byID:     make(map[int]int, len(list)),
	}
	copy(c.webinars, list)

	for i, w := range c.webinars {
		if _, dup := c.byID[w.ID]; dup {
			return nil, &ValidationError{WebinarID: w.ID, Field: "id", Err: fmt.Errorf("duplicate id")}
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		c.byID[w.ID] = i
	}

	data, err := json.Marshal(c.webinars)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	c.version = hex.EncodeToString(sum[:8])

	return c, nil
}

// LoadCatalog reads a JSON array of webinars from path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
	}

	var list []Webinar
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("invalid JSON in catalog %s: %w", path, err)
	}

	return NewCatalog(list)
}

// Webinars returns the entries in catalog order. The slice is a copy.
func (c *Catalog) Webinars() []Webinar {
	out := make([]Webinar, len(c.webinars))
	copy(out, c.webinars)
	return out
}

func (c *Catalog) Len() int {
	return len(c.webinars)
}

// Get looks a webinar up by ID.
func (c *Catalog) Get(id int) (Webinar, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Webinar{}, false
	}
	return c.webinars[i], true
}

// TotalRegistrations sums the registration counts of every entry.
func (c *Catalog) TotalRegistrations() int {
	total := 0
	for _, w := range c.webinars {
		total += w.Registrations
	}
	return total
}

// Version is a short content hash, stable for identical catalogs.
func (c *Catalog) Version() string {
	return c.version
}

// DefaultCatalog returns the built-in listing served when no catalog file
// is configured.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultWebinars)
	if err != nil {
		panic("webinar: built-in catalog is invalid: " + err.Error())
	}
	return c
}

var defaultWebinars = []Webinar{
	{
		ID:            1,
		Title:         "Essential Newborn Care: First 30 Days",
		Speaker:       "Dr. Sumitra Meena",
		Date:          "2024-01-15",
		Time:          "7:00 PM",
		Duration:      "45 mins",
		Description:   "Learn the fundamentals of caring for your newborn during their crucial first month, including feeding, sleeping, and health monitoring.",
		Topic:         "Newborn Care",
		Registrations: 847,
		IsPopular:     true,
	},
	{
		ID:            2,
		Title:         "Breastfeeding Success: Tips from Lactation Experts",
		Speaker:       "Dr. Priya Sharma",
		Date:          "2024-01-18",
		Time:          "6:30 PM",
		Duration:      "60 mins",
		Description:   "Comprehensive guidance on establishing successful breastfeeding routines, overcoming common challenges, and ensuring proper nutrition.",
		Topic:         "Feeding",
		Registrations: 623,
	},
	{
		ID:            3,
		Title:         "Sleep Training: Gentle Methods for Better Nights",
		Speaker:       "Dr. Rajesh Kumar",
		Date:          "2024-01-22",
		Time:          "8:00 PM",
		Duration:      "50 mins",
		Description:   "Explore gentle, effective sleep training techniques that work for both baby and parents, creating healthy sleep habits early on.",
		Topic:         "Sleep",
		Registrations: 512,
	},
	{
		ID:            4,
		Title:         "Baby's First Foods: Introduction to Solids",
		Speaker:       "Dr. Sumitra Meena",
		Date:          "2024-01-25",
		Time:          "7:30 PM",
		Duration:      "55 mins",
		Description:   "Navigate the exciting journey of introducing solid foods with expert guidance on timing, safety, and nutritional considerations.",
		Topic:         "Nutrition",
		Registrations: 389,
	},
}
