// Package catalog defines the EMBER application catalog data model and the
// query operations the terminal exposes over it.
package catalog

import "strings"

// Application is a single catalog entry. The JSON field names mirror the
// document stored in the remote bin, so this type marshals directly into the
// wire shape.
type Application struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	Link        string   `json:"link,omitempty"` // empty means no external URL
	Tags        []string `json:"tags"`
}

// HasLink reports whether the application carries an external URL.
func (a Application) HasLink() bool {
	return a.Link != ""
}

// Catalog holds the in-memory copy of the remote document: the ordered
// application list plus the descriptive category labels. Insertion order is
// display order.
type Catalog struct {
	Applications []Application
	Categories   []string
}

// Append adds an application to the end of the catalog.
func (c *Catalog) Append(app Application) {
	c.Applications = append(c.Applications, app)
}

// Clear empties both the applications and the category labels.
func (c *Catalog) Clear() {
	c.Applications = nil
	c.Categories = nil
}

// Len returns the number of applications.
func (c *Catalog) Len() int {
	return len(c.Applications)
}

// ValidRating reports whether r is inside the allowed [0, 10] range.
func ValidRating(r float64) bool {
	return r >= 0 && r <= 10
}

// NormalizeTags splits a comma-separated tag line into the canonical tag
// form: trimmed, lowercased, empty segments dropped.
func NormalizeTags(raw string) []string {
	var tags []string
	for _, seg := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(seg))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
