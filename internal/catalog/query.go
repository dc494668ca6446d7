// Package catalog defines the EMBER application catalog data model and the
// query operations the terminal exposes over it.
// This file implements the query engine behind filter, search, show and stats.
package catalog

import "strings"

// Filter keeps applications whose tags contain the category exactly
// (case-insensitive) or whose name contains it as a substring. The name
// match is intentional: it mirrors the shipped terminal behavior, where
// `filter ember` also finds apps named "Ember*".
func Filter(apps []Application, category string) []Application {
	cat := strings.ToLower(category)
	var out []Application
	for _, app := range apps {
		if hasTag(app, cat) || strings.Contains(strings.ToLower(app.Name), cat) {
			out = append(out, app)
		}
	}
	return out
}

// Search keeps applications whose name, description, or any tag contains the
// query as a case-insensitive substring.
func Search(apps []Application, query string) []Application {
	q := strings.ToLower(query)
	var out []Application
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), q) ||
			strings.Contains(strings.ToLower(app.Description), q) ||
			anyTagContains(app, q) {
			out = append(out, app)
		}
	}
	return out
}

// Find returns the first application whose name contains the given name as a
// case-insensitive substring.
func Find(apps []Application, name string) (Application, bool) {
	n := strings.ToLower(name)
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), n) {
			return app, true
		}
	}
	return Application{}, false
}

func hasTag(app Application, tag string) bool {
	for _, t := range app.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func anyTagContains(app Application, q string) bool {
	for _, t := range app.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Stats summarizes the catalog for the stats command.
type Stats struct {
	Total      int
	Categories int
	Free       int
	Premium    int
	AvgRating  float64
}

// Summarize computes catalog statistics. AvgRating is 0 for an empty catalog.
func Summarize(apps []Application, categories []string) Stats {
	s := Stats{
		Total:      len(apps),
		Categories: len(categories),
	}
	var sum float64
	for _, app := range apps {
		if hasTag(app, "free") {
			s.Free++
		}
		if hasTag(app, "premium") {
			s.Premium++
		}
		sum += app.Rating
	}
	if s.Total > 0 {
		s.AvgRating = sum / float64(s.Total)
	}
	return s
}
