// Package store implements the document-store adapter backing the EMBER
// catalog: a single JSON document on JSONBin holding every application and
// the category labels. There are no partial updates and no versioning; the
// whole document is read once at startup and replaced on every save.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/zyphonz/ember/internal/catalog"
)

// Document is the wire shape of the remote bin and of export files.
type Document struct {
	Applications []catalog.Application `json:"applications"`
	Categories   []string              `json:"categories"`
}

// Store is the load/save contract the terminal depends on. Load is called
// once per session; Save after every catalog mutation. Implementations must
// not retry: a failed save is reported to the user and left at that.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FromCatalog snapshots the in-memory catalog into a document ready for
// Save or export.
func FromCatalog(c *catalog.Catalog) *Document {
	doc := &Document{
		Applications: make([]catalog.Application, len(c.Applications)),
		Categories:   make([]string, len(c.Categories)),
	}
	copy(doc.Applications, c.Applications)
	copy(doc.Categories, c.Categories)
	return doc
}

// ToCatalog materializes a loaded document as the in-memory catalog.
func (d *Document) ToCatalog() catalog.Catalog {
	return catalog.Catalog{
		Applications: d.Applications,
		Categories:   d.Categories,
	}
}

// WriteExport writes the document to path as pretty-printed JSON, exactly
// mirroring the remote store's shape.
func WriteExport(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}
