package store

// This file contains the JSONBin HTTP client. The v3 read endpoint wraps the
// document in a {"record": ...} envelope; writes take the bare document and
// authenticate with the X-Master-Key header.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zyphonz/ember/internal/catalog"
	"github.com/zyphonz/ember/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client talks to a single JSONBin bin.
type Client struct {
	url       string
	masterKey string
	client    *http.Client
}

// NewClient creates a client for the given bin URL and master key.
func NewClient(url, masterKey string) *Client {
	return &Client{
		url:       url,
		masterKey: masterKey,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

// recordEnvelope mirrors the JSONBin read response.
type recordEnvelope struct {
	Record Document `json:"record"`
}

// Load fetches the full document from the bin.
func (c *Client) Load(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	logging.Store("GET %s", c.url)
	resp, err := c.client.Do(req)
	if err != nil {
		logging.StoreError("GET failed: %v", err)
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logging.StoreError("GET status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("fetch document: status %d: %s", resp.StatusCode, string(body))
	}

	var envelope recordEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	doc := envelope.Record
	// Normalize so callers never see nil slices from an empty bin.
	if doc.Applications == nil {
		doc.Applications = []catalog.Application{}
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	logging.Store("loaded %d applications, %d categories", len(doc.Applications), len(doc.Categories))
	return &doc, nil
}

// Save replaces the remote document with doc.
func (c *Client) Save(ctx context.Context, doc *Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	logging.Store("PUT %s (%d bytes)", c.url, len(payload))
	resp, err := c.client.Do(req)
	if err != nil {
		logging.StoreError("PUT failed: %v", err)
		return fmt.Errorf("save document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logging.StoreError("PUT status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("save document: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Master-Key", c.masterKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
}
