// Package client provides a Go HTTP client for the notelite API.
//
// The client mirrors the server's endpoint structure with strongly-typed
// methods for every note operation plus the health check. Request bodies
// are marshaled to JSON automatically and responses are decoded into the
// same [github.com/notelite/notelite/pkg/models] entities the server uses,
// so types stay consistent across the API boundary.
//
// Client instances are safe for concurrent use by multiple goroutines.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/notelite/notelite/pkg/models"
)

// Client provides typed access to the notelite REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new notelite API client.
//
// The baseURL should include the protocol and host
// (e.g. "http://localhost:8080") without a trailing slash. The client is
// initialized with a 30-second timeout and is ready for immediate use.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest performs an HTTP request with proper headers.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeResponse decodes the JSON response into the target struct.
func decodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	if target != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CreateNote creates a note with the given text.
func (c *Client) CreateNote(ctx context.Context, text string) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/notes", models.CreateNote{Text: text})
	if err != nil {
		return nil, err
	}
	var note models.Note
	if err := decodeResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetNote fetches a note by ID.
func (c *Client) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/notes/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	var note models.Note
	if err := decodeResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes fetches all notes.
func (c *Client) ListNotes(ctx context.Context) ([]*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}
	var notes []*models.Note
	if err := decodeResponse(resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote applies a partial update to a note.
func (c *Client) UpdateNote(ctx context.Context, id models.NoteID, update models.UpdateNote) (*models.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/notes/"+id.String(), update)
	if err != nil {
		return nil, err
	}
	var note models.Note
	if err := decodeResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note by ID.
func (c *Client) DeleteNote(ctx context.Context, id models.NoteID) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/notes/"+id.String(), nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// Health fetches the service health status.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}
	var health map[string]any
	if err := decodeResponse(resp, &health); err != nil {
		return nil, err
	}
	return health, nil
}
