// Package apiclient is the HTTP client side of the curation API, used by the
// CLI to drive a running server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/workflow"
)

// Client talks to a factdesk server over JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://127.0.0.1:5000".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody is the failure shape endpoints return: an explicit error, or a
// message when the failure is part of a normal response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// post sends a JSON body and decodes the response into out. Non-2xx responses
// become a ServerError carrying the body's error or message when present.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("Server error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &workflow.ServerError{Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// VideoMetadata probes the video behind a social post URL.
func (c *Client) VideoMetadata(ctx context.Context, url string) (*workflow.MetadataResponse, error) {
	var out workflow.MetadataResponse
	if err := c.post(ctx, "/get_video_metadata", map[string]string{"url": url}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadVideo asks the server to download the video for an entry.
func (c *Client) DownloadVideo(ctx context.Context, url string, id int) (*workflow.DownloadResponse, error) {
	var out workflow.DownloadResponse
	payload := map[string]any{"url": url, "id": id}
	if err := c.post(ctx, "/download_video", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimDetails resolves the headline and subheadline for a claim-source URL.
func (c *Client) ClaimDetails(ctx context.Context, url string) (headline, subheadline string, err error) {
	var out struct {
		Headline    string `json:"headline"`
		Subheadline string `json:"subheadline"`
	}
	if err := c.post(ctx, "/get_politifact_details", map[string]string{"url": url}, &out); err != nil {
		return "", "", err
	}
	return out.Headline, out.Subheadline, nil
}

// Save replaces the server's dataset with the given entries.
func (c *Client) Save(ctx context.Context, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	return c.post(ctx, "/save", entries, nil)
}

// Entries fetches the server's current dataset.
func (c *Client) Entries(ctx context.Context) ([]model.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/export", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var entries []model.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}
