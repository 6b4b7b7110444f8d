// Package supabase implements the document store against the Supabase
// Storage HTTP API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/payops/inquiry-reader/internal/core/domain"
	"github.com/payops/inquiry-reader/internal/infrastructure/resilience"
)

const listPageLimit = 1000

type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL, apiKey, bucket string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		executor:   executor,
	}
}

type listEntry struct {
	Name     string          `json:"name"`
	ID       *string         `json:"id"`
	Metadata json.RawMessage `json:"metadata"`
}

// isFile distinguishes objects from folder placeholders: the listing API
// returns folders with a null id and no metadata.
func (e listEntry) isFile() bool {
	if e.ID != nil && *e.ID != "" {
		return true
	}
	return len(e.Metadata) > 0 && string(e.Metadata) != "null"
}

// List walks the bucket breadth-first from prefix, descending into folders up
// to maxDepth levels, and returns object paths sorted by name.
func (c *Client) List(ctx context.Context, prefix string, maxDepth int) ([]string, error) {
	type level struct {
		prefix string
		depth  int
	}

	var paths []string
	visited := map[string]bool{}
	pending := []level{{prefix: strings.Trim(prefix, "/"), depth: 0}}

	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]
		if current.depth > maxDepth || visited[current.prefix] {
			continue
		}
		visited[current.prefix] = true

		entries, err := c.listOnce(ctx, current.prefix)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			path := entry.Name
			if current.prefix != "" {
				path = current.prefix + "/" + entry.Name
			}
			if entry.isFile() {
				paths = append(paths, path)
				continue
			}
			pending = append(pending, level{prefix: path, depth: current.depth + 1})
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func (c *Client) listOnce(ctx context.Context, prefix string) ([]listEntry, error) {
	payload := map[string]any{
		"prefix": prefix,
		"limit":  listPageLimit,
		"offset": 0,
		"sortBy": map[string]string{"column": "name", "order": "asc"},
	}

	var entries []listEntry
	call := func(callCtx context.Context) error {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal list request: %w", err)
		}

		endpoint := fmt.Sprintf("%s/storage/v1/object/list/%s", c.baseURL, url.PathEscape(c.bucket))
		req, err := http.NewRequestWithContext(callCtx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create list request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		c.authorize(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("storage list request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return newStatusError("list", resp)
		}

		entries = entries[:0]
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			return fmt.Errorf("decode list response: %w", err)
		}
		return nil
	}

	if err := c.execute(ctx, "supabase.list", call); err != nil {
		return nil, domain.WrapError(domain.ErrTransport, "list bucket "+c.bucket, err)
	}
	return entries, nil
}

// Fetch downloads one object. A missing object is ErrDocumentNotFound; every
// other failure is ErrTransport.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	var content []byte
	call := func(callCtx context.Context) error {
		endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
			c.baseURL, url.PathEscape(c.bucket), escapePath(path))
		req, err := http.NewRequestWithContext(callCtx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create download request: %w", err)
		}
		c.authorize(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("storage download request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return newStatusError("download", resp)
		}

		content, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read object body: %w", err)
		}
		return nil
	}

	if err := c.execute(ctx, "supabase.fetch", call); err != nil {
		if isNotFound(err) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "fetch "+path, err)
		}
		return nil, domain.WrapError(domain.ErrTransport, "fetch "+path, err)
	}
	return content, nil
}

func (c *Client) execute(ctx context.Context, operation string, call func(context.Context) error) error {
	if c.executor == nil {
		return call(ctx)
	}
	return c.executor.Execute(ctx, operation, call, classifyStorageError)
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// escapePath escapes each segment but keeps the separators.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
