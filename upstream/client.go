// Package upstream is the typed client for the remote commerce API. Every
// endpoint decodes into explicit DTOs and rejects malformed payloads with a
// decoding error instead of propagating loose JSON.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Error is a non-success reply from the commerce API.
type Error struct {
	Status  int
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s: %s (status %d)", e.Path, e.Message, e.Status)
	}
	return fmt.Sprintf("upstream %s failed with status %d", e.Path, e.Status)
}

// successFlag tolerates the API reporting success as 1, "1" or true.
type successFlag int

func (s *successFlag) UnmarshalJSON(b []byte) error {
	switch strings.Trim(string(b), `"`) {
	case "1", "true":
		*s = 1
	default:
		*s = 0
	}
	return nil
}

// envelope is the common reply wrapper: data plus, depending on endpoint,
// a success flag, a page count or a nested result document.
type envelope struct {
	Success successFlag     `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Res     json.RawMessage `json:"res"`
}

// dataMessage digs a human-readable message out of a failure body.
func (e envelope) dataMessage() string {
	if e.Message != "" {
		return e.Message
	}
	var inner struct {
		Message string `json:"message"`
	}
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &inner) == nil {
		return inner.Message
	}
	return ""
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, path)
}

func (c *Client) post(ctx context.Context, path string, body any) (*envelope, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) (*envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 400 {
				return nil, &Error{Status: resp.StatusCode, Path: path, Message: strings.TrimSpace(string(raw))}
			}
			return nil, fmt.Errorf("decode %s response: %w", path, err)
		}
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{Status: resp.StatusCode, Path: path, Message: env.dataMessage()}
	}
	return &env, nil
}

// decodeData parses the envelope's data payload into out, rejecting
// malformed documents with a typed error.
func decodeData(env *envelope, path string, out any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("decode %s response: empty data payload", path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// brandFilter renders a brand id set the way the API expects it: a quoted
// comma-separated list, or empty when no filter applies.
func brandFilter(brands []string) string {
	if len(brands) == 0 {
		return ""
	}
	return "'" + strings.Join(brands, ",") + "'"
}

func itoa(n int) string { return strconv.Itoa(n) }
