package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
)

const maxResponseBytes = 1 << 20

// Client speaks the CadreBook HTTP API. One Client serves all gateway
// adapters; the session token is pulled from TokenSource per request so a
// login or logout mid-process takes effect immediately.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	// TokenSource returns the current bearer token, or "" for anonymous
	// requests.
	TokenSource func() string
}

func NewClient(baseURL string) (*Client, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}
	return &Client{BaseURL: baseURL}, nil
}

// Error is a non-2xx API response. Message carries the server's detail
// string when one was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Unwrap maps auth and missing-entity statuses onto the domain sentinels so
// callers can errors.Is without knowing the transport.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Status: resp.StatusCode, Message: decodeDetail(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if err := validateBaseURL(c.BaseURL); err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint, nil
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("api base url host is required")
	}
	return nil
}

// detailEnvelope is the server's error body: detail is either a plain
// string or a list of validation objects carrying a msg field.
type detailEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

func decodeDetail(resp *http.Response) string {
	var envelope detailEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&envelope); err != nil {
		return ""
	}
	if len(envelope.Detail) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(envelope.Detail, &message); err == nil {
		return message
	}

	var validation []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &validation); err == nil && len(validation) > 0 {
		return validation[0].Msg
	}
	return ""
}

// apiTime decodes the server's timestamps, which omit a zone suffix and are
// implicitly UTC.
type apiTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("parse timestamp %q", raw)
}

func (t apiTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
