// Package boardgameapi implements the core API ports against the board game
// REST backend.
package boardgameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/boardgamehub/boardgame-ui/internal/errors"
)

const (
	defaultTimeout = 10 * time.Second
	// maxErrorBody caps how much of an error response is read for its message.
	maxErrorBody = 64 << 10
)

// Config captures the backend endpoints and transport settings.
type Config struct {
	// BaseURL is the root of the /api resources, e.g. http://localhost:8080/api.
	BaseURL string
	// AccountBaseURL is the root of the /UserAccount resources. Defaults to
	// BaseURL with a trailing /api removed.
	AccountBaseURL string
	Timeout        time.Duration
	HTTPClient     *http.Client
	Logger         *slog.Logger
}

// Client is a thin JSON client for the backend. It is safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	accountsURL *url.URL
	http        *http.Client
	logger      *slog.Logger
}

// NewClient builds a backend client. BaseURL is required.
func NewClient(cfg Config) (*Client, error) {
	base, err := parseBase(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("boardgame api base url: %w", err)
	}

	accountRaw := strings.TrimSpace(cfg.AccountBaseURL)
	if accountRaw == "" {
		accountRaw = strings.TrimSuffix(base.String(), "/api")
	}
	accounts, err := parseBase(accountRaw)
	if err != nil {
		return nil, fmt.Errorf("boardgame account api url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     base,
		accountsURL: accounts,
		http:        hc,
		logger:      logger.With("component", "boardgameapi"),
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return nil, errors.New("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("host is required")
	}
	return u, nil
}

// Users returns the account API.
func (c *Client) Users() *UserAccounts { return &UserAccounts{c: c} }

// Games returns the catalog API.
func (c *Client) Games() *Games { return &Games{c: c} }

// GameCopies returns the game copy API.
func (c *Client) GameCopies() *GameCopies { return &GameCopies{c: c} }

// Events returns the event API.
func (c *Client) Events() *Events { return &Events{c: c} }

// Registrations returns the event registration API.
func (c *Client) Registrations() *EventRegistrations { return &EventRegistrations{c: c} }

// Reviews returns the review API.
func (c *Client) Reviews() *Reviews { return &Reviews{c: c} }

// BorrowRequests returns the borrow request API.
func (c *Client) BorrowRequests() *BorrowRequests { return &BorrowRequests{c: c} }

// call describes one backend request.
type call struct {
	method   string
	accounts bool
	segments []string
	query    url.Values
	body     any
	// text sends body as text/plain instead of JSON.
	text string
	out  any
	// op names the operation in wrapped errors.
	op string
}

// endpoint joins path-escaped segments under the chosen base URL.
func (c *Client) endpoint(accounts bool, segments []string, query url.Values) string {
	base := c.baseURL
	if accounts {
		base = c.accountsURL
	}
	u := *base
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	u.RawPath = base.EscapedPath() + "/" + strings.Join(escaped, "/")
	u.Path = base.Path + "/" + strings.Join(segments, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, cl call) error {
	var body io.Reader
	contentType := ""
	switch {
	case cl.body != nil:
		buf, err := json.Marshal(cl.body)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s: encode request", cl.op)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	case cl.text != "":
		body = strings.NewReader(cl.text)
		contentType = "text/plain"
	}

	target := c.endpoint(cl.accounts, cl.segments, cl.query)
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s: build request", cl.op)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed",
			"op", cl.op, "method", cl.method, "error", err)
		return apperrors.FromContext(err, cl.op)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "backend request",
		"op", cl.op,
		"method", cl.method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if cl.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s: decode response", cl.op)
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return apperrors.FromStatus(resp.StatusCode, extractErrorMessage(raw))
}

// extractErrorMessage picks a human readable message from an error body. It
// prefers a JSON "message" field, then a joined "errors" list, then the raw
// body text. Empty means the caller should fall back to the status text.
func extractErrorMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var payload struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if len(payload.Errors) > 0 {
			return strings.Join(payload.Errors, ", ")
		}
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func idSegment(id int64) string { return strconv.FormatInt(id, 10) }
