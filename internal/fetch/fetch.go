// Package fetch provides the HTTP collaborator for the scraping pipeline: a
// GET client with bounded retry, redirect capping, HTML content-type gating
// and charset normalization to UTF-8.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"companyscrape/internal/cache"
)

// DefaultUserAgent mimics a desktop browser; the target site serves reduced
// markup to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client issues GET requests with timeouts and limited retry on transient
// errors. The zero value is usable: one attempt, no timeout, no cache.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// RetryDelay is slept between attempts after a transient failure.
	RetryDelay time.Duration
	// Timeout bounds each individual request.
	Timeout time.Duration
	// Cache, when set, stores bodies on disk and revalidates with
	// conditional requests.
	Cache *cache.HTTPCache
	// RedirectMaxHops caps redirect following. Zero means default (5).
	RedirectMaxHops int
}

// Get fetches url and returns the body decoded to UTF-8 together with the
// response content type. Transient failures (5xx, timeouts) are retried up
// to MaxAttempts with RetryDelay between attempts.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	var etag, lastMod string
	if c.Cache != nil {
		if meta, err := c.Cache.LoadMeta(ctx, rawURL); err == nil && meta != nil {
			etag = meta.ETag
			lastMod = meta.LastModified
		}
	}

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, ct, status, resETag, resLastMod, err := c.tryOnce(ctx, rawURL, etag, lastMod)
		if err == nil {
			if status == http.StatusNotModified && c.Cache != nil {
				if cached, cerr := c.Cache.LoadBody(ctx, rawURL); cerr == nil {
					return cached, ct, nil
				}
			}
			if decoded, derr := decodeToUTF8(body, ct); derr == nil {
				body = decoded
			}
			if c.Cache != nil && status == http.StatusOK {
				_ = c.Cache.Save(ctx, rawURL, ct, resETag, resLastMod, body)
			}
			return body, ct, nil
		}
		lastErr = err
		if !isTransient(err) || i == attempts-1 {
			return nil, "", err
		}
		if c.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, "", ctx.Err()
			case <-time.After(c.RetryDelay):
			}
		}
	}
	return nil, "", lastErr
}

func (c *Client) tryOnce(ctx context.Context, rawURL, etag, lastMod string) (body []byte, contentType string, status int, resETag, resLastMod string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", 0, "", "", fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, "", 0, "", "", fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastMod != "" {
		req.Header.Set("If-Modified-Since", lastMod)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(req.Context(), c.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, "", 0, "", "", err
	}
	defer resp.Body.Close()

	contentType = resp.Header.Get("Content-Type")
	switch {
	case resp.StatusCode >= 500:
		return nil, "", resp.StatusCode, "", "", fmt.Errorf("server error: %d", resp.StatusCode)
	case resp.StatusCode == http.StatusNotModified:
		return nil, contentType, resp.StatusCode, "", "", nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, "", resp.StatusCode, "", "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if !isHTMLContentType(contentType) {
		return nil, "", resp.StatusCode, "", "", fmt.Errorf("unsupported content type: %s", contentType)
	}
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", resp.StatusCode, "", "", fmt.Errorf("read body: %w", err)
	}
	return body, contentType, resp.StatusCode, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone so the redirect policy does not mutate the caller's client.
		clone := *c.HTTPClient
		clone.CheckRedirect = c.checkRedirect
		return &clone
	}
	return &http.Client{Timeout: c.Timeout, CheckRedirect: c.checkRedirect}
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	if len(via) >= max {
		return errors.New("too many redirects")
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return errors.New("redirect to unsupported scheme")
	}
	return nil
}

// decodeToUTF8 converts body to UTF-8 based on the charset declared in the
// content type or sniffed from the document.
func decodeToUTF8(body []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "server error:")
}

func isHTTPScheme(u *url.URL) bool {
	s := strings.ToLower(u.Scheme)
	return s == "http" || s == "https"
}

func isHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
