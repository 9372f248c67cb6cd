// internal/adapters/inventory/client.go
package inventory

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ivy_homes/internal/adapters/observability"
	"ivy_homes/internal/domain"
)

// Client talks to a remote inventory API that mirrors the file catalog
// shape: criteria travel as query parameters, responses carry a
// {"properties": [...]} document, and auth is a bearer credential.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func NewClient(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("inventory API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) SearchProperties(ctx context.Context, crit domain.SearchCriteria, limit int) ([]domain.Property, error) {
	q := url.Values{}
	if crit.Location != nil {
		q.Set("location", *crit.Location)
	}
	if crit.PropertyType != nil {
		q.Set("type", *crit.PropertyType)
	}
	if crit.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*crit.MinPrice, 'f', -1, 64))
	}
	if crit.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*crit.MaxPrice, 'f', -1, 64))
	}
	if crit.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*crit.Bedrooms))
	}
	if crit.Bathrooms != nil {
		q.Set("bathrooms", strconv.Itoa(*crit.Bathrooms))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	u := c.base + "/properties"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var doc struct {
		Properties []domain.Property `json:"properties"`
	}
	if err := c.get(ctx, u, "/properties", &doc); err != nil {
		return nil, err
	}
	if doc.Properties == nil {
		return []domain.Property{}, nil
	}
	return doc.Properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	var p domain.Property
	u := c.base + "/properties/" + url.PathEscape(id)
	if err := c.get(ctx, u, "/properties/{id}", &p); err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

// ---- Internals ----

var (
	ErrUnauthorized = errors.New("inventory: unauthorized")
	ErrForbidden    = errors.New("inventory: forbidden")
)

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After when
// provided. Status 404 maps to domain.ErrNotFound.
func (c *Client) get(ctx context.Context, u, endpoint string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "ivy-homes/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("inventory: remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("inventory: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% concurrency-safe jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
