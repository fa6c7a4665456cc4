// Package cover resolves book cover images by ISBN.
package cover

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type Lookup interface {
	// CoverURL returns "" with a nil error when the book has no cover.
	CoverURL(ctx context.Context, isbn string) (string, error)
}

// Noop is used when cover lookups are disabled.
type Noop struct{}

func (Noop) CoverURL(context.Context, string) (string, error) {
	return "", nil
}

// OpenLibraryClient queries the Open Library books API.
type OpenLibraryClient struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	timeout    time.Duration
}

func NewOpenLibraryClient(baseURL, userAgent string, rps int, timeout time.Duration) *OpenLibraryClient {
	return &OpenLibraryClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   strings.TrimRight(baseURL, "/"),
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		timeout:   timeout,
	}
}

// bookDetails matches the subset of api/books?jscmd=data we read.
type bookDetails struct {
	Cover struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"cover"`
}

func (c *OpenLibraryClient) CoverURL(ctx context.Context, isbn string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "cover lookup throttled")
	}

	key := "ISBN:" + isbn
	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json", c.baseURL, url.QueryEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "cover lookup for %s", isbn)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("cover lookup for %s: unexpected status code: %d", isbn, resp.StatusCode)
	}

	var res map[string]bookDetails
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", errors.Wrapf(err, "decode cover response for %s", isbn)
	}

	details, ok := res[key]
	if !ok {
		return "", nil
	}
	switch {
	case details.Cover.Medium != "":
		return details.Cover.Medium, nil
	case details.Cover.Large != "":
		return details.Cover.Large, nil
	default:
		return details.Cover.Small, nil
	}
}
