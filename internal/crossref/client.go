// Package crossref provides a minimal rate-limited client for the Crossref
// works API, used to fill in record metadata from a DOI.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/ewsmith/papergraph/internal/record"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us inside Crossref's polite-pool guidance.
	RateLimit = 5.0
)

// ErrNotFound means the DOI is unknown to Crossref.
var ErrNotFound = errors.New("doi not found")

// Client is a rate-limited HTTP client for the Crossref API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string // polite-pool contact address
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the polite-pool contact address.
func WithMailto(addr string) ClientOption {
	return func(c *Client) {
		c.mailto = addr
	}
}

// NewClient creates a new Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if addr := os.Getenv("CROSSREF_MAILTO"); addr != "" {
		c.mailto = addr
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// work mirrors the fields we consume from the Crossref works payload.
type work struct {
	Message struct {
		Title  []string `json:"title"`
		DOI    string   `json:"DOI"`
		Author []struct {
			Given  string `json:"given"`
			Family string `json:"family"`
		} `json:"author"`
		ContainerTitle []string `json:"container-title"`
		Issued         struct {
			DateParts [][]int `json:"date-parts"`
		} `json:"issued"`
		Abstract string `json:"abstract"`
	} `json:"message"`
}

// Lookup fetches metadata for a DOI and merges it into a record, filling
// only fields the record is missing.
func (c *Client) Lookup(ctx context.Context, doi string, r record.PaperRecord) (record.PaperRecord, error) {
	if doi == "" {
		return r, fmt.Errorf("doi is required")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return r, err
	}

	u := c.baseURL + "/works/" + url.PathEscape(doi)
	if c.mailto != "" {
		u += "?mailto=" + url.QueryEscape(c.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return r, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return r, fmt.Errorf("fetching %s: %w", doi, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return r, fmt.Errorf("%w: %s", ErrNotFound, doi)
	}
	if resp.StatusCode != http.StatusOK {
		return r, fmt.Errorf("crossref returned %s for %s", resp.Status, doi)
	}

	var w work
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return r, fmt.Errorf("decoding response for %s: %w", doi, err)
	}

	return merge(r, w), nil
}

// merge fills missing record fields from a Crossref work.
func merge(r record.PaperRecord, w work) record.PaperRecord {
	m := w.Message

	if r.DOI == "" {
		r.DOI = m.DOI
	}
	if r.Title == "" && len(m.Title) > 0 {
		r.Title = m.Title[0]
	}
	if r.Venue == "" && len(m.ContainerTitle) > 0 {
		r.Venue = m.ContainerTitle[0]
	}
	if r.Abstract == "" {
		r.Abstract = m.Abstract
	}
	if r.Year == 0 && len(m.Issued.DateParts) > 0 && len(m.Issued.DateParts[0]) > 0 {
		r.Year = m.Issued.DateParts[0][0]
	}
	if len(r.Authors) == 0 {
		for _, a := range m.Author {
			name := a.Given + " " + a.Family
			if a.Given == "" {
				name = a.Family
			}
			if name != "" {
				r.Authors = append(r.Authors, name)
			}
		}
	}
	return r
}
