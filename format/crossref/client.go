package crossref

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lehigh-university-libraries/orcid2vivo/metrics"
)

const tracerName = "github.com/lehigh-university-libraries/orcid2vivo/format/crossref"

// Client fetches work records from the CrossRef REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Mailto is sent in the User-Agent to use the polite pool.
	Mailto string

	// Optional
	Cache   Cache
	Metrics *metrics.Recorder
}

// NewClient creates a Client for the API at baseURL. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Lookup returns the record for doi. It returns ErrNotFound when the
// service has no record, and a *StatusError or transport error for any
// other failure.
func (c *Client) Lookup(ctx context.Context, doi string) (*Record, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return nil, fmt.Errorf("crossref lookup: empty doi")
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "crossref.Lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("crossref.doi", doi)),
	)
	defer span.End()

	rec, err := c.lookup(ctx, doi)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		span.SetAttributes(attribute.Bool("crossref.found", false))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return rec, err
}

func (c *Client) lookup(ctx context.Context, doi string) (*Record, error) {
	if c.Cache != nil {
		entry, found, err := c.Cache.Get(ctx, doi)
		if err != nil {
			slog.Warn("crossref cache read failed", "doi", doi, "error", err)
		}
		if found {
			slog.Debug("cache hit", "doi", doi, "cachedStatus", entry.Status)
			c.Metrics.LookupOutcome(metrics.OutcomeCacheHit)
			if entry.Status == http.StatusNotFound {
				return nil, ErrNotFound
			}
			rec, err := parseBytes(entry.Data)
			if err == nil {
				return rec, nil
			}
			slog.Warn("discarding unreadable cache entry", "doi", doi, "error", err)
		}
	}

	slog.Debug("cache miss, fetching from network", "doi", doi)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.worksURL(doi), nil)
	if err != nil {
		return nil, fmt.Errorf("building crossref request for %s: %w", doi, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Metrics.LookupOutcome(metrics.OutcomeError)
		return nil, fmt.Errorf("fetching crossref record for %s: %w", doi, err)
	}
	defer resp.Body.Close()

	slog.Debug("network request complete", "doi", doi, "status", resp.StatusCode, "duration", time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.Metrics.LookupOutcome(metrics.OutcomeNotFound)
		c.store(ctx, doi, CacheEntry{Status: http.StatusNotFound})
		return nil, ErrNotFound
	default:
		c.Metrics.LookupOutcome(metrics.OutcomeError)
		return nil, &StatusError{DOI: doi, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Metrics.LookupOutcome(metrics.OutcomeError)
		return nil, fmt.Errorf("reading crossref record for %s: %w", doi, err)
	}
	rec, err := parseBytes(data)
	if err != nil {
		c.Metrics.LookupOutcome(metrics.OutcomeError)
		return nil, fmt.Errorf("crossref record for %s: %w", doi, err)
	}

	c.Metrics.LookupOutcome(metrics.OutcomeFound)
	c.store(ctx, doi, CacheEntry{Status: http.StatusOK, Data: data})
	return rec, nil
}

func (c *Client) store(ctx context.Context, doi string, entry CacheEntry) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.Set(ctx, doi, entry); err != nil {
		slog.Warn("failed to cache crossref response", "doi", doi, "error", err)
	}
}

// worksURL escapes each DOI path segment; DOI suffixes may contain
// reserved characters.
func (c *Client) worksURL(doi string) string {
	segments := strings.Split(doi, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.BaseURL + "/works/" + strings.Join(segments, "/")
}

func (c *Client) userAgent() string {
	if c.Mailto == "" {
		return "orcid2vivo/1.0"
	}
	return "orcid2vivo/1.0 (mailto:" + c.Mailto + ")"
}
