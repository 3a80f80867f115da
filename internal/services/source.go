package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cjdenio/slack-club-bank/internal/models"
)

// Backends accepted by NewDataSource.
const (
	BackendAPI    = "api"
	BackendScrape = "scrape"
)

const userAgent = "slack-club-bank (+https://github.com/cjdenio/slack-club-bank)"

// HTTPClient represents the functionality we need from an *http.Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// OrganizationDataSource produces an Event for an organization slug. The
// result has the same shape no matter which upstream backs it.
type OrganizationDataSource interface {
	FetchEvent(ctx context.Context, slug string) (*models.Event, error)
}

// NewDataSource returns the data source for the named backend.
func NewDataSource(backend, apiURL, webURL string, client *http.Client) (OrganizationDataSource, error) {
	switch backend {
	case BackendAPI, "":
		return NewAPISource(apiURL, client)
	case BackendScrape:
		return NewScrapeSource(webURL, noRedirectClient(client))
	default:
		return nil, fmt.Errorf("unknown bank backend %q (want %q or %q)", backend, BackendAPI, BackendScrape)
	}
}

// ValidateSlug rejects identifiers that cannot be a single URL path segment.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Slug: slug, Reason: "must not be empty"}
	}
	if strings.ContainsAny(slug, "/?#% \t\r\n") {
		return &ValidationError{Slug: slug, Reason: "must be the last part of the organization URL"}
	}
	return nil
}

func newGetRequest(ctx context.Context, url, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	return req, nil
}

// noRedirectClient copies client so that redirects are returned to the caller
// instead of being followed.
func noRedirectClient(client *http.Client) *http.Client {
	c := &http.Client{}
	if client != nil {
		*c = *client
	}
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}
