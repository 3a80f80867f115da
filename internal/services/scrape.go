package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/cjdenio/slack-club-bank/internal/scrape"
)

// DefaultWebURL is the root of the public organization dashboards.
const DefaultWebURL = "https://hcb.hackclub.com"

// ScrapeSource reads organizations from their public HTML dashboard.
type ScrapeSource struct {
	baseURL string
	client  HTTPClient
}

// NewScrapeSource creates a new ScrapeSource. The client must not follow
// redirects: the bank redirects private or unknown organizations to its
// login page, and that has to surface as a failure.
func NewScrapeSource(baseURL string, client HTTPClient) (*ScrapeSource, error) {
	if client == nil {
		return nil, fmt.Errorf("must provide an http client")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("must provide the bank web URL")
	}
	return &ScrapeSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}, nil
}

// FetchEvent downloads and parses the dashboard for slug.
func (s *ScrapeSource) FetchEvent(ctx context.Context, slug string) (*models.Event, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	const op = "fetch dashboard"
	endpoint := s.baseURL + "/" + url.PathEscape(slug)

	req, err := newGetRequest(ctx, endpoint, "text/html")
	if err != nil {
		return nil, &FetchError{Slug: slug, Op: op, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Slug: slug, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode <= 399 {
		return nil, &FetchError{
			Slug:       slug,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("redirected to %q, the organization is private or does not exist", resp.Header.Get("Location")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Slug:       slug,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("GET %s: unexpected status %s", endpoint, resp.Status),
		}
	}

	dash, err := scrape.ParseDashboard(resp.Body)
	if err != nil {
		return nil, &FetchError{Slug: slug, Op: op, Err: err}
	}

	ev := &models.Event{
		Name:         dash.Name,
		Description:  dash.Description,
		Balance:      "$" + dash.Balance,
		Transactions: make([]models.Transaction, 0, len(dash.Rows)),
	}
	for _, row := range dash.Rows {
		ev.Transactions = append(ev.Transactions, models.Transaction{
			Date:     row.Date,
			Memo:     row.Memo,
			Amount:   row.Amount,
			Positive: !strings.HasPrefix(row.Amount, "-"),
		})
	}

	slog.Debug("scraped organization dashboard", "slug", slug, "transactions_count", len(ev.Transactions))
	return ev, nil
}

var _ OrganizationDataSource = (*ScrapeSource)(nil)
