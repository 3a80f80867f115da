package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/cjdenio/slack-club-bank/internal/money"
)

// DefaultAPIURL is the public banking API root.
const DefaultAPIURL = "https://hcb.hackclub.com/api/v3"

// APISource reads organizations from the banking JSON API.
type APISource struct {
	baseURL string
	client  HTTPClient
}

// NewAPISource creates a new APISource rooted at baseURL.
func NewAPISource(baseURL string, client HTTPClient) (*APISource, error) {
	if client == nil {
		return nil, errors.New("must provide an http client")
	}
	if baseURL == "" {
		return nil, errors.New("must provide the banking API URL")
	}
	return &APISource{baseURL: strings.TrimRight(baseURL, "/"), client: client}, nil
}

// GetOrganization fetches the organization metadata for slug.
func (s *APISource) GetOrganization(ctx context.Context, slug string) (*models.OrganizationRecord, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	var org models.OrganizationRecord
	if err := s.getJSON(ctx, "fetch organization", slug, s.organizationURL(slug), &org); err != nil {
		return nil, err
	}
	if err := org.Validate(); err != nil {
		return nil, &FetchError{Slug: slug, Op: "fetch organization", Err: err}
	}
	return &org, nil
}

// GetTransactions fetches the transaction list for slug, in server order.
func (s *APISource) GetTransactions(ctx context.Context, slug string) ([]models.TransactionRecord, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	var txs []models.TransactionRecord
	if err := s.getJSON(ctx, "fetch transactions", slug, s.organizationURL(slug)+"/transactions", &txs); err != nil {
		return nil, err
	}
	if txs == nil {
		return nil, &FetchError{Slug: slug, Op: "fetch transactions", Err: errors.New("transactions payload is not a list")}
	}
	for i := range txs {
		if err := txs[i].Validate(); err != nil {
			return nil, &FetchError{Slug: slug, Op: "fetch transactions", Err: fmt.Errorf("transaction %d: %w", i, err)}
		}
	}
	return txs, nil
}

// FetchEvent fetches the organization and its transactions and reshapes them
// for display. Either call failing fails the whole fetch.
func (s *APISource) FetchEvent(ctx context.Context, slug string) (*models.Event, error) {
	org, err := s.GetOrganization(ctx, slug)
	if err != nil {
		return nil, err
	}

	txs, err := s.GetTransactions(ctx, slug)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched organization from API", "slug", slug, "transactions_count", len(txs))
	return NewEvent(org, txs), nil
}

// NewEvent builds the display model from the raw API records.
func NewEvent(org *models.OrganizationRecord, txs []models.TransactionRecord) *models.Event {
	ev := &models.Event{
		Name:         org.Name,
		Description:  org.PublicMessage,
		Transactions: make([]models.Transaction, 0, len(txs)),
	}
	if org.Balances != nil {
		ev.Balance = money.FormatCents(org.Balances.BalanceCents)
	}

	for _, tx := range txs {
		ev.Transactions = append(ev.Transactions, models.Transaction{
			Date:     tx.Date,
			Memo:     tx.Memo,
			Amount:   money.FormatCents(tx.AmountCents),
			Positive: tx.AmountCents > 0,
			Pending:  tx.Pending,
		})
	}
	return ev
}

func (s *APISource) organizationURL(slug string) string {
	return s.baseURL + "/organizations/" + url.PathEscape(slug)
}

func (s *APISource) getJSON(ctx context.Context, op, slug, endpoint string, v any) error {
	req, err := newGetRequest(ctx, endpoint, "application/json")
	if err != nil {
		return &FetchError{Slug: slug, Op: op, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &FetchError{Slug: slug, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{
			Slug:       slug,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("GET %s: unexpected status %s", endpoint, resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Slug: slug, Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

var _ OrganizationDataSource = (*APISource)(nil)

