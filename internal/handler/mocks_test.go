package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/slack-go/slack"
)

const testSecret = "8f742231b10e8888abcd99yyyzzz85a5"

// MockSlackClient implements SlackClient
type MockSlackClient struct {
	PublishViewContextFunc   func(ctx context.Context, req slack.PublishViewContextRequest) (*slack.ViewResponse, error)
	UnfurlMessageContextFunc func(ctx context.Context, channelID, timestamp string, unfurls map[string]slack.Attachment, options ...slack.MsgOption) (string, string, string, error)

	mu        sync.Mutex
	Published []slack.PublishViewContextRequest
}

func (m *MockSlackClient) PublishViewContext(ctx context.Context, req slack.PublishViewContextRequest) (*slack.ViewResponse, error) {
	m.mu.Lock()
	m.Published = append(m.Published, req)
	m.mu.Unlock()
	if m.PublishViewContextFunc != nil {
		return m.PublishViewContextFunc(ctx, req)
	}
	return &slack.ViewResponse{}, nil
}

func (m *MockSlackClient) UnfurlMessageContext(ctx context.Context, channelID, timestamp string, unfurls map[string]slack.Attachment, options ...slack.MsgOption) (string, string, string, error) {
	if m.UnfurlMessageContextFunc != nil {
		return m.UnfurlMessageContextFunc(ctx, channelID, timestamp, unfurls, options...)
	}
	return channelID, timestamp, "", nil
}

// MockDataSource implements services.OrganizationDataSource
type MockDataSource struct {
	FetchEventFunc func(ctx context.Context, slug string) (*models.Event, error)
}

func (m *MockDataSource) FetchEvent(ctx context.Context, slug string) (*models.Event, error) {
	if m.FetchEventFunc != nil {
		return m.FetchEventFunc(ctx, slug)
	}
	return nil, nil
}

// MockDirectory implements OrganizationDirectory
type MockDirectory struct {
	GetOrganizationFunc func(ctx context.Context, slug string) (*models.OrganizationRecord, error)
	GetTransactionsFunc func(ctx context.Context, slug string) ([]models.TransactionRecord, error)
}

func (m *MockDirectory) GetOrganization(ctx context.Context, slug string) (*models.OrganizationRecord, error) {
	if m.GetOrganizationFunc != nil {
		return m.GetOrganizationFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockDirectory) GetTransactions(ctx context.Context, slug string) ([]models.TransactionRecord, error) {
	if m.GetTransactionsFunc != nil {
		return m.GetTransactionsFunc(ctx, slug)
	}
	return nil, nil
}

// runNow makes background work synchronous so tests can assert on it.
func runNow(fn func()) { fn() }

// sign adds the headers Slack would send for body.
func sign(header http.Header, secret, body string, at time.Time) {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", ts, body)
	header.Set("X-Slack-Request-Timestamp", ts)
	header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
}
