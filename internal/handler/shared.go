package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/cjdenio/slack-club-bank/internal/services"
	"github.com/cjdenio/slack-club-bank/internal/views"
	"github.com/slack-go/slack"
)

// SlackClient is the part of *slack.Client the handlers call.
type SlackClient interface {
	PublishViewContext(ctx context.Context, req slack.PublishViewContextRequest) (*slack.ViewResponse, error)
	UnfurlMessageContext(ctx context.Context, channelID, timestamp string, unfurls map[string]slack.Attachment, options ...slack.MsgOption) (string, string, string, error)
}

// OrganizationDirectory returns the raw organization records link previews
// are built from.
type OrganizationDirectory interface {
	GetOrganization(ctx context.Context, slug string) (*models.OrganizationRecord, error)
	GetTransactions(ctx context.Context, slug string) ([]models.TransactionRecord, error)
}

// Dependencies holds the services required by the handlers.
type Dependencies struct {
	Source        services.OrganizationDataSource
	Directory     OrganizationDirectory
	Slack         SlackClient
	SigningSecret string
	WebURL        string // Base of organization links in previews

	// Spawn runs a unit of work after the request has been acknowledged.
	// Defaults to a new goroutine.
	Spawn func(func())
	// PickFlavor chooses the loading text. Defaults to a random views.FlavorTexts entry.
	PickFlavor func() string
}

func (d *Dependencies) spawn(fn func()) {
	if d.Spawn != nil {
		d.Spawn(fn)
		return
	}
	go fn()
}

func (d *Dependencies) flavor() string {
	if d.PickFlavor != nil {
		return d.PickFlavor()
	}
	return views.FlavorTexts[rand.IntN(len(views.FlavorTexts))]
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
