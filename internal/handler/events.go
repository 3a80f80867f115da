package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack/slackevents"
)

// HandleEvents is the Events API endpoint. Callback events are acknowledged
// right away and handled in the background.
func (d *Dependencies) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read event body", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// The request was already authenticated by its signature.
	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		slog.Warn("failed to parse event", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid url_verification payload")
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		w.WriteHeader(http.StatusOK)

		// The work outlives the request; keep its values but not its cancellation.
		ctx := context.WithoutCancel(r.Context())
		inner := event.InnerEvent
		d.spawn(func() { d.dispatchEvent(ctx, inner) })

	default:
		slog.Debug("ignoring event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
	}
}

func (d *Dependencies) dispatchEvent(ctx context.Context, inner slackevents.EventsAPIInnerEvent) {
	switch ev := inner.Data.(type) {
	case *slackevents.AppHomeOpenedEvent:
		d.HandleHomeOpened(ctx, ev.User)
	case *slackevents.LinkSharedEvent:
		d.HandleLinkShared(ctx, ev)
	default:
		slog.Debug("ignoring callback event", "type", inner.Type)
	}
}
