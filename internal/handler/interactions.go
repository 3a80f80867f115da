package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cjdenio/slack-club-bank/internal/views"
	"github.com/slack-go/slack"
)

// HandleInteractions is the interactivity endpoint. Every payload is
// acknowledged with an empty 200 before any work starts.
func (d *Dependencies) HandleInteractions(w http.ResponseWriter, r *http.Request) {
	callback, err := slack.InteractionCallbackParse(r)
	if err != nil {
		slog.Warn("failed to parse interaction payload", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	w.WriteHeader(http.StatusOK)

	if callback.Type != slack.InteractionTypeBlockActions {
		slog.Debug("ignoring interaction", "type", callback.Type)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	userID := callback.User.ID
	for _, action := range callback.ActionCallback.BlockActions {
		switch action.ActionID {
		case views.SlugActionID:
			value := action.Value
			d.spawn(func() { d.HandleSearch(ctx, userID, value) })
		case views.NothingActionID:
			// Acknowledged above.
		default:
			slog.Debug("ignoring block action", "action_id", action.ActionID, "block_id", action.BlockID)
		}
	}
}
