package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cjdenio/slack-club-bank/internal/views"
	"github.com/slack-go/slack"
)

// HandleHomeOpened publishes the empty search view.
func (d *Dependencies) HandleHomeOpened(ctx context.Context, userID string) {
	d.publish(ctx, userID, views.IdleView())
}

// HandleSearch looks up the organization the user typed and publishes the
// result. The loading view goes out first; it is then replaced by either the
// organization or the error.
func (d *Dependencies) HandleSearch(ctx context.Context, userID, value string) {
	slug := strings.ToLower(strings.TrimSpace(value))
	if slug == "" {
		d.publish(ctx, userID, views.IdleView())
		return
	}

	d.publish(ctx, userID, views.LoadingView(slug, d.flavor()))

	ev, err := d.Source.FetchEvent(ctx, slug)
	if err != nil {
		slog.Warn("failed to fetch organization", "slug", slug, "user", userID, "error", err)
		d.publish(ctx, userID, views.ErrorView(slug, err))
		return
	}

	d.publish(ctx, userID, views.SuccessView(slug, ev))
}

func (d *Dependencies) publish(ctx context.Context, userID string, view slack.HomeTabViewRequest) {
	_, err := d.Slack.PublishViewContext(ctx, slack.PublishViewContextRequest{
		UserID: userID,
		View:   view,
	})
	if err != nil {
		slog.Error("failed to publish home view", "user", userID, "error", err)
	}
}
