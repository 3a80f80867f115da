package handler

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/cjdenio/slack-club-bank/internal/money"
	"github.com/cjdenio/slack-club-bank/internal/views"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

var orgLinkPattern = regexp.MustCompile(`^https?://(bank|hcb)\.hackclub\.com/([^/?#]+)`)

// UnfurlError wraps any failure while building or sending a link preview.
type UnfurlError struct {
	URL string
	Err error
}

func (e *UnfurlError) Error() string {
	return fmt.Sprintf("failed to unfurl %s: %v", e.URL, e.Err)
}

func (e *UnfurlError) Unwrap() error { return e.Err }

// HandleLinkShared previews the first shared link if it points at an
// organization. Failures are logged and never shown to the user.
func (d *Dependencies) HandleLinkShared(ctx context.Context, ev *slackevents.LinkSharedEvent) {
	if len(ev.Links) == 0 || ev.Links[0].URL == "" {
		return
	}

	link := ev.Links[0].URL
	m := orgLinkPattern.FindStringSubmatch(link)
	if m == nil {
		slog.Debug("ignoring shared link", "url", link)
		return
	}
	slug := m[2]

	if err := d.unfurl(ctx, ev.Channel, ev.MessageTimeStamp, link, slug); err != nil {
		slog.Error("unfurl failed", "url", link, "channel", ev.Channel, "slug", slug, "error", err)
	}
}

func (d *Dependencies) unfurl(ctx context.Context, channel, ts, link, slug string) error {
	org, err := d.Directory.GetOrganization(ctx, slug)
	if err != nil {
		return &UnfurlError{URL: link, Err: err}
	}

	txs, err := d.Directory.GetTransactions(ctx, slug)
	if err != nil {
		return &UnfurlError{URL: link, Err: err}
	}

	last, _ := views.LastTransactionDate(txs)
	blocks := views.UnfurlCard(views.Card{
		OrgURL:          strings.TrimRight(d.WebURL, "/") + "/" + slug,
		Name:            org.Name,
		LogoURL:         org.LogoURL(),
		Balance:         money.FormatCents(org.Balances.BalanceCents),
		LastTransaction: last,
		Users:           org.Users,
	})

	unfurls := map[string]slack.Attachment{
		link: {Blocks: slack.Blocks{BlockSet: blocks}},
	}
	if _, _, _, err := d.Slack.UnfurlMessageContext(ctx, channel, ts, unfurls); err != nil {
		return &UnfurlError{URL: link, Err: err}
	}
	return nil
}
