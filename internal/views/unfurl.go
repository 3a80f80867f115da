package views

import (
	"fmt"
	"time"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/slack-go/slack"
)

const (
	// DefaultLogoURL is shown for organizations without a logo.
	DefaultLogoURL = "https://bank.hackclub.com/brand/hcb-icon-icon-dark.png"

	maxAvatars        = 10
	avatarsWhenHidden = 9
)

// Card is the data behind a link preview.
type Card struct {
	OrgURL          string // Link target, e.g. https://hcb.hackclub.com/hq
	Name            string
	LogoURL         string // Empty falls back to DefaultLogoURL
	Balance         string
	LastTransaction string // Empty when the organization has no transactions
	Users           []models.UserRecord
}

// UnfurlCard renders the preview attached to a shared organization link.
func UnfurlCard(c Card) []slack.Block {
	logo, alt := c.LogoURL, c.Name
	if logo == "" {
		logo, alt = DefaultLogoURL, "Hack Club Bank"
	}

	fields := []*slack.TextBlockObject{
		markdown(":money_with_wings: *Balance*\n" + c.Balance),
	}
	if c.LastTransaction != "" {
		fields = append(fields, markdown(":calendar: *Last transaction*\n"+c.LastTransaction))
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(
			markdown(fmt.Sprintf("*<%s|%s>* – Hack Club Bank", c.OrgURL, c.Name)),
			fields,
			slack.NewAccessory(slack.NewImageBlockElement(logo, alt)),
		),
	}

	if row := ContributorRow(c.OrgURL+"/team", c.Users); row != nil {
		blocks = append(blocks, row)
	}
	return blocks
}

// ContributorRow shows member avatars. Up to ten members are shown in full;
// past that the first nine are shown followed by a "+N more" link to teamURL.
// It returns nil when there are no members.
func ContributorRow(teamURL string, users []models.UserRecord) *slack.ContextBlock {
	if len(users) == 0 {
		return nil
	}

	shown := users
	if len(users) > maxAvatars {
		shown = users[:avatarsWhenHidden]
	}

	elements := make([]slack.MixedElement, 0, len(shown)+1)
	for _, u := range shown {
		elements = append(elements, slack.NewImageBlockElement(u.Photo, u.FullName))
	}
	if len(users) > maxAvatars {
		elements = append(elements, markdown(fmt.Sprintf("<%s|+%d more>", teamURL, len(users)-avatarsWhenHidden)))
	}

	return slack.NewContextBlock("", elements...)
}

// Layouts tried, in order, when reading transaction dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
}

// LastTransactionDate returns the most recent transaction date formatted
// like "January 2, 2006" in UTC. Dates that cannot be parsed are ignored;
// if none parse, the first raw date is returned. ok is false when txs is
// empty.
func LastTransactionDate(txs []models.TransactionRecord) (date string, ok bool) {
	if len(txs) == 0 {
		return "", false
	}

	var latest time.Time
	for _, tx := range txs {
		t, err := parseDate(tx.Date)
		if err != nil {
			continue
		}
		if t.After(latest) {
			latest = t
		}
	}

	if latest.IsZero() {
		return txs[0].Date, true
	}
	return latest.UTC().Format("January 2, 2006"), true
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}
