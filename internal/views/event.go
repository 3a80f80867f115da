package views

import (
	"fmt"

	"github.com/cjdenio/slack-club-bank/internal/models"
	"github.com/slack-go/slack"
)

// MaxTransactions is how many transactions RenderEvent shows.
const MaxTransactions = 10

// RenderEvent turns an organization snapshot into blocks: a header with the
// balance, the public description if there is one, then up to
// MaxTransactions transactions in server order, each after a divider.
func RenderEvent(ev *models.Event) []slack.Block {
	header := slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("%s (:moneybag: %s)", ev.Name, ev.Balance), true, false)
	blocks := []slack.Block{slack.NewHeaderBlock(header)}

	if ev.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(markdown(">>> "+ev.Description), nil, nil))
	}

	txs := ev.Transactions
	if len(txs) > MaxTransactions {
		txs = txs[:MaxTransactions]
	}
	for _, tx := range txs {
		blocks = append(blocks, slack.NewDividerBlock(), renderTransaction(tx))
	}

	return blocks
}

func renderTransaction(tx models.Transaction) *slack.SectionBlock {
	indicator := ":red_circle: "
	if tx.Positive {
		indicator = ":large_green_circle: "
	}

	fields := []*slack.TextBlockObject{
		markdown(fmt.Sprintf("%s - *%s*", tx.Date, tx.Memo)),
		markdown(indicator + tx.Amount),
	}
	return slack.NewSectionBlock(nil, fields, nil)
}
