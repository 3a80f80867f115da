// Package scrape extracts organization data from the bank's public HTML
// dashboard. It exists for organizations whose data is only reachable through
// the web UI; the JSON API is the preferred source.
package scrape

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// CSS selectors for the dashboard markup.
const (
	nameSelector        = ".app__sidebar h1"
	rowSelector         = "table tbody tr"
	amountSelector      = ".transaction__memo + td"
	memoSelector        = ".transaction__memo span:first-of-type"
	dateSelector        = "td:nth-of-type(2)"
	statLabelSelector   = ".stat__label"
	statValueSelector   = ".stat__value"
	descriptionSelector = ".public-message"
)

// Row is one transaction row of the dashboard table, as displayed.
type Row struct {
	Date   string
	Memo   string
	Amount string
}

// Dashboard is what could be read off an organization's dashboard page.
type Dashboard struct {
	Name        string
	Balance     string // Raw stat value without currency symbol, e.g. "1,234.56"
	Description string
	Rows        []Row
}

// ParseDashboard parses a dashboard page. The page must at least carry the
// organization name; every other field is optional.
func ParseDashboard(r io.Reader) (*Dashboard, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse dashboard HTML")
	}

	doc := goquery.NewDocumentFromNode(root)

	name := text(doc.Find(nameSelector).First())
	if name == "" {
		return nil, errors.New("unable to find organization name in the page")
	}

	d := &Dashboard{
		Name:        name,
		Balance:     parseBalance(doc),
		Description: text(doc.Find(descriptionSelector)),
		Rows:        []Row{},
	}

	doc.Find(rowSelector).Each(func(_ int, s *goquery.Selection) {
		d.Rows = append(d.Rows, Row{
			Date:   text(s.Find(dateSelector)),
			Memo:   text(s.Find(memoSelector)),
			Amount: text(s.Find(amountSelector)),
		})
	})

	return d, nil
}

// parseBalance finds the stat whose label mentions "balance" and returns the
// value that immediately follows it.
func parseBalance(doc *goquery.Document) string {
	var balance string

	doc.Find(statLabelSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(s.Text()), "balance") {
			return true
		}
		balance = text(s.Next().Filter(statValueSelector))
		return false
	})

	return balance
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
