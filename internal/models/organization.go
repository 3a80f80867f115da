package models

import "errors"

// Balances holds the balance figures reported by the banking API.
type Balances struct {
	BalanceCents int64 `json:"balance_cents"`
}

// UserRecord is a member of an organization as returned by the banking API.
type UserRecord struct {
	FullName string `json:"full_name"`
	Photo    string `json:"photo"`
}

// OrganizationRecord is the raw organization payload from GET /organizations/{slug}.
type OrganizationRecord struct {
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	PublicMessage string       `json:"public_message"`
	Logo          *string      `json:"logo"`
	Balances      *Balances    `json:"balances"`
	Users         []UserRecord `json:"users"`
}

// Validate reports whether the payload has the fields every consumer relies on.
func (o *OrganizationRecord) Validate() error {
	if o.Name == "" {
		return errors.New("organization payload is missing name")
	}
	if o.Balances == nil {
		return errors.New("organization payload is missing balances")
	}
	return nil
}

// LogoURL returns the organization logo, or "" when none is set.
func (o *OrganizationRecord) LogoURL() string {
	if o.Logo == nil {
		return ""
	}
	return *o.Logo
}

// TransactionRecord is one entry of GET /organizations/{slug}/transactions.
type TransactionRecord struct {
	Memo        string `json:"memo"`
	Date        string `json:"date"`
	AmountCents int64  `json:"amount_cents"`
	Pending     bool   `json:"pending"`
}

// Validate reports whether the record carries a date.
func (t *TransactionRecord) Validate() error {
	if t.Date == "" {
		return errors.New("transaction payload is missing date")
	}
	return nil
}
