package models

// Transaction represents a single ledger entry as displayed to the user.
type Transaction struct {
	Date     string `json:"date"`
	Memo     string `json:"memo,omitempty"`
	Amount   string `json:"amount"`   // Formatted currency, e.g. "$12.34"
	Positive bool   `json:"positive"` // True if the transaction increased the balance
	Pending  bool   `json:"pending"`
}

// Event is an organization's financial snapshot, built fresh for every lookup.
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Balance     string `json:"balance,omitempty"`
	// Transactions is nil when the source did not provide a list at all.
	Transactions []Transaction `json:"transactions,omitempty"`
}
