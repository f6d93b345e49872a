package models

// AccountBalance is the current balance of one account at projection time.
// Balances are read once per projection run and never mutated by the engine.
type AccountBalance struct {
	AccountID    string `db:"id" json:"account_id"`
	AccountName  string `db:"name" json:"account_name"`
	AccountType  string `db:"account_type" json:"account_type"`
	BalanceCents int64  `db:"balance_cents" json:"current_balance_cents"`
	Currency     string `db:"currency" json:"currency"`
	Scope        Scope  `db:"-" json:"scope"`
}
