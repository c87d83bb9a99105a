package models

import "time"

// Account is the database representation of a bank account.
type Account struct {
	AccountID     string    `db:"account_id"`
	CurrencyCode  string    `db:"currency_code"`
	Balance       int64     `db:"balance"` // Minor units
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
