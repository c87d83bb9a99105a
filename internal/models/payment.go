package models

import "time"

// Payment is the database representation of a posted payment. Rows are
// append-only; insertion order is the account's posting order.
type Payment struct {
	PaymentID    string    `db:"payment_id"`
	AccountID    string    `db:"account_id"`
	Amount       int64     `db:"amount"` // Minor units; debits include the fee
	CurrencyCode string    `db:"currency_code"`
	PaymentType  string    `db:"payment_type"`
	PostedAt     time.Time `db:"posted_at"`
}
