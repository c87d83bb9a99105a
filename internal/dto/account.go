package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	AccountID      string `json:"accountID"` // Optional; generated when empty
	CurrencyCode   string `json:"currencyCode" binding:"required,currency_code"`
	InitialBalance int64  `json:"initialBalance" binding:"min=0"` // Minor units
}

// PaymentRequest is the body for credit and debit operations.
type PaymentRequest struct {
	Amount       int64  `json:"amount" binding:"required,gt=0"` // Minor units
	CurrencyCode string `json:"currencyCode" binding:"required,currency_code"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string `json:"accountID"`
	CurrencyCode string `json:"currencyCode"`
	Balance      int64  `json:"balance"` // Minor units
	PaymentCount int    `json:"paymentCount"`
}

// PaymentResponse defines the data returned for a single posted payment.
type PaymentResponse struct {
	PaymentID    string    `json:"paymentID"`
	Amount       int64     `json:"amount"` // Minor units; for debits this includes the fee
	CurrencyCode string    `json:"currencyCode"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
}

// ListPaymentsResponse wraps the payment history of one account.
type ListPaymentsResponse struct {
	AccountID string            `json:"accountID"`
	Payments  []PaymentResponse `json:"payments"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.ID(),
		CurrencyCode: acc.Currency().Code(),
		Balance:      acc.Balance().Amount(),
		PaymentCount: len(acc.Payments()),
	}
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID(),
		Amount:       p.Amount().Amount(),
		CurrencyCode: p.Amount().Currency().Code(),
		Type:         p.Type().String(),
		Date:         p.Date(),
	}
}

// ToListPaymentsResponse converts a payment history to its response DTO.
func ToListPaymentsResponse(accountID string, payments []domain.Payment) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(p)
	}
	return ListPaymentsResponse{AccountID: accountID, Payments: res}
}

// ValidCurrencyCode is a validator.Func for the `currency_code` binding
// tag; it accepts whatever domain.NewCurrency accepts.
func ValidCurrencyCode(fl validator.FieldLevel) bool {
	_, err := domain.NewCurrency(fl.Field().String())
	return err == nil
}
