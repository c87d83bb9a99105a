package services

import (
	"context"

	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	"github.com/mzalewski/bank_payments_app/internal/dto"
)

// AccountSvcFacade is the application-facing surface for account
// operations. Credit and Debit are the only mutating entry points; each
// performs load, domain call, save.
type AccountSvcFacade interface {
	// CreateAccount opens a new account with an opening balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListPayments returns the account's payment history in posting order.
	ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error)

	// Credit posts a credit payment to the account.
	Credit(ctx context.Context, accountID string, amount domain.Money) (*domain.Account, error)

	// Debit posts a debit payment (principal plus fee) to the account,
	// subject to the daily debit cap and the balance check.
	Debit(ctx context.Context, accountID string, amount domain.Money) (*domain.Account, error)
}

// ServiceContainer aggregates the service interfaces handed to the HTTP layer.
type ServiceContainer struct {
	Account AccountSvcFacade
}
