package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	portsrepo "github.com/mzalewski/bank_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mzalewski/bank_payments_app/internal/core/ports/services"
	"github.com/mzalewski/bank_payments_app/internal/dto"
)

// accountServiceImpl implements the AccountSvcFacade interface. It is thin
// orchestration around the Account aggregate: load, domain call, save. All
// business rules live in the aggregate.
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	now         func() time.Time
}

// ServiceOption is a functional option for configuring the account service.
type ServiceOption func(*accountServiceImpl)

// WithClock overrides the service's time source, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *accountServiceImpl) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountServiceImpl{
		accountRepo: repo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency, err := domain.NewCurrency(req.CurrencyCode)
	if err != nil {
		s.LogError(ctx, err, "Invalid currency code for new account",
			slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}
	if req.InitialBalance < 0 {
		return nil, fmt.Errorf("initial balance must not be negative: %w", apperrors.ErrValidation)
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = uuid.NewString()
	} else {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err == nil {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrDuplicate)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check for existing account",
				slog.String("account_id", accountID))
			return nil, err
		}
	}

	account, err := domain.NewAccount(accountID, currency, domain.NewMoney(req.InitialBalance, currency))
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save new account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", accountID),
		slog.String("currency_code", currency.Code()),
		slog.Int64("initial_balance", req.InitialBalance))
	return account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.Payments(), nil
}

func (s *accountServiceImpl) Credit(ctx context.Context, accountID string, amount domain.Money) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := account.Credit(amount, s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account after credit",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit posted",
		slog.String("account_id", accountID),
		slog.Int64("amount", amount.Amount()),
		slog.Int64("balance", account.Balance().Amount()))
	return account, nil
}

// Debit reads today's debit count immediately before the domain call. Two
// debits racing past that window can both observe the same count; callers
// that need the daily cap to hold under concurrent access must serialize
// per account.
func (s *accountServiceImpl) Debit(ctx context.Context, accountID string, amount domain.Money) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	dailyDebitCount, err := s.accountRepo.CountDebitsOnDate(ctx, accountID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to count today's debits",
			slog.String("account_id", accountID))
		return nil, err
	}

	if err := account.Debit(amount, now, dailyDebitCount); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account after debit",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Debit posted",
		slog.String("account_id", accountID),
		slog.Int64("amount", amount.Amount()),
		slog.Int64("balance", account.Balance().Amount()),
		slog.Int("daily_debit_count", dailyDebitCount+1))
	return account, nil
}
