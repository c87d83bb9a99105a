package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mzalewski/bank_payments_app/internal/apperrors"
	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	portsrepo "github.com/mzalewski/bank_payments_app/internal/core/ports/repositories"
	"github.com/mzalewski/bank_payments_app/internal/models"
	"github.com/mzalewski/bank_payments_app/internal/utils/mapping"
)

type accountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &accountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure accountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// SaveAccount persists the aggregate's full state within a DB transaction:
// the account row is upserted and any payments not yet stored are appended.
// Payment rows are never updated; the history is append-only.
func (r *accountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	modelAccount := mapping.ToModelAccount(account)
	paymentRows := mapping.ToModelPayments(account)
	now := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	accountQuery := `
		INSERT INTO accounts (account_id, currency_code, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (account_id) DO UPDATE
		SET currency_code = EXCLUDED.currency_code,
		    balance = EXCLUDED.balance,
		    last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = tx.Exec(ctx, accountQuery,
		modelAccount.AccountID,
		modelAccount.CurrencyCode,
		modelAccount.Balance,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", modelAccount.AccountID, err)
	}

	batch := &pgx.Batch{}
	paymentQuery := `
		INSERT INTO payments (payment_id, account_id, amount, currency_code, payment_type, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (payment_id) DO NOTHING;
	`
	for _, row := range paymentRows {
		batch.Queue(paymentQuery,
			row.PaymentID,
			row.AccountID,
			row.Amount,
			row.CurrencyCode,
			row.PaymentType,
			row.PostedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range paymentRows {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to save payments for account %s: %w", modelAccount.AccountID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to save payments for account %s: %w", modelAccount.AccountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves an account with its full payment history.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accountQuery := `
		SELECT account_id, currency_code, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAccount models.Account
	err := r.Pool.QueryRow(ctx, accountQuery, accountID).Scan(
		&modelAccount.AccountID,
		&modelAccount.CurrencyCode,
		&modelAccount.Balance,
		&modelAccount.CreatedAt,
		&modelAccount.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	paymentQuery := `
		SELECT payment_id, account_id, amount, currency_code, payment_type, posted_at
		FROM payments
		WHERE account_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, paymentQuery, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var paymentRows []models.Payment
	for rows.Next() {
		var row models.Payment
		if err := rows.Scan(
			&row.PaymentID,
			&row.AccountID,
			&row.Amount,
			&row.CurrencyCode,
			&row.PaymentType,
			&row.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment for account %s: %w", accountID, err)
		}
		paymentRows = append(paymentRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load payments for account %s: %w", accountID, err)
	}

	return mapping.ToDomainAccount(modelAccount, paymentRows)
}

// CountDebitsOnDate counts the debit payments posted by the account on the
// UTC calendar date of the given instant.
func (r *accountRepository) CountDebitsOnDate(ctx context.Context, accountID string, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM payments
		WHERE account_id = $1
		  AND payment_type = $2
		  AND (posted_at AT TIME ZONE 'UTC')::date = $3::date;
	`
	var count int
	err := r.Pool.QueryRow(ctx, query,
		accountID,
		domain.PaymentTypeDebit.String(),
		date.UTC().Format(time.DateOnly),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count debits for account %s: %w", accountID, err)
	}
	return count, nil
}
