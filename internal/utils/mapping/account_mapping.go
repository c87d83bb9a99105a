package mapping

import (
	"fmt"

	"github.com/mzalewski/bank_payments_app/internal/core/domain"
	"github.com/mzalewski/bank_payments_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account. Timestamps
// are left for the repository to fill.
func ToModelAccount(d *domain.Account) models.Account {
	return models.Account{
		AccountID:    d.ID(),
		CurrencyCode: d.Currency().Code(),
		Balance:      d.Balance().Amount(),
	}
}

// ToModelPayments converts the aggregate's payment history to model rows.
func ToModelPayments(d *domain.Account) []models.Payment {
	payments := d.Payments()
	rows := make([]models.Payment, len(payments))
	for i, p := range payments {
		rows[i] = models.Payment{
			PaymentID:    p.ID(),
			AccountID:    d.ID(),
			Amount:       p.Amount().Amount(),
			CurrencyCode: p.Amount().Currency().Code(),
			PaymentType:  p.Type().String(),
			PostedAt:     p.Date(),
		}
	}
	return rows
}

// ToDomainPayment converts a model Payment back to its domain value.
func ToDomainPayment(m models.Payment) (domain.Payment, error) {
	currency, err := domain.NewCurrency(m.CurrencyCode)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment %s: %w", m.PaymentID, err)
	}
	paymentType, err := domain.ParsePaymentType(m.PaymentType)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment %s: %w", m.PaymentID, err)
	}
	return domain.NewPayment(m.PaymentID, domain.NewMoney(m.Amount, currency), paymentType, m.PostedAt), nil
}

// ToDomainAccount rebuilds the aggregate from its model rows. The payment
// rows must already be in posting order.
func ToDomainAccount(m models.Account, paymentRows []models.Payment) (*domain.Account, error) {
	currency, err := domain.NewCurrency(m.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", m.AccountID, err)
	}

	payments := make([]domain.Payment, len(paymentRows))
	for i, row := range paymentRows {
		payments[i], err = ToDomainPayment(row)
		if err != nil {
			return nil, err
		}
	}

	balance := domain.NewMoney(m.Balance, currency)
	return domain.RehydrateAccount(m.AccountID, currency, balance, payments), nil
}
