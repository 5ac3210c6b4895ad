// Package ledger folds payment transactions into a booking's paid total and payment status.
package ledger

import (
	"strings"
	bookingModel "tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/payment/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionIDLength = 8

// Fold sums the completed entries. Refunds are stored negative, so they reduce the total.
func Fold(transactions []model.PaymentTransaction) decimal.Decimal {
	paid := decimal.Zero

	for _, txn := range transactions {
		if txn.Status != model.StatusCompleted {
			continue
		}

		paid = paid.Add(txn.Amount)
	}

	return paid
}

// DeriveStatus is paid once paid covers total, partial while anything is paid, pending otherwise.
func DeriveStatus(paid, total decimal.Decimal) string {
	switch {
	case paid.GreaterThanOrEqual(total):
		return bookingModel.PaymentStatusPaid
	case paid.IsPositive():
		return bookingModel.PaymentStatusPartial
	default:
		return bookingModel.PaymentStatusPending
	}
}

func Remaining(paid, total decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, total.Sub(paid))
}

// NewTransactionID returns prefix-XXXXXXXX with eight uppercase alphanumerics.
func NewTransactionID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return prefix + "-" + strings.ToUpper(raw[:transactionIDLength])
}
