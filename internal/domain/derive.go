package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency     = "USD"
	DefaultPaymentTerms = "Net 30"

	// defaultTermDays is applied when payment terms cannot be parsed.
	// A malformed label on one row must not abort a whole batch.
	defaultTermDays = 30

	dueOnReceipt = "Due on Receipt"
)

// Amount returns quantity × rate for one line item. Full precision is
// retained for summation; rounding to two places happens only at display.
func Amount(item LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.Rate)
}

// Subtotal sums the derived amounts of all items.
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(Amount(item))
	}
	return total
}

// TaxAmount computes subtotal × rate / 100.
func TaxAmount(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Div(decimal.NewFromInt(100))
}

// Total computes subtotal + tax.
func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// DueDate resolves the due date from a payment terms label.
// "Due on Receipt" means the invoice date itself; otherwise the trailing
// integer of a "<word> <n>" label (e.g. "Net 30") is added as days.
// Unparseable labels fall back to 30 days rather than failing.
func DueDate(invoiceDate time.Time, paymentTerms string) time.Time {
	terms := strings.TrimSpace(paymentTerms)
	if terms == dueOnReceipt {
		return invoiceDate
	}

	days := defaultTermDays
	if fields := strings.Fields(terms); len(fields) >= 2 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil && n >= 0 {
			days = n
		}
	}
	return invoiceDate.AddDate(0, 0, days)
}
