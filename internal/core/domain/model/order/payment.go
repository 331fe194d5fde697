package order

import (
	"fmt"
	"strings"

	"fleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentMethod tells whether the customer paid when ordering or pays the driver on delivery.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	PaidUpfront
	PaidOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownPaymentMethod has no wire representation
	return map[PaymentMethod]string{
		PaidUpfront:    "paid-upfront",
		PaidOnDelivery: "paid-on-delivery",
	}
}

func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for m, str := range getPaymentMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Payment is the amount a driver collected at the door and how it was paid (cash, card, ...).
type Payment struct {
	amount decimal.Decimal
	method string
}

func NewPayment(amount decimal.Decimal, method string) (Payment, error) {
	method = strings.TrimSpace(method)
	if amount.IsNegative() {
		return Payment{}, errs.NewValueIsOutOfRangeError("paidAmount", amount.String(), 0, "order value")
	}
	if method == "" {
		return Payment{}, errs.NewValueIsRequiredError("paidMethod")
	}
	return Payment{amount: amount, method: method}, nil
}

func (p Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p Payment) Method() string {
	return p.method
}
