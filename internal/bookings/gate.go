package bookings

import (
	"strings"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

// CheckoutInput is everything a customer submits at checkout. Cart
// contents are loaded server side, never trusted from the client.
type CheckoutInput struct {
	CustomerName  string
	Mobile        string
	Address       string
	Date          string
	TimeSlot      string
	ServiceID     *uuid.UUID
	DealID        *uuid.UUID
	CouponCode    string
	PaymentMethod enums.PaymentMethod
}

// validateGate enforces the checkout gate: contact details are always
// required, and the order needs either cart items or a dated
// service/deal selection.
func validateGate(input CheckoutInput, cartSize int) error {
	details := map[string]string{}

	if strings.TrimSpace(input.CustomerName) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		details["address"] = "is required"
	}
	if !isTenDigitMobile(input.Mobile) {
		details["mobile"] = "must be exactly 10 digits"
	}
	if !input.PaymentMethod.IsValid() {
		details["payment_method"] = "is invalid"
	}

	hasSelection := input.ServiceID != nil || input.DealID != nil
	switch {
	case cartSize > 0:
		// Product orders need no appointment slot.
	case hasSelection:
		if strings.TrimSpace(input.Date) == "" {
			details["date"] = "is required"
		}
		if !enums.IsValidTimeSlot(input.TimeSlot) {
			details["time_slot"] = "is invalid"
		}
		if input.ServiceID != nil && input.DealID != nil {
			details["selection"] = "choose either a service or a deal"
		}
	default:
		details["selection"] = "cart is empty and no service or deal selected"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "checkout details incomplete").WithDetails(details)
	}
	return nil
}

func isTenDigitMobile(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
