package bookings

import (
	"testing"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

func validServiceInput() CheckoutInput {
	sid := uuid.New()
	return CheckoutInput{
		CustomerName:  "Priya Sharma",
		Mobile:        "9876543210",
		Address:       "12 MG Road, Pune",
		Date:          "2026-09-05",
		TimeSlot:      "11:00 AM - 12:00 PM",
		ServiceID:     &sid,
		PaymentMethod: enums.PaymentMethodUPI,
	}
}

func gateDetails(t *testing.T, err error) map[string]string {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed validation error, got %v", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", typed.Details())
	}
	return details
}

func TestGatePassesForServiceBooking(t *testing.T) {
	if err := validateGate(validServiceInput(), 0); err != nil {
		t.Fatalf("expected gate to pass: %v", err)
	}
}

func TestGatePassesForCartWithoutSlot(t *testing.T) {
	input := validServiceInput()
	input.ServiceID = nil
	input.Date = ""
	input.TimeSlot = ""
	if err := validateGate(input, 3); err != nil {
		t.Fatalf("product orders need no slot: %v", err)
	}
}

func TestGateRejectsMissingContactFields(t *testing.T) {
	input := validServiceInput()
	input.CustomerName = "  "
	input.Address = ""
	err := validateGate(input, 0)
	details := gateDetails(t, err)
	if details["name"] == "" || details["address"] == "" {
		t.Fatalf("expected name and address failures, got %v", details)
	}
}

func TestGateRejectsBadMobile(t *testing.T) {
	for _, mobile := range []string{"", "12345", "98765432101", "98765abc10", "+919876543"} {
		input := validServiceInput()
		input.Mobile = mobile
		err := validateGate(input, 0)
		details := gateDetails(t, err)
		if details["mobile"] == "" {
			t.Fatalf("mobile %q should fail", mobile)
		}
	}
}

func TestGateRejectsEmptySelection(t *testing.T) {
	input := validServiceInput()
	input.ServiceID = nil
	err := validateGate(input, 0)
	details := gateDetails(t, err)
	if details["selection"] == "" {
		t.Fatalf("expected selection failure, got %v", details)
	}
}

func TestGateRejectsMissingSlotForSelection(t *testing.T) {
	input := validServiceInput()
	input.Date = ""
	input.TimeSlot = "midnight"
	err := validateGate(input, 0)
	details := gateDetails(t, err)
	if details["date"] == "" || details["time_slot"] == "" {
		t.Fatalf("expected date and slot failures, got %v", details)
	}
}

func TestGateRejectsDoubleSelection(t *testing.T) {
	input := validServiceInput()
	did := uuid.New()
	input.DealID = &did
	err := validateGate(input, 0)
	details := gateDetails(t, err)
	if details["selection"] == "" {
		t.Fatalf("expected selection conflict, got %v", details)
	}
}

func TestBuildUPILink(t *testing.T) {
	link := BuildUPILink("lotoria@upi", 725)
	want := "upi://pay?am=725&cu=INR&pa=lotoria%40upi&pn=LotoriaBeauty"
	if link != want {
		t.Fatalf("unexpected link %s", link)
	}

	if BuildUPILink("", 100) != "" {
		t.Fatal("expected empty link without vpa")
	}
	if BuildUPILink("lotoria@upi", 0) != "" {
		t.Fatal("expected empty link for zero amount")
	}
}
