package enums

import "fmt"

// BookingType distinguishes what a booking record pays for.
type BookingType string

const (
	BookingTypeService      BookingType = "service"
	BookingTypeProductOrder BookingType = "product_order"
	BookingTypeDealBooking  BookingType = "deal_booking"
)

var validBookingTypes = []BookingType{
	BookingTypeService,
	BookingTypeProductOrder,
	BookingTypeDealBooking,
}

func (t BookingType) String() string {
	return string(t)
}

func (t BookingType) IsValid() bool {
	for _, candidate := range validBookingTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func ParseBookingType(value string) (BookingType, error) {
	for _, candidate := range validBookingTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking type %q", value)
}
