package enums

// TimeSlots enumerates the bookable one-hour windows. Home visits run
// 6 AM to 8 PM; slot capacity is deliberately not enforced.
var TimeSlots = []string{
	"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM", "08:00 AM - 09:00 AM",
	"09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM", "01:00 PM - 02:00 PM", "02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM", "04:00 PM - 05:00 PM", "05:00 PM - 06:00 PM",
	"06:00 PM - 07:00 PM", "07:00 PM - 08:00 PM",
}

// IsValidTimeSlot reports whether the value is one of the bookable windows.
func IsValidTimeSlot(value string) bool {
	for _, slot := range TimeSlots {
		if slot == value {
			return true
		}
	}
	return false
}
