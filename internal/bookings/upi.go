package bookings

import (
	"fmt"
	"net/url"
)

const upiPayeeName = "LotoriaBeauty"

// BuildUPILink produces the deep link a customer opens in their UPI
// app to pay the booking total.
func BuildUPILink(vpa string, amount int64) string {
	if vpa == "" || amount <= 0 {
		return ""
	}
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", upiPayeeName)
	q.Set("am", fmt.Sprintf("%d", amount))
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode()
}
