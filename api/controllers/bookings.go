package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	"github.com/radhanandani03-png/Lotoria/api/validators"
	"github.com/radhanandani03-png/Lotoria/internal/bookings"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
	"github.com/radhanandani03-png/Lotoria/pkg/pagination"
)

type quoteRequest struct {
	ServiceID  *uuid.UUID `json:"service_id"`
	DealID     *uuid.UUID `json:"deal_id"`
	CouponCode string     `json:"coupon_code"`
}

type checkoutRequest struct {
	CustomerName  string     `json:"customer_name" validate:"required"`
	Mobile        string     `json:"mobile" validate:"required"`
	Address       string     `json:"address" validate:"required"`
	Date          string     `json:"date"`
	TimeSlot      string     `json:"time_slot"`
	ServiceID     *uuid.UUID `json:"service_id"`
	DealID        *uuid.UUID `json:"deal_id"`
	CouponCode    string     `json:"coupon_code"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=upi cod card"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type notifyRequest struct {
	Message string `json:"message" validate:"required"`
}

// BookingsQuote prices the caller's current selection without booking.
func BookingsQuote(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body quoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		quote, err := svc.Quote(r.Context(), userID, bookings.QuoteInput{
			ServiceID:  body.ServiceID,
			DealID:     body.DealID,
			CouponCode: body.CouponCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// BookingsCheckout runs the gate, prices the order, and persists it.
func BookingsCheckout(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.Checkout(r.Context(), userID, bookings.CheckoutInput{
			CustomerName:  body.CustomerName,
			Mobile:        body.Mobile,
			Address:       body.Address,
			Date:          body.Date,
			TimeSlot:      body.TimeSlot,
			ServiceID:     body.ServiceID,
			DealID:        body.DealID,
			CouponCode:    body.CouponCode,
			PaymentMethod: enums.PaymentMethod(body.PaymentMethod),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// BookingsMine lists the caller's bookings.
func BookingsMine(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out, err := svc.ListMine(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

// BookingsGet returns one of the caller's bookings.
func BookingsGet(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		booking, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}

// AdminBookingsList pages through all bookings, newest first.
func AdminBookingsList(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		}
		rows, next, err := svc.List(r.Context(), r.URL.Query().Get("status"), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"bookings":    rows,
			"next_cursor": next,
		})
	}
}

// AdminBookingsUpdateStatus moves a booking through its lifecycle.
func AdminBookingsUpdateStatus(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body statusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		booking, err := svc.UpdateStatus(r.Context(), id, enums.BookingStatus(body.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}

// AdminBookingsNotify attaches a message shown on the customer's booking.
func AdminBookingsNotify(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body notifyRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		booking, err := svc.Notify(r.Context(), id, body.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}
