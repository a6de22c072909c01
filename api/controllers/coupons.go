package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	"github.com/radhanandani03-png/Lotoria/api/validators"
	"github.com/radhanandani03-png/Lotoria/internal/coupons"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

type couponRequest struct {
	Code         string     `json:"code" validate:"required"`
	DiscountType string     `json:"discount_type" validate:"required,oneof=percentage flat"`
	Value        int64      `json:"value" validate:"gt=0"`
	ApplicableTo string     `json:"applicable_to" validate:"required,oneof=all service product"`
	TargetID     *uuid.UUID `json:"target_id"`
	TargetName   *string    `json:"target_name"`
}

func (b couponRequest) toInput() coupons.Input {
	return coupons.Input{
		Code:         b.Code,
		DiscountType: enums.DiscountType(b.DiscountType),
		Value:        b.Value,
		ApplicableTo: enums.CouponScope(b.ApplicableTo),
		TargetID:     b.TargetID,
		TargetName:   b.TargetName,
	}
}

// CouponsList returns every coupon for the admin console.
func CouponsList(svc coupons.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func CouponsCreate(svc coupons.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body couponRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out, err := svc.Create(r.Context(), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}

func CouponsUpdate(svc coupons.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body couponRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out, err := svc.Update(r.Context(), id, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func CouponsDelete(svc coupons.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
