// Package pricing computes booking totals and applies coupon discounts.
// All amounts are whole rupees.
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

// Line is one cart entry priced at checkout. DiscountPrice, when set,
// is the price actually charged.
type Line struct {
	ProductID     uuid.UUID
	UnitPrice     int64
	DiscountPrice *int64
}

// EffectivePrice returns the amount charged for this line.
func (l Line) EffectivePrice() int64 {
	if l.DiscountPrice != nil {
		return *l.DiscountPrice
	}
	return l.UnitPrice
}

// Context describes what is being purchased. Exactly one of the
// selection fields is meaningful per Kind.
type Context struct {
	Kind      enums.BookingType
	Lines     []Line
	ServiceID uuid.UUID
	DealID    uuid.UUID
	// Amount carries the service price or deal offer price for
	// single-selection bookings.
	Amount int64
}

// ProductOrder builds a pricing context for a cart of products.
func ProductOrder(lines []Line) Context {
	return Context{Kind: enums.BookingTypeProductOrder, Lines: lines}
}

// ServiceSelection builds a pricing context for a single service booking.
func ServiceSelection(serviceID uuid.UUID, price int64) Context {
	return Context{Kind: enums.BookingTypeService, ServiceID: serviceID, Amount: price}
}

// DealSelection builds a pricing context for a deal booking.
func DealSelection(dealID uuid.UUID, offerPrice int64) Context {
	return Context{Kind: enums.BookingTypeDealBooking, DealID: dealID, Amount: offerPrice}
}

// Coupon is the discount definition pricing operates on.
type Coupon struct {
	Code         string
	DiscountType enums.DiscountType
	Value        int64
	ApplicableTo enums.CouponScope
	TargetID     *uuid.UUID
}

// Result is a priced quote. Total is never negative.
type Result struct {
	BaseAmount int64
	Discount   int64
	Total      int64
}

// BaseAmount sums the effective prices in the context.
func BaseAmount(ctx Context) int64 {
	switch ctx.Kind {
	case enums.BookingTypeProductOrder:
		var sum int64
		for _, line := range ctx.Lines {
			sum += line.EffectivePrice()
		}
		return sum
	case enums.BookingTypeService, enums.BookingTypeDealBooking:
		return ctx.Amount
	}
	return 0
}

// Quote prices the context without any coupon.
func Quote(ctx Context) Result {
	base := BaseAmount(ctx)
	return Result{BaseAmount: base, Discount: 0, Total: base}
}

// ApplyCoupon prices the context with the coupon applied. Scope and
// target rejections come back as typed errors; the caller decides
// whether to surface them or fall back to the undiscounted quote.
func ApplyCoupon(ctx Context, coupon Coupon) (Result, error) {
	base := BaseAmount(ctx)

	if err := checkScope(ctx, coupon); err != nil {
		return Result{}, err
	}

	discountBase := base
	if coupon.TargetID != nil {
		matched, narrowTo, err := matchTarget(ctx, coupon)
		if err != nil {
			return Result{}, err
		}
		// Percentage coupons narrow the discount base to the targeted
		// item; flat coupons apply their full value regardless.
		if matched && coupon.DiscountType == enums.DiscountTypePercentage {
			discountBase = narrowTo
		}
	}

	discount := computeDiscount(discountBase, coupon)
	total := base - discount
	if total < 0 {
		total = 0
	}
	return Result{BaseAmount: base, Discount: discount, Total: total}, nil
}

func checkScope(ctx Context, coupon Coupon) error {
	switch coupon.ApplicableTo {
	case enums.CouponScopeAll:
		return nil
	case enums.CouponScopeService:
		if ctx.Kind != enums.BookingTypeService {
			return pkgerrors.New(pkgerrors.CodeCouponScope, "coupon only valid for service bookings").
				WithDetails(map[string]any{"code": coupon.Code, "applicable_to": string(coupon.ApplicableTo)})
		}
		return nil
	case enums.CouponScopeProduct:
		if ctx.Kind != enums.BookingTypeProductOrder {
			return pkgerrors.New(pkgerrors.CodeCouponScope, "coupon only valid for product orders").
				WithDetails(map[string]any{"code": coupon.Code, "applicable_to": string(coupon.ApplicableTo)})
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeCouponScope, "coupon has an unknown scope").
		WithDetails(map[string]any{"code": coupon.Code})
}

// matchTarget verifies the targeted item is part of the purchase and
// returns the narrowed discount base for it.
func matchTarget(ctx Context, coupon Coupon) (bool, int64, error) {
	target := *coupon.TargetID

	switch ctx.Kind {
	case enums.BookingTypeProductOrder:
		// First matching line only. A product repeated in the cart is
		// still discounted once, off that line's effective price.
		for _, line := range ctx.Lines {
			if line.ProductID == target {
				return true, line.EffectivePrice(), nil
			}
		}
		return false, 0, targetError(coupon)
	case enums.BookingTypeService:
		if ctx.ServiceID != target {
			return false, 0, targetError(coupon)
		}
		return true, ctx.Amount, nil
	case enums.BookingTypeDealBooking:
		if ctx.DealID != target {
			return false, 0, targetError(coupon)
		}
		return true, ctx.Amount, nil
	}
	return false, 0, targetError(coupon)
}

func targetError(coupon Coupon) error {
	return pkgerrors.New(pkgerrors.CodeCouponTarget, "coupon not valid for the selected item").
		WithDetails(map[string]any{"code": coupon.Code})
}

func computeDiscount(base int64, coupon Coupon) int64 {
	switch coupon.DiscountType {
	case enums.DiscountTypePercentage:
		return decimal.NewFromInt(base).
			Mul(decimal.NewFromInt(coupon.Value)).
			Div(decimal.NewFromInt(100)).
			Floor().
			IntPart()
	case enums.DiscountTypeFlat:
		return coupon.Value
	}
	return 0
}

// DealPercentageOff derives the advertised percentage from the two
// prices, rounded to the nearest whole percent.
func DealPercentageOff(originalPrice, offerPrice int64) int {
	if originalPrice <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(originalPrice - offerPrice).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(originalPrice)).
		Round(0).
		IntPart()
	return int(pct)
}
