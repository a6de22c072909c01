package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/internal/pricing"
	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
	"github.com/radhanandani03-png/Lotoria/pkg/pagination"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

type bookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListPage(ctx context.Context, status string, limit int, cursor *pagination.Cursor) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
}

type cartStore interface {
	Items(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type catalogLoader interface {
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	GetDeal(ctx context.Context, id uuid.UUID) (*models.Deal, error)
}

type couponResolver interface {
	Resolve(ctx context.Context, code string) (pricing.Coupon, error)
}

type paymentConfig interface {
	UPIVPA(ctx context.Context) (string, error)
	AcceptedMethods(ctx context.Context) ([]enums.PaymentMethod, error)
}

// QuoteInput asks for a price preview before checkout.
type QuoteInput struct {
	ServiceID  *uuid.UUID
	DealID     *uuid.UUID
	CouponCode string
}

// QuoteResult is the priced preview shown on the booking screen.
type QuoteResult struct {
	BaseAmount int64              `json:"base_amount"`
	Discount   int64              `json:"discount"`
	Total      int64              `json:"total"`
	CouponCode string             `json:"coupon_code,omitempty"`
	Items      types.BookingItems `json:"items"`
}

// CheckoutResult is the confirmed booking plus its payment link.
type CheckoutResult struct {
	Booking     *models.Booking `json:"booking"`
	PaymentLink string          `json:"payment_link,omitempty"`
}

// Service exposes quoting, checkout, and booking management.
type Service interface {
	Quote(ctx context.Context, userID uuid.UUID, input QuoteInput) (*QuoteResult, error)
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Booking, error)
	// Admin surface.
	List(ctx context.Context, status string, params pagination.Params) ([]models.Booking, string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*models.Booking, error)
	Notify(ctx context.Context, id uuid.UUID, message string) (*models.Booking, error)
}

type service struct {
	repo     bookingRepo
	cart     cartStore
	catalog  catalogLoader
	coupons  couponResolver
	payments paymentConfig
	logg     *logger.Logger
}

// NewService builds the booking service backed by the provided stack.
func NewService(repo bookingRepo, cart cartStore, catalog catalogLoader, coupons couponResolver, payments paymentConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if coupons == nil {
		return nil, fmt.Errorf("coupon resolver required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment config required")
	}
	return &service{
		repo:     repo,
		cart:     cart,
		catalog:  catalog,
		coupons:  coupons,
		payments: payments,
		logg:     logg,
	}, nil
}

// priced bundles everything derived while building a pricing context.
type priced struct {
	kind      enums.BookingType
	ctx       pricing.Context
	items     types.BookingItems
	serviceID *uuid.UUID
	dealID    *uuid.UUID
}

func (s *service) Quote(ctx context.Context, userID uuid.UUID, input QuoteInput) (*QuoteResult, error) {
	cartItems, err := s.cart.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.buildPricingContext(ctx, cartItems, input.ServiceID, input.DealID)
	if err != nil {
		return nil, err
	}

	result := pricing.Quote(p.ctx)
	code := strings.TrimSpace(input.CouponCode)
	if code != "" {
		coupon, err := s.coupons.Resolve(ctx, code)
		if err != nil {
			return nil, err
		}
		result, err = pricing.ApplyCoupon(p.ctx, coupon)
		if err != nil {
			return nil, err
		}
	}

	items := p.items
	applyPaidPrices(items, result)
	return &QuoteResult{
		BaseAmount: result.BaseAmount,
		Discount:   result.Discount,
		Total:      result.Total,
		CouponCode: code,
		Items:      items,
	}, nil
}

func (s *service) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*CheckoutResult, error) {
	cartItems, err := s.cart.Items(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := validateGate(input, len(cartItems)); err != nil {
		return nil, err
	}

	if err := s.checkPaymentAccepted(ctx, input.PaymentMethod); err != nil {
		return nil, err
	}

	// A non-empty cart wins over any service/deal selection. The items
	// loaded for the gate are the ones priced, so the two never diverge.
	var serviceID, dealID *uuid.UUID
	if len(cartItems) == 0 {
		serviceID, dealID = input.ServiceID, input.DealID
	}

	p, err := s.buildPricingContext(ctx, cartItems, serviceID, dealID)
	if err != nil {
		return nil, err
	}

	result := pricing.Quote(p.ctx)
	code := strings.TrimSpace(input.CouponCode)
	if code != "" {
		coupon, err := s.coupons.Resolve(ctx, code)
		if err != nil {
			return nil, err
		}
		result, err = pricing.ApplyCoupon(p.ctx, coupon)
		if err != nil {
			return nil, err
		}
	}
	applyPaidPrices(p.items, result)

	booking := &models.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Mobile:        input.Mobile,
		Address:       strings.TrimSpace(input.Address),
		Date:          strings.TrimSpace(input.Date),
		TimeSlot:      strings.TrimSpace(input.TimeSlot),
		Type:          p.kind,
		ServiceID:     p.serviceID,
		DealID:        p.dealID,
		Status:        enums.BookingStatusPending,
		BaseAmount:    result.BaseAmount,
		Discount:      result.Discount,
		TotalAmount:   result.Total,
		PaymentMethod: input.PaymentMethod,
		Items:         p.items,
	}
	if code != "" {
		booking.CouponCode = &code
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
	}

	if p.kind == enums.BookingTypeProductOrder {
		if err := s.cart.Clear(ctx, userID); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithBookingID(ctx, booking.ID.String()), "cart clear after checkout failed")
		}
	}

	out := &CheckoutResult{Booking: booking}
	if input.PaymentMethod == enums.PaymentMethodUPI {
		vpa, err := s.payments.UPIVPA(ctx)
		if err != nil {
			return nil, err
		}
		out.PaymentLink = BuildUPILink(vpa, booking.TotalAmount)
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"booking_id": booking.ID.String(),
			"type":       string(booking.Type),
			"total":      booking.TotalAmount,
		})
		s.logg.Info(logCtx, "booking.created")
	}
	return out, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	out, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}
	if booking.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
	}
	return booking, nil
}

func (s *service) List(ctx context.Context, status string, params pagination.Params) ([]models.Booking, string, error) {
	if status != "" {
		if _, err := enums.ParseBookingStatus(status); err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListPage(ctx, status, limit+1, cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}

	rows, next := pagination.Trim(rows, limit, func(b models.Booking) pagination.Cursor {
		return pagination.Cursor{CreatedAt: b.CreatedAt, ID: b.ID}
	})
	return rows, next, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.BookingStatus) (*models.Booking, error) {
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next))
	}

	booking.Status = next
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update booking")
	}
	return booking, nil
}

func (s *service) Notify(ctx context.Context, id uuid.UUID, message string) (*models.Booking, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notification message is required")
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}

	booking.AdminNotification = &message
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update booking")
	}
	return booking, nil
}

// checkPaymentAccepted rejects methods the store has switched off.
func (s *service) checkPaymentAccepted(ctx context.Context, method enums.PaymentMethod) error {
	accepted, err := s.payments.AcceptedMethods(ctx)
	if err != nil {
		return err
	}
	for _, m := range accepted {
		if m == method {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("payment method %s is not accepted", method)).
		WithDetails(map[string]any{"accepted": accepted})
}

// buildPricingContext turns the cart or a selection into a pricing
// context plus the item snapshot stored on the booking.
func (s *service) buildPricingContext(ctx context.Context, cartItems []models.CartItem, serviceID, dealID *uuid.UUID) (*priced, error) {
	if len(cartItems) > 0 {
		return s.priceCart(ctx, cartItems)
	}

	if serviceID != nil {
		svc, err := s.catalog.GetService(ctx, *serviceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "service not found")
			}
			return nil, err
		}
		return &priced{
			kind:      enums.BookingTypeService,
			ctx:       pricing.ServiceSelection(svc.ID, svc.Price),
			serviceID: serviceID,
			items: types.BookingItems{{
				ItemID:    svc.ID,
				Kind:      "service",
				Name:      svc.Name,
				UnitPrice: svc.Price,
				PaidPrice: svc.Price,
			}},
		}, nil
	}

	if dealID != nil {
		deal, err := s.catalog.GetDeal(ctx, *dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "deal not found")
			}
			return nil, err
		}
		return &priced{
			kind:   enums.BookingTypeDealBooking,
			ctx:    pricing.DealSelection(deal.ID, deal.OfferPrice),
			dealID: dealID,
			items: types.BookingItems{{
				ItemID:    deal.ID,
				Kind:      "deal",
				Name:      deal.Title,
				UnitPrice: deal.OriginalPrice,
				PaidPrice: deal.OfferPrice,
			}},
		}, nil
	}

	// Empty context quotes to zero; checkout rejects it at the gate.
	return &priced{kind: enums.BookingTypeProductOrder, ctx: pricing.Context{}, items: types.BookingItems{}}, nil
}

func (s *service) priceCart(ctx context.Context, cartItems []models.CartItem) (*priced, error) {
	ids := make([]uuid.UUID, 0, len(cartItems))
	seen := map[uuid.UUID]struct{}{}
	for _, item := range cartItems {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]pricing.Line, 0, len(cartItems))
	items := make(types.BookingItems, 0, len(cartItems))
	for _, item := range cartItems {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "cart references a product that no longer exists").
				WithDetails(map[string]any{"product_id": item.ProductID.String()})
		}
		lines = append(lines, pricing.Line{
			ProductID:     product.ID,
			UnitPrice:     product.Price,
			DiscountPrice: product.DiscountPrice,
		})
		items = append(items, types.BookingItem{
			ItemID:    product.ID,
			Kind:      "product",
			Name:      product.Name,
			UnitPrice: product.Price,
			PaidPrice: product.EffectivePrice(),
		})
	}

	return &priced{
		kind:  enums.BookingTypeProductOrder,
		ctx:   pricing.ProductOrder(lines),
		items: items,
	}, nil
}

// applyPaidPrices spreads a single-item discount onto the snapshot so
// receipts show what was actually charged. Multi-item discounts stay
// at the order level.
func applyPaidPrices(items types.BookingItems, result pricing.Result) {
	if len(items) == 1 && result.Discount > 0 {
		paid := items[0].PaidPrice - result.Discount
		if paid < 0 {
			paid = 0
		}
		items[0].PaidPrice = paid
	}
}
