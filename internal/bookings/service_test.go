package bookings

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/internal/pricing"
	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/pagination"
)

type stubRepo struct {
	created  []*models.Booking
	byID     map[uuid.UUID]*models.Booking
	updated  []*models.Booking
	pageRows []models.Booking
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: map[uuid.UUID]*models.Booking{}}
}

func (s *stubRepo) Create(_ context.Context, booking *models.Booking) error {
	s.created = append(s.created, booking)
	s.byID[booking.ID] = booking
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	if b, ok := s.byID[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubRepo) ListPage(_ context.Context, _ string, limit int, _ *pagination.Cursor) ([]models.Booking, error) {
	if len(s.pageRows) > limit {
		return s.pageRows[:limit], nil
	}
	return s.pageRows, nil
}

func (s *stubRepo) Update(_ context.Context, booking *models.Booking) error {
	s.updated = append(s.updated, booking)
	s.byID[booking.ID] = booking
	return nil
}

type stubCart struct {
	items   []models.CartItem
	cleared bool
	// drainAfterRead empties the cart once it has been read, simulating
	// a concurrent removal between two loads.
	drainAfterRead bool
}

func (s *stubCart) Items(_ context.Context, _ uuid.UUID) ([]models.CartItem, error) {
	items := s.items
	if s.drainAfterRead {
		s.items = nil
	}
	return items, nil
}

func (s *stubCart) Clear(_ context.Context, _ uuid.UUID) error {
	s.cleared = true
	return nil
}

type stubCatalog struct {
	products map[uuid.UUID]models.Product
	service  *models.Service
	deal     *models.Deal
}

func (s *stubCatalog) GetProductsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if s.service != nil && s.service.ID == id {
		return s.service, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) GetDeal(_ context.Context, id uuid.UUID) (*models.Deal, error) {
	if s.deal != nil && s.deal.ID == id {
		return s.deal, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCoupons struct {
	coupons map[string]pricing.Coupon
}

func (s *stubCoupons) Resolve(_ context.Context, code string) (pricing.Coupon, error) {
	if c, ok := s.coupons[code]; ok {
		return c, nil
	}
	return pricing.Coupon{}, pkgerrors.New(pkgerrors.CodeCouponNotFound, "invalid coupon code")
}

type stubPayments struct {
	vpa      string
	accepted []enums.PaymentMethod
}

func (s *stubPayments) UPIVPA(_ context.Context) (string, error) {
	return s.vpa, nil
}

func (s *stubPayments) AcceptedMethods(_ context.Context) ([]enums.PaymentMethod, error) {
	if s.accepted != nil {
		return s.accepted, nil
	}
	return []enums.PaymentMethod{enums.PaymentMethodUPI, enums.PaymentMethodCOD, enums.PaymentMethodCard}, nil
}

func newTestService(t *testing.T, repo *stubRepo, cart *stubCart, catalog *stubCatalog, coupons *stubCoupons) Service {
	t.Helper()
	return newTestServiceWithPayments(t, repo, cart, catalog, coupons, &stubPayments{vpa: "lotoria@upi"})
}

func newTestServiceWithPayments(t *testing.T, repo *stubRepo, cart *stubCart, catalog *stubCatalog, coupons *stubCoupons, payments *stubPayments) Service {
	t.Helper()
	svc, err := NewService(repo, cart, catalog, coupons, payments, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func int64Ptr(v int64) *int64 { return &v }

func TestQuoteCartWithTargetedPercentageCoupon(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	otherID := uuid.New()

	catalog := &stubCatalog{products: map[uuid.UUID]models.Product{
		otherID:  {ID: otherID, Name: "Face Serum", Price: 500},
		targetID: {ID: targetID, Name: "Hair Oil", Price: 400, DiscountPrice: int64Ptr(100)},
	}}
	cart := &stubCart{items: []models.CartItem{
		{UserID: userID, ProductID: otherID, Position: 0},
		{UserID: userID, ProductID: targetID, Position: 1},
		{UserID: userID, ProductID: otherID, Position: 2},
	}}
	coupons := &stubCoupons{coupons: map[string]pricing.Coupon{
		"GLOW25": {
			Code:         "GLOW25",
			DiscountType: enums.DiscountTypePercentage,
			Value:        25,
			ApplicableTo: enums.CouponScopeProduct,
			TargetID:     &targetID,
		},
	}}

	svc := newTestService(t, newStubRepo(), cart, catalog, coupons)

	quote, err := svc.Quote(context.Background(), userID, QuoteInput{CouponCode: "GLOW25"})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.BaseAmount != 1100 {
		t.Fatalf("expected base 1100, got %d", quote.BaseAmount)
	}
	if quote.Discount != 25 {
		t.Fatalf("expected discount 25, got %d", quote.Discount)
	}
	if quote.Total != 1075 {
		t.Fatalf("expected total 1075, got %d", quote.Total)
	}
	if len(quote.Items) != 3 {
		t.Fatalf("expected 3 snapshot items, got %d", len(quote.Items))
	}
}

func TestQuoteCouponCaseSensitive(t *testing.T) {
	userID := uuid.New()
	sid := uuid.New()
	catalog := &stubCatalog{service: &models.Service{ID: sid, Name: "Facial", Price: 800}}
	coupons := &stubCoupons{coupons: map[string]pricing.Coupon{
		"GLOW25": {Code: "GLOW25", DiscountType: enums.DiscountTypeFlat, Value: 100, ApplicableTo: enums.CouponScopeAll},
	}}
	svc := newTestService(t, newStubRepo(), &stubCart{}, catalog, coupons)

	_, err := svc.Quote(context.Background(), userID, QuoteInput{ServiceID: &sid, CouponCode: "glow25"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeCouponNotFound {
		t.Fatalf("expected coupon not found, got %v", err)
	}
}

func TestCheckoutServiceBookingWithUPI(t *testing.T) {
	userID := uuid.New()
	sid := uuid.New()
	repo := newStubRepo()
	catalog := &stubCatalog{service: &models.Service{ID: sid, Name: "Bridal Makeup", Price: 2500}}
	cart := &stubCart{}
	svc := newTestService(t, repo, cart, catalog, &stubCoupons{})

	input := validServiceInput()
	input.ServiceID = &sid

	result, err := svc.Checkout(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	booking := result.Booking
	if booking.Type != enums.BookingTypeService {
		t.Fatalf("expected service booking, got %s", booking.Type)
	}
	if booking.Status != enums.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.BaseAmount != 2500 || booking.TotalAmount != 2500 {
		t.Fatalf("unexpected amounts %+v", booking)
	}
	if booking.ServiceID == nil || *booking.ServiceID != sid {
		t.Fatal("expected service id recorded")
	}
	if !strings.Contains(result.PaymentLink, "upi://pay?") || !strings.Contains(result.PaymentLink, "am=2500") {
		t.Fatalf("unexpected payment link %s", result.PaymentLink)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one booking persisted, got %d", len(repo.created))
	}
	if cart.cleared {
		t.Fatal("service bookings must not clear the cart")
	}
}

func TestCheckoutProductOrderClearsCartAndSnapshots(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	repo := newStubRepo()
	catalog := &stubCatalog{products: map[uuid.UUID]models.Product{
		productID: {ID: productID, Name: "Face Serum", Price: 500, DiscountPrice: int64Ptr(450)},
	}}
	cart := &stubCart{items: []models.CartItem{{UserID: userID, ProductID: productID, Position: 0}}}
	svc := newTestService(t, repo, cart, catalog, &stubCoupons{})

	input := CheckoutInput{
		CustomerName:  "Priya Sharma",
		Mobile:        "9876543210",
		Address:       "12 MG Road, Pune",
		PaymentMethod: enums.PaymentMethodCOD,
	}

	result, err := svc.Checkout(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	booking := result.Booking
	if booking.Type != enums.BookingTypeProductOrder {
		t.Fatalf("expected product order, got %s", booking.Type)
	}
	if booking.TotalAmount != 450 {
		t.Fatalf("expected total 450, got %d", booking.TotalAmount)
	}
	if len(booking.Items) != 1 || booking.Items[0].PaidPrice != 450 || booking.Items[0].UnitPrice != 500 {
		t.Fatalf("unexpected snapshot %+v", booking.Items)
	}
	if !cart.cleared {
		t.Fatal("expected cart cleared after product checkout")
	}
	if result.PaymentLink != "" {
		t.Fatal("cod checkout should not produce a payment link")
	}
}

func TestCheckoutRejectsDisabledPaymentMethod(t *testing.T) {
	userID := uuid.New()
	sid := uuid.New()
	repo := newStubRepo()
	catalog := &stubCatalog{service: &models.Service{ID: sid, Name: "Facial", Price: 800}}
	payments := &stubPayments{vpa: "lotoria@upi", accepted: []enums.PaymentMethod{enums.PaymentMethodUPI}}
	svc := newTestServiceWithPayments(t, repo, &stubCart{}, catalog, &stubCoupons{}, payments)

	input := validServiceInput()
	input.ServiceID = &sid
	input.PaymentMethod = enums.PaymentMethodCOD

	_, err := svc.Checkout(context.Background(), userID, input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected disabled method rejection, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("no booking should persist for a disabled payment method")
	}
}

func TestCheckoutPricesTheCartItLoaded(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	repo := newStubRepo()
	catalog := &stubCatalog{products: map[uuid.UUID]models.Product{
		productID: {ID: productID, Name: "Face Serum", Price: 500},
	}}
	cart := &stubCart{
		items:          []models.CartItem{{UserID: userID, ProductID: productID, Position: 0}},
		drainAfterRead: true,
	}
	svc := newTestService(t, repo, cart, catalog, &stubCoupons{})

	input := CheckoutInput{
		CustomerName:  "Priya Sharma",
		Mobile:        "9876543210",
		Address:       "12 MG Road, Pune",
		PaymentMethod: enums.PaymentMethodCOD,
	}

	result, err := svc.Checkout(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if result.Booking.TotalAmount != 500 {
		t.Fatalf("expected the loaded cart to be priced, got total %d", result.Booking.TotalAmount)
	}
	if len(result.Booking.Items) != 1 {
		t.Fatalf("expected one snapshot item, got %d", len(result.Booking.Items))
	}
}

func TestCheckoutGateBlocksEmptyOrder(t *testing.T) {
	svc := newTestService(t, newStubRepo(), &stubCart{}, &stubCatalog{}, &stubCoupons{})

	input := CheckoutInput{
		CustomerName:  "Priya Sharma",
		Mobile:        "9876543210",
		Address:       "12 MG Road, Pune",
		PaymentMethod: enums.PaymentMethodUPI,
	}
	_, err := svc.Checkout(context.Background(), uuid.New(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected gate rejection, got %v", err)
	}
}

func TestCheckoutCouponScopeRejected(t *testing.T) {
	userID := uuid.New()
	sid := uuid.New()
	catalog := &stubCatalog{service: &models.Service{ID: sid, Name: "Facial", Price: 800}}
	coupons := &stubCoupons{coupons: map[string]pricing.Coupon{
		"PRODONLY": {Code: "PRODONLY", DiscountType: enums.DiscountTypeFlat, Value: 50, ApplicableTo: enums.CouponScopeProduct},
	}}
	repo := newStubRepo()
	svc := newTestService(t, repo, &stubCart{}, catalog, coupons)

	input := validServiceInput()
	input.ServiceID = &sid
	input.CouponCode = "PRODONLY"

	_, err := svc.Checkout(context.Background(), userID, input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeCouponScope {
		t.Fatalf("expected scope rejection, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("no booking should persist on coupon failure")
	}
}

func TestCheckoutDealBooking(t *testing.T) {
	userID := uuid.New()
	did := uuid.New()
	repo := newStubRepo()
	catalog := &stubCatalog{deal: &models.Deal{ID: did, Title: "Festive Glow", OriginalPrice: 2500, OfferPrice: 1499}}
	svc := newTestService(t, repo, &stubCart{}, catalog, &stubCoupons{})

	input := validServiceInput()
	input.ServiceID = nil
	input.DealID = &did

	result, err := svc.Checkout(context.Background(), userID, input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	booking := result.Booking
	if booking.Type != enums.BookingTypeDealBooking {
		t.Fatalf("expected deal booking, got %s", booking.Type)
	}
	if booking.TotalAmount != 1499 {
		t.Fatalf("expected offer price total, got %d", booking.TotalAmount)
	}
	if len(booking.Items) != 1 || booking.Items[0].UnitPrice != 2500 || booking.Items[0].PaidPrice != 1499 {
		t.Fatalf("unexpected snapshot %+v", booking.Items)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newStubRepo()
	booking := &models.Booking{ID: uuid.New(), Status: enums.BookingStatusPending}
	repo.byID[booking.ID] = booking
	svc := newTestService(t, repo, &stubCart{}, &stubCatalog{}, &stubCoupons{})

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, enums.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated.Status != enums.BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, enums.BookingStatusPending); err == nil {
		t.Fatal("expected rejection moving back to pending")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, enums.BookingStatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, enums.BookingStatusCancelled); err == nil {
		t.Fatal("completed bookings are terminal")
	}
}

func TestNotifyStoresMessage(t *testing.T) {
	repo := newStubRepo()
	booking := &models.Booking{ID: uuid.New(), Status: enums.BookingStatusConfirmed}
	repo.byID[booking.ID] = booking
	svc := newTestService(t, repo, &stubCart{}, &stubCatalog{}, &stubCoupons{})

	updated, err := svc.Notify(context.Background(), booking.ID, "Your stylist is on the way")
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if updated.AdminNotification == nil || *updated.AdminNotification != "Your stylist is on the way" {
		t.Fatalf("unexpected notification %+v", updated.AdminNotification)
	}

	if _, err := svc.Notify(context.Background(), booking.ID, "   "); err == nil {
		t.Fatal("expected empty message rejection")
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newStubRepo()
	owner := uuid.New()
	booking := &models.Booking{ID: uuid.New(), UserID: owner, Status: enums.BookingStatusPending}
	repo.byID[booking.ID] = booking
	svc := newTestService(t, repo, &stubCart{}, &stubCatalog{}, &stubCoupons{})

	if _, err := svc.Get(context.Background(), owner, booking.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.Get(context.Background(), uuid.New(), booking.ID); err == nil {
		t.Fatal("expected stranger to get not found")
	}
}
