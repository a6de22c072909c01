package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

// Document names. Each maps to one row in the settings table.
const (
	NameTheme       = "theme"
	NamePayment     = "payment"
	NameContact     = "contact"
	NameAdmin       = "admin"
	NameHomeContent = "homeContent"
)

// Theme holds the storefront colors.
type Theme struct {
	PrimaryColor   string `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondary_color" validate:"required,hexcolor"`
}

// Payment controls which checkout methods are offered and the UPI
// collect address used to build payment links.
type Payment struct {
	AcceptCOD    bool   `json:"accept_cod"`
	AcceptOnline bool   `json:"accept_online"`
	AcceptCard   bool   `json:"accept_card"`
	UPIID        string `json:"upi_id"`
}

// Contact is the public footer block.
type Contact struct {
	Phone   string            `json:"phone"`
	Email   string            `json:"email"`
	Address string            `json:"address"`
	Social  types.SocialLinks `json:"social"`
}

// Admin is the salon owner's profile shown in the dashboard.
type Admin struct {
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// HomeContent is free-form hero copy edited from the dashboard.
type HomeContent map[string]any

func defaultTheme() Theme {
	return Theme{PrimaryColor: "#E11D48", SecondaryColor: "#121212"}
}

func defaultPayment() Payment {
	return Payment{AcceptCOD: true, AcceptOnline: true, AcceptCard: true, UPIID: "buylotoria@okicici"}
}

func defaultContact() Contact {
	return Contact{Phone: "8210667364", Email: "buylotoria@gmail.com", Address: "Kanpur, India"}
}

// Service reads and writes the singleton site settings.
type Service interface {
	GetTheme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, theme Theme) error
	GetPayment(ctx context.Context) (Payment, error)
	SetPayment(ctx context.Context, payment Payment) error
	GetContact(ctx context.Context) (Contact, error)
	SetContact(ctx context.Context, contact Contact) error
	GetAdmin(ctx context.Context) (Admin, error)
	SetAdmin(ctx context.Context, admin Admin) error
	GetHomeContent(ctx context.Context) (HomeContent, error)
	SetHomeContent(ctx context.Context, content HomeContent) error
	// UPIVPA is the checkout hook used when building upi:// links.
	UPIVPA(ctx context.Context) (string, error)
	// AcceptedMethods lists the payment methods checkout may offer,
	// derived from the payment document's flags.
	AcceptedMethods(ctx context.Context) ([]enums.PaymentMethod, error)
}

type settingsRepo interface {
	Get(ctx context.Context, name string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

type service struct {
	repo settingsRepo
}

// NewService builds the settings service.
func NewService(repo settingsRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo}, nil
}

// load decodes the named document into out, seeding the default when
// the row does not exist yet.
func (s *service) load(ctx context.Context, name string, out any, seed func() any) error {
	row, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := seed()
			if saveErr := s.save(ctx, name, def); saveErr != nil {
				return saveErr
			}
			raw, _ := json.Marshal(def)
			return json.Unmarshal(raw, out)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load settings")
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode settings document")
	}
	return nil
}

func (s *service) save(ctx context.Context, name string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode settings document")
	}
	setting := &models.Setting{Name: name, Value: string(raw)}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save settings")
	}
	return nil
}

func (s *service) GetTheme(ctx context.Context) (Theme, error) {
	var theme Theme
	err := s.load(ctx, NameTheme, &theme, func() any { return defaultTheme() })
	return theme, err
}

func (s *service) SetTheme(ctx context.Context, theme Theme) error {
	if strings.TrimSpace(theme.PrimaryColor) == "" || strings.TrimSpace(theme.SecondaryColor) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "both theme colors are required")
	}
	return s.save(ctx, NameTheme, theme)
}

func (s *service) GetPayment(ctx context.Context) (Payment, error) {
	var payment Payment
	err := s.load(ctx, NamePayment, &payment, func() any { return defaultPayment() })
	return payment, err
}

func (s *service) SetPayment(ctx context.Context, payment Payment) error {
	if !payment.AcceptCOD && !payment.AcceptOnline && !payment.AcceptCard {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one payment method must stay enabled")
	}
	if payment.AcceptOnline && strings.TrimSpace(payment.UPIID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "upi id is required when online payment is enabled")
	}
	return s.save(ctx, NamePayment, payment)
}

func (s *service) GetContact(ctx context.Context) (Contact, error) {
	var contact Contact
	err := s.load(ctx, NameContact, &contact, func() any { return defaultContact() })
	return contact, err
}

func (s *service) SetContact(ctx context.Context, contact Contact) error {
	return s.save(ctx, NameContact, contact)
}

func (s *service) GetAdmin(ctx context.Context) (Admin, error) {
	var admin Admin
	err := s.load(ctx, NameAdmin, &admin, func() any { return Admin{} })
	return admin, err
}

func (s *service) SetAdmin(ctx context.Context, admin Admin) error {
	return s.save(ctx, NameAdmin, admin)
}

func (s *service) GetHomeContent(ctx context.Context) (HomeContent, error) {
	content := HomeContent{}
	err := s.load(ctx, NameHomeContent, &content, func() any { return HomeContent{} })
	return content, err
}

func (s *service) SetHomeContent(ctx context.Context, content HomeContent) error {
	if content == nil {
		content = HomeContent{}
	}
	return s.save(ctx, NameHomeContent, content)
}

func (s *service) UPIVPA(ctx context.Context) (string, error) {
	payment, err := s.GetPayment(ctx)
	if err != nil {
		return "", err
	}
	return payment.UPIID, nil
}

func (s *service) AcceptedMethods(ctx context.Context) ([]enums.PaymentMethod, error) {
	payment, err := s.GetPayment(ctx)
	if err != nil {
		return nil, err
	}
	methods := make([]enums.PaymentMethod, 0, 3)
	if payment.AcceptOnline {
		methods = append(methods, enums.PaymentMethodUPI)
	}
	if payment.AcceptCOD {
		methods = append(methods, enums.PaymentMethodCOD)
	}
	if payment.AcceptCard {
		methods = append(methods, enums.PaymentMethodCard)
	}
	return methods, nil
}
