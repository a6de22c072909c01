package settings

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
)

type stubSettingsRepo struct {
	rows map[string]string
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{rows: map[string]string{}}
}

func (s *stubSettingsRepo) Get(_ context.Context, name string) (*models.Setting, error) {
	value, ok := s.rows[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Setting{Name: name, Value: value}, nil
}

func (s *stubSettingsRepo) Upsert(_ context.Context, setting *models.Setting) error {
	s.rows[setting.Name] = setting.Value
	return nil
}

func newTestService(t *testing.T) (Service, *stubSettingsRepo) {
	t.Helper()
	repo := newStubSettingsRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestGetThemeSeedsDefault(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)

	theme, err := svc.GetTheme(context.Background())
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if theme.PrimaryColor != "#E11D48" || theme.SecondaryColor != "#121212" {
		t.Fatalf("unexpected defaults %+v", theme)
	}
	if _, ok := repo.rows[NameTheme]; !ok {
		t.Fatal("default theme should be persisted on first read")
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	want := Theme{PrimaryColor: "#C2185B", SecondaryColor: "#1A1A1A"}
	if err := svc.SetTheme(context.Background(), want); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	got, err := svc.GetTheme(context.Background())
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetPaymentRequiresOneMethod(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	err := svc.SetPayment(context.Background(), Payment{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetPaymentOnlineNeedsVPA(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	err := svc.SetPayment(context.Background(), Payment{AcceptOnline: true})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUPIVPAUsesPaymentConfig(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	payment := Payment{AcceptCOD: true, AcceptOnline: true, UPIID: "lotoria@upi"}
	if err := svc.SetPayment(context.Background(), payment); err != nil {
		t.Fatalf("set payment: %v", err)
	}
	vpa, err := svc.UPIVPA(context.Background())
	if err != nil {
		t.Fatalf("upi vpa: %v", err)
	}
	if vpa != "lotoria@upi" {
		t.Fatalf("expected configured vpa, got %q", vpa)
	}
}

func TestUPIVPADefaultsWhenUnset(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	vpa, err := svc.UPIVPA(context.Background())
	if err != nil {
		t.Fatalf("upi vpa: %v", err)
	}
	if vpa != "buylotoria@okicici" {
		t.Fatalf("expected seeded default, got %q", vpa)
	}
}

func TestAcceptedMethodsFollowPaymentFlags(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	payment := Payment{AcceptCOD: true, UPIID: "lotoria@upi"}
	if err := svc.SetPayment(context.Background(), payment); err != nil {
		t.Fatalf("set payment: %v", err)
	}
	methods, err := svc.AcceptedMethods(context.Background())
	if err != nil {
		t.Fatalf("accepted methods: %v", err)
	}
	if len(methods) != 1 || methods[0] != enums.PaymentMethodCOD {
		t.Fatalf("expected cod only, got %v", methods)
	}
}

func TestAcceptedMethodsDefaultToAll(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	methods, err := svc.AcceptedMethods(context.Background())
	if err != nil {
		t.Fatalf("accepted methods: %v", err)
	}
	if len(methods) != 3 {
		t.Fatalf("expected all methods from the seeded default, got %v", methods)
	}
}

func TestHomeContentRoundTrip(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	content := HomeContent{"headline": "Glow up season", "cta": "Book now"}
	if err := svc.SetHomeContent(context.Background(), content); err != nil {
		t.Fatalf("set home content: %v", err)
	}
	got, err := svc.GetHomeContent(context.Background())
	if err != nil {
		t.Fatalf("get home content: %v", err)
	}
	if got["headline"] != "Glow up season" {
		t.Fatalf("unexpected content %+v", got)
	}
}
