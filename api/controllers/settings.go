package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	"github.com/radhanandani03-png/Lotoria/api/validators"
	"github.com/radhanandani03-png/Lotoria/internal/settings"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
	"github.com/radhanandani03-png/Lotoria/pkg/types"
)

type themeRequest struct {
	PrimaryColor   string `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondary_color" validate:"required,hexcolor"`
}

type paymentRequest struct {
	AcceptCOD    bool   `json:"accept_cod"`
	AcceptOnline bool   `json:"accept_online"`
	AcceptCard   bool   `json:"accept_card"`
	UPIID        string `json:"upi_id"`
}

type contactRequest struct {
	Phone   string            `json:"phone"`
	Email   string            `json:"email" validate:"omitempty,email"`
	Address string            `json:"address"`
	Social  types.SocialLinks `json:"social"`
}

type adminProfileRequest struct {
	Mobile string `json:"mobile" validate:"omitempty,len=10,numeric"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// SettingsTheme returns the storefront colors.
func SettingsTheme(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := svc.GetTheme(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, theme)
	}
}

// SettingsUpdateTheme saves the storefront colors.
func SettingsUpdateTheme(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body themeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		theme := settings.Theme{PrimaryColor: body.PrimaryColor, SecondaryColor: body.SecondaryColor}
		if err := svc.SetTheme(r.Context(), theme); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, theme)
	}
}

// SettingsContact returns the public contact block.
func SettingsContact(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contact, err := svc.GetContact(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, contact)
	}
}

func SettingsUpdateContact(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body contactRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		contact := settings.Contact{
			Phone:   body.Phone,
			Email:   body.Email,
			Address: body.Address,
			Social:  body.Social,
		}
		if err := svc.SetContact(r.Context(), contact); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, contact)
	}
}

// SettingsPayment returns the payment method switches. The UPI VPA is
// included because the admin console edits it in place.
func SettingsPayment(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := svc.GetPayment(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payment)
	}
}

// SettingsPaymentOptions is the public view of payment settings: just
// the methods a customer may pick at checkout, never the VPA.
func SettingsPaymentOptions(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := svc.AcceptedMethods(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"methods": methods})
	}
}

func SettingsUpdatePayment(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body paymentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payment := settings.Payment{
			AcceptCOD:    body.AcceptCOD,
			AcceptOnline: body.AcceptOnline,
			AcceptCard:   body.AcceptCard,
			UPIID:        body.UPIID,
		}
		if err := svc.SetPayment(r.Context(), payment); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payment)
	}
}

func SettingsAdmin(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin, err := svc.GetAdmin(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, admin)
	}
}

func SettingsUpdateAdmin(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body adminProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		admin := settings.Admin{Mobile: body.Mobile, Email: body.Email}
		if err := svc.SetAdmin(r.Context(), admin); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, admin)
	}
}

// SettingsHomeContent returns the hero copy shown on the home screen.
func SettingsHomeContent(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := svc.GetHomeContent(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, content)
	}
}

func SettingsUpdateHomeContent(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Free-form document, so no struct validation here.
		var body settings.HomeContent
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetHomeContent(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, body)
	}
}
