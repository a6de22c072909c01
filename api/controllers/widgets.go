package controllers

import (
	"net/http"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	"github.com/radhanandani03-png/Lotoria/api/validators"
	"github.com/radhanandani03-png/Lotoria/internal/widgets"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

type widgetRequest struct {
	Type       string  `json:"type" validate:"required,oneof=image video text"`
	Content    string  `json:"content" validate:"required"`
	LinkURL    *string `json:"link_url"`
	Caption    *string `json:"caption"`
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text"`
	Layout     string  `json:"layout" validate:"required,oneof=full half"`
	Price      *int64  `json:"price"`
	Discount   *string `json:"discount"`
}

func (b widgetRequest) toInput() widgets.Input {
	return widgets.Input{
		Type:       enums.WidgetType(b.Type),
		Content:    b.Content,
		LinkURL:    b.LinkURL,
		Caption:    b.Caption,
		Title:      b.Title,
		Subtitle:   b.Subtitle,
		ButtonText: b.ButtonText,
		Layout:     enums.WidgetLayout(b.Layout),
		Price:      b.Price,
		Discount:   b.Discount,
	}
}

// WidgetsList returns home widgets in display order.
func WidgetsList(svc widgets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}

func WidgetsCreate(svc widgets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body widgetRequest
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

func WidgetsUpdate(svc widgets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body widgetRequest
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

func WidgetsDelete(svc widgets.Service, logg *logger.Logger) http.HandlerFunc {
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
