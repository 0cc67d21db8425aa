package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/adamolayo/vatcart-backend/api/responses"
	"github.com/adamolayo/vatcart-backend/api/validators"
	"github.com/adamolayo/vatcart-backend/internal/customproducts"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
)

type customProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
}

func (r customProductRequest) toDraft() customproducts.Draft {
	return customproducts.Draft{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Category:    strings.TrimSpace(r.Category),
		BasePrice:   r.BasePrice,
		VATRate:     r.VATRate,
	}
}

// CustomProductCreate handles creation of user-authored products.
func CustomProductCreate(svc customproducts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "custom product service unavailable"))
			return
		}

		var payload customProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), payload.toDraft())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toProductDTO(product))
	}
}

// CustomProductUpdate replaces the draft fields of an existing custom
// product, preserving its id and position.
func CustomProductUpdate(svc customproducts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "custom product service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload customProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, payload.toDraft())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toProductDTO(product))
	}
}

// CustomProductDelete removes a custom product; deleting an unknown id is a
// not-found, never a silent success.
func CustomProductDelete(svc customproducts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "custom product service unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"id": id, "status": "deleted"})
	}
}

// CustomProductList serves the custom product sequence in creation order.
func CustomProductList(svc customproducts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "custom product service unavailable"))
			return
		}

		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": toProductDTOs(products)})
	}
}
