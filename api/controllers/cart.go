package controllers

import (
	"net/http"

	"github.com/adamolayo/vatcart-backend/api/responses"
	"github.com/adamolayo/vatcart-backend/api/validators"
	cartsvc "github.com/adamolayo/vatcart-backend/internal/cart"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
)

type cartQuoteRequest struct {
	ProductIDs []string `json:"productIds" validate:"required"`
}

// CartQuote prices a selection against the current merged catalog. Stale
// ids in the selection are dropped, not rejected.
func CartQuote(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload cartQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Quote(r.Context(), payload.ProductIDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toQuoteDTO(result))
	}
}
