package controllers

import (
	"net/http"
	"strings"

	"github.com/adamolayo/vatcart-backend/api/responses"
	catalogsvc "github.com/adamolayo/vatcart-backend/internal/catalog"
	pkgerrors "github.com/adamolayo/vatcart-backend/pkg/errors"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
)

// CatalogList serves the merged, filtered catalog. The response carries the
// base-catalog state so clients can tell an empty result from one that is
// still loading.
func CatalogList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("search"))
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		listing, err := svc.List(r.Context(), query, category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalogListingDTO{
			State:    string(listing.State),
			Count:    len(listing.Products),
			Products: toProductDTOs(listing.Products),
		})
	}
}

// CatalogCategories serves the distinct sorted category list.
func CatalogCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"categories": categories})
	}
}
