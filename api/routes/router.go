package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adamolayo/vatcart-backend/api/controllers"
	"github.com/adamolayo/vatcart-backend/api/middleware"
	cartsvc "github.com/adamolayo/vatcart-backend/internal/cart"
	catalogsvc "github.com/adamolayo/vatcart-backend/internal/catalog"
	"github.com/adamolayo/vatcart-backend/internal/customproducts"
	"github.com/adamolayo/vatcart-backend/pkg/config"
	"github.com/adamolayo/vatcart-backend/pkg/logger"
	"github.com/adamolayo/vatcart-backend/pkg/metrics"
)

// NewRouter wires the HTTP surface: catalog browsing, custom product
// lifecycle, cart quoting, health and metrics.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalogsvc.Service,
	customProductService customproducts.Service,
	cartService cartsvc.Service,
	readiness ...controllers.NamedPinger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness...))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
		})

		r.Route("/custom-products", func(r chi.Router) {
			r.Get("/", controllers.CustomProductList(customProductService, logg))
			r.Post("/", controllers.CustomProductCreate(customProductService, logg))
			r.Put("/{id}", controllers.CustomProductUpdate(customProductService, logg))
			r.Delete("/{id}", controllers.CustomProductDelete(customProductService, logg))
		})

		r.Post("/cart/quote", controllers.CartQuote(cartService, logg))
	})

	return r
}
