package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/razorsharp/storefront-backend/api/controllers"
	"github.com/razorsharp/storefront-backend/api/middleware"
	"github.com/razorsharp/storefront-backend/internal/assignments"
	"github.com/razorsharp/storefront-backend/internal/products"
	"github.com/razorsharp/storefront-backend/internal/profiles"
	"github.com/razorsharp/storefront-backend/internal/stores"
	"github.com/razorsharp/storefront-backend/pkg/config"
	"github.com/razorsharp/storefront-backend/pkg/db"
	"github.com/razorsharp/storefront-backend/pkg/logger"
	"github.com/razorsharp/storefront-backend/pkg/metrics"
	"github.com/razorsharp/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	profileService profiles.Service,
	storeService stores.Service,
	productService products.Service,
	assignmentService assignments.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Public storefront catalog.
		r.Get("/stores", controllers.StoreList(storeService, logg))
		r.Get("/stores/{storeId}", controllers.StoreDetail(storeService, logg))
		r.Get("/products", controllers.ProductList(productService, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(productService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, profileService, logg))
			r.Use(middleware.Idempotency(redisClient, cfg.Idempotency.TTL, logg))

			// First-login provisioning and profile self-service need a
			// verified token but not an existing admin profile.
			r.Post("/profiles", controllers.ProfileCreate(profileService, logg))
			r.Get("/profiles/{profileId}", controllers.ProfileDetail(profileService, logg))
			r.Put("/profiles/{profileId}", controllers.ProfileUpdate(profileService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdminArea(logg))

				r.Post("/stores", controllers.StoreCreate(storeService, logg))
				r.Put("/stores/{storeId}", controllers.StoreUpdate(storeService, logg))

				r.Post("/products", controllers.ProductCreate(productService, logg))
				r.Put("/products/{productId}", controllers.ProductUpdate(productService, logg))
				r.Delete("/products/{productId}", controllers.ProductDelete(productService, logg))

				r.Get("/profiles", controllers.ProfileLookup(profileService, logg))

				r.Get("/assignments", controllers.AssignmentList(assignmentService, logg))
				r.Post("/assignments", controllers.AssignmentCreate(assignmentService, logg))
				r.Delete("/assignments", controllers.AssignmentDelete(assignmentService, logg))
			})
		})
	})

	return r
}
