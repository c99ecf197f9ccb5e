package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chocomarket/chocomarket-backend/api/controllers"
	"github.com/chocomarket/chocomarket-backend/api/middleware"
	"github.com/chocomarket/chocomarket-backend/internal/cart"
	"github.com/chocomarket/chocomarket-backend/internal/catalog"
	checkoutsvc "github.com/chocomarket/chocomarket-backend/internal/checkout"
	"github.com/chocomarket/chocomarket-backend/internal/recommendations"
	"github.com/chocomarket/chocomarket-backend/internal/search"
	"github.com/chocomarket/chocomarket-backend/pkg/config"
	"github.com/chocomarket/chocomarket-backend/pkg/db"
	"github.com/chocomarket/chocomarket-backend/pkg/logger"
	"github.com/chocomarket/chocomarket-backend/pkg/metrics"
	"github.com/chocomarket/chocomarket-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient redis.Pinger,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	searchService search.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	recommendationsService recommendations.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Get("/sku/{sku}", controllers.GetProductBySKU(catalogService, logg))
			r.Get("/{productID}", controllers.GetProduct(catalogService, logg))
		})
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", controllers.ListBrands(catalogService, logg))
			r.Get("/{slug}", controllers.GetBrand(catalogService, logg))
		})
		r.Route("/collections", func(r chi.Router) {
			r.Get("/", controllers.ListCollections(catalogService, logg))
			r.Get("/{slug}", controllers.GetCollection(catalogService, logg))
		})
		r.Get("/search", controllers.SearchProducts(searchService, logg))
		r.Get("/recommendations", controllers.ListRecommendations(recommendationsService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartService, logg))
				r.Delete("/", controllers.ClearCart(cartService, logg))
				r.Post("/items", controllers.AddCartItem(cartService, logg))
				r.Delete("/items/{productID}", controllers.RemoveCartItem(cartService, logg))
			})
			r.Post("/checkout", controllers.SubmitOrder(checkoutService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(catalogService, logg))
			r.Patch("/{productID}", controllers.AdminUpdateProduct(catalogService, logg))
			r.Delete("/{productID}", controllers.AdminDeleteProduct(catalogService, logg))
		})
		r.Route("/brands", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateBrand(catalogService, logg))
			r.Put("/{brandID}", controllers.AdminUpdateBrand(catalogService, logg))
			r.Delete("/{brandID}", controllers.AdminDeleteBrand(catalogService, logg))
		})
		r.Route("/collections", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateCollection(catalogService, logg))
			r.Put("/{collectionID}", controllers.AdminUpdateCollection(catalogService, logg))
			r.Delete("/{collectionID}", controllers.AdminDeleteCollection(catalogService, logg))
		})
		r.Put("/recommendations", controllers.AdminReplaceRecommendations(recommendationsService, logg))
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(checkoutService, logg))
			r.Get("/{orderID}", controllers.AdminGetOrder(checkoutService, logg))
			r.Patch("/{orderID}/status", controllers.AdminUpdateOrderStatus(checkoutService, logg))
		})
	})

	return r
}
