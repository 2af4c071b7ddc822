package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reelworks/rentaldesk-backend/api/controllers"
	"github.com/reelworks/rentaldesk-backend/api/middleware"
	"github.com/reelworks/rentaldesk-backend/internal/accounts"
	"github.com/reelworks/rentaldesk-backend/internal/availability"
	"github.com/reelworks/rentaldesk-backend/internal/catalog"
	"github.com/reelworks/rentaldesk-backend/internal/rentals"
	"github.com/reelworks/rentaldesk-backend/internal/users"
	"github.com/reelworks/rentaldesk-backend/pkg/config"
	"github.com/reelworks/rentaldesk-backend/pkg/db"
	"github.com/reelworks/rentaldesk-backend/pkg/logger"
	"github.com/reelworks/rentaldesk-backend/pkg/metrics"
	"github.com/reelworks/rentaldesk-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	accountsService accounts.Service,
	catalogService catalog.Service,
	rentalsService rentals.Service,
	availabilityService availability.Service,
	usersService users.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
		middleware.Timeout(cfg.HTTP.RequestTimeout),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginNameLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupNameLimit,
	)

	// A typed nil *redis.Client must not reach the middleware interface.
	authLimit := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit(signupPolicy)).Post("/signup", controllers.Signup(accountsService, logg))
			r.With(authLimit(loginPolicy)).Post("/login", controllers.Login(accountsService, logg))
		})

		r.Route("/films", func(r chi.Router) {
			r.Get("/", controllers.FilmsList(catalogService, logg))
			r.Get("/search", controllers.FilmsSearch(catalogService, logg))
			r.Post("/by-categories", controllers.FilmsByCategories(catalogService, logg))
			r.Get("/{filmID}/availability", controllers.FilmAvailability(availabilityService, logg))
		})

		r.Get("/categories", controllers.CategoriesList(catalogService, logg))
		r.Get("/languages", controllers.LanguagesList(catalogService, logg))
		r.Get("/stores", controllers.StoresList(catalogService, logg))

		r.Route("/rentals", func(r chi.Router) {
			r.Post("/", controllers.RentalsCreate(rentalsService, logg))
			r.Get("/", controllers.RentalsList(rentalsService, logg))
			r.Get("/overdue", controllers.RentalsOverdue(rentalsService, logg))
			r.Post("/{rentalID}/return", controllers.RentalReturn(rentalsService, logg))
		})

		r.Post("/availability/check", controllers.AvailabilityCheck(availabilityService, logg))
		r.Get("/inventory/summary", controllers.InventorySummary(availabilityService, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.UsersList(usersService, logg))
			r.Get("/{userID}", controllers.UserGet(usersService, logg))
			r.Put("/{userID}", controllers.UserUpdate(usersService, logg))
		})
	})

	return r
}
