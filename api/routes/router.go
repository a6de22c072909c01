package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radhanandani03-png/Lotoria/api/controllers"
	"github.com/radhanandani03-png/Lotoria/api/middleware"
	"github.com/radhanandani03-png/Lotoria/internal/auth"
	"github.com/radhanandani03-png/Lotoria/internal/bookings"
	"github.com/radhanandani03-png/Lotoria/internal/cart"
	"github.com/radhanandani03-png/Lotoria/internal/catalog"
	"github.com/radhanandani03-png/Lotoria/internal/coupons"
	"github.com/radhanandani03-png/Lotoria/internal/gallery"
	"github.com/radhanandani03-png/Lotoria/internal/pages"
	"github.com/radhanandani03-png/Lotoria/internal/reviews"
	"github.com/radhanandani03-png/Lotoria/internal/settings"
	"github.com/radhanandani03-png/Lotoria/internal/team"
	"github.com/radhanandani03-png/Lotoria/internal/users"
	"github.com/radhanandani03-png/Lotoria/internal/widgets"
	"github.com/radhanandani03-png/Lotoria/pkg/auth/session"
	"github.com/radhanandani03-png/Lotoria/pkg/config"
	"github.com/radhanandani03-png/Lotoria/pkg/db"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
	"github.com/radhanandani03-png/Lotoria/pkg/redis"
)

// Services bundles every domain service the router wires up.
type Services struct {
	Auth     auth.Service
	Users    users.Service
	Catalog  catalog.Service
	Coupons  coupons.Service
	Cart     cart.Service
	Bookings bookings.Service
	Reviews  reviews.Service
	Gallery  gallery.Service
	Team     team.Service
	Pages    pages.Service
	Widgets  widgets.Service
	Settings settings.Service
}

// NewRouter builds the full HTTP surface: public storefront reads,
// authenticated customer routes, and the admin console.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	sessions *session.Manager,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.Health())
		r.Get("/ready", controllers.Ready(dbClient, redisClient, logg))
	})

	// Public storefront surface, no auth.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg), middleware.Idempotency(redisClient, logg)).
				Post("/register", controllers.AuthRegister(svcs.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
				Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		})

		r.Get("/services", controllers.ServicesList(svcs.Catalog, logg))
		r.Get("/services/{id}", controllers.ServicesGet(svcs.Catalog, logg))
		r.Get("/products", controllers.ProductsList(svcs.Catalog, logg))
		r.Get("/products/{id}", controllers.ProductsGet(svcs.Catalog, logg))
		r.Get("/deals", controllers.DealsList(svcs.Catalog, logg))
		r.Get("/deals/{id}", controllers.DealsGet(svcs.Catalog, logg))
		r.Get("/reviews", controllers.ReviewsList(svcs.Reviews, logg))
		r.Get("/gallery", controllers.GalleryList(svcs.Gallery, logg))
		r.Get("/team", controllers.TeamList(svcs.Team, logg))
		r.Get("/widgets", controllers.WidgetsList(svcs.Widgets, logg))
		r.Get("/pages", controllers.PagesListPublished(svcs.Pages, logg))
		r.Get("/pages/{slug}", controllers.PagesGetBySlug(svcs.Pages, logg))
		r.Get("/settings/theme", controllers.SettingsTheme(svcs.Settings, logg))
		r.Get("/settings/contact", controllers.SettingsContact(svcs.Settings, logg))
		r.Get("/settings/payment-options", controllers.SettingsPaymentOptions(svcs.Settings, logg))
		r.Get("/settings/home-content", controllers.SettingsHomeContent(svcs.Settings, logg))

		// Customer routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))
			r.Use(middleware.Idempotency(redisClient, logg))

			r.Post("/auth/logout", controllers.AuthLogout(svcs.Auth, logg))
			r.Get("/users/me", controllers.UsersMe(svcs.Users, logg))
			r.Put("/users/me", controllers.UsersUpdateMe(svcs.Users, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(svcs.Cart, logg))
				r.Post("/items", controllers.CartAdd(svcs.Cart, logg))
				r.Delete("/items/{position}", controllers.CartRemoveAt(svcs.Cart, logg))
				r.Delete("/", controllers.CartClear(svcs.Cart, logg))
			})

			r.Post("/reviews", controllers.ReviewsCreate(svcs.Reviews, logg))
			r.Post("/quote", controllers.BookingsQuote(svcs.Bookings, logg))
			r.Post("/checkout", controllers.BookingsCheckout(svcs.Bookings, logg))
			r.Get("/bookings", controllers.BookingsMine(svcs.Bookings, logg))
			r.Get("/bookings/{id}", controllers.BookingsGet(svcs.Bookings, logg))
		})
	})

	// Admin console.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Post("/services", controllers.ServicesCreate(svcs.Catalog, logg))
		r.Put("/services/{id}", controllers.ServicesUpdate(svcs.Catalog, logg))
		r.Delete("/services/{id}", controllers.ServicesDelete(svcs.Catalog, logg))

		r.Post("/products", controllers.ProductsCreate(svcs.Catalog, logg))
		r.Put("/products/{id}", controllers.ProductsUpdate(svcs.Catalog, logg))
		r.Delete("/products/{id}", controllers.ProductsDelete(svcs.Catalog, logg))

		r.Post("/deals", controllers.DealsCreate(svcs.Catalog, logg))
		r.Put("/deals/{id}", controllers.DealsUpdate(svcs.Catalog, logg))
		r.Delete("/deals/{id}", controllers.DealsDelete(svcs.Catalog, logg))

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", controllers.CouponsList(svcs.Coupons, logg))
			r.Post("/", controllers.CouponsCreate(svcs.Coupons, logg))
			r.Put("/{id}", controllers.CouponsUpdate(svcs.Coupons, logg))
			r.Delete("/{id}", controllers.CouponsDelete(svcs.Coupons, logg))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", controllers.AdminBookingsList(svcs.Bookings, logg))
			r.Patch("/{id}/status", controllers.AdminBookingsUpdateStatus(svcs.Bookings, logg))
			r.Post("/{id}/notify", controllers.AdminBookingsNotify(svcs.Bookings, logg))
		})

		r.Delete("/reviews/{id}", controllers.ReviewsDelete(svcs.Reviews, logg))

		r.Post("/gallery", controllers.GalleryCreate(svcs.Gallery, logg))
		r.Delete("/gallery/{id}", controllers.GalleryDelete(svcs.Gallery, logg))

		r.Post("/team", controllers.TeamCreate(svcs.Team, logg))
		r.Put("/team/{id}", controllers.TeamUpdate(svcs.Team, logg))
		r.Delete("/team/{id}", controllers.TeamDelete(svcs.Team, logg))

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", controllers.AdminPagesList(svcs.Pages, logg))
			r.Post("/", controllers.PagesCreate(svcs.Pages, logg))
			r.Put("/{id}", controllers.PagesUpdate(svcs.Pages, logg))
			r.Delete("/{id}", controllers.PagesDelete(svcs.Pages, logg))
		})

		r.Post("/widgets", controllers.WidgetsCreate(svcs.Widgets, logg))
		r.Put("/widgets/{id}", controllers.WidgetsUpdate(svcs.Widgets, logg))
		r.Delete("/widgets/{id}", controllers.WidgetsDelete(svcs.Widgets, logg))

		r.Route("/settings", func(r chi.Router) {
			r.Put("/theme", controllers.SettingsUpdateTheme(svcs.Settings, logg))
			r.Get("/payment", controllers.SettingsPayment(svcs.Settings, logg))
			r.Put("/payment", controllers.SettingsUpdatePayment(svcs.Settings, logg))
			r.Put("/contact", controllers.SettingsUpdateContact(svcs.Settings, logg))
			r.Get("/admin", controllers.SettingsAdmin(svcs.Settings, logg))
			r.Put("/admin", controllers.SettingsUpdateAdmin(svcs.Settings, logg))
			r.Put("/home-content", controllers.SettingsUpdateHomeContent(svcs.Settings, logg))
		})

		r.Get("/users", controllers.UsersList(svcs.Users, logg))
	})

	return r
}
