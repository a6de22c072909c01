package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/radhanandani03-png/Lotoria/api/routes"
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
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
	"github.com/radhanandani03-png/Lotoria/pkg/migrate"
	"github.com/radhanandani03-png/Lotoria/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), dbClient, cfg, logg); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessions, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, logg, dbClient, sessions)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessions, svcs),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func buildServices(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, sessions *session.Manager) (routes.Services, error) {
	gdb := dbClient.DB()

	userRepo := users.NewRepository(gdb)
	catalogRepo := catalog.NewRepository(gdb)
	couponRepo := coupons.NewRepository(gdb)
	cartRepo := cart.NewRepository(gdb)
	bookingRepo := bookings.NewRepository(gdb)
	reviewRepo := reviews.NewRepository(gdb)
	galleryRepo := gallery.NewRepository(gdb)
	teamRepo := team.NewRepository(gdb)
	pageRepo := pages.NewRepository(gdb)
	widgetRepo := widgets.NewRepository(gdb)
	settingsRepo := settings.NewRepository(gdb)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessions,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}
	userSvc, err := users.NewService(userRepo)
	if err != nil {
		return routes.Services{}, err
	}
	catalogSvc, err := catalog.NewService(catalogRepo, logg)
	if err != nil {
		return routes.Services{}, err
	}
	couponSvc, err := coupons.NewService(couponRepo)
	if err != nil {
		return routes.Services{}, err
	}
	cartSvc, err := cart.NewService(cartRepo, catalogSvc, dbClient)
	if err != nil {
		return routes.Services{}, err
	}
	reviewSvc, err := reviews.NewService(reviewRepo)
	if err != nil {
		return routes.Services{}, err
	}
	gallerySvc, err := gallery.NewService(galleryRepo)
	if err != nil {
		return routes.Services{}, err
	}
	teamSvc, err := team.NewService(teamRepo)
	if err != nil {
		return routes.Services{}, err
	}
	pageSvc, err := pages.NewService(pageRepo)
	if err != nil {
		return routes.Services{}, err
	}
	widgetSvc, err := widgets.NewService(widgetRepo)
	if err != nil {
		return routes.Services{}, err
	}
	settingsSvc, err := settings.NewService(settingsRepo)
	if err != nil {
		return routes.Services{}, err
	}
	bookingSvc, err := bookings.NewService(bookingRepo, cartSvc, catalogSvc, couponSvc, settingsSvc, logg)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:     authSvc,
		Users:    userSvc,
		Catalog:  catalogSvc,
		Coupons:  couponSvc,
		Cart:     cartSvc,
		Bookings: bookingSvc,
		Reviews:  reviewSvc,
		Gallery:  gallerySvc,
		Team:     teamSvc,
		Pages:    pageSvc,
		Widgets:  widgetSvc,
		Settings: settingsSvc,
	}, nil
}
