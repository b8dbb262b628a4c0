package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"micron-manager/internal/config"
	"micron-manager/internal/database"
	"micron-manager/internal/handlers"
	"micron-manager/internal/middleware"
	"micron-manager/internal/models"
	"micron-manager/internal/repositories"
	"micron-manager/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// App wires the customer API together
type App struct {
	cfg      *config.Config
	db       *database.DB
	echo     *echo.Echo
	logger   *slog.Logger
	registry *prometheus.Registry

	customerHandler *handlers.CustomerHandler
	healthHandler   *handlers.HealthCheckHandler
}

// New builds the application around an initialized store. Background work
// started for the application stops when ctx is done.
func New(ctx context.Context, cfg *config.Config, db *database.DB, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	customerLogger := services.NewCustomerLogger(logger)
	metrics := services.NewPrometheusMetrics(registry)
	projector := services.NewCustomerProjector(services.ProjectorConfig{
		BaseURL:   cfg.API.BaseURL,
		Namespace: cfg.API.Namespace,
		Location:  cfg.API.Location,
	}, services.NewGravatarResolver(""))
	listingService := services.NewCustomerListingService(
		repositories.NewCustomerRepository(db.DB),
		projector,
		customerLogger,
		metrics,
	)
	tokenService := services.NewTokenService(&cfg.Identity)

	a := &App{
		cfg:             cfg,
		db:              db,
		echo:            echo.New(),
		logger:          logger,
		registry:        registry,
		customerHandler: handlers.NewCustomerHandler(listingService, customerLogger),
		healthHandler:   handlers.NewHealthCheckHandler(db),
	}

	a.setupEcho(ctx)

	auth := middleware.RequireAuth(tokenService)
	registerRoutes(a.echo.Group(""), "", a.rootRoutes(), auth, customerLogger)
	registerRoutes(a.echo.Group(namespacePrefix(cfg.API.Namespace)), cfg.API.Namespace, a.namespacedRoutes(), auth, customerLogger)
	a.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	return a
}

func (a *App) setupEcho(ctx context.Context) {
	e := a.echo
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator(a.cfg.API.KnownRoles)
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(a.registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper:       isRouteDescription,
		AllowOrigins:  a.cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{handlers.HeaderTotal, handlers.HeaderTotalPages, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit("1K"))
	e.Use(middleware.RateLimiter(ctx, a.cfg.Security.RateLimitPerSecond, a.cfg.Security.RateLimitBurst))
}

// Handler exposes the HTTP handler, mainly for tests
func (a *App) Handler() http.Handler {
	return a.echo
}

// Run serves until ctx is done, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:      a.echo,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			slog.String("addr", server.Addr),
			slog.String("namespace", a.cfg.API.Namespace),
			slog.String("environment", a.cfg.Server.Environment),
		)
		if err := a.echo.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

// PrepareDevelopment seeds the store and logs a signed token when running
// locally with a generated identity key.
func (a *App) PrepareDevelopment(ctx context.Context, seedCount int) {
	if !a.cfg.IsDevelopment() {
		return
	}

	if seedCount > 0 {
		if err := SeedCustomers(ctx, repositories.NewUserRepository(a.db.DB), seedCount, a.logger); err != nil {
			a.logger.Warn("failed to seed customers", slog.String("error", err.Error()))
		}
	}

	if a.cfg.Identity.DevPrivateKey == nil {
		return
	}

	token, err := MintDevToken(a.cfg.Identity.DevPrivateKey, a.cfg.Identity.Issuer, "1", DevTokenTTL, models.CapabilityListUsers)
	if err != nil {
		a.logger.Warn("failed to mint development token", slog.String("error", err.Error()))
		return
	}
	a.logger.Info("development token", slog.String("authorization", "Bearer "+token))
}

// isRouteDescription reports an OPTIONS request that is not a CORS preflight.
// Those are answered by the route description handlers.
func isRouteDescription(c echo.Context) bool {
	req := c.Request()
	return req.Method == http.MethodOptions && req.Header.Get(echo.HeaderAccessControlRequestMethod) == ""
}

func namespacePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return "/" + namespace
}
