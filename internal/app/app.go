package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchperks/deals-service/internal/config"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/handler"
	"github.com/launchperks/deals-service/internal/repository"
	"github.com/launchperks/deals-service/internal/service"
	"github.com/launchperks/deals-service/internal/utils"
	"github.com/launchperks/deals-service/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Mongo())

	jwtManager := utils.NewJWTManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry.Duration,
		cfg.JWT.RefreshExpiry.Duration,
	)

	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)
	responder := handler.NewResponder(infra.Logger(), cfg.Env == "development")

	authService := service.NewAuthService(repos.User, jwtManager, cfg.Security.BCryptCost)
	dealService := service.NewDealService(repos.Deal)
	claimService := service.NewClaimService(repos.Claim, repos.Deal)

	authHandler := handler.NewAuthHandler(authService, responder)
	dealHandler := handler.NewDealHandler(dealService, responder)
	claimHandler := handler.NewClaimHandler(claimService, responder)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("deals-service"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, authHandler, dealHandler, claimHandler, authService, rateLimiter, healthChecker, responder, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	dealHandler *handler.DealHandler,
	claimHandler *handler.ClaimHandler,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	responder *handler.Responder,
	metricsHandler http.Handler,
) {
	router.NoRoute(func(c *gin.Context) {
		responder.Fail(c, domain.NewNotFoundError("Route not found"))
	})

	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	requireAuth := handler.AuthMiddleware(authService, responder)
	optionalAuth := handler.OptionalAuthMiddleware(authService)

	api := router.Group("/api")
	api.Use(handler.RateLimitMiddleware(
		rateLimiter,
		cfg.Security.RateLimitRequests,
		cfg.Security.RateLimitWindow.Duration,
		handler.IPBasedKey,
	))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/profile", requireAuth, authHandler.Profile)
			auth.POST("/logout", requireAuth, authHandler.Logout)
		}

		deals := api.Group("/deals")
		{
			deals.GET("", optionalAuth, dealHandler.List)
			deals.GET("/featured", dealHandler.Featured)
			deals.GET("/popular", dealHandler.Popular)
			deals.GET("/categories", dealHandler.Categories)
			deals.GET("/:dealId", optionalAuth, dealHandler.Get)
		}

		claims := api.Group("/claims", requireAuth)
		{
			claims.POST("", claimHandler.Create)
			claims.GET("", claimHandler.List)
			claims.GET("/stats", claimHandler.Stats)
			claims.GET("/:claimId", claimHandler.Get)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
