package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/userhub/accounts-api/internal/api/handler"
	"github.com/userhub/accounts-api/internal/api/middleware"
	"github.com/userhub/accounts-api/internal/core/auth"
	"github.com/userhub/accounts-api/internal/core/ports"
	"github.com/userhub/accounts-api/internal/core/service"
	"github.com/userhub/accounts-api/internal/infrastructure/db/postgres"
	"github.com/userhub/accounts-api/internal/infrastructure/db/redis"
	"github.com/userhub/accounts-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; token revocation is then disabled. audit may be nil; no
// audit trail is then recorded.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, tokens *auth.TokenService, apiKey string, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	hasher := auth.NewPasswordHasher()

	var denylist ports.TokenDenylist
	if rdb != nil {
		denylist = redis.NewDenylist(rdb)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, denylist, audit)
	userService := service.NewUserService(userRepo, hasher)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	requireAPIKey := middleware.APIKey(apiKey)
	requireAuth := middleware.Auth(tokens, userRepo, denylist)

	// --- Users API ---
	users := e.Group("/api/users", requireAPIKey)

	users.POST("/login", authHandler.Login)
	users.POST("/add", userHandler.Add)

	users.POST("/refresh", authHandler.Refresh, requireAuth)
	users.POST("/logout", authHandler.Logout, requireAuth)
	users.GET("/info", userHandler.List, requireAuth)
	users.GET("/info/:id", userHandler.GetByID, requireAuth)
	users.PATCH("/update/:id", userHandler.Update, requireAuth)
	users.DELETE("/delete/:id", userHandler.Delete, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
