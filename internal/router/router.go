package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"            // Echo web framework used for routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware (CORS)
	"github.com/redis/go-redis/v9"

	"github.com/openlot/account-service/internal/config"
	"github.com/openlot/account-service/internal/handler"
	"github.com/openlot/account-service/internal/middleware"
	"github.com/openlot/account-service/internal/repository"
)

// Deps carries everything route registration needs.  The signing secret and
// the CORS allow-list travel on Cfg; no route reads ambient state.
type Deps struct {
	Cfg      config.Config
	RateCfg  config.RateLimitConfig
	Redis    *redis.Client
	Denylist *repository.TokenDenylist

	Auth        *handler.AuthHandler
	Dealership  *handler.DealershipHandler
	Salesperson *handler.SalespersonHandler
	Billing     *handler.BillingHandler
}

// Register wires up the full HTTP surface.
//
// Request flow on protected routes: bearer extraction and verification
// (401), then the role gate (403), then the handler.  The auth endpoints
// additionally sit behind the rate limiter so password guessing is bounded
// per client.
func Register(e *echo.Echo, d Deps) {
	// Health check outside /api; no CORS or auth involved.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Credentialed cross-origin requests must see their own origin echoed
	// back, so the allow-list is explicit and wildcard-free.
	api.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     d.Cfg.AllowedOrigins(),
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}))

	// Pre-token endpoints, rate limited.
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(d.RateCfg, d.Redis))
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)

	// Everything below requires a verified bearer token.
	jwtAuth := middleware.JWTAuth(d.Cfg.JWTSecret, d.Denylist)

	auth.GET("/me", d.Auth.Me, jwtAuth)
	auth.POST("/logout", d.Auth.Logout, jwtAuth)

	dealership := api.Group("/dealership", jwtAuth, middleware.RequireRole(handler.RoleDealership))
	dealership.POST("/create", d.Dealership.Create)

	salesperson := api.Group("/salesperson", jwtAuth, middleware.RequireRole(handler.RoleSalesperson))
	salesperson.POST("/profile", d.Salesperson.UpsertProfile)
	salesperson.GET("/profile", d.Salesperson.GetProfile)

	billing := api.Group("/billing", jwtAuth, middleware.RequireRole(handler.RoleDealership, handler.RoleSalesperson))
	billing.POST("/subscribe", d.Billing.Subscribe)
}
