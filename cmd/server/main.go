package main // Entry point package

import (
	"github.com/labstack/echo/v4" // Echo web framework
	"go.uber.org/zap"

	"github.com/openlot/account-service/internal/config"
	"github.com/openlot/account-service/internal/database"
	"github.com/openlot/account-service/internal/handler"
	"github.com/openlot/account-service/internal/logger"
	"github.com/openlot/account-service/internal/middleware"
	"github.com/openlot/account-service/internal/queue"
	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/router"
	"github.com/openlot/account-service/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: a nil client disables the rate limiter and the
	// token denylist, leaving expiry as the only token invalidation.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable; rate limiting and token revocation disabled")
	}
	denylist := repository.NewTokenDenylist(rdb)

	events := queue.NewPublisher(log)
	go queue.StartAuditConsumer(log)

	users := repository.NewUserRepo(db)
	dealerships := repository.NewDealershipRepo(db)
	profiles := repository.NewSalespersonProfileRepo(db)
	subscriptions := repository.NewSubscriptionRepo(db)

	deps := router.Deps{
		Cfg:         cfg,
		RateCfg:     config.LoadRateLimitConfig(),
		Redis:       rdb,
		Denylist:    denylist,
		Auth:        handler.NewAuthHandler(cfg, users, denylist, events),
		Dealership:  handler.NewDealershipHandler(dealerships, service.NewStubLicenseVerifier(), events),
		Salesperson: handler.NewSalespersonHandler(profiles),
		Billing:     handler.NewBillingHandler(users, subscriptions, service.NewStubBilling()),
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(middleware.RequestLogger(log))
	router.Register(e, deps)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
