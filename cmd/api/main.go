package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-ledger/config"
	httpHandler "bank-ledger/internal/adapter/http/handler"
	"bank-ledger/internal/adapter/http/middleware"
	"bank-ledger/internal/adapter/messaging/rabbitmq"
	memStorage "bank-ledger/internal/adapter/storage/memory"
	pgStorage "bank-ledger/internal/adapter/storage/postgres"
	redisStorage "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/service"
	"bank-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv("LEDGER_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting bank ledger")

	ctx := context.Background()

	// Already checked by config.Load.
	loc, _ := cfg.Ledger.Location()
	accountIDs, _ := cfg.Ledger.AccountIDs()

	var (
		repo     ports.OperationRepository
		checkers []ports.HealthChecker
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		pgRepo := pgStorage.NewOperationRepo(pool)
		for _, id := range accountIDs {
			if err := pgRepo.OpenAccount(ctx, id); err != nil {
				log.Fatal().Err(err).Str("account_id", id.String()).Msg("Failed to open account")
			}
		}
		repo = pgRepo
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		repo = memStorage.NewOperationRepo(accountIDs...)
	}
	log.Info().Int("accounts", len(accountIDs)).Msg("Ledger accounts opened")

	core := service.NewBankAccountService(repo, service.NewSystemClock(loc), service.NewRandomUUIDProvider())

	var (
		locker         ports.AccountLocker = memStorage.NewAccountLocker(cfg.Ledger.LockWait)
		rateLimitStore *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		locker = redisStorage.NewAccountLocker(rdb, ports.LockOptions{
			TTL:   cfg.Ledger.LockTTL,
			Wait:  cfg.Ledger.LockWait,
			Retry: cfg.Ledger.LockRetry,
		})
		if cfg.RateLimit.Enabled {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	var accountSvc ports.BankAccountService = service.NewSerializedService(core, locker, logger.Component(log, "account_lock"))

	if cfg.RabbitMQ.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer func() {
			if err := pub.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close RabbitMQ publisher")
			}
		}()
		accountSvc = service.NewPublishingService(accountSvc, pub, logger.Component(log, "events"))
	}

	var tokenSvc ports.TokenService
	if cfg.JWT.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	} else {
		log.Warn().Msg("jwt.secret is empty, API is not authenticated")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		WriteLimit: middleware.RateLimitRule{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		},
		HealthCheckers: checkers,
		Logger:         logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
