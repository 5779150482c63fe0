package handler

import (
	"bank-ledger/internal/adapter/http/middleware"
	redisStore "bank-ledger/internal/adapter/storage/redis"
	"bank-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.BankAccountService
	TokenSvc       ports.TokenService         // nil = bearer auth disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	WriteLimit     middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")
	if deps.TokenSvc != nil {
		v1.Use(middleware.JWTAuth(deps.TokenSvc))
	}

	var limitWrites gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		limitWrites = middleware.RateLimiter(deps.RateLimitStore, "writes", deps.WriteLimit, deps.Logger)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc)
	accounts := v1.Group("/accounts/:id")
	{
		accounts.POST("/deposits", limitWrites, accountHandler.Deposit)
		accounts.POST("/withdrawals", limitWrites, accountHandler.Withdraw)
		accounts.GET("/history", accountHandler.History)
	}

	return r
}
