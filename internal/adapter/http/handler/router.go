package handler

import (
	"cryptopay-gateway/internal/adapter/http/middleware"
	redisStore "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Ledger         ports.PaymentLedger
	Withdrawals    ports.WithdrawalProcessor
	Webhooks       ports.WebhookDispatcher
	WalletSvc      ports.WalletService
	Vault          ports.KeyVault
	ReportingSvc   ports.ReportingService
	MerchantSvc    ports.MerchantManagementService
	MerchantRepo   ports.MerchantRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	ChainSink      ports.ChainEventSink
	SandboxSvc     ports.SandboxService       // nil = sandbox simulation disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Metrics        *metrics.Metrics   // nil = metrics not served
	MetricsPath    string             // defaults to /metrics
	AdminTokens    map[string]string  // operator name -> token
	ObserverToken  string             // empty = chain event ingress disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check pings PostgreSQL, Redis and the broker
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// rl returns the limiter for group, or a no-op when the store is absent.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (merchant API) ---
	hmacAuth := middleware.HMACAuth(deps.MerchantRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)

	paymentHandler := NewPaymentHandler(deps.Ledger, deps.Withdrawals)
	payments := v1.Group("/payments", hmacAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.CreatePayment)
		payments.GET("", rl("payments_read"), paymentHandler.ListPayments)
		payments.GET("/:id", rl("payments_read"), paymentHandler.GetPayment)
		payments.POST("/:id/refund", rl("payments_refund"), paymentHandler.RefundPayment)
	}

	if deps.SandboxSvc != nil {
		sandboxHandler := NewSandboxHandler(deps.SandboxSvc)
		v1.POST("/sandbox/payments/:id/simulate", hmacAuth, rl("payments"), sandboxHandler.Simulate)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.Vault)
	wallets := v1.Group("/wallets", hmacAuth)
	{
		wallets.GET("", rl("payments_read"), walletHandler.ListWallets)
		wallets.POST("/generate", rl("wallets"), walletHandler.GenerateWallet)
		wallets.POST("/import", rl("wallets"), walletHandler.ImportWallet)
		wallets.POST("/configure-address", rl("wallets"), walletHandler.ConfigureAddress)
		wallets.GET("/gas-check", rl("payments_read"), walletHandler.GasCheck)
	}

	withdrawalHandler := NewWithdrawalHandler(deps.Withdrawals)
	withdrawals := v1.Group("/withdrawals", hmacAuth)
	{
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.CreateWithdrawal)
		withdrawals.GET("/:id", rl("payments_read"), withdrawalHandler.GetWithdrawal)
		withdrawals.POST("/:id/process", rl("withdrawals"), withdrawalHandler.ProcessWithdrawal)
	}

	webhookHandler := NewWebhookHandler(deps.Webhooks)
	deliveries := v1.Group("/webhooks/deliveries", hmacAuth)
	{
		deliveries.GET("", rl("webhooks"), webhookHandler.ListDeliveries)
		deliveries.POST("/:id/redeliver", rl("webhooks"), webhookHandler.Redeliver)
	}
	// Signature-verified inbound notifications.
	v1.POST("/webhooks/:merchant", rl("inbound_webhook"), webhookHandler.Inbound)

	// --- JWT-authenticated routes (dashboard) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	dashboard := v1.Group("/dashboard", jwtAuth)
	{
		dashboard.GET("/stats", rl("dashboard"), dashboardHandler.GetStats)
	}

	merchantHandler := NewMerchantHandler(deps.MerchantSvc)
	merchants := v1.Group("/merchants/me", jwtAuth)
	{
		merchants.GET("", rl("dashboard"), merchantHandler.GetProfile)
		merchants.PUT("/webhook", rl("dashboard"), merchantHandler.UpdateWebhookURL)
		merchants.POST("/rotate-keys", rl("dashboard"), merchantHandler.RotateKeys)
		merchants.POST("/sandbox", rl("dashboard"), merchantHandler.EnableSandbox)
	}

	// --- Administrative overrides (operator tokens) ---
	adminHandler := NewAdminHandler(deps.Ledger, deps.Withdrawals, deps.MerchantSvc)
	admin := v1.Group("/admin", middleware.AdminAuth(deps.AdminTokens, deps.Logger))
	{
		admin.POST("/payments/:id/force-confirm", adminHandler.ForceConfirm)
		admin.POST("/payments/:id/force-fail", adminHandler.ForceFail)
		admin.POST("/withdrawals/:id/approve", adminHandler.ApproveWithdrawal)
		admin.POST("/withdrawals/:id/reject", adminHandler.RejectWithdrawal)
		admin.POST("/merchants/:id/suspend", adminHandler.SuspendMerchant)
		admin.POST("/merchants/:id/activate", adminHandler.ActivateMerchant)
		admin.PUT("/merchants/:id/kyc", adminHandler.SetKYC)
	}

	// --- Chain observer ingress ---
	if deps.ChainSink != nil {
		observerHandler := NewObserverHandler(deps.ChainSink)
		internal := r.Group("/internal/v1", middleware.ObserverAuth(deps.ObserverToken))
		{
			internal.POST("/chain-events", observerHandler.ChainEvent)
		}
	}

	return r
}
