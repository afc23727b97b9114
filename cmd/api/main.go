package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cryptopay-gateway/config"
	"cryptopay-gateway/internal/adapter/chain"
	httpHandler "cryptopay-gateway/internal/adapter/http/handler"
	"cryptopay-gateway/internal/adapter/messaging/rabbitmq"
	pgStorage "cryptopay-gateway/internal/adapter/storage/postgres"
	redisStorage "cryptopay-gateway/internal/adapter/storage/redis"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/internal/scheduler"
	"cryptopay-gateway/internal/service"
	"cryptopay-gateway/pkg/logger"
	"cryptopay-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	shutdownTimeout = 15 * time.Second
	jobTimeout      = 2 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CPG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting CryptoPay Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Chain clients
	registry, err := chain.Connect(ctx, cfg.Chains, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect chain clients")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepository(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	transactor := pgStorage.NewTransactor(pool, cfg.Database.LockTimeout)

	// Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	walletLock := redisStorage.NewWalletLock(rdb)
	eventDedup := redisStorage.NewEventDedup(rdb)

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Broker (optional)
	healthCheckers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}
	var (
		publisher ports.EventPublisher
		observers []ports.ChainObserver
	)
	if cfg.Broker.Enabled {
		conn, err := rabbitmq.NewConnection(cfg.Broker.URL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid broker configuration")
		}
		defer conn.Close()

		pub := rabbitmq.NewPublisher(conn, cfg.Broker.EventsExchange, log)
		defer pub.Close()
		publisher = pub

		for _, network := range domain.AllNetworks() {
			if _, ok := cfg.Chains[string(network)]; !ok {
				continue
			}
			observers = append(observers, rabbitmq.NewChainObserver(
				conn, network, cfg.Broker.ChainExchange, cfg.Broker.ChainQueuePrefix, log))
		}
		healthCheckers = append(healthCheckers, conn)
		log.Info().Int("observers", len(observers)).Msg("Broker configured")
	}

	// Business services
	estimator := service.NewConfiguredGasEstimator(cfg.Chains)
	gasValidator := service.NewGasValidator(walletRepo, estimator)
	prices := service.NewStaticPriceOracle(cfg.Prices)
	vault := service.NewKeyVault(walletRepo, cfg.Vault.DefaultPassword, log)
	fees := service.NewFeeCalculator(cfg.Payment)
	confirmations := service.ConfirmationsFrom(cfg.Chains)

	dispatcher := service.NewWebhookDispatcher(
		merchantRepo,
		webhookRepo,
		encSvc,
		sigSvc,
		publisher,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		cfg.Webhook,
		m,
		log,
	)

	processor := service.NewWithdrawalProcessor(service.WithdrawalDeps{
		MerchantRepo:   merchantRepo,
		WalletRepo:     walletRepo,
		PaymentRepo:    paymentRepo,
		WithdrawalRepo: withdrawalRepo,
		Transactor:     transactor,
		Vault:          vault,
		Gas:            gasValidator,
		Estimator:      estimator,
		Prices:         prices,
		Chains:         registry,
		Signer:         chain.NewSigner(),
		Locks:          walletLock,
		Webhooks:       dispatcher,
		Audit:          auditSvc,
	}, service.WithdrawalConfig{
		Withdrawal:    cfg.Withdrawal,
		Forwarding:    cfg.Forwarding,
		Confirmations: confirmations,
	}, m, log)

	ledger := service.NewPaymentLedger(service.PaymentLedgerDeps{
		MerchantRepo: merchantRepo,
		WalletRepo:   walletRepo,
		PaymentRepo:  paymentRepo,
		IdempRepo:    idempotencyRepo,
		IdempCache:   idempotencyCache,
		Transactor:   transactor,
		Vault:        vault,
		Fees:         fees,
		Prices:       prices,
		Dedup:        eventDedup,
		Webhooks:     dispatcher,
		Withdrawals:  processor,
		Audit:        auditSvc,
	}, service.LedgerConfig{
		Payment:       cfg.Payment,
		Forwarding:    cfg.Forwarding,
		Confirmations: confirmations,
	}, m, log)

	authSvc := service.NewAuthService(merchantRepo, hashSvc, encSvc, tokenSvc, auditSvc)
	merchantSvc := service.NewMerchantService(merchantRepo, encSvc, auditSvc, log)
	walletSvc := service.NewWalletService(walletRepo, gasValidator, prices, log)
	reportingSvc := service.NewReportingService(paymentRepo)

	// Background work: chain observers and periodic sweeps
	var background sync.WaitGroup
	if len(observers) > 0 {
		supervisor := service.NewObserverSupervisor(observers, ledger, cfg.Observer, log)
		background.Go(func() { supervisor.Run(ctx) })
	}

	sched := scheduler.New(log, jobTimeout)
	mustRegister(log, sched, "expiry_sweep", cfg.Scheduler.ExpirySweep, ledger.ExpirePending)
	mustRegister(log, sched, "webhook_retry", cfg.Scheduler.WebhookRetry, dispatcher.RetryDue)
	mustRegister(log, sched, "withdrawal_monitor", cfg.Scheduler.WithdrawalMonitor, processor.ResolveStale)
	if cfg.Forwarding.Enabled {
		mustRegister(log, sched, "forward_sweep", cfg.Scheduler.ForwardSweep, ledger.ForwardPending)
	}
	sched.Start()

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Ledger:         ledger,
		Withdrawals:    processor,
		Webhooks:       dispatcher,
		WalletSvc:      walletSvc,
		Vault:          vault,
		ReportingSvc:   reportingSvc,
		MerchantSvc:    merchantSvc,
		MerchantRepo:   merchantRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		ChainSink:      ledger,
		SandboxSvc:     service.NewSandboxService(merchantRepo, ledger, ledger, auditSvc, log),
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Metrics:        m,
		MetricsPath:    cfg.Metrics.Path,
		AdminTokens:    cfg.Admin.Tokens,
		ObserverToken:  cfg.Observer.Token,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
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

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("Scheduled jobs still running at shutdown")
	}
	background.Wait()
	ledger.Wait()
	dispatcher.Wait()

	log.Info().Msg("Server exited")
}

func mustRegister(log zerolog.Logger, s *scheduler.Scheduler, name, spec string, job scheduler.Job) {
	if err := s.Register(name, spec, job); err != nil {
		log.Fatal().Err(err).Str("job", name).Msg("Invalid schedule")
	}
}
