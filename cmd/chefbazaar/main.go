package main

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rookgm/chefbazaar/config"
	"github.com/rookgm/chefbazaar/internal/auth"
	"github.com/rookgm/chefbazaar/internal/cache"
	"github.com/rookgm/chefbazaar/internal/events"
	handler "github.com/rookgm/chefbazaar/internal/handler/http"
	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/metrics"
	"github.com/rookgm/chefbazaar/internal/middleware"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/payment"
	"github.com/rookgm/chefbazaar/internal/repository"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
	"github.com/rookgm/chefbazaar/internal/service"
	"github.com/rookgm/chefbazaar/internal/tracking"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKey, err := hex.DecodeString(cfg.AuthTokenKey)
	if err != nil || len(tokenKey) == 0 {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	metrics.Register(prometheus.DefaultRegisterer)

	// dependency injection
	orderRepo := repository.NewOrderRepository(db)
	mealRepo := repository.NewMealRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	ids := tracking.NewGenerator()
	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.CheckoutCurrency, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	var paymentOpts []service.PaymentOption

	// reconciliation cache
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Log.Fatal("Error connecting to redis", zap.Error(err))
		}
		defer rdb.Close()
		paymentOpts = append(paymentOpts, service.WithReconciliationCache(cache.NewReconciliationCache(rdb)))
	}

	// order paid events
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Log.Fatal("Error creating kafka producer", zap.Error(err))
		}
		publisher := events.NewPublisher(producer, cfg.OrderPaidTopic)
		defer publisher.Close()
		paymentOpts = append(paymentOpts, service.WithEventPublisher(publisher))
	}

	orderService := service.NewOrderService(orderRepo, mealRepo, trackingRepo, ids)
	orderHandler := handler.NewOrderHandler(orderService)

	checkoutService := service.NewCheckoutService(provider, orderRepo, mealRepo, trackingRepo, ids)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	paymentService := service.NewPaymentService(paymentRepo, provider, paymentOpts...)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))
	router.Use(metrics.Instrument)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Pipeline(middleware.Authenticate(token)))
		group.Post("/api/checkout-sessions", checkoutHandler.CreateSession())
		group.Patch("/api/payment-confirmations", paymentHandler.ConfirmPayment())
		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Get("/api/orders", orderHandler.ListBuyerOrders())
		group.Get("/api/orders/{trackingID}/tracking", orderHandler.GetTracking())
	})

	// admin routes
	router.Group(func(group chi.Router) {
		group.Use(middleware.Pipeline(middleware.Authenticate(token), middleware.RequireRole(models.RoleAdmin)))
		group.Get("/api/payments", paymentHandler.ListPayments())
	})

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Error shutting down server", zap.Error(err))
	}
}
