// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminservice "merchantapp/internal/admin/service"
	adminhttp "merchantapp/internal/admin/transport/http"
	"merchantapp/internal/config"
	customerrepository "merchantapp/internal/customer/repository"
	customerservice "merchantapp/internal/customer/service"
	customerhttp "merchantapp/internal/customer/transport/http"
	merchantrepository "merchantapp/internal/merchant/repository"
	merchantservice "merchantapp/internal/merchant/service"
	merchanthttp "merchantapp/internal/merchant/transport/http"
	"merchantapp/internal/metrics"
	offerrepository "merchantapp/internal/offer/repository"
	offerservice "merchantapp/internal/offer/service"
	offerhttp "merchantapp/internal/offer/transport/http"
	"merchantapp/internal/payment"
	productrepository "merchantapp/internal/product/repository"
	productservice "merchantapp/internal/product/service"
	producthttp "merchantapp/internal/product/transport/http"
	reportrepository "merchantapp/internal/report/repository"
	reportservice "merchantapp/internal/report/service"
	reporthttp "merchantapp/internal/report/transport/http"
	storerepository "merchantapp/internal/store/repository"
	storehttp "merchantapp/internal/store/transport/http"
	subscriptionrepository "merchantapp/internal/subscription/repository"
	subscriptionservice "merchantapp/internal/subscription/service"
	subscriptionhttp "merchantapp/internal/subscription/transport/http"
	tokenrepository "merchantapp/internal/token/repository"
	transactionrepository "merchantapp/internal/transaction/repository"
	transactionservice "merchantapp/internal/transaction/service"
	transactionhttp "merchantapp/internal/transaction/transport/http"
	userrepository "merchantapp/internal/user/repository"
	userservice "merchantapp/internal/user/service"
	userhttp "merchantapp/internal/user/transport/http"
	"merchantapp/pkg/middleware"
)

var server *http.Server

func main() {
	fmt.Println("MerchantApp API starting...")
	cfg := config.Load()
	fmt.Println("Config loaded")

	metrics.InitMetrics()

	// --- service layers ---
	userRepo := userrepository.NewMemoryUserRepository()
	userService := userservice.NewUserService(userRepo)
	refreshTokenRepo := tokenrepository.NewRefreshTokenRepository()
	authHandler := userhttp.NewHandler(userService, cfg.JWTSecret, refreshTokenRepo)

	processor := payment.NewSimulatedProcessor(paymentDelay(cfg))
	subRepo := subscriptionrepository.NewMemoryRepository()
	subService := subscriptionservice.NewService(subRepo, processor)
	subHandler := subscriptionhttp.NewSubscriptionHandler(subService)

	productRepo := productrepository.NewMemoryRepository()
	productService := productservice.NewService(productRepo, subService)
	productHandler := producthttp.NewProductHandler(productService)

	offerRepo := offerrepository.NewMemoryRepository()
	offerService := offerservice.NewService(offerRepo, subService)
	offerHandler := offerhttp.NewOfferHandler(offerService)

	customerRepo := customerrepository.NewMemoryRepository()
	customerService := customerservice.NewService(customerRepo)
	customerHandler := customerhttp.NewCustomerHandler(customerService)

	txnRepo := transactionrepository.NewMemoryRepository()
	txnService := transactionservice.NewService(txnRepo)
	txnHandler := transactionhttp.NewTransactionHandler(txnService)

	storeRepo := storerepository.NewMemoryRepository()
	storeHandler := storehttp.NewStoreHandler(storeRepo)

	merchantRepo := merchantrepository.NewMemoryRepository()
	merchantService := merchantservice.NewService(merchantRepo)
	merchantHandler := merchanthttp.NewMerchantHandler(merchantService)

	reportRepo := reportrepository.NewMemoryRepository()
	reportService := reportservice.NewService(reportRepo)
	reportHandler := reporthttp.NewReportHandler(reportService)

	adminService := adminservice.NewService(merchantRepo, reportRepo)
	adminHandler := adminhttp.NewAdminHandler(adminService)

	// --- router ---
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://localhost:3000", "http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.ValidateRequest)

	limiter := middleware.NewRateLimiter(100, time.Minute)
	r.Use(limiter.Middleware)

	// public routes
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.Refresh)

	// authenticated routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.JWTAuth(cfg.JWTSecret))

		pr.Get("/api/subscription", subHandler.GetCurrent)
		pr.Get("/api/subscription/plans", subHandler.GetPlans)
		pr.Post("/api/subscription/subscribe", subHandler.Subscribe)
		pr.Post("/api/subscription/cancel-auto-renew", subHandler.CancelAutoRenew)

		pr.Get("/api/products", productHandler.List)
		pr.Post("/api/products", productHandler.Create)
		pr.Put("/api/products/{id}", productHandler.Update)
		pr.Delete("/api/products/{id}", productHandler.Delete)

		pr.Get("/api/offers", offerHandler.List)
		pr.Post("/api/offers", offerHandler.Create)
		pr.Put("/api/offers/{id}", offerHandler.Update)
		pr.Delete("/api/offers/{id}", offerHandler.Delete)

		pr.Get("/api/customers/nearby", customerHandler.Nearby)
		pr.Get("/api/customers/requests", customerHandler.Requests)
		pr.Post("/api/customers/requests/{id}/decision", customerHandler.Decide)
		pr.Post("/api/customers/notify", customerHandler.Notify)

		pr.Get("/api/transactions", txnHandler.List)

		pr.Get("/api/store", storeHandler.Get)
		pr.Put("/api/store", storeHandler.Update)

		// admin routes
		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin)

			ar.Get("/api/admin/merchants", merchantHandler.List)
			ar.Post("/api/admin/merchants/{id}/approval", merchantHandler.Approve)
			ar.Put("/api/admin/merchants/{id}/status", merchantHandler.SetStatus)

			ar.Get("/api/admin/reports", reportHandler.List)
			ar.Get("/api/admin/reports/{id}", reportHandler.Get)
			ar.Put("/api/admin/reports/{id}/status", reportHandler.UpdateStatus)

			ar.Get("/api/admin/summary", adminHandler.Summary)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Group(func(mr chi.Router) {
		mr.Use(middleware.BasicAuth(cfg.MetricsUser, cfg.MetricsPassword))
		mr.Handle("/metrics", promhttp.Handler())
	})

	server = &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	log.Printf("Server running on %s", cfg.Addr)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Println("Shutdown signal received, starting graceful shutdown")
		shutdownServer()
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func paymentDelay(cfg *config.Config) time.Duration {
	if cfg.PaymentDelayMs == "" {
		return 200 * time.Millisecond
	}
	ms, err := strconv.Atoi(cfg.PaymentDelayMs)
	if err != nil || ms < 0 {
		log.Printf("Invalid PAYMENT_DELAY_MS %q, using default", cfg.PaymentDelayMs)
		return 200 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func shutdownServer() {
	log.Println("Starting server shutdown process")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped")
}
