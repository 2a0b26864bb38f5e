package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"recovery-backend/internal/auth"
	"recovery-backend/internal/cache"
	"recovery-backend/internal/config"
	"recovery-backend/internal/database"
	"recovery-backend/internal/db"
	"recovery-backend/internal/handlers"
	"recovery-backend/internal/health"
	apihttp "recovery-backend/internal/http"
	"recovery-backend/internal/middleware"
	"recovery-backend/internal/monitoring"
	"recovery-backend/internal/repositories"
	"recovery-backend/internal/services"
	"recovery-backend/internal/storage"
	"recovery-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; login falls back to bcrypt-only
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Embedded migrations run on every start; applied files are skipped
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)

	// Ops sidecar on its own port
	go monitoring.NewServer(pool, cfg.Server.MonitoringPort).Start()

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	caseRepo := repositories.NewCaseRepository(pool)
	followupRepo := repositories.NewFollowupRepository(pool)
	callLogRepo := repositories.NewCallLogRepository(pool)
	offerRepo := repositories.NewOfferRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	expenseRepo := repositories.NewExpenseRepository(pool)
	referralRepo := repositories.NewReferralRepository(pool)
	fieldDataRepo := repositories.NewFieldDataRepository(pool)
	onlineTxRepo := repositories.NewOnlineTransactionRepository(pool)
	statsRepo := repositories.NewStatsRepository(pool)

	// File storage, with optional R2 mirroring
	uploader, err := storage.NewUploader(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB, storage.NewR2Mirror(cfg))
	if err != nil {
		log.Fatalf("Failed to prepare uploads dir: %v", err)
	}

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	caseService := services.NewCaseService(caseRepo, userRepo)
	followupService := services.NewFollowupService(followupRepo)
	callLogService := services.NewCallLogService(callLogRepo)
	offerService := services.NewOfferService(offerRepo, caseRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	receiptService := services.NewReceiptService(paymentRepo)
	razorpayService := services.NewRazorpayService(cfg, onlineTxRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	referralService := services.NewReferralService(referralRepo)
	fieldDataService := services.NewFieldDataService(fieldDataRepo)
	dashboardService := services.NewDashboardService(statsRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	caseHandler := handlers.NewCaseHandler(caseService, uploader)
	followupHandler := handlers.NewFollowupHandler(followupService)
	callLogHandler := handlers.NewCallLogHandler(callLogService)
	offerHandler := handlers.NewOfferHandler(offerService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, receiptService, razorpayService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	referralHandler := handlers.NewReferralHandler(referralService)
	fieldDataHandler := handlers.NewFieldDataHandler(fieldDataService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := apihttp.NewRouter(
		authHandler,
		userHandler,
		caseHandler,
		followupHandler,
		callLogHandler,
		offerHandler,
		paymentHandler,
		expenseHandler,
		referralHandler,
		fieldDataHandler,
		dashboardHandler,
		healthHandler,
		authMiddleware,
		cfg.Uploads.Dir,
	)

	handler := middleware.PanicRecovery(
		middleware.NewCORS(cfg)(
			middleware.MetricsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Recovery CRM API listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
