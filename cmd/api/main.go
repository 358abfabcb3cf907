package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"

	_ "github.com/minhnc2843/FinVault/docs"
	"github.com/minhnc2843/FinVault/internal/auth"
	"github.com/minhnc2843/FinVault/internal/budget"
	"github.com/minhnc2843/FinVault/internal/category"
	"github.com/minhnc2843/FinVault/internal/config"
	"github.com/minhnc2843/FinVault/internal/database"
	"github.com/minhnc2843/FinVault/internal/events"
	"github.com/minhnc2843/FinVault/internal/expense"
	"github.com/minhnc2843/FinVault/internal/friendship"
	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/settlement"
	"github.com/minhnc2843/FinVault/internal/statistics"
	"github.com/minhnc2843/FinVault/internal/transaction"
	"github.com/minhnc2843/FinVault/internal/user"
	"github.com/minhnc2843/FinVault/pkg/logging"
	mw "github.com/minhnc2843/FinVault/pkg/middleware"
)

// @title                      FinVault API
// @version                    1.0
// @description                Personal finance API with shared expense splitting, settlement suggestions, budgets and statistics.
// @host                       localhost:8080
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	logger.Info("Connected to database successfully")

	// Notification feature. Events go straight to the store unless a
	// broker is configured, in which case they are published and the
	// worker persists them.
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	var notifier notification.Notifier = notification.NewStoreNotifier(notificationService)
	if cfg.AMQPURL != "" {
		eventsClient, err := events.NewClient(cfg.AMQPURL, cfg.EventExchange, cfg.NotificationQueue)
		if err != nil {
			logger.Error("Failed to connect to broker", "error", err)
			os.Exit(1)
		}
		defer eventsClient.Close()

		notifier = events.NewPublisher(eventsClient)
		logger.Info("Publishing notification events to broker", "exchange", cfg.EventExchange)
	}

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Category feature
	categoryRepo := category.NewRepository(db)
	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)

	// Auth feature
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := auth.NewService(userService, categoryService, tokens)
	authHandler := auth.NewHandler(authService)
	requireAuth := mw.Auth(authService.ValidateToken)

	// Transaction feature
	transactionRepo := transaction.NewRepository(db)
	transactionService := transaction.NewService(transactionRepo)
	transactionHandler := transaction.NewHandler(transactionService)

	// Expense and settlement features. The settlement report is mounted
	// under /shared-expenses, so its handler is injected there.
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, userService, notifier)
	settlementService := settlement.NewService(expenseRepo)
	settlementHandler := settlement.NewHandler(settlementService)
	expenseHandler := expense.NewHandler(expenseService, settlementHandler.ExpenseReport)

	// Friendship feature
	friendshipRepo := friendship.NewRepository(db)
	friendshipService := friendship.NewService(friendshipRepo, userService, notifier)
	friendshipHandler := friendship.NewHandler(friendshipService)

	// Budget feature
	budgetRepo := budget.NewRepository(db)
	budgetService := budget.NewService(budgetRepo)
	budgetHandler := budget.NewHandler(budgetService)

	// Statistics feature
	statisticsRepo := statistics.NewRepository(db)
	statisticsService := statistics.NewService(statisticsRepo)
	statisticsHandler := statistics.NewHandler(statisticsService)

	var authLimiter *mw.RateLimiter
	if cfg.AuthRateLimit > 0 {
		authLimiter = mw.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
		defer authLimiter.Stop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(mw.CORS(cfg.CORSOrigins))
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		if authLimiter != nil {
			r.With(authLimiter.Handler).Mount("/auth", authHandler.Routes(requireAuth))
		} else {
			r.Mount("/auth", authHandler.Routes(requireAuth))
		}

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Mount("/users", userHandler.Routes())
			r.Mount("/categories", categoryHandler.Routes())
			r.Mount("/transactions", transactionHandler.Routes())
			r.Mount("/shared-expenses", expenseHandler.Routes())
			r.Mount("/settlements", settlementHandler.Routes())
			r.Mount("/friends", friendshipHandler.Routes())
			r.Mount("/notifications", notificationHandler.Routes())
			r.Mount("/budgets", budgetHandler.Routes())
			r.Mount("/statistics", statisticsHandler.Routes())
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
