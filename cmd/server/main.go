package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"productpulse-backend-go/internal/api"
	"productpulse-backend-go/internal/config"
	"productpulse-backend-go/internal/core"
	"productpulse-backend-go/internal/db"
	"productpulse-backend-go/internal/middleware"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("configuration loaded")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	client, err := db.Connect(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			zapLogger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	zapLogger.Info("connected to MongoDB", zap.String("database", appConfig.MongoDatabase))

	cols := db.NewCollections(client, appConfig.MongoDatabase)
	userRepo := db.NewMongoUserRepository(cols.Users)
	productRepo := db.NewMongoProductRepository(cols.Products)
	voteRepo := db.NewMongoVoteRepository(cols.Votes)
	reviewRepo := db.NewMongoReviewRepository(cols.Reviews)
	couponRepo := db.NewMongoCouponRepository(cols.Coupons)
	paymentRepo := db.NewMongoPaymentRepository(cols.Payments)
	reportRepo := db.NewMongoReportRepository(cols.Reports)
	sliderRepo := db.NewMongoSliderRepository(cols.Sliders)

	services := api.Services{
		Tokens:   core.NewTokenService(appConfig.AccessTokenSecret),
		Users:    core.NewUserService(userRepo),
		Products: core.NewProductService(productRepo, reviewRepo, reportRepo),
		Ranking:  core.NewRankingService(productRepo, voteRepo),
		Votes:    core.NewVoteService(voteRepo),
		Reviews:  core.NewReviewService(reviewRepo),
		Reports:  core.NewReportService(reportRepo),
		Coupons:  core.NewCouponService(couponRepo),
		Stats:    core.NewStatsService(userRepo, productRepo, reviewRepo),
		Sliders:  core.NewSliderService(sliderRepo),
		Billing:  core.NewBillingService(paymentRepo, userRepo, appConfig.StripeSecretKey),
	}
	zapLogger.Info("core services initialized")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(router, zapLogger, services)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting gracefully")
}
