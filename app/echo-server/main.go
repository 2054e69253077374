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

	"glowSkincare/app/echo-server/router"
	"glowSkincare/business/catalog"
	"glowSkincare/business/profile"
	"glowSkincare/business/questionnaire"
	"glowSkincare/business/recommend"
	"glowSkincare/business/subscription"
	userService "glowSkincare/business/user"
	"glowSkincare/internal/middleware"
	"glowSkincare/internal/repository/faceanalysis"
	psqlRepo "glowSkincare/internal/repository/postgres"
	redisRepo "glowSkincare/internal/repository/redis"
	"glowSkincare/internal/rest"
	"glowSkincare/pkg/config"
	"glowSkincare/pkg/database"
	redisDB "glowSkincare/pkg/database/redis"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/metrics"
	"glowSkincare/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Glow Skincare API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisDB.CloseRedisClient(redisClient)

	analyzer, err := faceanalysis.New(context.Background(), cfg.FaceScan)
	if err != nil {
		logger.Fatal("Failed to init face analyzer", "error", err)
	}
	defer analyzer.Close()

	logger.Info("Face analyzer ready", "analyzer", cfg.FaceScan.Analyzer)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	subscriptionRepo := psqlRepo.NewSubscriptionRepository(db)
	skinProfileRepo := psqlRepo.NewSkinProfileRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	sessionRepo := redisRepo.NewQuestionnaireRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, tokenRepo, validate)
	catalogSvc := catalog.NewCatalogService(productRepo, validate)
	subscriptionSvc := subscription.NewSubscriptionService(subscriptionRepo)
	profileSvc := profile.NewProfileService(skinProfileRepo, analyzer, profile.NewScanSealer(cfg.FaceScan.ScanTokenKey))
	questionnaireSvc := questionnaire.NewQuestionnaireService(sessionRepo, profileSvc, time.Duration(cfg.FaceScan.QuestionTTLMin)*time.Minute)

	engine := recommend.NewEngine(recommend.Config{
		StandardDepth: cfg.Recommend.StandardDepth,
		PremiumDepth:  cfg.Recommend.PremiumDepth,
		RoutineSize:   cfg.Recommend.RoutineSize,
		RoutineRules:  recommend.DefaultRoutineRules(),
	})
	recommendSvc := recommend.NewRecommendService(engine, productRepo, subscriptionSvc, profileSvc)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogSvc.SeedIfEmpty(seedCtx); err != nil {
		logger.Error("Failed to seed product catalog", "error", err)
	}
	seedCancel()

	// Init handler
	userHandler := rest.NewUserHandler(userSvc, subscriptionSvc)
	productHandler := rest.NewProductHandler(catalogSvc)
	questionnaireHandler := rest.NewQuestionnaireHandler(questionnaireSvc)
	faceScanHandler := rest.NewFaceScanHandler(profileSvc, cfg.FaceScan.MaxImageBytes)
	recommendationHandler := rest.NewRecommendationHandler(recommendSvc)
	subscriptionHandler := rest.NewSubscriptionHandler(subscriptionSvc)
	profileHandler := rest.NewProfileHandler(profileSvc)
	healthHandler := rest.NewHealthHandler(map[string]rest.Pinger{
		"postgres": rest.PingFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		"redis": rest.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}),
	})

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(userSvc)
	authOptional := middleware.OptionalAuthMiddleware(userSvc)
	adminOnly := middleware.AdminOnly()

	// Face scan guards
	scanBodyLimit := echomiddleware.BodyLimit(strconv.FormatInt(cfg.FaceScan.MaxImageBytes+(64<<10), 10) + "B")
	scanRateLimit := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.FaceScan.RatePerMinute) / 60),
			Burst:     cfg.FaceScan.RatePerMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("Face scan rate limit exceeded", "ip", identifier)
			return c.JSON(http.StatusTooManyRequests, rest.ResponseError{Message: "too many face scans, try again later"})
		},
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", healthHandler.Health)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupQuestionnaireRoutes(api, questionnaireHandler, authOptional)
	router.SetupFaceScanRoutes(api, faceScanHandler, authOptional, scanBodyLimit, scanRateLimit)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired, authOptional)
	router.SetupSubscriptionRoutes(api, subscriptionHandler, authRequired)
	router.SetupProfileRoutes(api, profileHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
