package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "sportsstore-service/common/errors"
	"sportsstore-service/common/logger"
	"sportsstore-service/controllers"
	"sportsstore-service/database"
	"sportsstore-service/middleware"
	aws_pkg "sportsstore-service/pkg/aws"
	"sportsstore-service/repository"
	"sportsstore-service/routes"
	"sportsstore-service/services"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "sportsstore-service"

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize(os.Getenv("APP_ENV")).Fatal("Config load failed", zap.Error(err))
	}

	ctx := context.Background()

	awsCfg, awsErr := aws_pkg.LoadAWSConfig(ctx)

	var log *zap.Logger
	if cfg.CloudWatchEnabled && awsErr == nil {
		if cw, err := aws_pkg.NewCloudWatchLogsClient(ctx, awsCfg, serviceName); err == nil {
			log = logger.InitializeWithWriter(cfg.AppEnv, cw)
		} else {
			log = logger.Initialize(cfg.AppEnv)
			log.Warn("CloudWatch Logs unavailable, logging to console only", zap.Error(err))
		}
	} else {
		log = logger.Initialize(cfg.AppEnv)
	}
	defer log.Sync()

	if awsErr != nil {
		log.Warn("AWS config load failed (non-fatal)", zap.Error(awsErr))
	}
	metricsClient := aws_pkg.NewMetricsClient(awsCfg)

	// Catalog
	catalog, closeCatalog, err := connectCatalog(ctx, cfg, awsCfg, log)
	if err != nil {
		log.Fatal("Catalog connection failed", zap.Error(err), zap.String("backend", cfg.CatalogBackend))
	}
	defer closeCatalog()

	// Redis
	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("Connected to Redis")

	cachedCatalog := repository.NewCachedProductRepository(catalog, redisClient, cfg.CatalogCacheTTL, metricsClient, log)
	cartStore := repository.NewRedisCartStore(redisClient, cfg.CartTTL)

	if cfg.SeedData {
		if _, err := database.Seed(ctx, cachedCatalog, log); err != nil {
			log.Error("Catalog seed failed", zap.Error(err))
		}
	}

	// Order processing
	processor, closers, err := buildOrderProcessor(ctx, cfg, awsCfg, log)
	if err != nil {
		log.Fatal("Order processor init failed", zap.Error(err))
	}
	defer closeAll(closers, log)

	var presigner aws_pkg.URLPresigner
	if cfg.ProductImageBucket != "" {
		presigner = aws_pkg.NewS3Presigner(awsCfg, cfg.ProductImageBucket)
	}

	// Dependency injection
	productService := services.NewProductService(cachedCatalog, cfg.PageSize, log)
	checkoutService := services.NewCheckoutService(processor, metricsClient, log)
	adminService := services.NewAdminService(cachedCatalog, presigner, metricsClient, log)
	accountService := services.NewAccountService(
		services.AdminCredentials{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash},
		[]byte(cfg.JWTSecret), cfg.TokenTTL, log,
	)

	handlers := routes.Handlers{
		Products: controllers.NewProductController(productService),
		Nav:      controllers.NewNavController(productService),
		Cart:     controllers.NewCartController(cartStore, cachedCatalog, checkoutService),
		Admin:    controllers.NewAdminController(adminService),
		Account:  controllers.NewAccountController(accountService),
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(metricsClient, serviceName),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitPerMinute/2+1),
		middleware.Timeout(30*time.Second),
		apperrors.ErrorMiddleware(),
	)

	routes.RegisterRoutes(r, handlers,
		middleware.AuthMiddleware([]byte(cfg.JWTSecret), cfg.TrustGateway),
		middleware.AdminOnly(),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("SportsStore service started", zap.String("port", cfg.Port), zap.String("catalog", cfg.CatalogBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	log.Info("Server exited")
}

// connectCatalog opens the configured catalog backend.
func connectCatalog(ctx context.Context, cfg *Config, awsCfg sdkaws.Config, log *zap.Logger) (repository.ProductRepository, func(), error) {
	switch cfg.CatalogBackend {
	case "mongo":
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMongoProductRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn("Mongo index creation failed", zap.Error(err))
		}
		log.Info("Connected to MongoDB", zap.String("db", cfg.MongoDB))
		return repo, func() {
			if err := database.DisconnectMongo(client); err != nil {
				log.Error("Mongo disconnect failed", zap.Error(err))
			}
		}, nil
	case "dynamodb":
		repo := repository.NewDynamoProductRepository(aws_pkg.NewDynamoDBClient(awsCfg), cfg.DynamoTable)
		log.Info("Using DynamoDB catalog", zap.String("table", cfg.DynamoTable))
		return repo, func() {}, nil
	default:
		db, err := database.ConnectPostgres(cfg.Postgres, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewGormProductRepository(db), func() {
			if err := database.ClosePostgres(db); err != nil {
				log.Error("Postgres close failed", zap.Error(err))
			}
		}, nil
	}
}

func closeAll(closers []io.Closer, log *zap.Logger) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Error("Close failed", zap.Error(err))
		}
	}
}
