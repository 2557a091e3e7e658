package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/clc-api/api/swagger"
	"github.com/noah-isme/clc-api/internal/handler"
	"github.com/noah-isme/clc-api/internal/middleware"
	"github.com/noah-isme/clc-api/internal/repository"
	"github.com/noah-isme/clc-api/internal/service"
	"github.com/noah-isme/clc-api/pkg/cache"
	"github.com/noah-isme/clc-api/pkg/config"
	"github.com/noah-isme/clc-api/pkg/database"
	"github.com/noah-isme/clc-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/clc-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/clc-api/pkg/middleware/requestid"
	"github.com/noah-isme/clc-api/pkg/receipt"
	"github.com/noah-isme/clc-api/pkg/storage"
)

// @title CLC Application API
// @version 1.0.0
// @description College Leaving Certificate application, payment and receipt service
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
	}

	store, localStore, err := buildObjectStore(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init marksheet storage", "error", err)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	var tokenStore *repository.TokenRepository
	var revokedTokens service.RevokedTokenStore
	if redisClient != nil {
		tokenStore = repository.NewTokenRepository(redisClient)
		revokedTokens = tokenStore
	}

	authSvc := service.NewAuthService(studentRepo, revokedTokens, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	uploadSvc := service.NewUploadService(store, service.UploadConfig{
		MaxFileSizeBytes:  cfg.Upload.MaxFileSizeBytes,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		StoreTimeout:      cfg.Upload.StoreTimeout,
	}, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, uploadSvc, validate, logr, metricsSvc, service.PaymentPolicy{
		DefaultMode: cfg.Payment.DefaultMode,
		FeeAmount:   cfg.Payment.FeeAmount,
	})

	receiptBuilder := receipt.NewBuilder(receipt.Institution{
		Name:    cfg.Receipt.CollegeName,
		Unit:    cfg.Receipt.CollegeUnit,
		LogoURL: cfg.Receipt.CollegeLogoURL,
	})

	authHandler := handler.NewAuthHandler(authSvc, cookieSettings(cfg))
	applicationHandler := handler.NewApplicationHandler(applicationSvc)
	receiptHandler := handler.NewReceiptHandler(applicationSvc, receiptBuilder)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.MaxMultipartMemory = cfg.Upload.MaxFileSizeBytes

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	students := api.Group("/students")
	students.POST("/login", authHandler.Login)
	students.GET("/me", middleware.Session(authSvc, cfg.Cookie.Name), authHandler.Me)
	students.POST("/logout", middleware.OptionalSession(authSvc, cfg.Cookie.Name), authHandler.Logout)

	applications := api.Group("/applications", middleware.Session(authSvc, cfg.Cookie.Name))
	applications.POST("/submit", applicationHandler.Submit)
	applications.POST("/confirm-payment", applicationHandler.ConfirmPayment)
	applications.GET("/my-application", applicationHandler.MyApplication)
	applications.GET("/receipt", receiptHandler.Receipt)
	applications.GET("/receipt.pdf", receiptHandler.ReceiptPDF)

	if localStore != nil {
		fileHandler := handler.NewFileHandler(localStore)
		api.GET("/files/marksheets/:token", fileHandler.Marksheet)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage_driver", cfg.Storage.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func cookieSettings(cfg *config.Config) handler.CookieSettings {
	settings := handler.CookieSettings{
		Name:     cfg.Cookie.Name,
		Domain:   cfg.Cookie.Domain,
		Path:     cfg.Cookie.Path,
		MaxAge:   int(cfg.JWT.Expiration.Seconds()),
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	if cfg.Env == config.EnvProduction {
		settings.Secure = true
		settings.SameSite = http.SameSiteNoneMode
	}
	return settings
}

func buildObjectStore(cfg *config.Config, logr *zap.Logger) (storage.ObjectStore, *storage.LocalStore, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "s3":
		s3Store, err := storage.NewS3Store(storage.S3Options{
			Bucket:          cfg.Storage.S3Bucket,
			Endpoint:        cfg.Storage.S3Endpoint,
			Region:          cfg.Storage.S3Region,
			AccessKeyID:     cfg.Storage.S3AccessKeyID,
			SecretAccessKey: cfg.Storage.S3SecretAccessKey,
			KeyPrefix:       cfg.Storage.S3KeyPrefix,
		}, logr)
		if err != nil {
			return nil, nil, err
		}
		return s3Store, nil, nil
	case "local":
		signer := storage.NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)
		downloadBase := strings.TrimRight(cfg.Storage.PublicBaseURL, "/") + cfg.APIPrefix + "/files/marksheets"
		localStore, err := storage.NewLocalStore(cfg.Storage.LocalDir, downloadBase, signer)
		if err != nil {
			return nil, nil, err
		}
		return localStore, localStore, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
