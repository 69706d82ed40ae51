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

	"cv-manager-backend/config"
	_ "cv-manager-backend/docs" // Important for Swagger
	v1 "cv-manager-backend/internal/delivery/http/v1"
	"cv-manager-backend/internal/domain"
	"cv-manager-backend/internal/repository/postgres"
	"cv-manager-backend/internal/usecase"
	"cv-manager-backend/pkg/auth"
	"cv-manager-backend/pkg/database"
	"cv-manager-backend/pkg/logger"
	"cv-manager-backend/pkg/redis"
	"cv-manager-backend/pkg/storage"
)

// @title           CV Manager API
// @version         1.0
// @description     CRUD backend for CVs and their sections.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting cv manager backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Redis (optional, rate limiting falls back to memory)
	var redisCheck func(context.Context) error
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	if redis.Client() != nil {
		redisCheck = redis.HealthCheck
		defer redis.Close()
	}

	// 5. Photo storage (optional)
	var photos storage.ObjectStore
	if cfg.StorageConfigured() {
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to configure photo storage", "error", err)
			os.Exit(1)
		}
		photos = store
	} else {
		logger.Log.Warn("Photo storage not configured - contact photo uploads will be unavailable")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	taskRepo := postgres.NewTaskRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	schoolRepo := postgres.NewSchoolRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	knowledgeRepo := postgres.NewKnowledgeRepository(dbPool)
	languageRepo := postgres.NewLanguageRepository(dbPool)
	certificateRepo := postgres.NewCertificateRepository(dbPool)
	itemRepo := postgres.NewItemRepository(dbPool)

	// 7. Setup UseCases
	validate := usecase.NewValidator()
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.AccessTokenMinutes)*time.Minute)

	userUC := usecase.NewUserUsecase(userRepo, validate)
	authUC := usecase.NewAuthUsecase(userUC, tokens, validate)

	if cfg.FirstSuperuser != "" {
		if err := userUC.EnsureSuperuser(ctx, cfg.FirstSuperuser, cfg.FirstSuperuserPassword); err != nil {
			logger.Log.Error("Failed to create first superuser", "error", err)
			os.Exit(1)
		}
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Config:        cfg,
		Tokens:        tokens,
		AuthUC:        authUC,
		UserUC:        userUC,
		HealthUC:      usecase.NewHealthUsecase(dbPool, redisCheck),
		CVUC:          usecase.NewCrudUsecase[domain.CV, domain.CVCreate, domain.CVUpdate](cvRepo, validate),
		JobUC:         usecase.NewCrudUsecase[domain.Job, domain.JobCreate, domain.JobUpdate](jobRepo, validate),
		TaskUC:        usecase.NewCrudUsecase[domain.Task, domain.TaskCreate, domain.TaskUpdate](taskRepo, validate),
		SkillUC:       usecase.NewCrudUsecase[domain.Skill, domain.SkillCreate, domain.SkillUpdate](skillRepo, validate),
		SchoolUC:      usecase.NewCrudUsecase[domain.School, domain.SchoolCreate, domain.SchoolUpdate](schoolRepo, validate),
		ContactUC:     usecase.NewContactUsecase(contactRepo, photos, validate),
		KnowledgeUC:   usecase.NewCrudUsecase[domain.Knowledge, domain.KnowledgeCreate, domain.KnowledgeUpdate](knowledgeRepo, validate),
		LanguageUC:    usecase.NewCrudUsecase[domain.Language, domain.LanguageCreate, domain.LanguageUpdate](languageRepo, validate),
		CertificateUC: usecase.NewCrudUsecase[domain.Certificate, domain.CertificateCreate, domain.CertificateUpdate](certificateRepo, validate),
		ItemUC:        usecase.NewItemUsecase(itemRepo, validate),
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
