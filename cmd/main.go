package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/disha-labs/disha-backend/internal/data/db"
	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/http/handlers"
	"github.com/disha-labs/disha-backend/internal/http/middleware"
	"github.com/disha-labs/disha-backend/internal/observability"
	"github.com/disha-labs/disha-backend/internal/pkg/envutil"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
	"github.com/disha-labs/disha-backend/internal/server"
	"github.com/disha-labs/disha-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := envutil.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := envutil.GetEnv("PORT", "8080", log)

	// Tracing
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "disha-backend",
		Environment: envutil.GetEnv("APP_ENV", "development", log),
		Version:     envutil.GetEnv("APP_VERSION", "dev", log),
	})
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Warn("OTel shutdown failed", "error", err)
		}
	}()

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.Migrate(); err != nil {
		log.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(gdb, log)
	profileRepo := repos.NewProfileRepo(gdb, log)
	userTokenRepo := repos.NewUserTokenRepo(gdb, log)
	collegeRepo := repos.NewCollegeRepo(gdb, log)
	scholarshipRepo := repos.NewScholarshipRepo(gdb, log)
	careerPathRepo := repos.NewCareerPathRepo(gdb, log)
	conversationRepo := repos.NewChatConversationRepo(gdb, log)
	messageRepo := repos.NewChatMessageRepo(gdb, log)
	progressRepo := repos.NewUserProgressRepo(gdb, log)
	savedItemRepo := repos.NewUserSavedItemRepo(gdb, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(gdb, log, userRepo, profileRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(gdb, log, userRepo)
	profileService := services.NewProfileService(gdb, log, profileRepo)
	catalogService := services.NewCatalogService(gdb, log, collegeRepo, scholarshipRepo, careerPathRepo)
	chatService := services.NewChatService(gdb, log, conversationRepo, messageRepo)
	progressService := services.NewProgressService(gdb, log, progressRepo)
	savedItemService := services.NewSavedItemService(gdb, log, savedItemRepo, collegeRepo, scholarshipRepo, careerPathRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	chatHandler := handlers.NewChatHandler(chatService)
	progressHandler := handlers.NewProgressHandler(progressService)
	savedItemHandler := handlers.NewSavedItemHandler(savedItemService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)
	metrics := observability.NewMetrics()

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		ServiceName:      "disha-backend",
		AuthMiddleware:   authMiddleware,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		ProfileHandler:   profileHandler,
		CatalogHandler:   catalogHandler,
		ChatHandler:      chatHandler,
		ProgressHandler:  progressHandler,
		SavedItemHandler: savedItemHandler,
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
