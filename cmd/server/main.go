package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/eventapp/internal/api"
	"github.com/example/eventapp/internal/config"
	"github.com/example/eventapp/internal/core"
	"github.com/example/eventapp/internal/db"
	"github.com/example/eventapp/internal/events"
	"github.com/example/eventapp/internal/middleware"
)

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if appConfig.IsRelease() {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(appConfig, zapLogger); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(appConfig *config.Config, logger *zap.Logger) error {
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	store, verifier, err := openStore(initCtx, appConfig, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher := openPublisher(appConfig, logger)
	defer publisher.Close()

	userRepo := db.NewUserRepository(store)
	photoRepo := db.NewPhotoRepository(store)
	programRepo := db.NewProgramRepository(store)
	placeRepo := db.NewPlaceRepository(store)

	services := api.Services{
		Feed:     core.NewFeedService(photoRepo, userRepo, appConfig.Location(), appConfig.FeedLookupConcurrency, time.Now, logger),
		Likes:    core.NewLikeService(userRepo, photoRepo),
		Checkins: core.NewCheckinService(userRepo, programRepo, publisher, logger),
		Rewards:  core.NewRewardService(userRepo, publisher, logger),
		Settings: core.NewSettingsService(userRepo, logger),
		Users:    core.NewUserService(userRepo),
		Lookups:  core.NewLookupService(db.NewQRRepository(store), programRepo, placeRepo, db.NewModeRepository(store), userRepo),
		Journal:  core.NewJournalService(db.NewLogRepository(store), db.NewSignatureRepository(store), publisher, logger),
	}

	if appConfig.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	if appConfig.ClientURL == "" {
		logger.Warn("CLIENT_URL is not configured; CORS allows every origin without credentials")
	}

	authMW := middleware.NewAuthMiddleware(verifier, appConfig.SessionCookieName, logger)
	api.SetupRoutes(router, authMW, logger, services)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("Server exiting gracefully")
	return nil
}

// openStore builds the configured document store and the credential
// verifier. The memory store only verifies credentials when a Firebase
// project is configured.
func openStore(ctx context.Context, appConfig *config.Config, logger *zap.Logger) (db.Store, middleware.TokenVerifier, error) {
	var verifier middleware.TokenVerifier = anonymousVerifier{}
	if appConfig.FirebaseProjectID != "" {
		app, err := db.InitFirebase(ctx, appConfig, logger)
		if err != nil {
			return nil, nil, err
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
		}
		verifier = authClient

		if appConfig.StoreBackend == config.StoreFirestore {
			client, err := app.Firestore(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to get Firestore client: %w", err)
			}
			logger.Info("Using Firestore store", zap.String("projectID", appConfig.FirebaseProjectID))
			return db.NewFirestoreStore(client), verifier, nil
		}
	} else {
		logger.Warn("FIREBASE_PROJECT_ID is not configured; every request is anonymous")
	}

	store := db.NewMemoryStore()
	if appConfig.StoreFixture != "" {
		fixture, err := db.LoadFixture(appConfig.StoreFixture)
		if err != nil {
			return nil, nil, err
		}
		if err := fixture.Seed(ctx, store); err != nil {
			return nil, nil, err
		}
		logger.Info("Memory store seeded", zap.String("fixture", appConfig.StoreFixture))
	}
	logger.Info("Using in-memory store")
	return store, verifier, nil
}

func openPublisher(appConfig *config.Config, logger *zap.Logger) events.Publisher {
	if appConfig.AMQPURL == "" {
		return events.Nop{}
	}
	pub, err := events.NewRabbitMQPublisher(appConfig.AMQPURL, appConfig.AMQPQueue, logger)
	if err != nil {
		logger.Warn("Activity events disabled", zap.Error(err))
		return events.Nop{}
	}
	return pub
}

// anonymousVerifier rejects every credential.
type anonymousVerifier struct{}

func (anonymousVerifier) VerifySessionCookie(context.Context, string) (*auth.Token, error) {
	return nil, errors.New("no Firebase project configured")
}

func (anonymousVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return nil, errors.New("no Firebase project configured")
}
