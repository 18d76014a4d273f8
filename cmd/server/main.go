// @title           Listing Lift Backend API
// @version         1.0.0
// @description     Backend API for the Listing Lift photo enhancement workflow. Homeowners submit property photos, the AI pipeline enhances them per-room, admins review and approve, and finished sets are delivered through magic links.

// @contact.name   API Support
// @contact.email  dan@retreatvr.ca

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"listing-lift-backend/docs"
	"listing-lift-backend/internal/config"
	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/enhance"
	"listing-lift-backend/internal/handlers"
	"listing-lift-backend/internal/jobs"
	"listing-lift-backend/internal/mailer"
	"listing-lift-backend/internal/middleware"
	"listing-lift-backend/internal/services"
	"listing-lift-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Point the generated Swagger docs at the deployed host.
	if baseURL, err := url.Parse(cfg.BaseURL); err == nil && baseURL.Host != "" {
		docs.SwaggerInfo.Host = baseURL.Host
		if baseURL.Scheme == "https" {
			docs.SwaggerInfo.Schemes = []string{"https", "http"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}
	}

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize migrator")
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatal().Err(err).Msg("migration failed")
	}
	migrator.Close()
	log.Info().Msg("migrations completed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3FolderPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage")
	}

	engine := enhance.NewClient(cfg.EnhanceAPIBaseURL, cfg.EnhanceAPIKey, cfg.EnhanceTimeout)
	mail := mailer.NewClient(cfg.NotifyAPIURL, cfg.NotifyAPIKey, cfg.AdminEmail)
	svc := services.New(db, store, engine, mail, cfg)

	runner := jobs.NewRunner(db, svc, cfg.JobPollInterval, cfg.JobMaxAttempts)
	go runner.Run(ctx)

	submissionsHandler := handlers.NewSubmissionsHandler(svc, db, store)
	photosHandler := handlers.NewPhotosHandler(svc, db, store)
	enhanceHandler := handlers.NewEnhanceHandler(svc)
	reviewHandler := handlers.NewReviewHandler(svc)
	retakesHandler := handlers.NewRetakesHandler(svc, store)
	deliveryHandler := handlers.NewDeliveryHandler(svc)
	magicLinkHandler := handlers.NewMagicLinkHandler(svc)
	settingsHandler := handlers.NewSettingsHandler(db)
	uploadHandler := handlers.NewUploadHandler(store)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")

	// Homeowner-facing routes, authorized by magic link tokens or open for
	// the intake form.
	api.POST("/submissions", submissionsHandler.CreateSubmission)
	api.POST("/upload", uploadHandler.PresignUpload)
	api.GET("/file-url", uploadHandler.ResolveFileURL)
	api.GET("/retakes", retakesHandler.ValidateRetakeLink)
	api.POST("/retakes/upload-url", retakesHandler.RetakeUploadURL)
	api.POST("/retakes/complete", retakesHandler.RetakeAction)
	api.GET("/magic-link", retakesHandler.ValidateReuploadLink)
	api.POST("/magic-link/consume", retakesHandler.CompleteReupload)
	api.GET("/delivery", deliveryHandler.ValidateDelivery)
	api.GET("/delivery/download", deliveryHandler.DownloadDelivery)
	api.POST("/delivery/feedback", deliveryHandler.DeliveryFeedback)

	admin := api.Group("")
	admin.Use(middleware.AdminAuth(cfg))

	admin.GET("/submissions", submissionsHandler.ListSubmissions)
	admin.GET("/submissions/:id", submissionsHandler.GetSubmission)
	admin.PATCH("/submissions/:id", submissionsHandler.UpdateSubmission)
	admin.DELETE("/submissions/:id", submissionsHandler.DeleteSubmission)
	admin.POST("/submissions/:id/complete-review", reviewHandler.CompleteReview)

	admin.PATCH("/photos/:id", photosHandler.UpdatePhoto)
	admin.GET("/photos/:id/versions", photosHandler.ListVersions)
	admin.POST("/photos/:id/use-version", photosHandler.UseVersion)
	admin.POST("/photos/:id/generate-hero", photosHandler.GenerateHero)
	admin.POST("/photos/:id/enhance", enhanceHandler.EnhancePhoto)

	admin.POST("/magic-link", magicLinkHandler.CreateReuploadLink)

	admin.GET("/settings/rooms", settingsHandler.ListRoomSettings)
	admin.PUT("/settings/rooms", settingsHandler.UpsertRoomSettings)
	admin.GET("/settings/presets", settingsHandler.ListPresets)
	admin.GET("/settings/models", settingsHandler.ListModels)

	admin.POST("/admin/cleanup-stale-urls", enhanceHandler.CleanupStaleURLs)

	// Service-to-service trigger, keyed rather than JWT-authed so the job
	// runner on another instance can call it.
	internal := api.Group("/internal")
	internal.Use(middleware.InternalAuth(cfg))
	internal.POST("/submissions/:id/auto-enhance", enhanceHandler.AutoEnhance)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
