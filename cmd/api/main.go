package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"smartconnect/internal/config"
	"smartconnect/internal/database"
	"smartconnect/internal/domain/auth"
	"smartconnect/internal/domain/complaint"
	"smartconnect/internal/domain/notification"
	"smartconnect/internal/domain/rewards"
	"smartconnect/internal/middleware"
	jwtsvc "smartconnect/internal/pkg/jwt"
	"smartconnect/internal/pkg/response"
	"smartconnect/internal/stream"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&notification.Notification{},
		&complaint.Complaint{},
		&rewards.RewardAccount{},
		&rewards.RewardTransaction{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	userRepo := auth.NewRepository(db)
	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	hub := stream.NewHub()
	wsHandler := stream.NewWSHandler(hub, j, logger)

	notifRepo := notification.NewRepository(db)
	notifService := notification.NewService(notifRepo, userRepo, hub)
	notifHandler := notification.NewHandler(notifService)

	rewardsService := rewards.NewService(db)
	rewardsHandler := rewards.NewHandler(rewardsService)

	complaintRepo := complaint.NewRepository(db)
	complaintService := complaint.NewService(complaintRepo, notifService, rewardsService, logger)
	complaintHandler := complaint.NewHandler(complaintService)

	cleanup := notification.NewCleanupService(notifRepo, logger)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.CleanupSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := cleanup.CleanupOldNotifications(ctx, cfg.RetentionDays); err != nil {
			logger.Error("notification cleanup failed", zap.Error(err))
		}
	}); err != nil {
		logger.Fatal("invalid cleanup schedule", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		v1.GET("/notifications/ws", wsHandler.HandleWebSocket)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			notification.RegisterRoutes(protected, notifHandler)
			complaint.RegisterRoutes(protected, complaintHandler)
			rewardsHandler.RegisterRoutes(protected)

			officials := protected.Group("/officials")
			officials.Use(middleware.OfficialOnly())
			{
				complaint.RegisterOfficialRoutes(officials, complaintHandler)
			}
		}
	}

	internal := r.Group("/internal")
	internal.Use(middleware.InternalTokenAuth())
	{
		notification.RegisterInternalRoutes(internal, notifHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
