package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "talenthub/internal/controller/http"
	"talenthub/internal/repo/persistent"
	"talenthub/internal/usecase"
	"talenthub/pkg/config"
	"talenthub/pkg/jwt"
	"talenthub/pkg/logger"
	"talenthub/pkg/middleware"
	"talenthub/pkg/queue"
	"talenthub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "talenthub/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	tokenRepo := persistent.NewTokenRepository(db)
	postRepo := persistent.NewPostRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	leaderboardRepo := persistent.NewLeaderboardRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenRepo, jwtService, log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, interactionRepo, s3Client, queueClient, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, postRepo, redisClient, log)
	moderationUseCase := usecase.NewModerationUseCase(postRepo, userRepo, s3Client, queueClient, log)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(leaderboardRepo, log)

	// Initialize HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	postHandler := appHTTP.NewPostHandler(postUseCase, interactionUseCase, log)
	adminHandler := appHTTP.NewAdminHandler(moderationUseCase, log)
	leaderboardHandler := appHTTP.NewLeaderboardHandler(leaderboardUseCase, log)

	r := Router(cfg, jwtService, redisClient, authHandler, postHandler, adminHandler, leaderboardHandler)

	// Expired refresh tokens are dead rows; sweep them hourly.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := tokenRepo.DeleteExpired(); err != nil {
					log.Warn("Failed to delete expired refresh tokens: %v", err)
				}
			case <-cleanupDone:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("TalentHub API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down TalentHub API...")
	close(cleanupDone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("TalentHub API exited")
}

// Router builds the full route table. Kept separate from Run so tests
// can stand up the router without a listening server.
func Router(
	cfg *config.Config,
	jwtService *jwt.Service,
	redisClient *redis.Client,
	authHandler *appHTTP.AuthHandler,
	postHandler *appHTTP.PostHandler,
	adminHandler *appHTTP.AdminHandler,
	leaderboardHandler *appHTTP.LeaderboardHandler,
) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)
	rateLimited := middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", rateLimited, authHandler.Register)
		auth.POST("/login", rateLimited, authHandler.Login)
		auth.POST("/refresh", rateLimited, authHandler.Refresh)
		auth.POST("/logout", authRequired, authHandler.Logout)
		auth.POST("/logout-all", authRequired, authHandler.LogoutAll)
		auth.GET("/me", authRequired, authHandler.Me)
		auth.PUT("/profile", authRequired, authHandler.UpdateProfile)
	}

	posts := api.Group("/posts")
	{
		// Reads carry optional identity: anonymous users browse,
		// authenticated ones additionally get per-viewer vote state and
		// view tracking.
		posts.GET("", optionalAuth, postHandler.ListPosts)
		posts.GET("/:id", optionalAuth, postHandler.GetPost)
		posts.GET("/:id/interactions", postHandler.PostInteractions)

		posts.POST("", authRequired, rateLimited, postHandler.CreatePost)
		posts.PUT("/:id", authRequired, rateLimited, postHandler.UpdatePost)
		posts.DELETE("/:id", authRequired, rateLimited, postHandler.DeletePost)
		posts.POST("/:id/interact", authRequired, rateLimited, postHandler.Interact)
	}

	admin := api.Group("/admin")
	admin.Use(authRequired, middleware.RequireRoles("admin"))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/pending-posts", adminHandler.PendingPosts)
		admin.PATCH("/posts/:id/approve", adminHandler.Approve)
		admin.PATCH("/posts/:id/reject", adminHandler.Reject)
		admin.GET("/garbage-bin", adminHandler.GarbageBin)
		admin.PUT("/garbage-bin/:id/restore", adminHandler.Restore)
		admin.DELETE("/garbage-bin/:id/permanent", adminHandler.Purge)
		admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	}

	leaderboard := api.Group("/leaderboard")
	{
		leaderboard.GET("", leaderboardHandler.Global)
		leaderboard.GET("/stats", leaderboardHandler.Stats)
		leaderboard.GET("/portal/:type", leaderboardHandler.Portal)
		leaderboard.GET("/user/:id", leaderboardHandler.UserRank)
	}

	return r
}
