package main

import (
	"log"
	"net/http"
	"os"

	"redakce-cms/config"
	"redakce-cms/handlers"
	"redakce-cms/helper"
	"redakce-cms/middleware"
	"redakce-cms/models"
	"redakce-cms/repositories"
	"redakce-cms/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadSession()

	logger, err := helper.NewLogger()
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "static/uploads"
	}
	avatarDir := os.Getenv("AVATAR_DIR")
	if avatarDir == "" {
		avatarDir = "static/avatars"
	}
	for _, dir := range []string{uploadDir, avatarDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal("Failed to create upload dir:", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	followRepo := repositories.NewFollowRepository(db)

	// Initialize services
	sanitizer := services.NewSanitizer()
	authService := services.NewAuthService(userRepo, tokenRepo)
	articleService := services.NewArticleService(articleRepo, likeRepo, sanitizer)
	engagementService := services.NewEngagementService(articleRepo, commentRepo, likeRepo, followRepo, userRepo)
	adminService := services.NewAdminService(userRepo)
	articleUploads := services.NewUploadService(uploadDir, "/static/uploads")
	avatarUploads := services.NewUploadService(avatarDir, "/static/avatars")

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(authService, articleService, articleUploads, logger)
	authHandler := handlers.NewAuthHandler(authService, avatarUploads, logger)
	socialHandler := handlers.NewSocialHandler(engagementService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, logger)
	webHandler := handlers.NewWebHandler(articleService, authService, engagementService, logger)

	// Setup router
	router := gin.Default()
	router.MaxMultipartMemory = 16 << 20

	router.Static("/static", "static")

	// Public pages
	router.GET("/", webHandler.Index)
	router.GET("/clanek/:id", webHandler.ArticleDetail)
	router.GET("/u/:username", middleware.OptionalSession(authService), webHandler.PublicProfile)

	// Session actions
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/logout", authHandler.Logout)

	// Logged-in web surface
	web := router.Group("/")
	web.Use(middleware.SessionAuth(authService))
	{
		web.POST("/change-password", authHandler.ChangePassword)
		web.GET("/profile", authHandler.Profile)
		web.POST("/profile/edit", authHandler.EditProfile)
		web.POST("/profile/avatar", authHandler.UploadAvatar)

		web.POST("/clanek/:id/like", socialHandler.LikeArticle)
		web.POST("/clanek/:id/comment", socialHandler.AddComment)
		web.POST("/comments/:id/like", socialHandler.LikeComment)
		web.POST("/comments/:id/reply", socialHandler.ReplyToComment)
		web.POST("/replies/:id/like", socialHandler.LikeReply)
		web.POST("/u/:username/follow", socialHandler.ToggleFollow)
	}

	// JSON API for the desktop clients
	api := router.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	{
		api.POST("/login", apiHandler.Login)

		protected := api.Group("/")
		protected.Use(middleware.BearerAuth(authService))
		{
			protected.POST("/articles", apiHandler.CreateArticle)
			protected.GET("/articles", apiHandler.ListArticles)
			protected.GET("/articles/:id", apiHandler.GetArticle)
			protected.PUT("/articles/:id", apiHandler.UpdateArticle)
			protected.DELETE("/articles/:id", apiHandler.DeleteArticle)
			protected.POST("/upload",
				middleware.RequireCapability(models.ActionUploadImage, "Nemáš oprávnění nahrávat obrázky."),
				apiHandler.Upload)
		}
	}

	// Admin surface, gated by its own session flag
	router.POST("/admin/login", adminHandler.Login)
	router.GET("/admin/logout", adminHandler.Logout)
	admin := router.Group("/admin")
	admin.Use(middleware.AdminSession(authService))
	{
		admin.GET("/users", adminHandler.Users)
		admin.POST("/reset-password/:id", adminHandler.ResetPassword)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	log.Fatal(http.ListenAndServe(":"+port, router))
}
