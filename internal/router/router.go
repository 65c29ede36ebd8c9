package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/onielsteve2003/Modern-social-media/internal/handlers"
	"github.com/onielsteve2003/Modern-social-media/internal/middleware"
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"github.com/onielsteve2003/Modern-social-media/internal/repositories"
	"github.com/onielsteve2003/Modern-social-media/pkg/storage"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	log.Println("Global middleware configured.")
}

// AutoMigrate runs schema migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Block{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Story{},
		&models.StoryView{},
	)
}

// SetupRoutes configures all application routes and injects dependencies.
// uploader may be nil when no object store is configured. jwtSecret signs
// the tokens login issues and verifies them on protected routes.
func SetupRoutes(e *echo.Echo, db *gorm.DB, uploader storage.Uploader, jwtSecret string) {
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	blockRepo := repositories.NewPostgresBlockRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(db)
	storyRepo := repositories.NewPostgresStoryRepository(db)

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	authHandler.RegisterAuthRoutes(e)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterPublicCommentRoutes(e)
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("")
	api.Use(middleware.JWTAuth(jwtSecret))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)

	blockHandler := handlers.NewBlockHandler(blockRepo, userRepo)
	blockHandler.RegisterBlockRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, uploader)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, postRepo)
	favoriteHandler.RegisterFavoriteRoutes(api)

	storyHandler := handlers.NewStoryHandler(storyRepo, postRepo, followRepo, uploader)
	storyHandler.RegisterStoryRoutes(api)

	log.Println("All routes configured.")
}
