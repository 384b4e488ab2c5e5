package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"title-review-api/config"
	"title-review-api/handlers"
	"title-review-api/helper"
	"title-review-api/logger"
	"title-review-api/mailer"
	"title-review-api/middleware"
	"title-review-api/repositories"
	"title-review-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadJWT()

	appLogger := logger.New(os.Getenv("GIN_MODE"))

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	titleRepo := repositories.NewTitleRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	notifier := mailer.New(config.LoadMail(), appLogger)
	authService := services.NewAuthService(userRepo, notifier, appLogger)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	genreService := services.NewGenreService(genreRepo)
	titleService := services.NewTitleService(titleRepo, categoryRepo, genreRepo)
	reviewService := services.NewReviewService(reviewRepo, titleRepo)
	commentService := services.NewCommentService(commentRepo, reviewRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	genreHandler := handlers.NewGenreHandler(genreService, httpHelper)
	titleHandler := handlers.NewTitleHandler(titleService, httpHelper)
	reviewHandler := handlers.NewReviewHandler(reviewService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authRequired := middleware.AuthRequired(userRepo)
	// Public reads still reject a request carrying an unusable credential.
	authOptional := middleware.AuthOptional(userRepo)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/token", authHandler.Token)
		}

		// User management; the "me" alias is resolved in the handler
		users := v1.Group("/users")
		users.Use(authRequired)
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:username", userHandler.GetUser)
			users.PATCH("/:username", userHandler.UpdateUser)
			users.DELETE("/:username", userHandler.DeleteUser)
		}

		// Catalog: public reads, admin-gated writes
		categories := v1.Group("/categories")
		{
			categories.GET("", authOptional, categoryHandler.GetCategories)
			categories.POST("", authRequired, categoryHandler.CreateCategory)
			categories.DELETE("/:slug", authRequired, categoryHandler.DeleteCategory)
		}

		genres := v1.Group("/genres")
		{
			genres.GET("", authOptional, genreHandler.GetGenres)
			genres.POST("", authRequired, genreHandler.CreateGenre)
			genres.DELETE("/:slug", authRequired, genreHandler.DeleteGenre)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", authOptional, titleHandler.GetTitles)
			titles.GET("/:title_id", authOptional, titleHandler.GetTitle)
			titles.POST("", authRequired, titleHandler.CreateTitle)
			titles.PATCH("/:title_id", authRequired, titleHandler.UpdateTitle)
			titles.DELETE("/:title_id", authRequired, titleHandler.DeleteTitle)

			// Reviews and comments: public reads, author/moderator writes
			reviews := titles.Group("/:title_id/reviews")
			{
				reviews.GET("", authOptional, reviewHandler.GetReviews)
				reviews.GET("/:review_id", authOptional, reviewHandler.GetReview)
				reviews.POST("", authRequired, reviewHandler.CreateReview)
				reviews.PATCH("/:review_id", authRequired, reviewHandler.UpdateReview)
				reviews.DELETE("/:review_id", authRequired, reviewHandler.DeleteReview)

				comments := reviews.Group("/:review_id/comments")
				{
					comments.GET("", authOptional, commentHandler.GetComments)
					comments.GET("/:comment_id", authOptional, commentHandler.GetComment)
					comments.POST("", authRequired, commentHandler.CreateComment)
					comments.PATCH("/:comment_id", authRequired, commentHandler.UpdateComment)
					comments.DELETE("/:comment_id", authRequired, commentHandler.DeleteComment)
				}
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	appLogger.Info("server starting", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
