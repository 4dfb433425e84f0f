package main

import (
	"net/http"

	"querystack/config"
	"querystack/handlers"
	"querystack/helper"
	"querystack/middleware"
	"querystack/repositories"
	"querystack/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.Logger.Info("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	questionHandler := handlers.NewQuestionHandler(questionService, tagService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService)
	answerHandler := handlers.NewAnswerHandler(questionService, httpHelper)
	commentHandler := handlers.NewCommentHandler(questionService, httpHelper)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Observe())

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

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Questions
	question := router.Group("/question")
	{
		question.POST("/addQuestion", questionHandler.AddQuestion)
		question.POST("/upvoteQuestion", questionHandler.UpvoteQuestion)
		question.POST("/downvoteQuestion", questionHandler.DownvoteQuestion)
		question.GET("/getQuestionById/:qid", questionHandler.GetQuestionById)
		question.GET("/getQuestion", questionHandler.GetQuestion)
	}

	// Users
	user := router.Group("/user")
	{
		user.POST("/signup", userHandler.Signup)
		user.POST("/login", userHandler.Login)
		user.PATCH("/resetPassword", userHandler.ResetPassword)
		user.GET("/getUser/:username", userHandler.GetUser)
		user.DELETE("/deleteUser/:username", userHandler.DeleteUser)
		user.GET("/profile", middleware.AuthMiddleware(), userHandler.Profile)
	}

	// Answers and comments
	router.POST("/answer/addAnswer", answerHandler.AddAnswer)
	router.POST("/comment/addComment", commentHandler.AddComment)

	// Tags
	tag := router.Group("/tag")
	{
		tag.GET("/getTagsWithQuestionNumber", tagHandler.GetTagsWithQuestionNumber)
		tag.GET("/getTagByName/:name", tagHandler.GetTagByName)
	}

	// Start server
	port := config.EnvOr("PORT", "8000")
	config.Logger.WithField("port", port).Info("Server starting")
	if err := router.Run(":" + port); err != nil {
		config.Logger.WithError(err).Fatal("Server stopped")
	}
}
