package main

import (
	"log"
	"net/http"
	"os"

	"techforum/config"
	"techforum/handlers"
	"techforum/helper"
	"techforum/middleware"
	"techforum/repositories"
	"techforum/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)

	// Initialize services
	mailService := services.NewMailService()
	authService := services.NewAuthService(userRepo, mailService)
	questionService := services.NewQuestionService(questionRepo)
	answerService := services.NewAnswerService(answerRepo)
	blogService := services.NewBlogService(blogRepo)
	documentService := services.NewDocumentService(documentRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	questionHandler := handlers.NewQuestionHandler(questionService, httpHelper)
	answerHandler := handlers.NewAnswerHandler(answerService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	documentHandler := handlers.NewDocumentHandler(documentService, httpHelper)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, httpHelper)
	searchHandler := handlers.NewSearchHandler(questionService, httpHelper)

	// Setup router
	router := gin.Default()

	// Session cookie carries the reset-password email between the two steps
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 900, HttpOnly: true})
	router.Use(sessions.Sessions("techforum_session", store))

	// Auth routes (public)
	router.POST("/signup", authHandler.SignUp)
	router.POST("/signin", authHandler.SignIn)
	router.POST("/signout", authHandler.SignOut)
	router.POST("/forgotpassword", authHandler.ForgotPassword)
	router.PATCH("/resetpassword", authHandler.ResetPassword)
	router.GET("/userrole/:id", authHandler.UserRole)

	// Public reads
	router.GET("/question", questionHandler.GetAll)
	router.GET("/quepagination", questionHandler.GetPage)
	router.GET("/question/:id", questionHandler.GetByID)
	router.GET("/answer/:questionId", answerHandler.GetByQuestion)
	router.GET("/blogtitle", blogHandler.GetTitles)
	router.GET("/search", searchHandler.Search)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.Auth())
	{
		protected.POST("/question", questionHandler.Create)
		protected.GET("/questionbyuser/:userId", questionHandler.GetByUser)
		protected.PATCH("/question/:id", questionHandler.Update)
		protected.DELETE("/question/:id", questionHandler.Delete)

		protected.POST("/answer", answerHandler.Create)
		protected.PATCH("/answer/:id", answerHandler.Update)
		protected.DELETE("/answer/:id", answerHandler.Delete)
		protected.POST("/upvote/:id", answerHandler.Upvote)
		protected.POST("/downvote/:id", answerHandler.Downvote)
		protected.GET("/upvote/:id", answerHandler.CheckUpvote)
		protected.GET("/downvote/:id", answerHandler.CheckDownvote)

		protected.GET("/blog", blogHandler.GetPage)
		protected.GET("/blog/:id", blogHandler.GetByID)
		protected.GET("/blogbyuser/:userId", blogHandler.GetByUser)
		protected.POST("/blog", blogHandler.Create)
		protected.PATCH("/blog/:id", blogHandler.Update)
		protected.DELETE("/blog/:id", blogHandler.Delete)

		protected.GET("/document", documentHandler.GetPage)
		protected.GET("/document/:id", documentHandler.GetByID)
		protected.GET("/docbyuser/:userId", documentHandler.GetByUser)
		protected.POST("/document", documentHandler.Create)
		protected.PATCH("/document/:id", documentHandler.Update)
		protected.DELETE("/document/:id", documentHandler.Delete)

		protected.POST("/bookmark", bookmarkHandler.Toggle)
		protected.GET("/bookmark/:userId", bookmarkHandler.GetByUser)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
