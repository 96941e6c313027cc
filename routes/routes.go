package routes

import (
	"time"

	"gram/handlers"
	"gram/middleware"
	"gram/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Posts    *handlers.PostHandler
	Users    *handlers.UserHandler
	Push     *handlers.PushHandler
	Sessions repositories.SessionResolver
}

func SetupRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8080", "http://127.0.0.1:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes.
	authLimiter := middleware.NewIPRateLimiter(10, time.Minute)
	router.POST("/api/signup", middleware.RateLimitMiddleware(authLimiter), h.Auth.Signup)
	router.POST("/api/login", middleware.RateLimitMiddleware(authLimiter), h.Auth.Login)
	router.GET("/api/vapid-public-key", h.Push.GetVapidPublicKey)

	// Everything below resolves the session token first.
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(h.Sessions))

	uploadLimiter := middleware.NewIPRateLimiter(20, time.Minute)
	protected.POST("/posts", middleware.RateLimitMiddleware(uploadLimiter), h.Posts.CreatePost)
	protected.GET("/posts", h.Posts.GetFeed)
	protected.GET("/posts/:id", h.Posts.GetPost)
	protected.PUT("/posts/:id", h.Posts.EditPost)
	protected.DELETE("/posts/:id", h.Posts.DeletePost)
	protected.POST("/posts/:id/like", h.Posts.LikePost)
	protected.DELETE("/posts/:id/like", h.Posts.UnlikePost)
	protected.POST("/posts/:id/comments", h.Posts.CommentPost)
	protected.GET("/posts/:id/likes", h.Posts.GetPostLikes)

	protected.GET("/search/posts", h.Posts.SearchByCaption)
	protected.GET("/search/hashtags", h.Posts.SearchByHashtags)

	protected.GET("/users/:username", h.Users.GetUser)
	protected.GET("/users/:username/posts", h.Posts.GetAuthorPosts)

	protected.POST("/subscribe", h.Push.Subscribe)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
