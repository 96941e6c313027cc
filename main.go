package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gram/database"
	"gram/handlers"
	"gram/notifications"
	"gram/repositories"
	"gram/routes"
	"gram/services"
	"gram/storage"
	"gram/websocket"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting gram server...")

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, relying on environment")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	mongoURI := os.Getenv("MONGODB_URI")
	cloudinaryURL := os.Getenv("CLOUDINARY_URL")
	if jwtSecret == "" || mongoURI == "" || cloudinaryURL == "" {
		log.Fatal("JWT_SECRET, MONGODB_URI and CLOUDINARY_URL must be set")
	}

	log.Println("Connecting to MongoDB...")
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.Connect(); err != nil {
			dbErr = err
			log.Printf("MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}
	defer database.Disconnect()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Collaborators.
	postRepo := repositories.NewMongoPostRepository(database.Posts)
	userRepo := repositories.NewMongoUserRepository(database.Users)
	sessions := repositories.NewJWTSessions(jwtSecret, 24*time.Hour)

	fileRepo, err := storage.NewCloudinaryFileRepository(cloudinaryURL)
	if err != nil {
		log.Fatal("Cloudinary configuration error: ", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	subStore := notifications.NewMongoSubscriptionStore(database.Subscriptions)
	dispatcher := notifications.NewPushDispatcher(
		subStore,
		hub,
		"mailto:admin@gram.app",
		os.Getenv("VAPID_PUBLIC_KEY"),
		os.Getenv("VAPID_PRIVATE_KEY"),
	)

	postService := services.NewPostService(postRepo, userRepo, sessions, fileRepo, dispatcher)

	router := routes.SetupRouter(routes.Handlers{
		Auth:     handlers.NewAuthHandler(userRepo, sessions),
		Posts:    handlers.NewPostHandler(postService),
		Users:    handlers.NewUserHandler(userRepo),
		Push:     handlers.NewPushHandler(subStore, os.Getenv("VAPID_PUBLIC_KEY")),
		Sessions: sessions,
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	router.GET("/ws", gin.WrapF(websocket.Handler(hub, func(token string) (string, error) {
		return sessions.FindUsernameWithToken(context.Background(), token)
	})))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown:", err)
	}

	log.Println("Server stopped gracefully")
}
