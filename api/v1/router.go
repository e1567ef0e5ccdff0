package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/middleware"
	"github.com/logtide-backend/services"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB) {
	authService := services.NewAuthService(db)
	keyService := services.NewAPIKeyService(db)

	authController := NewAuthController(db)
	projectController := NewProjectController(db)
	keyController := NewAPIKeyController(db)
	logController := NewLogController(db)
	eventController := NewEventController(db)
	ingestController := NewIngestController(db)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(authService), authController.GetCurrentUser)
		authGroup.POST("/change-password", middleware.AuthMiddleware(authService), authController.ChangePassword)
	}

	// Project-scoped endpoints - bearer token callers
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware(authService))
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.POST("", projectController.CreateProject)
		projectGroup.GET("/:id", projectController.GetProject)
		projectGroup.PUT("/:id", projectController.UpdateProject)
		projectGroup.DELETE("/:id", projectController.DeleteProject)

		projectGroup.GET("/:id/api-key", keyController.GetKey)
		projectGroup.POST("/:id/api-key", keyController.GenerateKey)
		projectGroup.POST("/:id/api-key/reset", keyController.ResetKey)
		projectGroup.DELETE("/:id/api-key", keyController.DeactivateKey)

		projectGroup.GET("/:id/logs", logController.ListLogs)
		projectGroup.POST("/:id/logs", logController.CreateLog)
		projectGroup.GET("/:id/logs/level/:level", logController.ListLogsByLevel)
		projectGroup.GET("/:id/logs/category/:category", logController.ListLogsByCategory)
		projectGroup.GET("/:id/logs/tag/:tag", logController.ListLogsByTag)

		projectGroup.GET("/:id/events", eventController.ListEvents)
		projectGroup.POST("/:id/events", eventController.CreateEvent)
	}

	// Record endpoints resolved through the ownership join
	recordGroup := router.Group("")
	recordGroup.Use(middleware.AuthMiddleware(authService))
	{
		recordGroup.GET("/logs/:logId", logController.GetLog)
		recordGroup.PUT("/logs/:logId", logController.UpdateLog)
		recordGroup.DELETE("/logs/:logId", logController.DeleteLog)

		recordGroup.GET("/events/:eventId", eventController.GetEvent)
		recordGroup.PUT("/events/:eventId", eventController.UpdateEvent)
		recordGroup.DELETE("/events/:eventId", eventController.DeleteEvent)
	}

	// Ingest endpoints - machine callers authenticated by X-API-Key
	ingestGroup := router.Group("/ingest")
	ingestGroup.Use(middleware.APIKeyMiddleware(keyService))
	{
		ingestGroup.POST("/logs", ingestController.CreateLog)
		ingestGroup.GET("/logs", ingestController.ListLogs)
		ingestGroup.POST("/events", ingestController.CreateEvent)
		ingestGroup.GET("/events", ingestController.ListEvents)
	}
}
