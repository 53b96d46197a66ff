package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/darijacode/hub-backend/internal/handlers"
  "github.com/darijacode/hub-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  UserHandler         *handlers.UserHandler
  LearningPathHandler *handlers.LearningPathHandler
  RoadmapHandler      *handlers.RoadmapHandler
  ProgressHandler     *handlers.ProgressHandler
  AssistantHandler    *handlers.AssistantHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://localhost:5173",
      "http://localhost:8080",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))
  router.Use(otelgin.Middleware("darijacode-hub"))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)
  router.POST("/assistant/message", cfg.AssistantHandler.Message)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  protected.PUT("/user/profile", cfg.UserHandler.UpdateProfile)
  protected.GET("/user/preferences", cfg.UserHandler.GetPreferences)
  protected.PUT("/user/preferences", cfg.UserHandler.SavePreferences)
  // Learning paths
  protected.GET("/learning-paths", cfg.LearningPathHandler.List)
  // Roadmaps
  protected.POST("/roadmaps/generate", cfg.RoadmapHandler.Generate)
  protected.POST("/roadmaps", cfg.RoadmapHandler.Save)
  protected.GET("/roadmaps", cfg.RoadmapHandler.List)
  protected.GET("/roadmaps/:id", cfg.RoadmapHandler.Get)
  protected.DELETE("/roadmaps/:id", cfg.RoadmapHandler.Delete)
  protected.POST("/roadmaps/:id/reorder", cfg.RoadmapHandler.Reorder)
  protected.GET("/roadmaps/:id/progress", cfg.ProgressHandler.Overview)
  // Progress
  protected.PUT("/steps/:id/status", cfg.ProgressHandler.SetStatus)
  protected.PUT("/steps/:id/notes", cfg.ProgressHandler.SetNotes)

  return router
}
