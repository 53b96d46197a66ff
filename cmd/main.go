package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  "github.com/darijacode/hub-backend/internal/db"
  "github.com/darijacode/hub-backend/internal/handlers"
  "github.com/darijacode/hub-backend/internal/i18n"
  "github.com/darijacode/hub-backend/internal/logger"
  "github.com/darijacode/hub-backend/internal/middleware"
  "github.com/darijacode/hub-backend/internal/observability"
  "github.com/darijacode/hub-backend/internal/repos"
  "github.com/darijacode/hub-backend/internal/server"
  "github.com/darijacode/hub-backend/internal/services"
  "github.com/darijacode/hub-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

  // Tracing
  shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "darijacode-hub",
    Environment: utils.GetEnv("APP_ENV", "development", log),
    Version:     utils.GetEnv("APP_VERSION", "dev", log),
  })
  if shutdownOtel != nil {
    defer func() {
      ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = shutdownOtel(ctx)
    }()
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  if err = postgresService.SeedLearningPaths(); err != nil {
    log.Warn("Learning path seed failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  profileRepo := repos.NewProfileRepo(thePG, log)
  preferenceRepo := repos.NewUserPreferenceRepo(thePG, log)
  learningPathRepo := repos.NewLearningPathRepo(thePG, log)
  roadmapRepo := repos.NewRoadmapRepo(thePG, log)
  roadmapStepRepo := repos.NewRoadmapStepRepo(thePG, log)
  userProgressRepo := repos.NewUserProgressRepo(thePG, log)

  // Services
  log.Info("Setting up services from main...")
  bundle := i18n.Default()
  geminiClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  authService := services.NewAuthService(
    thePG,
    log,
    userRepo,
    profileRepo,
    userTokenRepo,
    jwtSecretKey,
    time.Duration(accessTokenTTL)*time.Second,
    time.Duration(refreshTokenTTL)*time.Second,
  )
  userService := services.NewUserService(thePG, log, userRepo, profileRepo, preferenceRepo)
  learningPathService := services.NewLearningPathService(log, learningPathRepo)
  generationService := services.NewRoadmapGenerationService(log, geminiClient, bundle)
  roadmapService := services.NewRoadmapService(thePG, log, learningPathRepo, roadmapRepo, roadmapStepRepo)
  progressService := services.NewProgressService(thePG, log, roadmapService, roadmapStepRepo, userProgressRepo)
  assistantService := services.NewAssistantService(log, geminiClient)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  learningPathHandler := handlers.NewLearningPathHandler(learningPathService)
  roadmapHandler := handlers.NewRoadmapHandler(generationService, roadmapService)
  progressHandler := handlers.NewProgressHandler(progressService)
  assistantHandler := handlers.NewAssistantHandler(assistantService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:         authHandler,
    AuthMiddleware:      authMiddleware,
    UserHandler:         userHandler,
    LearningPathHandler: learningPathHandler,
    RoadmapHandler:      roadmapHandler,
    ProgressHandler:     progressHandler,
    AssistantHandler:    assistantHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server failed", "error", err)
  }
}
