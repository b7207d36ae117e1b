package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"archetypeagent/config"
	"archetypeagent/db"
	"archetypeagent/internal/session"
	"archetypeagent/middlewares"
	"archetypeagent/routes"
	"archetypeagent/services"
	"archetypeagent/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	deps := services.AssessmentDeps{
		InsightTimeout: cfg.GeminiTimeout(),
		ResultTTL:      cfg.ResultTTL(),
		Logger:         logger,
	}

	if cfg.Gemini.ApiKey != "" {
		generator := services.NewGeminiGenerator(cfg.Gemini.ApiKey, cfg.Gemini.Model)
		defer generator.Close()
		deps.Generator = generator
		logger.Info("AI insight enabled", zap.String("model", generator.Model()))
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI insight offline")
	}

	var limiter session.Limiter = session.NewMemoryLimiter(session.RateLimitConfig{
		MaxSubmissions: cfg.RateLimit.Submissions,
		Window:         cfg.RateWindow(),
	})
	if cfg.Redis.Addr != "" {
		rdb, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, keeping results in memory", zap.Error(err))
		} else {
			defer rdb.Close()
			deps.Store = session.NewRedisStore(rdb)
			limiter = session.NewRedisLimiter(rdb, session.RateLimitConfig{
				MaxSubmissions: cfg.RateLimit.Submissions,
				Window:         cfg.RateWindow(),
			})
			logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	if cfg.Database.URI != "" {
		client, database, err := db.ConnectMongoDB(ctx, cfg.Database.URI)
		if err != nil {
			logger.Warn("MongoDB unavailable, archive disabled", zap.Error(err))
		} else {
			defer func() { _ = client.Disconnect(context.Background()) }()
			deps.Archive = db.NewAssessmentArchive(database.Collection(cfg.Database.Collection))
			logger.Info("Connected to MongoDB", zap.String("database", database.Name()))
		}
	}

	services.InitAssessmentService(deps)

	router := setupRouter(cfg, logger, limiter)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info("Server starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig falls back to defaults and environment variables when the file
// does not exist
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func setupRouter(cfg *config.Config, logger *zap.Logger, limiter session.Limiter) *gin.Engine {
	router := gin.New()
	router.Use(middlewares.RequestLogger(logger), gin.Recovery())

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	routes.SetupAssessmentRoutes(router, middlewares.RateLimitMiddleware(limiter, logger))
	return router
}
