package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/ahlgren-media/reactions/internal/handler/http"
	redisclient "github.com/ahlgren-media/reactions/internal/infrastructure/cache"
	"github.com/ahlgren-media/reactions/internal/infrastructure/config"
	"github.com/ahlgren-media/reactions/internal/infrastructure/database"
	"github.com/ahlgren-media/reactions/internal/infrastructure/logger"
	"github.com/ahlgren-media/reactions/internal/infrastructure/repository/mongodb"
	"github.com/ahlgren-media/reactions/internal/infrastructure/store"
	"github.com/ahlgren-media/reactions/internal/infrastructure/uuidgen"
	"github.com/ahlgren-media/reactions/internal/infrastructure/validator"
	"github.com/ahlgren-media/reactions/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	reactionStore := mongodb.NewReactionStore(db)
	contentRepo := mongodb.NewContentRepository(db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	appConfig := config.NewConfig()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	identityResolver := usecase.NewIdentityResolver(appConfig)
	reactionUsecase := usecase.NewReactionUsecase(reactionStore, contentRepo, appConfig, appValidator, appLogger)
	rankingUsecase := usecase.NewRankingUsecase(contentRepo, reactionUsecase, appLogger)
	contentUsecase := usecase.NewContentUsecase(contentRepo, uuidGenerator, appValidator, appConfig, appLogger)

	// Optional Dependency Injection: Redis counts cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			reactionUsecase.SetReactionCache(store.NewReactionCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		reactionUsecase, rankingUsecase, contentUsecase,
		identityResolver, appLogger, jwtSecret,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
