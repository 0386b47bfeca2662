package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fithub/backend/internal/api"
	"fithub/backend/internal/config"
	"fithub/backend/internal/repository/mongo"
	"fithub/backend/internal/service"
	"fithub/backend/internal/storage"
	"fithub/backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	log.Println("Starting Fithub API Server...")

	// .env is optional; real deployments set environment variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment.")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureFacilityIndexes(ctx, appDB.Collection("facilities"))
		mongo.EnsureCategoryIndexes(ctx, appDB.Collection("categories"))
		mongo.EnsureGymIndexes(ctx, appDB.Collection("gyms"))
		mongo.EnsureTrainerIndexes(ctx, appDB.Collection("trainers"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	facilityRepo := mongo.NewMongoFacilityRepository(appDB)
	categoryRepo := mongo.NewMongoCategoryRepository(appDB)
	gymRepo := mongo.NewMongoGymRepository(appDB)
	trainerRepo := mongo.NewMongoTrainerRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration)
	authService := service.NewAuthService(userRepo, service.StaticCredentials(cfg.Auth.Username, cfg.Auth.Password), issuer)
	facilityService := service.NewFacilityService(facilityRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	gymService := service.NewGymService(gymRepo)
	trainerService := service.NewTrainerService(trainerRepo)
	mediaService := service.NewMediaService(fileStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, issuer, authService, facilityService, categoryService, gymService, trainerService, mediaService)

	// --- CORS ---
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
