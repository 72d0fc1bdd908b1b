package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formlab/internal/cache"
	"formlab/internal/config"
	"formlab/internal/repository"
	"formlab/internal/service"
	"formlab/internal/transport/rest"
	"formlab/internal/transport/ws"
)

// @title Formlab API
// @version 1.0
// @description Form builder backend: authoring drafts, published forms, responses
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	formRepo := repository.NewFormRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize caches
	draftCache := cache.NewDraftCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	formSvc := service.NewFormService(formRepo)
	responseSvc := service.NewResponseService(formRepo, responseRepo, reportCache)
	draftSvc := service.NewDraftService(draftCache, formSvc)
	reportSvc := service.NewReportService(formRepo, responseRepo, reportCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	formSvc.SetBroadcaster(wsHub)
	responseSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		FormService:     formSvc,
		ResponseService: responseSvc,
		DraftService:    draftSvc,
		ReportService:   reportSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET/POST   /api/forms")
		log.Println("  GET/DELETE /api/forms/{formId}")
		log.Println("  GET/POST   /api/forms/{formId}/responses")
		log.Println("  GET        /api/forms/{formId}/report")
		log.Println("  POST       /api/drafts")
		log.Println("  POST       /api/drafts/{draftId}/publish")
		log.Println("  WS         /api/forms/{formId}/watch")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
