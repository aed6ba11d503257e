// File: medigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medigo/config"
	"medigo/cron"
	"medigo/database"
	appointmentRepoPkg "medigo/database/repository/appointment"
	conversationRepoPkg "medigo/database/repository/conversation"
	doctorRepoPkg "medigo/database/repository/doctor"
	"medigo/handlers"
	"medigo/middleware"
	"medigo/routes"
	"medigo/services/booking"
	ai "medigo/services/intelligence"
	"medigo/services/notification"
	"medigo/services/tasks"
	"medigo/services/triage"
	"medigo/services/workflow"
	"medigo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	convRepo := conversationRepoPkg.NewMongoConversationRepo()

	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}

	// services.
	catalogueCache := triage.NewCatalogueCache(utils.GetCacheClient(), doctorRepo, 10*time.Minute)
	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	classifier := triage.NewDefaultClassifier(geminiClient, catalogueCache)

	matchingService := &booking.DefaultMatchingService{
		Repo: doctorRepo,
	}
	availabilityService := &booking.DefaultAvailabilityService{
		Doctors:      doctorRepo,
		Appointments: apptRepo,
	}
	reminderQueue := tasks.NewClient()
	finalizerService := &booking.DefaultFinalizerService{
		Appointments: apptRepo,
		Reminders:    reminderQueue,
	}

	engine := workflow.NewEngine(classifier, matchingService, availabilityService, finalizerService)

	// handlers.
	ttl := time.Duration(config.AppConfig.ConversationTTLMin) * time.Minute
	chatHandler := handlers.NewChatHandler(engine, convRepo, ttl)
	convHandler := handlers.NewConversationHandler(convRepo, apptRepo)

	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:              chatHandler.HandleChat,
		ConversationStateHandler: convHandler.GetStateHandler,
		EndConversationHandler:   convHandler.EndHandler,
		StatsHandler:             convHandler.StatsHandler,
		HealthHandler:            handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	notificationService := &notification.LogNotificationService{}
	cron.InitReminderWorker(notificationService)
	cron.InitConversationSweeper(convRepo)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
