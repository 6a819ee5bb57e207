// File: bookify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"bookify/config"
	"bookify/cron"
	"bookify/database"
	appointmentRepo "bookify/database/repository/appointment"
	appointmentTypeRepo "bookify/database/repository/appointmenttype"
	availabilityRepo "bookify/database/repository/availability"
	customerRepo "bookify/database/repository/customer"
	providerRepo "bookify/database/repository/provider"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/booking"
	"bookify/services/catalog"
	"bookify/services/customer"
	"bookify/services/provider"
	"bookify/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger(config.IsProduction())
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisCacheDB)
	cacheClient := utils.GetCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	provRepo := providerRepo.NewMongoProviderRepo(db)
	availRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	typeRepo := appointmentTypeRepo.NewMongoAppointmentTypeRepo(db)
	custRepo := customerRepo.NewMongoCustomerRepo(db)

	// Services.
	bookingService := &booking.DefaultBookingService{
		Appointments: apptRepo,
		Providers:    provRepo,
		Availability: availRepo,
		Types:        typeRepo,
		Customers:    custRepo,
		Cache:        cacheClient,
		CacheTTL:     time.Duration(config.AppConfig.SlotCacheTTLSecs) * time.Second,
		Workers:      config.AppConfig.SlotSearchWorkers,
	}
	providerService := &provider.DefaultProviderService{
		Repo:         provRepo,
		Availability: availRepo,
		Cache:        cacheClient,
	}
	catalogService := &catalog.DefaultAppointmentTypeService{Repo: typeRepo}
	customerService := &customer.DefaultCustomerService{Repo: custRepo}

	// Background maintenance worker.
	cron.InitSweepWorker(apptRepo, asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}, time.Duration(config.AppConfig.SweepIntervalMins)*time.Minute)

	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Register routes.
	routes.RegisterRoutes(router, &routes.Handlers{
		Appointments:     handlers.NewAppointmentHandler(bookingService),
		Providers:        handlers.NewProviderHandler(providerService),
		AppointmentTypes: handlers.NewAppointmentTypeHandler(catalogService),
		Customers:        handlers.NewCustomerHandler(customerService),
	})

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
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
