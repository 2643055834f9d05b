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
	"github.com/stripe/stripe-go/v76"

	"tutorly/config"
	"tutorly/cron"
	"tutorly/gateway"
	"tutorly/handlers"
	"tutorly/middleware"
	"tutorly/routes"
	"tutorly/services/appointment"
	"tutorly/services/scheduling"
	"tutorly/services/tasks"
	"tutorly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitTokenClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Gateway to the remote appointments API.
	tokenStore := utils.NewRedisTokenStore(utils.GetTokenClient(), config.AppConfig.APIToken)
	apiGateway := gateway.NewHTTPGateway(config.AppConfig.APIBaseURL, tokenStore, logger)

	// Reminder queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	reminderScheduler := tasks.NewAsynqReminderScheduler(
		queueClient,
		time.Duration(config.AppConfig.ReminderLeadMinutes)*time.Minute,
	)
	reminderWorker := cron.InitReminderWorker()

	// Services.
	schedulingService := scheduling.NewSchedulingService(scheduling.RealClock())
	schedulingService.Bounds = scheduling.DayBounds{
		StartHour: config.AppConfig.DayStartHour,
		EndHour:   config.AppConfig.DayEndHour,
	}
	schedulingService.Grid = scheduling.GridOptions{
		HourHeight:     config.AppConfig.HourPixelHeight,
		MinBlockHeight: config.AppConfig.MinBlockHeight,
	}
	schedulingService.DefaultSlotDuration = time.Duration(config.AppConfig.SlotDurationMinutes) * time.Minute

	// Checkout goes through Stripe directly when a key is configured,
	// otherwise through the remote API's checkout endpoint.
	var checkout appointment.CheckoutProvider = &appointment.RemoteCheckout{Gateway: apiGateway}
	if config.AppConfig.StripeKey != "" {
		checkout = &appointment.StripeCheckout{
			SuccessURL: config.AppConfig.StripeSuccessURL,
			CancelURL:  config.AppConfig.StripeCancelURL,
		}
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Store:             appointment.NewRemoteStore(apiGateway),
		CheckoutProvider:  checkout,
		Reminders:         reminderScheduler,
		Logger:            logger,
		DefaultHourlyRate: config.AppConfig.DefaultHourlyRate,
	}

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, schedulingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, appointmentHandler)

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

	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
