package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mensa/config"
	"mensa/database"
	bookingRepoPkg "mensa/database/repository/booking"
	invoiceRepoPkg "mensa/database/repository/invoice"
	userRepoPkg "mensa/database/repository/user"
	"mensa/handlers"
	"mensa/middleware"
	"mensa/routes"
	"mensa/services/booking"
	"mensa/services/invoice"
	"mensa/services/pdf"
	"mensa/services/profile"
	"mensa/services/user"
	"mensa/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitJWT(config.AppConfig.JWTSecret)
	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		InvoiceRepo: invoiceRepo,
	}
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:        invoiceRepo,
		BookingRepo: bookingRepo,
	}
	profileService := &profile.DefaultProfileService{
		UserRepo:       userRepo,
		BookingRepo:    bookingRepo,
		InvoiceRepo:    invoiceRepo,
		CurrencyPrefix: config.AppConfig.CurrencyPrefix,
	}
	renderer := pdf.NewRenderer()

	authHandler := handlers.NewAuthHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, renderer)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		SignupHandler:         authHandler.SignupHandler,
		LoginHandler:          authHandler.LoginHandler,
		ForgotPasswordHandler: authHandler.ForgotPasswordHandler,
		VerifyTokenHandler:    authHandler.VerifyTokenHandler,
		LogoutHandler:         authHandler.LogoutHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetAllBookingsHandler:      bookingHandler.GetAllBookingsHandler,
		UpdateBookingHandler:       bookingHandler.UpdateBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		DeleteBookingHandler:       bookingHandler.DeleteBookingHandler,

		// Invoice endpoints.
		MyInvoicesHandler:          invoiceHandler.MyInvoicesHandler,
		AllInvoicesHandler:         invoiceHandler.AllInvoicesHandler,
		UpdateInvoiceHandler:       invoiceHandler.UpdateInvoiceHandler,
		UpdateInvoiceStatusHandler: invoiceHandler.UpdateInvoiceStatusHandler,
		RejectInvoiceHandler:       invoiceHandler.RejectInvoiceHandler,
		ConfirmInvoiceHandler:      invoiceHandler.ConfirmInvoiceHandler,
		DeleteInvoiceHandler:       invoiceHandler.DeleteInvoiceHandler,
		InvoicePDFHandler:          invoiceHandler.InvoicePDFHandler,

		// Profile endpoint.
		GetProfileHandler: profileHandler.GetProfileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
