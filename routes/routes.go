package routes

import (
	"net/http"
	"time"

	"mensa/config"
	"mensa/handlers"
	"mensa/middleware"
	"mensa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// adminPolicy returns the middleware guarding the administrative
// list/status/delete endpoints. Whether they require a token is an
// explicit configuration choice.
func adminPolicy() gin.HandlerFunc {
	if config.AppConfig.ProtectAdminRoutes {
		return middleware.JWTAuthMiddleware()
	}
	return func(c *gin.Context) { c.Next() }
}

// RegisterAuthRoutes registers signup/login/password endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/verify-token", hb.VerifyTokenHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. Creation belongs to
// the authenticated caller; the rest follow the admin policy.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.JWTAuthMiddleware(), hb.CreateBookingHandler)

		admin := api.Group("")
		admin.Use(adminPolicy())
		admin.GET("", hb.GetAllBookingsHandler)
		admin.PUT("/:id", hb.UpdateBookingHandler)
		admin.PUT("/:id/status", hb.UpdateBookingStatusHandler)
		admin.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterInvoiceRoutes registers invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.GET("", middleware.JWTAuthMiddleware(), hb.MyInvoicesHandler)
		api.GET("/:id/pdf", middleware.JWTAuthMiddleware(), hb.InvoicePDFHandler)

		admin := api.Group("")
		admin.Use(adminPolicy())
		admin.GET("/all", hb.AllInvoicesHandler)
		admin.PUT("/:id", hb.UpdateInvoiceHandler)
		admin.PUT("/:id/status", hb.UpdateInvoiceStatusHandler)
		admin.PUT("/:id/reject", hb.RejectInvoiceHandler)
		admin.PUT("/:id/confirm", hb.ConfirmInvoiceHandler)
		admin.DELETE("/:id", hb.DeleteInvoiceHandler)
	}
}

// RegisterProfileRoute registers the merged read-view endpoint.
func RegisterProfileRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/profile", middleware.JWTAuthMiddleware(), hb.GetProfileHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterProfileRoute(r, hb)
	RegisterHealthRoute(r)
}
