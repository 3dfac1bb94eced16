package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/middleware"
)

type Options struct {
	AllowedOrigins []string
	SessionSecret  string
}

func NewEngine(h *handler.Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("dashboard_session", store))

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", middleware.MetricsHandler())
	r.GET("/seed", h.Seed)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	dashboard := r.Group("/dashboard", middleware.AuthenticationRequired())
	dashboard.GET("", h.Overview)

	invoices := dashboard.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.CreateInvoice)
		invoices.POST("/import", h.ImportInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("/:id", h.UpdateInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.POST("/:id/delete", h.DeleteInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}

	customers := dashboard.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/all", h.AllCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("/:id", h.UpdateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.POST("/:id/delete", h.DeleteCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}

	reports := dashboard.Group("/reports")
	reports.GET("/invoices.xlsx", h.ExportInvoices)
}
