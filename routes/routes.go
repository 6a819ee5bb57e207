package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookify/handlers"
)

// Handlers bundles the per-entity handler groups wired in main.
type Handlers struct {
	Appointments     *handlers.AppointmentHandler
	Providers        *handlers.ProviderHandler
	AppointmentTypes *handlers.AppointmentTypeHandler
	Customers        *handlers.CustomerHandler
}

// RegisterRoutes attaches all API endpoints to the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handlers.Healthz)

	registerAppointmentRoutes(r, h.Appointments)
	registerProviderRoutes(r, h.Providers)
	registerAppointmentTypeRoutes(r, h.AppointmentTypes)
	registerCustomerRoutes(r, h.Customers)
}

// registerAppointmentRoutes registers booking and slot-search endpoints.
func registerAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Cancel)
	}
	r.GET("/api/slots", h.FindSlots)
}

func registerProviderRoutes(r *gin.Engine, h *handlers.ProviderHandler) {
	api := r.Group("/api/providers")
	{
		api.POST("", h.Register)
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Deactivate)
		api.GET("/:id/availability", h.GetAvailability)
		api.PUT("/:id/availability", h.ReplaceAvailability)
	}
}

func registerAppointmentTypeRoutes(r *gin.Engine, h *handlers.AppointmentTypeHandler) {
	api := r.Group("/api/appointment-types")
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}
}

func registerCustomerRoutes(r *gin.Engine, h *handlers.CustomerHandler) {
	api := r.Group("/api/customers")
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}
}
