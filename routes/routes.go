// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/models"
	"slotbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the professor availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	r.POST("/availability",
		middleware.JWTAuthMiddleware(),
		middleware.RequireRole(models.RoleProfessor),
		h.SetAvailabilityHandler)

	r.GET("/professor/:id/availability",
		middleware.JWTAuthMiddleware(),
		h.GetAvailabilityHandler)
}

// RegisterAppointmentRoutes registers the booking engine endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	appointments := r.Group("/appointments")
	appointments.Use(middleware.JWTAuthMiddleware())
	{
		appointments.POST("/book", middleware.RequireRole(models.RoleStudent), h.BookAppointmentHandler)
		appointments.GET("/mine", h.GetMyAppointmentsHandler)
		appointments.GET("/professor", middleware.RequireRole(models.RoleProfessor), h.GetProfessorAppointmentsHandler)
		appointments.GET("/:id", h.GetAppointmentByIDHandler)
		appointments.PUT("/:id/cancel", middleware.RequireRole(models.RoleProfessor), h.CancelAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, h)
	RegisterAppointmentRoutes(r, h)
}
