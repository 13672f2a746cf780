package v1

import (
	"github.com/clinicbook/api/internal/config"
	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/service"
	"github.com/clinicbook/api/pkg/auth"
	"github.com/clinicbook/api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Accounts *AccountHandler
	Catalog  *CatalogHandler
	Bookings *BookingHandler
	Payments *PaymentHandler
	Doctors  *DoctorHandler
}

// Register mounts all v1 routes. Public routes come first; everything under
// authed requires a valid token, and the admin group additionally requires a
// stored capability so a stale token alone can never reach them.
func Register(r *gin.Engine, cfg *config.Config, jwtManager *auth.JWTManager, authorizer *service.Authorizer, collector *metrics.Collector, h Handlers) {
	r.Use(CORS(cfg.CORS))
	r.Use(Metrics(collector))

	api := r.Group("/api/v1")

	// Public
	api.GET("/treatments", h.Catalog.ListTreatments)
	api.GET("/availability", h.Catalog.Availability)
	api.PUT("/users/:email", h.Accounts.SignIn)
	api.POST("/auth/refresh", h.Accounts.Refresh)
	api.GET("/users/:email/admin", h.Accounts.IsAdmin)

	// Authenticated
	authed := api.Group("")
	authed.Use(Authenticate(jwtManager))
	{
		authed.POST("/bookings", h.Bookings.Submit)
		authed.GET("/bookings", h.Bookings.ListMine)
		authed.GET("/bookings/:id", h.Bookings.Get)
		authed.POST("/bookings/:id/payment-intent", h.Payments.CreateIntent)
		authed.PATCH("/bookings/:id/confirm", h.Payments.Confirm)
	}

	// Admin
	admin := api.Group("")
	admin.Use(Authenticate(jwtManager))
	{
		admin.GET("/users",
			RequireCapability(authorizer, domain.CapManageUsers), h.Accounts.ListUsers)
		admin.PUT("/users/:email/admin",
			RequireCapability(authorizer, domain.CapManageUsers), h.Accounts.GrantAdmin)

		admin.GET("/doctors",
			RequireCapability(authorizer, domain.CapManageDoctors), h.Doctors.List)
		admin.POST("/doctors",
			RequireCapability(authorizer, domain.CapManageDoctors), h.Doctors.Add)
		admin.DELETE("/doctors/:email",
			RequireCapability(authorizer, domain.CapManageDoctors), h.Doctors.Remove)
	}
}
