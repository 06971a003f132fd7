package routes

import (
	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/handlers"
	"afyajirani-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint under /api/v1. Global middleware
// (recovery, logging, CORS, rate limiting) is installed by the caller.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, auth *middleware.Auth) {
	r.GET("/ping", h.Ping)

	api := r.Group("/api/v1")
	{
		// Auth
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}

		// 1. PUBLIC ROUTES
		api.GET("/ping", h.Ping)
		api.GET("/tips", h.GetTips)
		api.GET("/clinics", h.GetClinics)
		api.GET("/helplines", h.GetHelplines)
		api.GET("/faq", h.GetFAQ)
		api.GET("/outbreaks", h.GetOutbreaks)
		api.POST("/hospital-applications", h.SubmitApplication)

		// Payment provider webhooks
		api.POST("/payments/stkpush", h.STKPush)
		api.POST("/payments/mpesa/callback", h.MpesaCallback)
		api.POST("/payments/midtrans/notification", h.MidtransNotification)

		// 2. PROTECTED ROUTES (valid session required)
		protected := api.Group("/")
		protected.Use(auth.Required(), middleware.RequireAccess(access.SignedIn))
		{
			protected.POST("/auth/logout", h.Logout)
			protected.GET("/profile", h.GetProfile)
			protected.GET("/dashboards/community", h.GetCommunityDashboard)

			analytics := protected.Group("/analytics")
			{
				analytics.GET("/predict", h.GetPrediction)
				analytics.GET("/risk", h.GetRisk)
				analytics.GET("/hotspots", h.GetHotspots)
				analytics.GET("/personalized-tips", h.GetPersonalizedTips)
			}

			// Clinicians linked to a hospital
			clinician := protected.Group("/")
			clinician.Use(middleware.RequireAccess(access.DoctorWithHospital))
			{
				clinician.GET("/dashboards/clinician", h.GetClinicianDashboard)
				clinician.POST("/cases", h.SubmitCase)
				clinician.GET("/patients", h.GetPatients)
				clinician.POST("/alerts", h.SendAlert)
			}

			// Admin only
			protected.GET("/dashboards/admin", middleware.RequireAccess(access.AdminOnly), h.GetAdminDashboard)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAccess(access.AdminOnly))
			{
				admin.GET("/applications", h.GetApplications)
				admin.POST("/applications/:id/approve", h.ApproveApplication)
				admin.POST("/applications/:id/reject", h.RejectApplication)
				admin.GET("/hospitals", h.GetHospitals)
				admin.GET("/audit", h.GetAuditLog)

				admin.POST("/tips", h.CreateTip)
				admin.POST("/clinics", h.CreateClinic)
				admin.POST("/helplines", h.CreateHelpline)
				admin.POST("/faq", h.CreateFAQ)
			}
		}
	}
}
