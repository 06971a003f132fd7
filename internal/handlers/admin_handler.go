package handlers

import (
	"net/http"
	"strings"

	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetApplications lists hospital applications, optionally by ?status=.
func (h *Handler) GetApplications(c *gin.Context) {
	apps, err := h.Onboarding.ListApplications(c.Request.Context(), strings.ToLower(strings.TrimSpace(c.Query("status"))))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Applications loaded", apps)
}

// ApproveApplication creates the hospital and its invite code.
func (h *Handler) ApproveApplication(c *gin.Context) {
	// 1. Parse ID
	id := utils.StringToUint64(c.Param("id"))
	if id == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid application ID", nil)
		return
	}

	// 2. Approve in one transaction
	hospital, err := h.Onboarding.Approve(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Application approved", hospital)
}

func (h *Handler) RejectApplication(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))
	if id == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid application ID", nil)
		return
	}

	app, err := h.Onboarding.Reject(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Application rejected", app)
}

func (h *Handler) GetHospitals(c *gin.Context) {
	hospitals, err := h.Onboarding.ListHospitals(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Hospitals loaded", hospitals)
}

// GetAuditLog returns the most recent audit entries, ?limit= up to 200.
func (h *Handler) GetAuditLog(c *gin.Context) {
	limit := utils.StringToInt(c.Query("limit"), dashboard.AuditLimit)
	if limit <= 0 || limit > 200 {
		limit = dashboard.AuditLimit
	}

	logs, err := h.Audit.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Audit log loaded", logs)
}
