package handlers

import (
	"net/http"

	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetPatients lists the patients of the clinician's hospital (all of them
// for an admin).
func (h *Handler) GetPatients(c *gin.Context) {
	patients, err := h.Alerts.Patients(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patients loaded", patients)
}

// SendAlert messages selected patients over whatsapp, sms or push.
func (h *Handler) SendAlert(c *gin.Context) {
	var input models.AlertInput

	// 1. Validate JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	// 2. Resolve recipients within the actor's hospital and send
	res, err := h.Alerts.Send(c.Request.Context(), input, middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Alert sent", res)
}
