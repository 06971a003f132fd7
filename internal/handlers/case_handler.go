package handlers

import (
	"net/http"
	"strings"

	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetOutbreaks is the public case feed, newest first. ?search= matches
// disease or location, ?limit= caps the rows.
func (h *Handler) GetOutbreaks(c *gin.Context) {
	limit := utils.StringToInt(c.Query("limit"), dashboard.OutbreakLimit)

	cases, err := h.Reports.Outbreaks(c.Request.Context(), strings.TrimSpace(c.Query("search")), limit)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Outbreaks loaded", cases)
}

// SubmitCase stores a clinician's case report.
func (h *Handler) SubmitCase(c *gin.Context) {
	var input models.CreateCaseInput

	// 1. Validate JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	// 2. Store and forward
	res, err := h.Reports.Submit(c.Request.Context(), input, middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// 3. The row is saved either way; say so when analytics missed it
	msg := "Case submitted"
	if !res.AnalyticsSynced {
		msg = "Case saved, analytics sync pending"
	}
	utils.APIResponse(c, http.StatusCreated, true, msg, res)
}
