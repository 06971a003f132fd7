package handlers

import (
	"net/http"
	"strings"

	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Analytics passthroughs. Query values fall back to the dashboard defaults.

func (h *Handler) GetPrediction(c *gin.Context) {
	disease := strings.TrimSpace(c.Query("disease"))
	if disease == "" {
		disease = dashboard.CommunityDisease
	}
	days := utils.StringToInt(c.Query("range"), dashboard.PredictionDays)
	if days <= 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "range must be a positive number of days", nil)
		return
	}

	pred, err := h.Insights.Predict(c.Request.Context(), disease, days)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Prediction loaded", pred)
}

func (h *Handler) GetRisk(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		location = dashboard.DefaultLocation
	}

	risk, err := h.Insights.Risk(c.Request.Context(), location, utils.StringToInt(c.Query("days"), dashboard.RiskDays))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Risk loaded", risk)
}

func (h *Handler) GetHotspots(c *gin.Context) {
	days := utils.StringToInt(c.Query("days"), dashboard.HotspotDays)
	minCases := utils.StringToInt(c.Query("min_cases"), dashboard.HotspotMinCases)

	hotspots, err := h.Insights.Hotspots(c.Request.Context(), days, minCases)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Hotspots loaded", hotspots)
}

func (h *Handler) GetPersonalizedTips(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		location = dashboard.DefaultLocation
	}

	tips, err := h.Insights.PersonalizedTips(c.Request.Context(), location)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Tips loaded", tips)
}

func (h *Handler) Ping(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
}
