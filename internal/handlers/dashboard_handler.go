package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"afyajirani-backend/internal/dashboard"
	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusClientClosedRequest is what we log when the caller went away
// before the panels finished.
const statusClientClosedRequest = 499

func (h *Handler) GetCommunityDashboard(c *gin.Context) {
	h.dashboard(c, dashboard.Community)
}

func (h *Handler) GetClinicianDashboard(c *gin.Context) {
	h.dashboard(c, dashboard.Clinician)
}

func (h *Handler) GetAdminDashboard(c *gin.Context) {
	h.dashboard(c, dashboard.Admin)
}

// dashboard composes a variant. Panel failures are inside the payload; the
// request itself only fails when it was cancelled.
func (h *Handler) dashboard(c *gin.Context, v dashboard.Variant) {
	params := dashboard.Params{
		Search:   strings.TrimSpace(c.Query("search")),
		Disease:  strings.TrimSpace(c.Query("disease")),
		Location: strings.TrimSpace(c.Query("location")),
	}

	d, err := h.Dashboards.Compose(c.Request.Context(), v, middleware.ActorFrom(c), params)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.Logger.Info("dashboard discarded", zap.String("dashboard", string(v)), zap.Error(err))
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Dashboard loaded", d)
}
