package handlers

import (
	"net/http"

	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the signed-in user, with the hospital for doctors.
func (h *Handler) GetProfile(c *gin.Context) {
	// 1. Actor comes from the auth middleware
	actor := middleware.ActorFrom(c)
	if actor.IsAnonymous() {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	// 2. Load the row
	user, err := h.Accounts.Profile(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profile loaded", user)
}
