package handlers

import (
	"net/http"

	"afyajirani-backend/internal/models"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SubmitApplication is the public hospital registration form. When an
// onboarding fee is set the applicant's phone gets an STK prompt first.
func (h *Handler) SubmitApplication(c *gin.Context) {
	var input models.HospitalApplicationInput

	// 1. Validate JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	// 2. Charge and store the pending application
	res, err := h.Onboarding.Apply(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Application submitted, awaiting review", res)
}
