package handlers

import (
	"net/http"

	"afyajirani-backend/internal/middleware"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Register creates a community or doctor account.
func (h *Handler) Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validate JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	// 2. Create the account (doctors need an invite code)
	user, err := h.Accounts.Signup(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// 3. Done
	utils.APIResponse(c, http.StatusCreated, true, "Registration successful, please sign in", user)
}

// Login checks credentials and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validate input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	// 2. Check credentials and issue the token
	res, err := h.Accounts.Login(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", res)
}

// Logout revokes the token the request came with.
func (h *Handler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, middleware.MsgMissingToken, nil)
		return
	}

	if err := h.Accounts.Logout(c.Request.Context(), claims); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Signed out", gin.H{"redirect": middleware.LoginPath})
}
